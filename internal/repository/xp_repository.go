package repository

import (
	"context"
	"encoding/json"
	"time"

	"skillchain/internal/database"

	"github.com/google/uuid"
)

type XPTransaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      int
	Source      string
	Description *string
	Metadata    json.RawMessage
	CreatedAt   time.Time
}

type XPRepository interface {
	Create(ctx context.Context, tx XPTransaction) error
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]XPTransaction, error)
}

type PostgresXPRepository struct {
	db database.DB
}

func NewPostgresXPRepository(db database.DB) *PostgresXPRepository {
	return &PostgresXPRepository{db: db}
}

func (r *PostgresXPRepository) Create(ctx context.Context, tx XPTransaction) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO xp_transactions (id, user_id, amount, source, description, metadata)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		tx.ID, tx.UserID, tx.Amount, tx.Source, tx.Description, tx.Metadata,
	)
	return err
}

func (r *PostgresXPRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]XPTransaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, amount, source, description, metadata, created_at
		 FROM xp_transactions
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]XPTransaction, 0)
	for rows.Next() {
		var tx XPTransaction
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Source, &tx.Description, &tx.Metadata, &tx.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
