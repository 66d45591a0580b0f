package repository

import (
	"context"
	"encoding/json"
	"time"

	"skillchain/internal/database"

	"github.com/google/uuid"
)

type Credential struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	TokenID          *string
	CredentialType   string
	SkillID          *uuid.UUID
	Metadata         json.RawMessage
	Level            *int
	BlockchainTxHash *string
	PolygonScanURL   *string
	MintedAt         *time.Time
}

type CredentialRepository interface {
	Create(ctx context.Context, c Credential) (Credential, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]Credential, error)
}

type PostgresCredentialRepository struct {
	db database.DB
}

func NewPostgresCredentialRepository(db database.DB) *PostgresCredentialRepository {
	return &PostgresCredentialRepository{db: db}
}

const credentialColumns = `id, user_id, token_id, credential_type, skill_id,
	metadata, level, blockchain_tx_hash, polygon_scan_url, minted_at`

func (r *PostgresCredentialRepository) Create(ctx context.Context, c Credential) (Credential, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO nft_credentials (id, user_id, token_id, credential_type, skill_id,
			metadata, level, blockchain_tx_hash, polygon_scan_url, minted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING `+credentialColumns,
		c.ID, c.UserID, c.TokenID, c.CredentialType, c.SkillID,
		c.Metadata, c.Level, c.BlockchainTxHash, c.PolygonScanURL, c.MintedAt,
	)

	var out Credential
	err := row.Scan(
		&out.ID, &out.UserID, &out.TokenID, &out.CredentialType, &out.SkillID,
		&out.Metadata, &out.Level, &out.BlockchainTxHash, &out.PolygonScanURL, &out.MintedAt,
	)
	if err != nil {
		return Credential{}, err
	}
	return out, nil
}

func (r *PostgresCredentialRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]Credential, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+credentialColumns+` FROM nft_credentials WHERE user_id = $1 ORDER BY minted_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Credential, 0)
	for rows.Next() {
		var c Credential
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.TokenID, &c.CredentialType, &c.SkillID,
			&c.Metadata, &c.Level, &c.BlockchainTxHash, &c.PolygonScanURL, &c.MintedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
