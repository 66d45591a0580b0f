package repository

import (
	"context"
	"time"

	"skillchain/internal/database"

	"github.com/google/uuid"
)

type Certification struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Name             string
	Issuer           *string
	IssueDate        *string
	VerificationHash *string
	Verified         bool
	FileURL          *string
	CreatedAt        time.Time
}

type CertificationRepository interface {
	Create(ctx context.Context, c Certification) (Certification, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]Certification, error)
}

type PostgresCertificationRepository struct {
	db database.DB
}

func NewPostgresCertificationRepository(db database.DB) *PostgresCertificationRepository {
	return &PostgresCertificationRepository{db: db}
}

const certificationColumns = `id, user_id, name, issuer, issue_date,
	verification_hash, COALESCE(verified, FALSE), file_url, created_at`

func (r *PostgresCertificationRepository) Create(ctx context.Context, c Certification) (Certification, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO certifications (id, user_id, name, issuer, issue_date, verification_hash, verified, file_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+certificationColumns,
		c.ID, c.UserID, c.Name, c.Issuer, c.IssueDate, c.VerificationHash, c.Verified, c.FileURL,
	)

	var out Certification
	err := row.Scan(&out.ID, &out.UserID, &out.Name, &out.Issuer, &out.IssueDate, &out.VerificationHash, &out.Verified, &out.FileURL, &out.CreatedAt)
	if err != nil {
		return Certification{}, err
	}
	return out, nil
}

func (r *PostgresCertificationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]Certification, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+certificationColumns+` FROM certifications WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Certification, 0)
	for rows.Next() {
		var c Certification
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Issuer, &c.IssueDate, &c.VerificationHash, &c.Verified, &c.FileURL, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
