package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"skillchain/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrAnalysisNotFound = errors.New("analysis not found")

// UserAnalysis is the one-per-user holistic profile snapshot; writes go
// through Upsert keyed on user_id.
type UserAnalysis struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	LinkedinURL     *string
	GithubID        *string
	ResumeScore     *float64
	CodingStats     json.RawMessage
	Feedback        *string
	Recommendations json.RawMessage
	Progress        json.RawMessage
	Verified        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type AnalysisRepository interface {
	Upsert(ctx context.Context, a UserAnalysis) (UserAnalysis, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (UserAnalysis, error)
}

type PostgresAnalysisRepository struct {
	db database.DB
}

func NewPostgresAnalysisRepository(db database.DB) *PostgresAnalysisRepository {
	return &PostgresAnalysisRepository{db: db}
}

const analysisColumns = `id, user_id, linkedin_url, github_id, resume_score,
	coding_stats, feedback, recommendations, progress, COALESCE(verified, FALSE), created_at, updated_at`

func (r *PostgresAnalysisRepository) Upsert(ctx context.Context, a UserAnalysis) (UserAnalysis, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO user_analysis (id, user_id, linkedin_url, github_id, resume_score,
			coding_stats, feedback, recommendations, progress, verified, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		 ON CONFLICT (user_id) DO UPDATE SET
			linkedin_url    = EXCLUDED.linkedin_url,
			github_id       = EXCLUDED.github_id,
			resume_score    = EXCLUDED.resume_score,
			coding_stats    = EXCLUDED.coding_stats,
			feedback        = EXCLUDED.feedback,
			recommendations = EXCLUDED.recommendations,
			progress        = EXCLUDED.progress,
			verified        = EXCLUDED.verified,
			updated_at      = NOW()
		 RETURNING `+analysisColumns,
		a.ID, a.UserID, a.LinkedinURL, a.GithubID, a.ResumeScore,
		a.CodingStats, a.Feedback, a.Recommendations, a.Progress, a.Verified,
	)
	return scanAnalysis(row)
}

func (r *PostgresAnalysisRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (UserAnalysis, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+analysisColumns+` FROM user_analysis WHERE user_id = $1`,
		userID,
	)
	return scanAnalysis(row)
}

func scanAnalysis(row database.Row) (UserAnalysis, error) {
	var a UserAnalysis
	err := row.Scan(
		&a.ID, &a.UserID, &a.LinkedinURL, &a.GithubID, &a.ResumeScore,
		&a.CodingStats, &a.Feedback, &a.Recommendations, &a.Progress, &a.Verified, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return UserAnalysis{}, ErrAnalysisNotFound
		}
		return UserAnalysis{}, err
	}
	return a, nil
}
