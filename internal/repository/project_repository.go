package repository

import (
	"context"
	"encoding/json"
	"time"

	"skillchain/internal/database"

	"github.com/google/uuid"
)

type Project struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	RepoName         string
	RepoURL          *string
	AnalysisStatus   *string
	AIFeedback       json.RawMessage
	CodeQualityScore *float64
	ComplexityScore  *float64
	XPAwarded        *int
	AnalyzedAt       *time.Time
	CreatedAt        time.Time
}

type ProjectRepository interface {
	Create(ctx context.Context, p Project) (Project, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]Project, error)
}

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

const projectColumns = `id, user_id, repo_name, repo_url, analysis_status,
	ai_feedback, code_quality_score, complexity_score, xp_awarded, analyzed_at, created_at`

func (r *PostgresProjectRepository) Create(ctx context.Context, p Project) (Project, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO projects (id, user_id, repo_name, repo_url, analysis_status,
			ai_feedback, code_quality_score, complexity_score, xp_awarded, analyzed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING `+projectColumns,
		p.ID, p.UserID, p.RepoName, p.RepoURL, p.AnalysisStatus,
		p.AIFeedback, p.CodeQualityScore, p.ComplexityScore, p.XPAwarded, p.AnalyzedAt,
	)

	var out Project
	err := row.Scan(
		&out.ID, &out.UserID, &out.RepoName, &out.RepoURL, &out.AnalysisStatus,
		&out.AIFeedback, &out.CodeQualityScore, &out.ComplexityScore, &out.XPAwarded, &out.AnalyzedAt, &out.CreatedAt,
	)
	if err != nil {
		return Project{}, err
	}
	return out, nil
}

func (r *PostgresProjectRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]Project, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Project, 0)
	for rows.Next() {
		var p Project
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.RepoName, &p.RepoURL, &p.AnalysisStatus,
			&p.AIFeedback, &p.CodeQualityScore, &p.ComplexityScore, &p.XPAwarded, &p.AnalyzedAt, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
