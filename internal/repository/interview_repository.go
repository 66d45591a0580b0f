package repository

import (
	"context"
	"time"

	"skillchain/internal/database"

	"github.com/google/uuid"
)

type MockInterview struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Question   string
	Answer     string
	Category   *string
	Score      *float64
	AIFeedback *string
	CreatedAt  time.Time
}

type InterviewRepository interface {
	Create(ctx context.Context, mi MockInterview) (MockInterview, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]MockInterview, error)
}

type PostgresInterviewRepository struct {
	db database.DB
}

func NewPostgresInterviewRepository(db database.DB) *PostgresInterviewRepository {
	return &PostgresInterviewRepository{db: db}
}

const interviewColumns = `id, user_id, question, answer, category, score, ai_feedback, created_at`

func (r *PostgresInterviewRepository) Create(ctx context.Context, mi MockInterview) (MockInterview, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO mock_interviews (id, user_id, question, answer, category, score, ai_feedback)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+interviewColumns,
		mi.ID, mi.UserID, mi.Question, mi.Answer, mi.Category, mi.Score, mi.AIFeedback,
	)

	var out MockInterview
	err := row.Scan(&out.ID, &out.UserID, &out.Question, &out.Answer, &out.Category, &out.Score, &out.AIFeedback, &out.CreatedAt)
	if err != nil {
		return MockInterview{}, err
	}
	return out, nil
}

func (r *PostgresInterviewRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]MockInterview, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+interviewColumns+`
		 FROM mock_interviews
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]MockInterview, 0)
	for rows.Next() {
		var mi MockInterview
		if err := rows.Scan(&mi.ID, &mi.UserID, &mi.Question, &mi.Answer, &mi.Category, &mi.Score, &mi.AIFeedback, &mi.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, mi)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
