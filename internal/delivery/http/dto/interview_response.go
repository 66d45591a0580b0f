package dto

import (
	"time"

	"github.com/google/uuid"

	"skillchain/internal/repository"
)

type InterviewResponse struct {
	ID         uuid.UUID `json:"id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	Category   *string   `json:"category"`
	Score      *float64  `json:"score"`
	AIFeedback *string   `json:"ai_feedback"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromInterview(mi repository.MockInterview) InterviewResponse {
	return InterviewResponse{
		ID:         mi.ID,
		Question:   mi.Question,
		Answer:     mi.Answer,
		Category:   mi.Category,
		Score:      mi.Score,
		AIFeedback: mi.AIFeedback,
		CreatedAt:  mi.CreatedAt,
	}
}

func FromInterviews(items []repository.MockInterview) []InterviewResponse {
	out := make([]InterviewResponse, 0, len(items))
	for _, mi := range items {
		out = append(out, FromInterview(mi))
	}
	return out
}
