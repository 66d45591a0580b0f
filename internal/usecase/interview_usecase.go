package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"skillchain/internal/infrastructure/ai"
	"skillchain/internal/repository"
)

const defaultInterviewListLimit = 50

type EvaluateAnswerInput struct {
	Question string
	Answer   string
	Category string
}

type InterviewUsecase interface {
	EvaluateAnswer(ctx context.Context, userID uuid.UUID, in EvaluateAnswerInput) (repository.MockInterview, error)
	ListInterviews(ctx context.Context, userID uuid.UUID) ([]repository.MockInterview, error)
}

type Interview struct {
	ai         ai.Client
	interviews repository.InterviewRepository
}

func NewInterviewUsecase(aiClient ai.Client, interviews repository.InterviewRepository) *Interview {
	return &Interview{ai: aiClient, interviews: interviews}
}

type answerEvaluation struct {
	Score       float64  `json:"score"`
	Feedback    string   `json:"feedback"`
	Suggestions []string `json:"suggestions"`
}

func (u *Interview) EvaluateAnswer(ctx context.Context, userID uuid.UUID, in EvaluateAnswerInput) (repository.MockInterview, error) {
	if strings.TrimSpace(in.Question) == "" || strings.TrimSpace(in.Answer) == "" {
		return repository.MockInterview{}, ErrInvalidInput
	}

	payload, err := u.ai.CallFunction(ctx,
		ai.InterviewEvaluationSystemPrompt,
		ai.BuildInterviewEvaluationPrompt(in.Question, in.Answer, in.Category),
		ai.EvaluateAnswerFunction(),
	)
	if err != nil {
		return repository.MockInterview{}, err
	}

	var eval answerEvaluation
	if err := json.Unmarshal(payload, &eval); err != nil {
		return repository.MockInterview{}, err
	}

	feedback := eval.Feedback + "\n\nSuggestions:\n" + strings.Join(eval.Suggestions, "\n")

	var category *string
	if c := strings.TrimSpace(in.Category); c != "" {
		category = &c
	}

	saved, err := u.interviews.Create(ctx, repository.MockInterview{
		ID:         uuid.New(),
		UserID:     userID,
		Question:   in.Question,
		Answer:     in.Answer,
		Category:   category,
		Score:      &eval.Score,
		AIFeedback: &feedback,
	})
	if err != nil {
		return repository.MockInterview{}, err
	}
	return saved, nil
}

func (u *Interview) ListInterviews(ctx context.Context, userID uuid.UUID) ([]repository.MockInterview, error) {
	items, err := u.interviews.FindByUserID(ctx, userID, defaultInterviewListLimit)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}
