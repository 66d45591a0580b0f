package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"

	"skillchain/internal/repository"
)

type mockInterviewRepo struct {
	created []repository.MockInterview
	err     error
}

func (m *mockInterviewRepo) Create(_ context.Context, mi repository.MockInterview) (repository.MockInterview, error) {
	if m.err != nil {
		return repository.MockInterview{}, m.err
	}
	m.created = append(m.created, mi)
	return mi, nil
}

func (m *mockInterviewRepo) FindByUserID(context.Context, uuid.UUID, int) ([]repository.MockInterview, error) {
	return m.created, m.err
}

func TestEvaluateAnswer_JoinsSuggestionsIntoFeedback(t *testing.T) {
	payload := json.RawMessage(`{"score":0.82,"feedback":"Solid structure.","suggestions":["Mention tradeoffs","Quantify impact"]}`)
	repo := &mockInterviewRepo{}
	uc := NewInterviewUsecase(mockAIClient{payload: payload}, repo)

	got, err := uc.EvaluateAnswer(context.Background(), uuid.New(), EvaluateAnswerInput{
		Question: "Tell me about a hard bug.",
		Answer:   "I once chased a race condition...",
		Category: "behavioral",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	want := "Solid structure.\n\nSuggestions:\nMention tradeoffs\nQuantify impact"
	if got.AIFeedback == nil || *got.AIFeedback != want {
		t.Fatalf("feedback = %q, want %q", deref(got.AIFeedback), want)
	}
	if got.Score == nil || *got.Score != 0.82 {
		t.Fatalf("score = %v", got.Score)
	}
	if got.Category == nil || *got.Category != "behavioral" {
		t.Fatalf("category = %v", got.Category)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected persisted interview")
	}
}

func TestEvaluateAnswer_MalformedPayloadFails(t *testing.T) {
	repo := &mockInterviewRepo{}
	uc := NewInterviewUsecase(mockAIClient{payload: json.RawMessage(`{"score":"high"`)}, repo)

	_, err := uc.EvaluateAnswer(context.Background(), uuid.New(), EvaluateAnswerInput{
		Question: "Q",
		Answer:   "A",
	})
	if err == nil {
		t.Fatalf("expected error on malformed tool payload")
	}
	if len(repo.created) != 0 {
		t.Fatalf("nothing should persist when the payload is unusable")
	}
}

func TestEvaluateAnswer_BlankAnswer(t *testing.T) {
	uc := NewInterviewUsecase(mockAIClient{}, &mockInterviewRepo{})
	_, err := uc.EvaluateAnswer(context.Background(), uuid.New(), EvaluateAnswerInput{Question: "Q", Answer: "  "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestEvaluateAnswer_GatewayErrPassesThrough(t *testing.T) {
	wantErr := errors.New("upstream down")
	uc := NewInterviewUsecase(mockAIClient{err: wantErr}, &mockInterviewRepo{})
	_, err := uc.EvaluateAnswer(context.Background(), uuid.New(), EvaluateAnswerInput{Question: "Q", Answer: "A"})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected gateway error to pass through, got %v", err)
	}
}

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}
