package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/google/uuid"

	"skillchain/internal/infrastructure/ai"
	"skillchain/internal/repository"
)

type mockAIClient struct {
	completion string
	payload    json.RawMessage
	err        error
}

func (m mockAIClient) Complete(context.Context, string, string) (string, error) {
	return m.completion, m.err
}

func (m mockAIClient) CallFunction(context.Context, string, string, ai.FunctionSchema) (json.RawMessage, error) {
	return m.payload, m.err
}

type mockProjectRepo struct {
	created []repository.Project
	err     error
}

func (m *mockProjectRepo) Create(_ context.Context, p repository.Project) (repository.Project, error) {
	if m.err != nil {
		return repository.Project{}, m.err
	}
	m.created = append(m.created, p)
	return p, nil
}

func (m *mockProjectRepo) FindByUserID(context.Context, uuid.UUID) ([]repository.Project, error) {
	return m.created, nil
}

type mockXPRepo struct {
	created []repository.XPTransaction
	err     error
}

func (m *mockXPRepo) Create(_ context.Context, tx repository.XPTransaction) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, tx)
	return nil
}

func (m *mockXPRepo) FindByUserID(context.Context, uuid.UUID, int) ([]repository.XPTransaction, error) {
	return m.created, nil
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

const validAssessmentJSON = `{"scores":{"cleanCode":0.8,"problemSolving":0.9,"optimization":0.7,"documentation":0.6,"creativity":0.8},"overallScore":0.76,"feedback":"good","strengths":["tidy"],"improvements":["docs"],"xpAwarded":600}`

func TestAnalyzeCode_EmptySnippet(t *testing.T) {
	uc := NewAnalyzeCodeUsecase(mockAIClient{}, &mockProjectRepo{}, &mockXPRepo{}, discardLogger())
	_, err := uc.AnalyzeCode(context.Background(), uuid.New(), AnalyzeCodeInput{CodeSnippet: "   "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAnalyzeCode_PersistsProjectAndLedger(t *testing.T) {
	projects := &mockProjectRepo{}
	ledger := &mockXPRepo{}
	uc := NewAnalyzeCodeUsecase(mockAIClient{completion: "```json\n" + validAssessmentJSON + "\n```"}, projects, ledger, discardLogger())

	userID := uuid.New()
	got, err := uc.AnalyzeCode(context.Background(), userID, AnalyzeCodeInput{
		CodeSnippet: "function add(a,b){return a+b}",
		Language:    "javascript",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if got.OverallScore != 0.76 || got.XPAwarded != 600 {
		t.Fatalf("unexpected assessment: %+v", got)
	}

	if len(projects.created) != 1 {
		t.Fatalf("expected 1 project row, got %d", len(projects.created))
	}
	p := projects.created[0]
	if p.UserID != userID {
		t.Fatalf("project owner mismatch")
	}
	if p.RepoName != "Code Snippet" {
		t.Fatalf("expected fallback repo name, got %q", p.RepoName)
	}
	if p.XPAwarded == nil || *p.XPAwarded != 600 {
		t.Fatalf("project xp mismatch: %v", p.XPAwarded)
	}

	if len(ledger.created) != 1 {
		t.Fatalf("expected 1 ledger row, got %d", len(ledger.created))
	}
	tx := ledger.created[0]
	if tx.Amount != 600 || tx.Source != "code_analysis" {
		t.Fatalf("unexpected ledger row: %+v", tx)
	}
}

func TestAnalyzeCode_UsesRepoURLAsName(t *testing.T) {
	projects := &mockProjectRepo{}
	uc := NewAnalyzeCodeUsecase(mockAIClient{completion: validAssessmentJSON}, projects, &mockXPRepo{}, discardLogger())

	_, err := uc.AnalyzeCode(context.Background(), uuid.New(), AnalyzeCodeInput{
		CodeSnippet: "print('hi')",
		RepoURL:     "https://github.com/acme/widgets",
		Language:    "python",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if projects.created[0].RepoName != "https://github.com/acme/widgets" {
		t.Fatalf("unexpected repo name: %q", projects.created[0].RepoName)
	}
}

func TestAnalyzeCode_UnparseableResponseFallsBack(t *testing.T) {
	projects := &mockProjectRepo{}
	ledger := &mockXPRepo{}
	uc := NewAnalyzeCodeUsecase(mockAIClient{completion: "sorry, cannot help"}, projects, ledger, discardLogger())

	got, err := uc.AnalyzeCode(context.Background(), uuid.New(), AnalyzeCodeInput{CodeSnippet: "x"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	want := ai.FallbackCodeAssessment()
	if got.OverallScore != want.OverallScore || got.XPAwarded != want.XPAwarded {
		t.Fatalf("expected fallback assessment, got %+v", got)
	}
	if len(ledger.created) != 1 || ledger.created[0].Amount != 300 {
		t.Fatalf("expected fallback xp 300 in ledger")
	}
}

func TestAnalyzeCode_RateLimitPassThroughNoWrites(t *testing.T) {
	projects := &mockProjectRepo{}
	ledger := &mockXPRepo{}
	gatewayErr := ai.ErrRateLimited
	uc := NewAnalyzeCodeUsecase(mockAIClient{err: gatewayErr}, projects, ledger, discardLogger())

	_, err := uc.AnalyzeCode(context.Background(), uuid.New(), AnalyzeCodeInput{CodeSnippet: "x"})
	if !errors.Is(err, ai.ErrRateLimited) {
		t.Fatalf("expected rate-limit error, got %v", err)
	}
	if len(projects.created) != 0 || len(ledger.created) != 0 {
		t.Fatalf("expected no persistence on gateway fault")
	}
}

func TestAnalyzeCode_LedgerFailureSurfaces(t *testing.T) {
	projects := &mockProjectRepo{}
	ledger := &mockXPRepo{err: errors.New("insert failed")}
	uc := NewAnalyzeCodeUsecase(mockAIClient{completion: validAssessmentJSON}, projects, ledger, discardLogger())

	_, err := uc.AnalyzeCode(context.Background(), uuid.New(), AnalyzeCodeInput{CodeSnippet: "x"})
	if err == nil {
		t.Fatalf("expected error when ledger insert fails")
	}
	// The project row stays behind; no rollback exists.
	if len(projects.created) != 1 {
		t.Fatalf("expected project row to remain")
	}
}
