package usecase

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"skillchain/internal/infrastructure/ai"
	"skillchain/internal/repository"
	"skillchain/internal/ws"
)

const fallbackRepoName = "Code Snippet"

type AnalyzeCodeInput struct {
	CodeSnippet string
	RepoURL     string
	Language    string
}

type AnalyzeCodeUsecase interface {
	AnalyzeCode(ctx context.Context, userID uuid.UUID, in AnalyzeCodeInput) (ai.CodeAssessment, error)
	ListProjects(ctx context.Context, userID uuid.UUID) ([]repository.Project, error)
}

type AnalyzeCode struct {
	ai       ai.Client
	projects repository.ProjectRepository
	xp       repository.XPRepository
	logger   *log.Logger
}

func NewAnalyzeCodeUsecase(aiClient ai.Client, projects repository.ProjectRepository, xp repository.XPRepository, logger *log.Logger) *AnalyzeCode {
	return &AnalyzeCode{ai: aiClient, projects: projects, xp: xp, logger: logger}
}

// AnalyzeCode sends the submission through the free-text review path. The
// gateway's answer is mined for JSON and degrades to a fixed conservative
// assessment when unreadable; gateway faults are never retried. The project
// row and the XP ledger row are written sequentially with no transaction
// tying them together.
func (u *AnalyzeCode) AnalyzeCode(ctx context.Context, userID uuid.UUID, in AnalyzeCodeInput) (ai.CodeAssessment, error) {
	if strings.TrimSpace(in.CodeSnippet) == "" {
		return ai.CodeAssessment{}, ErrInvalidInput
	}

	raw, err := u.ai.Complete(ctx, ai.CodeReviewSystemPrompt, ai.BuildCodeReviewPrompt(in.Language, in.CodeSnippet, in.RepoURL))
	if err != nil {
		return ai.CodeAssessment{}, err
	}

	assessment := ai.ExtractCodeAssessment(raw)

	feedback, err := json.Marshal(assessment)
	if err != nil {
		return ai.CodeAssessment{}, err
	}

	repoName := strings.TrimSpace(in.RepoURL)
	if repoName == "" {
		repoName = fallbackRepoName
	}

	now := time.Now().UTC()
	status := "completed"
	score := assessment.OverallScore
	xpAwarded := assessment.XPAwarded
	var repoURL *string
	if s := strings.TrimSpace(in.RepoURL); s != "" {
		repoURL = &s
	}

	if _, err := u.projects.Create(ctx, repository.Project{
		ID:               uuid.New(),
		UserID:           userID,
		RepoName:         repoName,
		RepoURL:          repoURL,
		AnalysisStatus:   &status,
		AIFeedback:       feedback,
		CodeQualityScore: &score,
		XPAwarded:        &xpAwarded,
		AnalyzedAt:       &now,
	}); err != nil {
		return ai.CodeAssessment{}, err
	}

	desc := "Code analysis completed"
	if err := u.xp.Create(ctx, repository.XPTransaction{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      assessment.XPAwarded,
		Source:      "code_analysis",
		Description: &desc,
	}); err != nil {
		// The project row is already in; it stays.
		return ai.CodeAssessment{}, err
	}

	ws.NotifyXPAwarded(userID, assessment.XPAwarded, "code_analysis")

	return assessment, nil
}

func (u *AnalyzeCode) ListProjects(ctx context.Context, userID uuid.UUID) ([]repository.Project, error) {
	items, err := u.projects.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}
