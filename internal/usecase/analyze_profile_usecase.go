package usecase

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/google/uuid"

	"skillchain/internal/infrastructure/ai"
	"skillchain/internal/infrastructure/github"
	"skillchain/internal/repository"
)

type AnalyzeProfileInput struct {
	LinkedinURL string
	GithubID    string
}

type AnalyzeProfileUsecase interface {
	AnalyzeProfile(ctx context.Context, userID uuid.UUID, in AnalyzeProfileInput) (repository.UserAnalysis, error)
	GetAnalysis(ctx context.Context, userID uuid.UUID) (repository.UserAnalysis, error)
}

type AnalyzeProfile struct {
	ai       ai.Client
	github   github.Client
	analyses repository.AnalysisRepository
	logger   *log.Logger
}

func NewAnalyzeProfileUsecase(aiClient ai.Client, gh github.Client, analyses repository.AnalysisRepository, logger *log.Logger) *AnalyzeProfile {
	return &AnalyzeProfile{ai: aiClient, github: gh, analyses: analyses, logger: logger}
}

// profileInsights mirrors the declared analyze_profile function-call schema.
// Unlike the free-text path there is no fallback: a payload that does not
// decode is a hard fault.
type profileInsights struct {
	ResumeScore     float64            `json:"resume_score"`
	Feedback        string             `json:"feedback"`
	Recommendations []string           `json:"recommendations"`
	Progress        map[string]float64 `json:"progress"`
}

func (u *AnalyzeProfile) AnalyzeProfile(ctx context.Context, userID uuid.UUID, in AnalyzeProfileInput) (repository.UserAnalysis, error) {
	linkedin := strings.TrimSpace(in.LinkedinURL)
	githubID := strings.TrimSpace(in.GithubID)
	if linkedin == "" && githubID == "" {
		return repository.UserAnalysis{}, ErrInvalidInput
	}

	// GitHub stats are best effort; a failed fetch leaves them empty.
	var stats github.Stats
	if githubID != "" && u.github != nil {
		s, err := u.github.UserStats(ctx, githubID)
		if err != nil {
			if u.logger != nil {
				u.logger.Printf("[Profile] github stats unavailable | github_id=%s error=%v", githubID, err)
			}
		} else {
			stats = s
		}
	}

	statsJSON, err := json.Marshal(stats)
	if err != nil {
		return repository.UserAnalysis{}, err
	}

	payload, err := u.ai.CallFunction(ctx,
		ai.ProfileAnalysisSystemPrompt,
		ai.BuildProfileAnalysisPrompt(linkedin, githubID, string(statsJSON)),
		ai.AnalyzeProfileFunction(),
	)
	if err != nil {
		return repository.UserAnalysis{}, err
	}

	var insights profileInsights
	if err := json.Unmarshal(payload, &insights); err != nil {
		return repository.UserAnalysis{}, err
	}

	recommendations, err := json.Marshal(insights.Recommendations)
	if err != nil {
		return repository.UserAnalysis{}, err
	}
	progress, err := json.Marshal(insights.Progress)
	if err != nil {
		return repository.UserAnalysis{}, err
	}

	var linkedinPtr, githubPtr *string
	if linkedin != "" {
		linkedinPtr = &linkedin
	}
	if githubID != "" {
		githubPtr = &githubID
	}

	saved, err := u.analyses.Upsert(ctx, repository.UserAnalysis{
		ID:              uuid.New(),
		UserID:          userID,
		LinkedinURL:     linkedinPtr,
		GithubID:        githubPtr,
		ResumeScore:     &insights.ResumeScore,
		CodingStats:     statsJSON,
		Feedback:        &insights.Feedback,
		Recommendations: recommendations,
		Progress:        progress,
		Verified:        true,
	})
	if err != nil {
		return repository.UserAnalysis{}, err
	}
	return saved, nil
}

func (u *AnalyzeProfile) GetAnalysis(ctx context.Context, userID uuid.UUID) (repository.UserAnalysis, error) {
	a, err := u.analyses.GetByUserID(ctx, userID)
	if err != nil {
		return repository.UserAnalysis{}, err
	}
	return a, nil
}
