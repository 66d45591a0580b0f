package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"skillchain/internal/repository"
)

type ProjectResponse struct {
	ID               uuid.UUID       `json:"id"`
	RepoName         string          `json:"repo_name"`
	RepoURL          *string         `json:"repo_url"`
	AnalysisStatus   *string         `json:"analysis_status"`
	AIFeedback       json.RawMessage `json:"ai_feedback"`
	CodeQualityScore *float64        `json:"code_quality_score"`
	XPAwarded        *int            `json:"xp_awarded"`
	AnalyzedAt       *time.Time      `json:"analyzed_at"`
	CreatedAt        time.Time       `json:"created_at"`
}

func FromProject(p repository.Project) ProjectResponse {
	return ProjectResponse{
		ID:               p.ID,
		RepoName:         p.RepoName,
		RepoURL:          p.RepoURL,
		AnalysisStatus:   p.AnalysisStatus,
		AIFeedback:       p.AIFeedback,
		CodeQualityScore: p.CodeQualityScore,
		XPAwarded:        p.XPAwarded,
		AnalyzedAt:       p.AnalyzedAt,
		CreatedAt:        p.CreatedAt,
	}
}

func FromProjects(items []repository.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromProject(p))
	}
	return out
}

type UserAnalysisResponse struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"user_id"`
	LinkedinURL     *string         `json:"linkedin_url"`
	GithubID        *string         `json:"github_id"`
	ResumeScore     *float64        `json:"resume_score"`
	CodingStats     json.RawMessage `json:"coding_stats"`
	Feedback        *string         `json:"feedback"`
	Recommendations json.RawMessage `json:"recommendations"`
	Progress        json.RawMessage `json:"progress"`
	Verified        bool            `json:"verified"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func FromUserAnalysis(a repository.UserAnalysis) UserAnalysisResponse {
	return UserAnalysisResponse{
		ID:              a.ID,
		UserID:          a.UserID,
		LinkedinURL:     a.LinkedinURL,
		GithubID:        a.GithubID,
		ResumeScore:     a.ResumeScore,
		CodingStats:     a.CodingStats,
		Feedback:        a.Feedback,
		Recommendations: a.Recommendations,
		Progress:        a.Progress,
		Verified:        a.Verified,
		UpdatedAt:       a.UpdatedAt,
	}
}
