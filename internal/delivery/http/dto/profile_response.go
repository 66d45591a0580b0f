package dto

import (
	"time"

	"github.com/google/uuid"

	"skillchain/internal/repository"
)

type ProfileResponse struct {
	ID              uuid.UUID `json:"id"`
	Username        *string   `json:"username"`
	FullName        *string   `json:"full_name"`
	Bio             *string   `json:"bio"`
	AvatarURL       *string   `json:"avatar_url"`
	GithubUsername  *string   `json:"github_username"`
	TotalXP         int       `json:"total_xp"`
	ReputationScore int       `json:"reputation_score"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromProfile(p repository.Profile) ProfileResponse {
	return ProfileResponse{
		ID:              p.ID,
		Username:        p.Username,
		FullName:        p.FullName,
		Bio:             p.Bio,
		AvatarURL:       p.AvatarURL,
		GithubUsername:  p.GithubUsername,
		TotalXP:         p.TotalXP,
		ReputationScore: p.ReputationScore,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
