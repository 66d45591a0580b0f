package dto

import (
	"time"

	"github.com/google/uuid"

	"skillchain/internal/repository"
)

type SkillResponse struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"user_id"`
	SkillName        string     `json:"skill_name"`
	SkillCategory    string     `json:"skill_category"`
	ProficiencyLevel *int       `json:"proficiency_level"`
	AIScore          *float64   `json:"ai_score"`
	XPEarned         *int       `json:"xp_earned"`
	VerifiedAt       *time.Time `json:"verified_at"`
	LastUpdated      *time.Time `json:"last_updated"`
}

func FromSkill(s repository.Skill) SkillResponse {
	return SkillResponse{
		ID:               s.ID,
		UserID:           s.UserID,
		SkillName:        s.SkillName,
		SkillCategory:    s.SkillCategory,
		ProficiencyLevel: s.ProficiencyLevel,
		AIScore:          s.AIScore,
		XPEarned:         s.XPEarned,
		VerifiedAt:       s.VerifiedAt,
		LastUpdated:      s.LastUpdated,
	}
}

func FromSkills(items []repository.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromSkill(s))
	}
	return out
}

type EndorsementResponse struct {
	ID                 uuid.UUID `json:"id"`
	SkillID            uuid.UUID `json:"skill_id"`
	EndorserID         uuid.UUID `json:"endorser_id"`
	EndorsementMessage *string   `json:"endorsement_message"`
	CreatedAt          time.Time `json:"created_at"`
}

func FromEndorsement(e repository.SkillEndorsement) EndorsementResponse {
	return EndorsementResponse{
		ID:                 e.ID,
		SkillID:            e.SkillID,
		EndorserID:         e.EndorserID,
		EndorsementMessage: e.EndorsementMessage,
		CreatedAt:          e.CreatedAt,
	}
}
