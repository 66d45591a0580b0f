package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"skillchain/internal/repository"
)

var (
	ErrSkillNotFound   = errors.New("skill not found")
	ErrSelfEndorsement = errors.New("cannot endorse own skill")
)

type AddSkillInput struct {
	SkillName        string
	SkillCategory    string
	ProficiencyLevel int
}

type EndorseSkillInput struct {
	Message string
}

type SkillUsecase interface {
	ListSkills(ctx context.Context, userID uuid.UUID) ([]repository.Skill, error)
	AddSkill(ctx context.Context, userID uuid.UUID, in AddSkillInput) (repository.Skill, error)
	EndorseSkill(ctx context.Context, endorserID, skillID uuid.UUID, in EndorseSkillInput) (repository.SkillEndorsement, error)
}

type SkillService struct {
	skills repository.SkillRepository
}

func NewSkillUsecase(skills repository.SkillRepository) *SkillService {
	return &SkillService{skills: skills}
}

func (u *SkillService) ListSkills(ctx context.Context, userID uuid.UUID) ([]repository.Skill, error) {
	items, err := u.skills.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *SkillService) AddSkill(ctx context.Context, userID uuid.UUID, in AddSkillInput) (repository.Skill, error) {
	name := strings.TrimSpace(in.SkillName)
	category := strings.TrimSpace(in.SkillCategory)
	if name == "" || category == "" {
		return repository.Skill{}, ErrInvalidInput
	}
	if !isValidProficiency(in.ProficiencyLevel) {
		return repository.Skill{}, ErrInvalidInput
	}

	level := in.ProficiencyLevel
	created, err := u.skills.Create(ctx, repository.Skill{
		ID:               uuid.New(),
		UserID:           userID,
		SkillName:        name,
		SkillCategory:    category,
		ProficiencyLevel: &level,
	})
	if err != nil {
		return repository.Skill{}, ErrInternal
	}
	return created, nil
}

func (u *SkillService) EndorseSkill(ctx context.Context, endorserID, skillID uuid.UUID, in EndorseSkillInput) (repository.SkillEndorsement, error) {
	skill, err := u.skills.GetByID(ctx, skillID)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return repository.SkillEndorsement{}, ErrSkillNotFound
		}
		return repository.SkillEndorsement{}, ErrInternal
	}

	if skill.UserID == endorserID {
		return repository.SkillEndorsement{}, ErrSelfEndorsement
	}

	var message *string
	if m := strings.TrimSpace(in.Message); m != "" {
		message = &m
	}

	created, err := u.skills.CreateEndorsement(ctx, repository.SkillEndorsement{
		ID:                 uuid.New(),
		SkillID:            skillID,
		EndorserID:         endorserID,
		EndorsementMessage: message,
	})
	if err != nil {
		return repository.SkillEndorsement{}, ErrInternal
	}
	return created, nil
}

func isValidProficiency(level int) bool {
	return level >= 1 && level <= 10
}
