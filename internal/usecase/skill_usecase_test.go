package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"skillchain/internal/repository"
)

type mockSkillRepo struct {
	skills       map[uuid.UUID]repository.Skill
	endorsements []repository.SkillEndorsement
	err          error
}

func newMockSkillRepo() *mockSkillRepo {
	return &mockSkillRepo{skills: map[uuid.UUID]repository.Skill{}}
}

func (m *mockSkillRepo) Create(_ context.Context, s repository.Skill) (repository.Skill, error) {
	if m.err != nil {
		return repository.Skill{}, m.err
	}
	m.skills[s.ID] = s
	return s, nil
}

func (m *mockSkillRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Skill, error) {
	if m.err != nil {
		return repository.Skill{}, m.err
	}
	s, ok := m.skills[id]
	if !ok {
		return repository.Skill{}, repository.ErrSkillNotFound
	}
	return s, nil
}

func (m *mockSkillRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]repository.Skill, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []repository.Skill
	for _, s := range m.skills {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSkillRepo) CreateEndorsement(_ context.Context, e repository.SkillEndorsement) (repository.SkillEndorsement, error) {
	if m.err != nil {
		return repository.SkillEndorsement{}, m.err
	}
	m.endorsements = append(m.endorsements, e)
	return e, nil
}

func TestAddSkill_Valid(t *testing.T) {
	repo := newMockSkillRepo()
	uc := NewSkillUsecase(repo)

	userID := uuid.New()
	got, err := uc.AddSkill(context.Background(), userID, AddSkillInput{
		SkillName:        "  Go  ",
		SkillCategory:    "Backend",
		ProficiencyLevel: 7,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.SkillName != "Go" {
		t.Fatalf("name should be trimmed, got %q", got.SkillName)
	}
	if got.ProficiencyLevel == nil || *got.ProficiencyLevel != 7 {
		t.Fatalf("proficiency = %v", got.ProficiencyLevel)
	}
	if len(repo.skills) != 1 {
		t.Fatalf("skill not stored")
	}
}

func TestAddSkill_ProficiencyBounds(t *testing.T) {
	uc := NewSkillUsecase(newMockSkillRepo())
	for _, level := range []int{0, -1, 11} {
		_, err := uc.AddSkill(context.Background(), uuid.New(), AddSkillInput{
			SkillName:        "Go",
			SkillCategory:    "Backend",
			ProficiencyLevel: level,
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("level %d: expected ErrInvalidInput, got %v", level, err)
		}
	}
}

func TestEndorseSkill_RejectsSelfEndorsement(t *testing.T) {
	repo := newMockSkillRepo()
	uc := NewSkillUsecase(repo)

	ownerID := uuid.New()
	skill, err := uc.AddSkill(context.Background(), ownerID, AddSkillInput{
		SkillName:        "Rust",
		SkillCategory:    "Systems",
		ProficiencyLevel: 5,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, err = uc.EndorseSkill(context.Background(), ownerID, skill.ID, EndorseSkillInput{Message: "great"})
	if !errors.Is(err, ErrSelfEndorsement) {
		t.Fatalf("expected ErrSelfEndorsement, got %v", err)
	}
	if len(repo.endorsements) != 0 {
		t.Fatalf("self endorsement must not persist")
	}
}

func TestEndorseSkill_Valid(t *testing.T) {
	repo := newMockSkillRepo()
	uc := NewSkillUsecase(repo)

	skill, err := uc.AddSkill(context.Background(), uuid.New(), AddSkillInput{
		SkillName:        "SQL",
		SkillCategory:    "Data",
		ProficiencyLevel: 6,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	endorserID := uuid.New()
	e, err := uc.EndorseSkill(context.Background(), endorserID, skill.ID, EndorseSkillInput{Message: "solid"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if e.EndorserID != endorserID || e.SkillID != skill.ID {
		t.Fatalf("unexpected endorsement: %+v", e)
	}
}

func TestEndorseSkill_UnknownSkill(t *testing.T) {
	uc := NewSkillUsecase(newMockSkillRepo())
	_, err := uc.EndorseSkill(context.Background(), uuid.New(), uuid.New(), EndorseSkillInput{})
	if !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}
