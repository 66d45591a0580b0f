package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/google/uuid"

	"skillchain/internal/repository"
)

type mockCredentialRepo struct {
	created []repository.Credential
	err     error
}

func (m *mockCredentialRepo) Create(_ context.Context, c repository.Credential) (repository.Credential, error) {
	if m.err != nil {
		return repository.Credential{}, m.err
	}
	m.created = append(m.created, c)
	return c, nil
}

func (m *mockCredentialRepo) FindByUserID(context.Context, uuid.UUID) ([]repository.Credential, error) {
	return m.created, m.err
}

type mockProfileRepo struct {
	profile    repository.Profile
	increments map[uuid.UUID]int
	rows       []repository.LeaderboardRow
	listCalls  int
	getErr     error
	incrErr    error
	listErr    error
}

func (m *mockProfileRepo) Create(context.Context, repository.Profile) error { return nil }

func (m *mockProfileRepo) GetByID(context.Context, uuid.UUID) (repository.Profile, error) {
	return m.profile, m.getErr
}

func (m *mockProfileRepo) Update(context.Context, uuid.UUID, repository.ProfileUpdate) (repository.Profile, error) {
	return m.profile, m.getErr
}

func (m *mockProfileRepo) IncrementTotalXP(_ context.Context, id uuid.UUID, amount int) error {
	if m.incrErr != nil {
		return m.incrErr
	}
	if m.increments == nil {
		m.increments = map[uuid.UUID]int{}
	}
	m.increments[id] += amount
	return nil
}

func (m *mockProfileRepo) ListTopByXP(context.Context, int) ([]repository.LeaderboardRow, error) {
	m.listCalls++
	return m.rows, m.listErr
}

type mockInvalidator struct {
	patterns []string
	err      error
}

func (m *mockInvalidator) DeleteByPattern(_ context.Context, pattern string) error {
	m.patterns = append(m.patterns, pattern)
	return m.err
}

var txHashPattern = regexp.MustCompile(`^0x[0-9a-f]{64}$`)

func TestMint_AwardsLevelScaledXP(t *testing.T) {
	for _, tc := range []struct {
		level int
		want  int
	}{
		{1, 550},
		{5, 750},
		{10, 1000},
	} {
		creds := &mockCredentialRepo{}
		profiles := &mockProfileRepo{}
		ledger := &mockXPRepo{}
		uc := NewMintUsecase(creds, ledger, profiles, nil, discardLogger())

		userID := uuid.New()
		res, err := uc.Mint(context.Background(), userID, MintInput{
			SkillName:     "Solidity",
			SkillCategory: "Blockchain",
			Level:         tc.level,
			AIScore:       0.87,
		})
		if err != nil {
			t.Fatalf("level %d: unexpected err: %v", tc.level, err)
		}
		if res.XPAwarded != tc.want {
			t.Fatalf("level %d: xp = %d, want %d", tc.level, res.XPAwarded, tc.want)
		}
		if ledger.created[0].Amount != tc.want || ledger.created[0].Source != "nft_mint" {
			t.Fatalf("level %d: bad ledger row %+v", tc.level, ledger.created[0])
		}
		if profiles.increments[userID] != tc.want {
			t.Fatalf("level %d: profile increment = %d", tc.level, profiles.increments[userID])
		}
	}
}

func TestMint_CredentialShape(t *testing.T) {
	creds := &mockCredentialRepo{}
	uc := NewMintUsecase(creds, &mockXPRepo{}, &mockProfileRepo{}, nil, discardLogger())

	res, err := uc.Mint(context.Background(), uuid.New(), MintInput{
		SkillName:     "Go",
		SkillCategory: "Backend",
		Level:         3,
		AIScore:       0.91,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	c := res.Credential
	if c.TokenID == nil || !strings.HasPrefix(*c.TokenID, "SKILL-") {
		t.Fatalf("bad token id: %v", c.TokenID)
	}
	if c.BlockchainTxHash == nil || !txHashPattern.MatchString(*c.BlockchainTxHash) {
		t.Fatalf("bad tx hash: %v", c.BlockchainTxHash)
	}
	if !strings.HasPrefix(res.PolygonScanURL, "https://polygonscan.com/tx/0x") {
		t.Fatalf("bad explorer url: %s", res.PolygonScanURL)
	}

	var meta struct {
		Name       string `json:"name"`
		Attributes []struct {
			TraitType string `json:"trait_type"`
			Value     any    `json:"value"`
		} `json:"attributes"`
	}
	if err := json.Unmarshal(c.Metadata, &meta); err != nil {
		t.Fatalf("metadata not json: %v", err)
	}
	if meta.Name != "Go Credential" {
		t.Fatalf("metadata name = %q", meta.Name)
	}
	byTrait := map[string]any{}
	for _, a := range meta.Attributes {
		byTrait[a.TraitType] = a.Value
	}
	if byTrait["AI Score"] != "91.0" {
		t.Fatalf("ai score attribute = %v", byTrait["AI Score"])
	}
	if byTrait["Network"] != "Polygon" {
		t.Fatalf("network attribute = %v", byTrait["Network"])
	}
}

func TestMint_MissingSkillName(t *testing.T) {
	uc := NewMintUsecase(&mockCredentialRepo{}, &mockXPRepo{}, &mockProfileRepo{}, nil, discardLogger())
	_, err := uc.Mint(context.Background(), uuid.New(), MintInput{SkillCategory: "Backend"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMint_CredentialInsertFailureAborts(t *testing.T) {
	ledger := &mockXPRepo{}
	profiles := &mockProfileRepo{}
	uc := NewMintUsecase(&mockCredentialRepo{err: errors.New("insert failed")}, ledger, profiles, nil, discardLogger())

	_, err := uc.Mint(context.Background(), uuid.New(), MintInput{
		SkillName:     "Rust",
		SkillCategory: "Systems",
		Level:         2,
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if len(ledger.created) != 0 || len(profiles.increments) != 0 {
		t.Fatalf("no XP side effects expected when the credential insert fails")
	}
}

func TestMint_LedgerFailureDoesNotFailRequest(t *testing.T) {
	creds := &mockCredentialRepo{}
	ledger := &mockXPRepo{err: errors.New("insert failed")}
	profiles := &mockProfileRepo{incrErr: errors.New("update failed")}
	uc := NewMintUsecase(creds, ledger, profiles, nil, discardLogger())

	res, err := uc.Mint(context.Background(), uuid.New(), MintInput{
		SkillName:     "Python",
		SkillCategory: "Data",
		Level:         4,
	})
	if err != nil {
		t.Fatalf("mint should succeed despite ledger faults, got %v", err)
	}
	if len(creds.created) != 1 || res.XPAwarded != 700 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestMint_InvalidatesLeaderboardCache(t *testing.T) {
	inv := &mockInvalidator{}
	uc := NewMintUsecase(&mockCredentialRepo{}, &mockXPRepo{}, &mockProfileRepo{}, inv, discardLogger())

	_, err := uc.Mint(context.Background(), uuid.New(), MintInput{
		SkillName:     "SQL",
		SkillCategory: "Data",
		Level:         1,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(inv.patterns) != 1 || inv.patterns[0] != "leaderboard:top:*" {
		t.Fatalf("unexpected invalidation: %v", inv.patterns)
	}
}
