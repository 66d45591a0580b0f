package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"skillchain/internal/pkg/mint"
	"skillchain/internal/repository"
	"skillchain/internal/ws"
)

const (
	mintBaseXP     = 500
	mintXPPerLevel = 50

	leaderboardKeyPattern = "leaderboard:top:*"
)

type MintInput struct {
	SkillID       *uuid.UUID
	SkillName     string
	SkillCategory string
	// Level is expected in 1-10 but deliberately not range-checked; the
	// XP formula applies to whatever arrives.
	Level   int
	AIScore float64
}

type MintResult struct {
	Credential     repository.Credential
	XPAwarded      int
	PolygonScanURL string
}

type MintUsecase interface {
	Mint(ctx context.Context, userID uuid.UUID, in MintInput) (MintResult, error)
	ListCredentials(ctx context.Context, userID uuid.UUID) ([]repository.Credential, error)
}

type LeaderboardInvalidator interface {
	DeleteByPattern(ctx context.Context, pattern string) error
}

type Mint struct {
	credentials repository.CredentialRepository
	xp          repository.XPRepository
	profiles    repository.ProfileRepository
	cache       LeaderboardInvalidator
	logger      *log.Logger
}

func NewMintUsecase(credentials repository.CredentialRepository, xp repository.XPRepository, profiles repository.ProfileRepository, cache LeaderboardInvalidator, logger *log.Logger) *Mint {
	return &Mint{credentials: credentials, xp: xp, profiles: profiles, cache: cache, logger: logger}
}

type credentialMetadata struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Image       string              `json:"image"`
	Attributes  []metadataAttribute `json:"attributes"`
	ExternalURL string              `json:"external_url"`
	VerifiedAt  string              `json:"verified_at"`
}

type metadataAttribute struct {
	TraitType string `json:"trait_type"`
	Value     any    `json:"value"`
}

// Mint fabricates a credential and records it. Only the credential insert can
// fail the request: the XP ledger row and the profile total increment are
// fire-and-forget, so the caller can see success while either of those
// silently failed. That inconsistency window is a known product decision.
func (u *Mint) Mint(ctx context.Context, userID uuid.UUID, in MintInput) (MintResult, error) {
	if in.SkillName == "" || in.SkillCategory == "" {
		return MintResult{}, ErrInvalidInput
	}

	tokenID := mint.NewTokenID()
	txHash := mint.NewTxHash()
	scanURL := mint.ExplorerURL(txHash)
	now := time.Now().UTC()

	metadata, err := json.Marshal(credentialMetadata{
		Name:        in.SkillName + " Credential",
		Description: fmt.Sprintf("Verified %s skill credential earned on SkillChain", in.SkillCategory),
		Image:       "https://api.dicebear.com/7.x/shapes/svg?seed=" + tokenID,
		Attributes: []metadataAttribute{
			{TraitType: "Skill", Value: in.SkillName},
			{TraitType: "Category", Value: in.SkillCategory},
			{TraitType: "Level", Value: in.Level},
			{TraitType: "AI Score", Value: fmt.Sprintf("%.1f", in.AIScore*100)},
			{TraitType: "Verified By", Value: "SkillChain AI"},
			{TraitType: "Network", Value: "Polygon"},
		},
		ExternalURL: "https://skillchain.app/nft/" + tokenID,
		VerifiedAt:  now.Format(time.RFC3339),
	})
	if err != nil {
		return MintResult{}, err
	}

	level := in.Level
	saved, err := u.credentials.Create(ctx, repository.Credential{
		ID:               uuid.New(),
		UserID:           userID,
		TokenID:          &tokenID,
		CredentialType:   in.SkillCategory,
		SkillID:          in.SkillID,
		Metadata:         metadata,
		Level:            &level,
		BlockchainTxHash: &txHash,
		PolygonScanURL:   &scanURL,
		MintedAt:         &now,
	})
	if err != nil {
		return MintResult{}, err
	}

	xpAwarded := mintBaseXP + in.Level*mintXPPerLevel

	desc := fmt.Sprintf("Minted %s NFT credential", in.SkillName)
	xpMeta, _ := json.Marshal(map[string]any{"nft_id": saved.ID, "token_id": tokenID})
	if err := u.xp.Create(ctx, repository.XPTransaction{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      xpAwarded,
		Source:      "nft_mint",
		Description: &desc,
		Metadata:    xpMeta,
	}); err != nil && u.logger != nil {
		u.logger.Printf("[Mint] xp ledger insert failed | user_id=%s error=%v", userID, err)
	}

	if err := u.profiles.IncrementTotalXP(ctx, userID, xpAwarded); err != nil && u.logger != nil {
		u.logger.Printf("[Mint] profile xp increment failed | user_id=%s error=%v", userID, err)
	}

	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, leaderboardKeyPattern); err != nil && u.logger != nil {
			u.logger.Printf("[Mint] leaderboard cache invalidation failed | error=%v", err)
		}
	}

	ws.NotifyXPAwarded(userID, xpAwarded, "nft_mint")
	ws.NotifyCredentialMinted(userID, tokenID, in.SkillName)

	return MintResult{Credential: saved, XPAwarded: xpAwarded, PolygonScanURL: scanURL}, nil
}

func (u *Mint) ListCredentials(ctx context.Context, userID uuid.UUID) ([]repository.Credential, error) {
	items, err := u.credentials.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}
