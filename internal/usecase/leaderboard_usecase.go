package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"skillchain/internal/repository"
)

const (
	defaultLeaderboardLimit = 25
	maxLeaderboardLimit     = 100
	leaderboardCacheTTL     = 30 * time.Second
)

type LeaderboardEntry struct {
	Rank     int       `json:"rank"`
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	FullName string    `json:"full_name"`
	TotalXP  int       `json:"total_xp"`
}

type LeaderboardCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type LeaderboardUsecase interface {
	Top(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}

type Leaderboard struct {
	profiles repository.ProfileRepository
	cache    LeaderboardCache
	logger   *log.Logger
}

func NewLeaderboardUsecase(profiles repository.ProfileRepository, cache LeaderboardCache, logger *log.Logger) *Leaderboard {
	return &Leaderboard{profiles: profiles, cache: cache, logger: logger}
}

// Top ranks profiles by accumulated XP. Results are cached briefly; a broken
// cache only costs the extra query.
func (u *Leaderboard) Top(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	key := fmt.Sprintf("leaderboard:top:%d", limit)

	if u.cache != nil {
		var cached []LeaderboardEntry
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			return cached, nil
		}
	}

	rows, err := u.profiles.ListTopByXP(ctx, limit)
	if err != nil {
		return nil, ErrInternal
	}

	entries := make([]LeaderboardEntry, 0, len(rows))
	for i, r := range rows {
		e := LeaderboardEntry{Rank: i + 1, UserID: r.ID, TotalXP: r.TotalXP}
		if r.Username != nil {
			e.Username = *r.Username
		}
		if r.FullName != nil {
			e.FullName = *r.FullName
		}
		entries = append(entries, e)
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, entries, leaderboardCacheTTL); err != nil && u.logger != nil {
			u.logger.Printf("[Leaderboard] cache set failed | error=%v", err)
		}
	}

	return entries, nil
}
