package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type XPAwardedEvent struct {
	Type      string    `json:"type"`
	UserID    uuid.UUID `json:"user_id"`
	Amount    int       `json:"amount"`
	Source    string    `json:"source"`
	Timestamp string    `json:"timestamp"`
}

type CredentialMintedEvent struct {
	Type      string    `json:"type"`
	UserID    uuid.UUID `json:"user_id"`
	TokenID   string    `json:"token_id"`
	SkillName string    `json:"skill_name"`
	Timestamp string    `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyXPAwarded broadcasts an XP award. A missing hub makes this a no-op,
// so usecases can call it unconditionally.
func NotifyXPAwarded(userID uuid.UUID, amount int, source string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := XPAwardedEvent{
		Type:      "xp_awarded",
		UserID:    userID,
		Amount:    amount,
		Source:    source,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}

func NotifyCredentialMinted(userID uuid.UUID, tokenID, skillName string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := CredentialMintedEvent{
		Type:      "nft_minted",
		UserID:    userID,
		TokenID:   tokenID,
		SkillName: skillName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
