package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"skillchain/internal/repository"
)

type CredentialResponse struct {
	ID               uuid.UUID       `json:"id"`
	TokenID          *string         `json:"token_id"`
	CredentialType   string          `json:"credential_type"`
	SkillID          *uuid.UUID      `json:"skill_id"`
	Metadata         json.RawMessage `json:"metadata"`
	Level            *int            `json:"level"`
	BlockchainTxHash *string         `json:"blockchain_tx_hash"`
	PolygonScanURL   *string         `json:"polygon_scan_url"`
	MintedAt         *time.Time      `json:"minted_at"`
}

func FromCredential(c repository.Credential) CredentialResponse {
	return CredentialResponse{
		ID:               c.ID,
		TokenID:          c.TokenID,
		CredentialType:   c.CredentialType,
		SkillID:          c.SkillID,
		Metadata:         c.Metadata,
		Level:            c.Level,
		BlockchainTxHash: c.BlockchainTxHash,
		PolygonScanURL:   c.PolygonScanURL,
		MintedAt:         c.MintedAt,
	}
}

func FromCredentials(items []repository.Credential) []CredentialResponse {
	out := make([]CredentialResponse, 0, len(items))
	for _, c := range items {
		out = append(out, FromCredential(c))
	}
	return out
}

