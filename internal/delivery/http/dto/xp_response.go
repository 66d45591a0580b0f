package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"skillchain/internal/repository"
)

type XPTransactionResponse struct {
	ID          uuid.UUID       `json:"id"`
	Amount      int             `json:"amount"`
	Source      string          `json:"source"`
	Description *string         `json:"description"`
	Metadata    json.RawMessage `json:"metadata"`
	CreatedAt   time.Time       `json:"created_at"`
}

func FromXPTransaction(tx repository.XPTransaction) XPTransactionResponse {
	return XPTransactionResponse{
		ID:          tx.ID,
		Amount:      tx.Amount,
		Source:      tx.Source,
		Description: tx.Description,
		Metadata:    tx.Metadata,
		CreatedAt:   tx.CreatedAt,
	}
}

func FromXPTransactions(items []repository.XPTransaction) []XPTransactionResponse {
	out := make([]XPTransactionResponse, 0, len(items))
	for _, tx := range items {
		out = append(out, FromXPTransaction(tx))
	}
	return out
}
