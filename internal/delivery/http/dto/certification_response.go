package dto

import (
	"time"

	"github.com/google/uuid"

	"skillchain/internal/repository"
)

type CertificationResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Issuer           *string   `json:"issuer"`
	IssueDate        *string   `json:"issue_date"`
	VerificationHash *string   `json:"verification_hash"`
	Verified         bool      `json:"verified"`
	FileURL          *string   `json:"file_url"`
	CreatedAt        time.Time `json:"created_at"`
}

func FromCertification(c repository.Certification) CertificationResponse {
	return CertificationResponse{
		ID:               c.ID,
		Name:             c.Name,
		Issuer:           c.Issuer,
		IssueDate:        c.IssueDate,
		VerificationHash: c.VerificationHash,
		Verified:         c.Verified,
		FileURL:          c.FileURL,
		CreatedAt:        c.CreatedAt,
	}
}

func FromCertifications(items []repository.Certification) []CertificationResponse {
	out := make([]CertificationResponse, 0, len(items))
	for _, c := range items {
		out = append(out, FromCertification(c))
	}
	return out
}
