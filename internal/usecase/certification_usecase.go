package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"

	"skillchain/internal/repository"
)

type VerifyCertificationInput struct {
	Name      string
	Issuer    string
	IssueDate string
	FileURL   string
}

type CertificationUsecase interface {
	VerifyCertification(ctx context.Context, userID uuid.UUID, in VerifyCertificationInput) (repository.Certification, error)
	ListCertifications(ctx context.Context, userID uuid.UUID) ([]repository.Certification, error)
}

type Certification struct {
	certifications repository.CertificationRepository
}

func NewCertificationUsecase(certifications repository.CertificationRepository) *Certification {
	return &Certification{certifications: certifications}
}

// VerifyCertification computes a deterministic verification token and stores
// the record as verified. No external service is involved.
func (u *Certification) VerifyCertification(ctx context.Context, userID uuid.UUID, in VerifyCertificationInput) (repository.Certification, error) {
	if strings.TrimSpace(in.Name) == "" {
		return repository.Certification{}, ErrInvalidInput
	}

	hash := verificationHash(in.Name, in.Issuer, in.IssueDate, userID)

	var issuer, issueDate, fileURL *string
	if s := strings.TrimSpace(in.Issuer); s != "" {
		issuer = &s
	}
	if s := strings.TrimSpace(in.IssueDate); s != "" {
		issueDate = &s
	}
	if s := strings.TrimSpace(in.FileURL); s != "" {
		fileURL = &s
	}

	saved, err := u.certifications.Create(ctx, repository.Certification{
		ID:               uuid.New(),
		UserID:           userID,
		Name:             in.Name,
		Issuer:           issuer,
		IssueDate:        issueDate,
		VerificationHash: &hash,
		Verified:         true,
		FileURL:          fileURL,
	})
	if err != nil {
		return repository.Certification{}, err
	}
	return saved, nil
}

func (u *Certification) ListCertifications(ctx context.Context, userID uuid.UUID) ([]repository.Certification, error) {
	items, err := u.certifications.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

// verificationHash is a pure function of its four inputs: identical inputs
// always produce the identical token.
func verificationHash(name, issuer, issueDate string, userID uuid.UUID) string {
	sum := sha256.Sum256([]byte(name + issuer + issueDate + userID.String()))
	return hex.EncodeToString(sum[:])
}
