package usecase

import (
	"context"

	"github.com/google/uuid"

	"skillchain/internal/repository"
)

const defaultXPListLimit = 50

type XPUsecase interface {
	ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]repository.XPTransaction, error)
}

type XPService struct {
	xp repository.XPRepository
}

func NewXPUsecase(xp repository.XPRepository) *XPService {
	return &XPService{xp: xp}
}

func (u *XPService) ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]repository.XPTransaction, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultXPListLimit
	}
	items, err := u.xp.FindByUserID(ctx, userID, limit)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}
