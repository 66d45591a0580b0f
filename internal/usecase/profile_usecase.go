package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"skillchain/internal/repository"
)

var ErrProfileNotFound = errors.New("profile not found")

type UpdateProfileInput struct {
	Username       *string
	FullName       *string
	Bio            *string
	AvatarURL      *string
	GithubUsername *string
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (repository.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (repository.Profile, error)
}

type ProfileService struct {
	profiles repository.ProfileRepository
}

func NewProfileUsecase(profiles repository.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

func (u *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (repository.Profile, error) {
	p, err := u.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return repository.Profile{}, ErrProfileNotFound
		}
		return repository.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (repository.Profile, error) {
	p, err := u.profiles.Update(ctx, userID, repository.ProfileUpdate{
		Username:       in.Username,
		FullName:       in.FullName,
		Bio:            in.Bio,
		AvatarURL:      in.AvatarURL,
		GithubUsername: in.GithubUsername,
	})
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return repository.Profile{}, ErrProfileNotFound
		}
		return repository.Profile{}, ErrInternal
	}
	return p, nil
}
