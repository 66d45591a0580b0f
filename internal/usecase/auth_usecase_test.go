package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"skillchain/internal/domain/user"
	"skillchain/internal/pkg/jwt"
	ucauth "skillchain/internal/usecase/auth"
)

type mockUserRepo struct {
	users map[uuid.UUID]user.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[uuid.UUID]user.User{}}
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(context.Background(), email)
	return err == nil, nil
}

func newAuthFixture(t *testing.T) (*Auth, *mockUserRepo, jwt.Service) {
	t.Helper()
	users := newMockUserRepo()
	jwtSvc := jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 168*time.Hour)
	authSvc := ucauth.NewService(users, &mockProfileRepo{}, discardLogger())
	return NewAuthUsecase(authSvc, users, jwtSvc), users, jwtSvc
}

func TestRefresh_IssuesNewPair(t *testing.T) {
	uc, users, jwtSvc := newAuthFixture(t)

	u := user.User{ID: uuid.New(), Email: "dana@example.com"}
	if err := users.Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	refresh, err := jwtSvc.GenerateRefreshToken(u.ID)
	if err != nil {
		t.Fatalf("generate refresh: %v", err)
	}

	access, newRefresh, err := uc.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	claims, err := jwtSvc.ValidateToken(access)
	if err != nil {
		t.Fatalf("new access token invalid: %v", err)
	}
	if claims.UserID != u.ID || claims.Email != u.Email {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if newRefresh == "" {
		t.Fatalf("expected rotated refresh token")
	}
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	uc, users, jwtSvc := newAuthFixture(t)

	u := user.User{ID: uuid.New(), Email: "dana@example.com"}
	if err := users.Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	access, err := jwtSvc.GenerateAccessToken(u.ID, u.Email)
	if err != nil {
		t.Fatalf("generate access: %v", err)
	}

	_, _, err = uc.Refresh(context.Background(), access)
	if !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestRefresh_EmptyToken(t *testing.T) {
	uc, _, _ := newAuthFixture(t)
	_, _, err := uc.Refresh(context.Background(), "")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestRefresh_GarbageToken(t *testing.T) {
	uc, _, _ := newAuthFixture(t)
	_, _, err := uc.Refresh(context.Background(), "not.a.jwt")
	if !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}
