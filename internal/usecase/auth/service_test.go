package auth

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"skillchain/internal/domain/user"
	"skillchain/internal/repository"
)

type mockUserRepo struct {
	byID      map[uuid.UUID]user.User
	byEmail   map[string]user.User
	createErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{byID: map[uuid.UUID]user.User{}, byEmail: map[string]user.User{}}
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

type mockProfileRepo struct {
	created   []repository.Profile
	createErr error
}

func (m *mockProfileRepo) Create(_ context.Context, p repository.Profile) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, p)
	return nil
}

func (m *mockProfileRepo) GetByID(context.Context, uuid.UUID) (repository.Profile, error) {
	return repository.Profile{}, nil
}

func (m *mockProfileRepo) Update(context.Context, uuid.UUID, repository.ProfileUpdate) (repository.Profile, error) {
	return repository.Profile{}, nil
}

func (m *mockProfileRepo) IncrementTotalXP(context.Context, uuid.UUID, int) error { return nil }

func (m *mockProfileRepo) ListTopByXP(context.Context, int) ([]repository.LeaderboardRow, error) {
	return nil, nil
}

func testLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func TestRegister_CreatesUserAndBootstrapsProfile(t *testing.T) {
	users := newMockUserRepo()
	profiles := &mockProfileRepo{}
	svc := NewService(users, profiles, testLogger())

	got, err := svc.Register(context.Background(), RegisterInput{
		Email:    "  Dana@Example.COM ",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Email != "dana@example.com" {
		t.Fatalf("email not normalized: %q", got.Email)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("correct horse")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	if len(profiles.created) != 1 {
		t.Fatalf("expected profile bootstrap")
	}
	p := profiles.created[0]
	if p.ID != got.ID {
		t.Fatalf("profile id should equal user id")
	}
	if p.Username == nil || *p.Username != "dana" {
		t.Fatalf("username = %v, want dana", p.Username)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := newMockUserRepo()
	svc := NewService(users, &mockProfileRepo{}, testLogger())

	if _, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.co", Password: "password1"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.co", Password: "password2"})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestRegister_RacingDuplicateInsert(t *testing.T) {
	users := newMockUserRepo()
	users.createErr = user.ErrEmailTaken
	svc := NewService(users, &mockProfileRepo{}, testLogger())

	_, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.co", Password: "password1"})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestRegister_ShortPassword(t *testing.T) {
	svc := NewService(newMockUserRepo(), &mockProfileRepo{}, testLogger())
	_, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.co", Password: "short"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRegister_ProfileBootstrapFailureIsNotFatal(t *testing.T) {
	svc := NewService(newMockUserRepo(), &mockProfileRepo{createErr: errors.New("insert failed")}, testLogger())
	_, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.co", Password: "password1"})
	if err != nil {
		t.Fatalf("profile bootstrap failure should not fail registration: %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	users := newMockUserRepo()
	svc := NewService(users, &mockProfileRepo{}, testLogger())

	if _, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.co", Password: "password1"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := svc.Login(context.Background(), LoginInput{Email: "a@b.co", Password: "password2"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewService(newMockUserRepo(), &mockProfileRepo{}, testLogger())
	_, err := svc.Login(context.Background(), LoginInput{Email: "ghost@b.co", Password: "password1"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	users := newMockUserRepo()
	svc := NewService(users, &mockProfileRepo{}, testLogger())

	registered, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.co", Password: "password1"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	got, err := svc.Login(context.Background(), LoginInput{Email: "A@B.CO", Password: "password1"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID != registered.ID {
		t.Fatalf("logged-in user mismatch")
	}
}
