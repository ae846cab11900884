package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/eduface/eduface/internal/app/models"
	"github.com/eduface/eduface/internal/app/models/dto"
	"github.com/eduface/eduface/internal/pkg/apperrors"
	"github.com/eduface/eduface/internal/pkg/auth"
)

type fakeUserRepo struct {
	users     map[string]*models.User
	nextID    int64
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) (int64, error) {
	if r.createErr != nil {
		return 0, r.createErr
	}
	if _, ok := r.users[user.Email]; ok {
		return 0, apperrors.ErrEmailAlreadyExists
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.Email] = user
	return user.ID, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return r.users[email], nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

func newTestAuthService(repo *fakeUserRepo) *AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "eduface.test",
	})
	return NewAuthService(repo, jwtService, zerolog.Nop())
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Someone",
		Email:    "someone@example.com",
		Password: "secret1",
		Role:     "student",
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Guard One",
		Email:    "guard@example.com",
		Password: "secret1",
		Role:     "security",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.ID == 0 {
		t.Error("expected assigned id")
	}

	stored := repo.users["guard@example.com"]
	if stored == nil {
		t.Fatal("user not stored")
	}
	if stored.PasswordHash == "secret1" {
		t.Error("password stored as plaintext")
	}
	if !auth.CheckPassword(stored.PasswordHash, "secret1") {
		t.Error("stored hash does not verify")
	}
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Fac One",
		Email:    "fac@example.com",
		Password: "secret1",
		Role:     "faculty",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "fac@example.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected token")
	}
	if resp.Role != "faculty" {
		t.Errorf("Role = %q, want faculty", resp.Role)
	}
	if resp.UserName != "Fac One" {
		t.Errorf("UserName = %q, want Fac One", resp.UserName)
	}
	if resp.UserID == 0 {
		t.Error("expected user id")
	}
}

func TestLoginFailuresAreUndifferentiated(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Fac One",
		Email:    "fac@example.com",
		Password: "secret1",
		Role:     "faculty",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, unknownErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret1",
	})
	_, wrongPassErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "fac@example.com",
		Password: "wrong",
	})

	if !errors.Is(unknownErr, apperrors.ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v, want ErrInvalidCredentials", unknownErr)
	}
	if !errors.Is(wrongPassErr, apperrors.ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", wrongPassErr)
	}
}
