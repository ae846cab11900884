package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/eduface/eduface/internal/app/models"
	"github.com/eduface/eduface/internal/app/models/dto"
	"github.com/eduface/eduface/internal/app/repositories"
	"github.com/eduface/eduface/internal/pkg/apperrors"
	"github.com/eduface/eduface/internal/pkg/auth"
)

// AuthService handles registration, login and token issuance
type AuthService struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	userRepo repositories.IUserRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new user account. The plaintext password never reaches
// storage; only the bcrypt hash is persisted.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	role := models.RoleType(req.Role)
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role must be one of admin, faculty, security")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", id).Str("role", req.Role).Msg("User registered")

	return &dto.RegisterResponse{
		ID:      id,
		Message: "User created",
	}, nil
}

// Login verifies credentials and issues a signed token. The failure is
// deliberately undifferentiated; "no such user" and "wrong password" both
// surface as invalid credentials so account enumeration stays impossible.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateToken(user.ID, string(user.Role), user.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User logged in")

	return &dto.LoginResponse{
		Token:    token,
		Role:     string(user.Role),
		UserID:   user.ID,
		UserName: user.Name,
	}, nil
}
