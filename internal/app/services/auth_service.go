package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/erenyalcin/campushare/internal/app/models"
	"github.com/erenyalcin/campushare/internal/app/models/dto"
	"github.com/erenyalcin/campushare/internal/app/repositories"
	"github.com/erenyalcin/campushare/internal/pkg/apperrors"
	"github.com/erenyalcin/campushare/internal/pkg/auth"
	"github.com/erenyalcin/campushare/internal/pkg/logger"
	"github.com/erenyalcin/campushare/internal/pkg/validation"
)

// UserStore is the user persistence surface the auth service needs.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService handles account registration and credential exchange.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	users UserStore
	jwt   *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserStore, jwt *auth.JWTService) AuthService {
	return &authServiceImpl{users: users, jwt: jwt}
}

// Register creates a regular (non-staff) account. Staff accounts are
// provisioned out of band.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if !validation.IsValidUsername(req.Username) {
		return nil, apperrors.NewValidationError("Username must be 3-30 characters (letters, digits, . _ -).")
	}
	if !validation.IsValidEmail(req.Email) {
		return nil, apperrors.NewValidationError("A valid email address is required.")
	}
	if len(req.Password) < validation.PasswordMinLength {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("Password must be at least %d characters.", validation.PasswordMinLength))
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		IsStaff:      false,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrUsernameAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	logger.Info().Str("username", user.Username).Msg("User registered")

	return &dto.UserResponse{
		UID:      user.UID.String(),
		Username: user.Username,
		Email:    user.Email,
		IsStaff:  user.IsStaff,
	}, nil
}

// Login verifies credentials and issues an access token. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.users.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwt.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
