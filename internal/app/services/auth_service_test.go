package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erenyalcin/campushare/internal/app/models"
	"github.com/erenyalcin/campushare/internal/app/models/dto"
	"github.com/erenyalcin/campushare/internal/app/repositories"
	"github.com/erenyalcin/campushare/internal/pkg/apperrors"
	"github.com/erenyalcin/campushare/internal/pkg/auth"
)

type fakeUserStore struct {
	users []*models.User
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	user.ID = int64(len(f.users) + 1)
	user.UID = uuid.New()
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func newAuthFixture() (AuthService, *fakeUserStore) {
	users := &fakeUserStore{}
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "campushare-test",
	})
	return NewAuthService(users, jwtService), users
}

func TestRegister_CreatesNonStaffUser(t *testing.T) {
	service, users := newAuthFixture()

	resp, err := service.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-password",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice", resp.Username)
	assert.False(t, resp.IsStaff, "registration never grants staff")
	require.Len(t, users.users, 1)
	assert.NotEqual(t, "s3cret-password", users.users[0].PasswordHash)
}

func TestRegister_Validation(t *testing.T) {
	service, _ := newAuthFixture()

	cases := map[string]dto.RegisterRequest{
		"short username": {Username: "ab", Email: "a@example.com", Password: "longenough"},
		"bad email":      {Username: "alice", Email: "not-an-email", Password: "longenough"},
		"short password": {Username: "alice", Email: "a@example.com", Password: "short"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := service.Register(context.Background(), &req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	service, _ := newAuthFixture()

	req := &dto.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "s3cret-password"}
	_, err := service.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = service.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)
}

func TestLogin_IssuesToken(t *testing.T) {
	service, _ := newAuthFixture()

	_, err := service.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-password",
	})
	require.NoError(t, err)

	token, err := service.Login(context.Background(), &dto.LoginRequest{
		Username: "alice",
		Password: "s3cret-password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, 3600, token.ExpiresIn)
}

func TestLogin_BadCredentialsAreIndistinguishable(t *testing.T) {
	service, _ := newAuthFixture()

	_, err := service.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-password",
	})
	require.NoError(t, err)

	_, wrongPassword := service.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "wrong"})
	_, unknownUser := service.Login(context.Background(), &dto.LoginRequest{Username: "bob", Password: "whatever"})

	assert.ErrorIs(t, wrongPassword, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, apperrors.ErrInvalidCredentials)
}
