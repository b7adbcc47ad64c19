package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/erenyalcin/campushare/internal/app/models"
	"github.com/erenyalcin/campushare/internal/app/repositories"
	"github.com/erenyalcin/campushare/internal/pkg/auth"
	"github.com/erenyalcin/campushare/internal/pkg/logger"
)

// Default admin credentials, overridable through the environment. The
// password default is only acceptable for local development.
const (
	defaultAdminUsername = "admin"
	defaultAdminEmail    = "admin@campushare.local"
	defaultAdminPassword = "changeme123"
)

// CreateDefaultData provisions the initial staff account when the user
// table is empty. Staff accounts are otherwise created out of band, so a
// fresh database needs one to reach the upload entry at all.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool) error {
	userRepo := repositories.NewUserRepository(dbPool)

	count, err := userRepo.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("error counting users: %w", err)
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = defaultAdminPassword
		logger.Warn().Msg("ADMIN_PASSWORD not set, seeding admin with the default password")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("error hashing admin password: %w", err)
	}

	admin := &models.User{
		Username:     defaultAdminUsername,
		Email:        defaultAdminEmail,
		PasswordHash: hash,
		IsStaff:      true,
	}
	if err := userRepo.CreateUser(ctx, admin); err != nil {
		return fmt.Errorf("error creating admin user: %w", err)
	}

	logger.Info().Str("username", admin.Username).Msg("Seeded initial staff account")
	return nil
}
