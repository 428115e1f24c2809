package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sudo-disha/digital-library/internal/app/models"
	"github.com/sudo-disha/digital-library/internal/app/repositories"
	"github.com/sudo-disha/digital-library/internal/config"
	"github.com/sudo-disha/digital-library/internal/pkg/auth"
	"github.com/sudo-disha/digital-library/internal/pkg/logger"
)

// CreateBootstrapAdmin inserts the configured admin account when the
// admins table is empty, so a fresh deployment has a way to log in.
func CreateBootstrapAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config) error {
	if cfg.Seed.AdminUsername == "" || cfg.Seed.AdminPassword == "" {
		logger.Debug().Msg("No bootstrap admin configured, skipping seed")
		return nil
	}

	adminRepo := repositories.NewAdminRepository(dbPool)

	count, err := adminRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap admin password: %w", err)
	}

	admin := &models.Admin{
		Username: cfg.Seed.AdminUsername,
		Email:    cfg.Seed.AdminEmail,
		Password: hashed,
		Role:     auth.RoleAdmin,
	}

	if err := adminRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	logger.Info().Str("username", admin.Username).Msg("Bootstrap admin created")
	return nil
}
