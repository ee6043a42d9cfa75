package main

import (
	"context"
	"errors"
	"log"

	"go.uber.org/zap"

	"github.com/spec-kit/user-management/internal/auth"
	"github.com/spec-kit/user-management/internal/config"
	"github.com/spec-kit/user-management/internal/domain"
	"github.com/spec-kit/user-management/internal/observability"
	"github.com/spec-kit/user-management/internal/persistence"
	"github.com/spec-kit/user-management/internal/repository"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "Admin123!"
	adminFullName = "Admin User"
)

// createadmin seeds the initial admin account. It exits cleanly when the
// account already exists, so it is safe to run on every deploy.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, "createadmin")
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	pool := pg.PoolHandle()
	if pool == nil {
		logger.Fatal("POSTGRES_DSN is required to provision the admin account")
	}

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pool, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	userRepo := repository.NewUserRepository(pool)

	if _, err := userRepo.GetByEmail(ctx, adminEmail); err == nil {
		logger.Info("admin user already exists", zap.String("email", adminEmail))
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		logger.Fatal("failed to check for admin user", zap.Error(err))
	}

	hash, err := auth.HashPassword(adminPassword, cfg.Auth.BcryptCost)
	if err != nil {
		logger.Fatal("failed to hash admin password", zap.Error(err))
	}

	admin := &domain.User{
		Email:        adminEmail,
		PasswordHash: hash,
		FullName:     adminFullName,
		Role:         domain.RoleAdmin,
		Status:       domain.UserStatusActive,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		logger.Fatal("failed to create admin user", zap.Error(err))
	}

	logger.Info("admin user created; change the password after first login",
		zap.String("email", adminEmail),
		zap.String("id", admin.ID))
}
