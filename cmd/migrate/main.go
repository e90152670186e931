// Command migrate creates the database schema and seeds the default
// admin account from config.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"skyvault/config"
	"skyvault/internal/domain/entity"
	logs "skyvault/internal/infra/log"
	"skyvault/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("Running schema migration")
	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.ContentModel{},
		&model.OrderModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	if err := seedAdmin(db, cfg, logger); err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	logger.Info("Migration complete")

	return nil
}

// seedAdmin creates the configured admin account if it does not exist.
func seedAdmin(db *gorm.DB, cfg *config.Config, logger *slog.Logger) error {
	if cfg.Seed == nil || cfg.Seed.AdminEmail == "" {
		logger.Info("No admin seed configured, skipping")

		return nil
	}

	var count int64
	if err := db.Model(&model.UserModel{}).
		Where("email = ?", cfg.Seed.AdminEmail).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Admin account already exists", slog.String("email", cfg.Seed.AdminEmail))

		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.AdminPassword), bcryptCost(cfg))
	if err != nil {
		return err
	}

	admin := entity.NewUser(cfg.Seed.AdminEmail, cfg.Seed.AdminName, string(hash), entity.RoleAdmin)
	if err := db.Create(model.UserModelFromEntity(admin)).Error; err != nil {
		return err
	}

	logger.Info("Seeded admin account", slog.String("email", cfg.Seed.AdminEmail))

	return nil
}

// bcryptCost resolves the configured cost the same way the runtime
// hasher does. The auth section may be absent in a migrate-only config.
func bcryptCost(cfg *config.Config) int {
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		return cfg.Auth.BcryptCost
	}

	return bcrypt.DefaultCost
}
