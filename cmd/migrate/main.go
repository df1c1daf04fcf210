// Command migrate applies the database schema for the service.
package main

import (
	"log/slog"
	"os"

	"homestay/config"
	"homestay/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		slog.Error("Failed to connect to PostgreSQL", slog.Any("error", err))
		os.Exit(1)
	}

	if err := migrate(db); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("Migration completed")
}

// migrate creates tables, missing columns and indexes for the schema models.
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.UserModel{},
	)
}
