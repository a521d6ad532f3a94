// Applies pending schema migrations against DATABASE_URL.
package main

import (
	"context"
	"database/sql"

	"github.com/adelbrx/blogs/internal/config"
	"github.com/adelbrx/blogs/internal/logger"
	"github.com/adelbrx/blogs/internal/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to open database", "error", err)
	}
	defer db.Close() //nolint:errcheck // best-effort cleanup on exit

	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		logger.Fatal("failed to set goose dialect", "error", err)
	}

	ctx := context.Background()

	if err := goose.UpContext(ctx, db, "."); err != nil {
		logger.Fatal("failed to apply migrations", "error", err)
	}

	logger.Info("migrations applied")
}
