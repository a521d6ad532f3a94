package main

import (
	"context"
	"fmt"
	"time"

	"github.com/adelbrx/blogs/blog/articles"
	"github.com/adelbrx/blogs/blog/users"
	"github.com/adelbrx/blogs/internal/auth"
	"github.com/adelbrx/blogs/internal/config"
	"github.com/adelbrx/blogs/internal/token"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	codec, err := token.NewCodec(cfg.JWTSecret, cfg.JWTAlgorithm)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create token codec: %w", err)
	}

	userRepo := users.NewRepository(db)
	articleRepo := articles.NewRepository(db)
	authService := auth.NewService(userRepo, codec, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	server := &Server{
		db:          db,
		config:      cfg,
		userRepo:    userRepo,
		articleRepo: articleRepo,
		authService: authService,
		router:      router,
	}

	RegisterRoutes(router, server)

	return server, nil
}
