package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultJWTAlgorithm        = "HS256"
	defaultAccessTokenMinutes  = 60
	defaultRefreshTokenMinutes = 7 * 24 * 60
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	databaseURL := os.Getenv("DATABASE_URL")
	jwtSecret := os.Getenv("JWT_SECRET")
	jwtAlgorithm := os.Getenv("JWT_ALGORITHM")
	environment := os.Getenv("ENVIRONMENT")

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if jwtAlgorithm == "" {
		jwtAlgorithm = defaultJWTAlgorithm
	}

	if environment == "" {
		environment = "development"
	}

	accessMinutes, err := minutesFromEnv("ACCESS_TOKEN_EXPIRE_MINUTES", defaultAccessTokenMinutes)
	if err != nil {
		return nil, err
	}

	refreshMinutes, err := minutesFromEnv("REFRESH_TOKEN_EXPIRE_MINUTES", defaultRefreshTokenMinutes)
	if err != nil {
		return nil, err
	}

	return &Config{
		DatabaseURL:     databaseURL,
		JWTSecret:       jwtSecret,
		JWTAlgorithm:    jwtAlgorithm,
		AccessTokenTTL:  time.Duration(accessMinutes) * time.Minute,
		RefreshTokenTTL: time.Duration(refreshMinutes) * time.Minute,
		Environment:     environment,
	}, nil
}

// reads a positive integer minute count from the environment
func minutesFromEnv(name string, fallback int) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}

	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, raw)
	}

	return minutes, nil
}
