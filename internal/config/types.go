package config

import "time"

type Config struct {
	DatabaseURL     string
	JWTSecret       string
	JWTAlgorithm    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	Environment     string
}
