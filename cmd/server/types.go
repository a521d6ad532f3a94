package main

import (
	"github.com/adelbrx/blogs/blog/articles"
	"github.com/adelbrx/blogs/blog/users"
	"github.com/adelbrx/blogs/internal/auth"
	"github.com/adelbrx/blogs/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies and state for the API server
type Server struct {
	db          *pgxpool.Pool
	config      *config.Config
	userRepo    *users.Repository
	articleRepo *articles.Repository
	authService *auth.Service
	router      *gin.Engine
}
