package main

import (
	"os"
	"strings"
	"time"

	"github.com/adelbrx/blogs/api/rest/articles"
	"github.com/adelbrx/blogs/api/rest/auth"
	"github.com/adelbrx/blogs/api/rest/health"
	authinternal "github.com/adelbrx/blogs/internal/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware())
	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(v1, server.authService)
		articles.RegisterRoutes(v1, server.articleRepo, server.authService)
	}
}

// configures cross-origin access. the CSRF header must be allowed or
// browsers will strip it from protected requests.
func CORSMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowAllOrigins = true
	}

	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", authinternal.CSRFHeader}
	cfg.MaxAge = 12 * time.Hour

	return cors.New(cfg)
}
