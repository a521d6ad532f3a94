package auth

import (
	"github.com/adelbrx/blogs/internal/auth"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, service *auth.Service) {
	group := router.Group("/auth")
	{
		group.POST("/register", RegisterHandler(service))
		group.POST("/login", LoginHandler(service))
		group.POST("/refresh", RefreshHandler(service))
		group.GET("/me", auth.Middleware(service), MeHandler())
	}
}
