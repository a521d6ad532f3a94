package articles

import (
	"github.com/adelbrx/blogs/blog/articles"
	"github.com/adelbrx/blogs/internal/auth"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, articleRepo *articles.Repository, authService *auth.Service) {
	// public reads
	router.GET("/articles", ListArticlesHandler(articleRepo))
	router.GET("/articles/search", SearchArticlesHandler(articleRepo))
	router.GET("/articles/:id", GetArticleHandler(articleRepo))

	// writes require an authenticated session
	protected := router.Group("/articles")
	protected.Use(auth.Middleware(authService))
	{
		protected.POST("", CreateArticleHandler(articleRepo))
		protected.DELETE("/:id", DeleteArticleHandler(articleRepo))
	}
}
