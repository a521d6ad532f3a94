package articles

import (
	"net/http"
	"strings"

	"github.com/adelbrx/blogs/blog/articles"
	"github.com/adelbrx/blogs/internal/errors"
	"github.com/gin-gonic/gin"
)

// CreateArticleHandler godoc
// @Summary Create an article
// @Tags articles
// @Accept json
// @Produce json
// @Param request body articles.CreateArticleRequest true "Article"
// @Success 201 {object} articles.Article
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/articles [post]
// @Security BearerAuth
func CreateArticleHandler(articleRepo *articles.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req articles.CreateArticleRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		article, err := articleRepo.Create(c.Request.Context(), req)
		if err != nil {
			errors.InternalError(c, "failed to create article", err)
			return
		}

		c.JSON(http.StatusCreated, article)
	}
}

// ListArticlesHandler godoc
// @Summary List articles
// @Tags articles
// @Produce json
// @Success 200 {object} ArticlesListResponse
// @Router /api/v1/articles [get]
func ListArticlesHandler(articleRepo *articles.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := articleRepo.List(c.Request.Context())
		if err != nil {
			errors.InternalError(c, "failed to list articles", err)
			return
		}

		c.JSON(http.StatusOK, ArticlesListResponse{Articles: list})
	}
}

// SearchArticlesHandler godoc
// @Summary Search articles
// @Description Search articles by title or content
// @Tags articles
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} ArticlesListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/articles/search [get]
func SearchArticlesHandler(articleRepo *articles.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := strings.TrimSpace(c.Query("q"))
		if query == "" {
			errors.BadRequest(c, "missing search query", nil)
			return
		}

		list, err := articleRepo.Search(c.Request.Context(), query)
		if err != nil {
			errors.InternalError(c, "failed to search articles", err)
			return
		}

		c.JSON(http.StatusOK, ArticlesListResponse{Articles: list})
	}
}

// GetArticleHandler godoc
// @Summary Get an article
// @Tags articles
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} articles.Article
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/articles/{id} [get]
func GetArticleHandler(articleRepo *articles.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		articleID, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		article, err := articleRepo.Get(c.Request.Context(), articleID)
		if err != nil {
			errors.NotFound(c, "article")
			return
		}

		c.JSON(http.StatusOK, article)
	}
}

// DeleteArticleHandler godoc
// @Summary Delete an article
// @Tags articles
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/articles/{id} [delete]
// @Security BearerAuth
func DeleteArticleHandler(articleRepo *articles.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		articleID, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		if err := articleRepo.Delete(c.Request.Context(), articleID); err != nil {
			errors.NotFound(c, "article")
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "article deleted"})
	}
}
