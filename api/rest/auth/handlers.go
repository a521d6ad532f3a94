package auth

import (
	"net/http"

	"github.com/adelbrx/blogs/internal/auth"
	"github.com/adelbrx/blogs/internal/errors"
	"github.com/gin-gonic/gin"
)

// RegisterHandler godoc
// @Summary Register a new account
// @Description Create an account and return a token pair for the new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account details"
// @Success 201 {object} auth.TokenPair
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/auth/register [post]
func RegisterHandler(service *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if _, err := service.Register(c.Request.Context(), req.Email, req.FullName, req.Password); err != nil {
			auth.RespondError(c, err)
			return
		}

		// log the fresh account straight in, as a convenience to the client
		pair, err := service.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			auth.RespondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, pair)
	}
}

// LoginHandler godoc
// @Summary Log in
// @Description Verify credentials and return a fresh access/refresh token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} auth.TokenPair
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /api/v1/auth/login [post]
func LoginHandler(service *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		pair, err := service.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			auth.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, pair)
	}
}

// RefreshHandler godoc
// @Summary Refresh tokens
// @Description Exchange a refresh token for a brand-new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} auth.TokenPair
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /api/v1/auth/refresh [post]
func RefreshHandler(service *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RefreshRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		pair, err := service.Refresh(c.Request.Context(), req.RefreshToken)
		if err != nil {
			auth.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, pair)
	}
}

// MeHandler godoc
// @Summary Get current user
// @Description Return the profile of the authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} users.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /api/v1/auth/me [get]
// @Security BearerAuth
func MeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, exists := auth.GetCurrentUser(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		c.JSON(http.StatusOK, user)
	}
}
