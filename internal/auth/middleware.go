package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/adelbrx/blogs/blog/users"
	apierrors "github.com/adelbrx/blogs/internal/errors"
	"github.com/gin-gonic/gin"
)

const (
	// header carrying the CSRF-binding value, echoed from the token pair
	CSRFHeader = "X-CSRF-Token"

	contextUserKey = "current_user"
)

// resolves the current user from the Authorization and X-CSRF-Token
// headers and stores it in the request context
func Middleware(service *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			apierrors.Unauthorized(c, "authorization header required")
			c.Abort()
			return
		}

		user, err := service.CurrentUser(c.Request.Context(), accessToken, c.GetHeader(CSRFHeader))
		if err != nil {
			RespondError(c, err)
			c.Abort()
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// extracts the authenticated user from context after Middleware
func GetCurrentUser(c *gin.Context) (*users.User, bool) {
	value, exists := c.Get(contextUserKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*users.User)

	return user, ok
}

// maps an authenticator error kind to its HTTP rejection. the kind is
// preserved losslessly in the response error code.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrDuplicateAccount):
		c.JSON(http.StatusBadRequest, apierrors.ErrorResponse{
			Error:   apierrors.CodeDuplicateAccount,
			Message: "email already registered",
		})
	case errors.Is(err, ErrInvalidCredentials):
		apierrors.UnauthorizedCode(c, apierrors.CodeInvalidCredentials, "invalid credentials")
	case errors.Is(err, ErrAccountInactive):
		apierrors.ForbiddenCode(c, apierrors.CodeAccountInactive, "account is inactive")
	case errors.Is(err, ErrInvalidToken):
		apierrors.UnauthorizedCode(c, apierrors.CodeInvalidToken, "invalid or expired token")
	case errors.Is(err, ErrCSRFMismatch):
		apierrors.ForbiddenCode(c, apierrors.CodeCSRFMismatch, "csrf token mismatch")
	default:
		apierrors.InternalError(c, "authentication failed", err)
	}
}

// parses a "Bearer <token>" authorization header
func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}

	return parts[1], true
}
