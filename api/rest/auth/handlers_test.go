package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/adelbrx/blogs/blog/users"
	authinternal "github.com/adelbrx/blogs/internal/auth"
	"github.com/adelbrx/blogs/internal/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	codec, err := token.NewCodec("test-secret-key-for-testing", "HS256")
	require.NoError(t, err)

	service := authinternal.NewService(users.NewMemoryRepository(), codec, time.Hour, 7*24*time.Hour)

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), service)

	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func registerAndLogin(t *testing.T, router *gin.Engine, email, password string) authinternal.TokenPair {
	t.Helper()

	w := postJSON(t, router, "/api/v1/auth/register", RegisterRequest{
		Email:    email,
		Password: password,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var pair authinternal.TokenPair
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pair))

	return pair
}

func TestRegisterEndpoint_ReturnsTokenPair(t *testing.T) {
	router := newTestRouter(t)

	pair := registerAndLogin(t, router, "a@x.com", "password1")

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "bearer", pair.TokenType)
	assert.Equal(t, 3600, pair.ExpiresIn)
	assert.NotEmpty(t, pair.CSRFToken)
}

func TestRegisterEndpoint_ShortPassword(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/auth/register", RegisterRequest{
		Email:    "a@x.com",
		Password: "short",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation_error")
}

func TestRegisterEndpoint_DuplicateEmail(t *testing.T) {
	router := newTestRouter(t)

	registerAndLogin(t, router, "dup@x.com", "password1")

	w := postJSON(t, router, "/api/v1/auth/register", RegisterRequest{
		Email:    "dup@x.com",
		Password: "password2",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "duplicate_account")
}

func TestLoginEndpoint_InvalidCredentials(t *testing.T) {
	router := newTestRouter(t)

	registerAndLogin(t, router, "a@x.com", "password1")

	w := postJSON(t, router, "/api/v1/auth/login", LoginRequest{
		Email:    "a@x.com",
		Password: "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_credentials")
}

func TestRefreshEndpoint_RotatesPair(t *testing.T) {
	router := newTestRouter(t)

	pair := registerAndLogin(t, router, "a@x.com", "password1")

	w := postJSON(t, router, "/api/v1/auth/refresh", RefreshRequest{
		RefreshToken: pair.RefreshToken,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var refreshed authinternal.TokenPair
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &refreshed))
	assert.NotEqual(t, pair.CSRFToken, refreshed.CSRFToken)
}

func TestRefreshEndpoint_RejectsAccessToken(t *testing.T) {
	router := newTestRouter(t)

	pair := registerAndLogin(t, router, "a@x.com", "password1")

	w := postJSON(t, router, "/api/v1/auth/refresh", RefreshRequest{
		RefreshToken: pair.AccessToken,
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_token")
}

func TestMeEndpoint_Flow(t *testing.T) {
	router := newTestRouter(t)

	pair := registerAndLogin(t, router, "a@x.com", "password1")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	req.Header.Set(authinternal.CSRFHeader, pair.CSRFToken)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var profile users.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "a@x.com", profile.Email)
	assert.True(t, profile.IsActive)

	// the stored hash never leaves the server
	assert.NotContains(t, w.Body.String(), "password")
}

func TestMeEndpoint_CSRFMismatch(t *testing.T) {
	router := newTestRouter(t)

	pair := registerAndLogin(t, router, "a@x.com", "password1")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	req.Header.Set(authinternal.CSRFHeader, "wrong-csrf")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "csrf_mismatch")
}

func TestMeEndpoint_MissingAuthorization(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
