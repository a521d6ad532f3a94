package auth

import (
	"context"
	"testing"
	"time"

	"github.com/adelbrx/blogs/blog/users"
	"github.com/adelbrx/blogs/internal/password"
	"github.com/adelbrx/blogs/internal/token"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	service *Service
	store   *users.MemoryRepository
	codec   *token.Codec
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	codec, err := token.NewCodec("test-secret-key-for-testing", "HS256")
	require.NoError(t, err)

	store := users.NewMemoryRepository()

	return &fixture{
		service: NewService(store, codec, time.Hour, 7*24*time.Hour),
		store:   store,
		codec:   codec,
	}
}

func (f *fixture) register(t *testing.T, email, plaintext string) *users.User {
	t.Helper()

	user, err := f.service.Register(context.Background(), email, "Test User", plaintext)
	require.NoError(t, err)

	return user
}

func TestRegister_CreatesActiveUser(t *testing.T) {
	f := newFixture(t)

	user := f.register(t, "a@x.com", "password1")

	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "Test User", user.FullName)
	assert.True(t, user.IsActive)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "password1", user.PasswordHash)
	assert.True(t, password.Verify("password1", user.PasswordHash))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newFixture(t)

	f.register(t, "dup@x.com", "password1")

	_, err := f.service.Register(context.Background(), "dup@x.com", "", "password2")
	assert.ErrorIs(t, err, ErrDuplicateAccount)

	// the first registration still stands
	stored, err := f.store.FindByEmail(context.Background(), "dup@x.com")
	require.NoError(t, err)
	assert.True(t, password.Verify("password1", stored.PasswordHash))
}

func TestLogin_IssuesBoundPair(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "a@x.com", "password1")

	pair, err := f.service.Login(context.Background(), "a@x.com", "password1")

	require.NoError(t, err)
	assert.Equal(t, "bearer", pair.TokenType)
	assert.Equal(t, 3600, pair.ExpiresIn)
	assert.NotEmpty(t, pair.CSRFToken)

	accessClaims, err := f.codec.Decode(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, accessClaims.Subject)
	assert.Equal(t, token.TypeAccess, accessClaims.TokenType)
	assert.Equal(t, pair.CSRFToken, accessClaims.CSRF)

	refreshClaims, err := f.codec.Decode(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, refreshClaims.Subject)
	assert.Equal(t, token.TypeRefresh, refreshClaims.TokenType)

	// both halves of the pair carry the identical CSRF binding
	assert.Equal(t, accessClaims.CSRF, refreshClaims.CSRF)
}

func TestLogin_FreshCSRFPerLogin(t *testing.T) {
	f := newFixture(t)
	f.register(t, "a@x.com", "password1")

	first, err := f.service.Login(context.Background(), "a@x.com", "password1")
	require.NoError(t, err)

	second, err := f.service.Login(context.Background(), "a@x.com", "password1")
	require.NoError(t, err)

	assert.NotEqual(t, first.CSRFToken, second.CSRFToken)
}

func TestLogin_CredentialFailuresAreUniform(t *testing.T) {
	f := newFixture(t)
	f.register(t, "a@x.com", "password1")

	_, wrongPassword := f.service.Login(context.Background(), "a@x.com", "wrong-password")
	_, unknownEmail := f.service.Login(context.Background(), "nobody@x.com", "password1")

	// no oracle: absent user and bad password are indistinguishable
	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLogin_InactiveAccount(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "a@x.com", "password1")

	require.NoError(t, f.store.SetActive(context.Background(), user.ID, false))

	pair, err := f.service.Login(context.Background(), "a@x.com", "password1")

	assert.ErrorIs(t, err, ErrAccountInactive)
	assert.Nil(t, pair, "no tokens may be issued for an inactive account")
}

func TestRefresh_IssuesNewPair(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "a@x.com", "password1")

	pair, err := f.service.Login(context.Background(), "a@x.com", "password1")
	require.NoError(t, err)

	refreshed, err := f.service.Refresh(context.Background(), pair.RefreshToken)

	require.NoError(t, err)
	assert.NotEqual(t, pair.CSRFToken, refreshed.CSRFToken, "refresh must rotate the CSRF binding")

	claims, err := f.codec.Decode(refreshed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, refreshed.CSRFToken, claims.CSRF)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	f := newFixture(t)
	f.register(t, "a@x.com", "password1")

	pair, err := f.service.Login(context.Background(), "a@x.com", "password1")
	require.NoError(t, err)

	// wrong-type presentation is invalid, not a distinct error
	_, err = f.service.Refresh(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefresh_RejectsGarbage(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefresh_SubjectNoLongerExists(t *testing.T) {
	f := newFixture(t)

	orphan, err := f.codec.Issue(uuid.NewString(), token.TypeRefresh, time.Hour, "csrf-value")
	require.NoError(t, err)

	_, err = f.service.Refresh(context.Background(), orphan)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefresh_InactiveAccount(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "a@x.com", "password1")

	pair, err := f.service.Login(context.Background(), "a@x.com", "password1")
	require.NoError(t, err)

	require.NoError(t, f.store.SetActive(context.Background(), user.ID, false))

	_, err = f.service.Refresh(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, ErrAccountInactive)
}

func TestCurrentUser_Success(t *testing.T) {
	f := newFixture(t)
	f.register(t, "a@x.com", "password1")

	pair, err := f.service.Login(context.Background(), "a@x.com", "password1")
	require.NoError(t, err)

	user, err := f.service.CurrentUser(context.Background(), pair.AccessToken, pair.CSRFToken)

	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.True(t, user.IsActive)
}

func TestCurrentUser_CSRFMismatch(t *testing.T) {
	f := newFixture(t)
	f.register(t, "a@x.com", "password1")

	pair, err := f.service.Login(context.Background(), "a@x.com", "password1")
	require.NoError(t, err)

	_, err = f.service.CurrentUser(context.Background(), pair.AccessToken, "wrong-csrf")
	assert.ErrorIs(t, err, ErrCSRFMismatch)

	_, err = f.service.CurrentUser(context.Background(), pair.AccessToken, "")
	assert.ErrorIs(t, err, ErrCSRFMismatch, "missing header is a mismatch, never a pass")
}

func TestCurrentUser_RejectsRefreshToken(t *testing.T) {
	f := newFixture(t)
	f.register(t, "a@x.com", "password1")

	pair, err := f.service.Login(context.Background(), "a@x.com", "password1")
	require.NoError(t, err)

	_, err = f.service.CurrentUser(context.Background(), pair.RefreshToken, pair.CSRFToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCurrentUser_ExpiredToken(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "a@x.com", "password1")

	expired, err := f.codec.Issue(user.ID, token.TypeAccess, -time.Minute, "csrf-value")
	require.NoError(t, err)

	_, err = f.service.CurrentUser(context.Background(), expired, "csrf-value")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCurrentUser_InactiveAccount(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "a@x.com", "password1")

	pair, err := f.service.Login(context.Background(), "a@x.com", "password1")
	require.NoError(t, err)

	require.NoError(t, f.store.SetActive(context.Background(), user.ID, false))

	_, err = f.service.CurrentUser(context.Background(), pair.AccessToken, pair.CSRFToken)
	assert.ErrorIs(t, err, ErrAccountInactive)
}

func TestEndToEnd_RegisterLoginResolve(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Register(context.Background(), "a@x.com", "", "password1")
	require.NoError(t, err)

	pair, err := f.service.Login(context.Background(), "a@x.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, 3600, pair.ExpiresIn)

	user, err := f.service.CurrentUser(context.Background(), pair.AccessToken, pair.CSRFToken)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.True(t, user.IsActive)
}
