package auth

import (
	"context"
	"time"

	"github.com/adelbrx/blogs/blog/users"
	"github.com/adelbrx/blogs/internal/token"
)

// the persistence collaborator the authenticator needs. satisfied by
// users.Repository and users.MemoryRepository.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*users.User, error)
	FindByID(ctx context.Context, userID string) (*users.User, error)
	Insert(ctx context.Context, email, fullName, passwordHash string) (*users.User, error)
}

// orchestrates registration, login, refresh and current-user resolution.
// stateless apart from the user store - everything else lives inside the
// issued tokens.
type Service struct {
	store      UserStore
	codec      *token.Codec
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// the pair returned by login and refresh. the CSRF value is exposed so
// the client can echo it back in a header on protected requests.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	CSRFToken    string `json:"csrf_token"`
}
