// Package auth implements the session authenticator: issuance and
// verification of paired access/refresh tokens with a CSRF-binding claim,
// on top of the token codec, the password hasher and a user store.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adelbrx/blogs/blog/users"
	"github.com/adelbrx/blogs/internal/password"
	"github.com/adelbrx/blogs/internal/token"
)

// creates an authenticator over the given store and codec
func NewService(store UserStore, codec *token.Codec, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		store:      store,
		codec:      codec,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// creates a new account. the email pre-check is best-effort only; the
// store's uniqueness constraint is the backstop for concurrent registrations.
func (s *Service) Register(ctx context.Context, email, fullName, plaintext string) (*users.User, error) {
	existing, err := s.store.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, users.ErrNotFound) {
		return nil, fmt.Errorf("looking up email: %w", err)
	}

	if existing != nil {
		return nil, ErrDuplicateAccount
	}

	hash, err := password.Hash(plaintext)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user, err := s.store.Insert(ctx, email, fullName, hash)
	if err != nil {
		if errors.Is(err, users.ErrDuplicateEmail) {
			return nil, ErrDuplicateAccount
		}

		return nil, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}

// verifies credentials and issues a fresh token pair. an unknown email
// and a wrong password produce the identical error so accounts cannot be
// enumerated; an inactive account is disclosed only after the credential
// check passes.
func (s *Service) Login(ctx context.Context, email, plaintext string) (*TokenPair, error) {
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, fmt.Errorf("looking up email: %w", err)
	}

	if !password.Verify(plaintext, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountInactive
	}

	return s.issuePair(user.ID)
}

// exchanges a refresh token for a brand-new pair. the old CSRF binding is
// never reused. a token of the wrong type is treated as invalid, not as a
// distinct error.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.codec.Decode(refreshToken)
	if err != nil || claims.TokenType != token.TypeRefresh {
		return nil, ErrInvalidToken
	}

	user, err := s.resolveSubject(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}

	return s.issuePair(user.ID)
}

// resolves the account behind an access token on a protected request.
// the CSRF header must exactly equal the value embedded in the token.
func (s *Service) CurrentUser(ctx context.Context, accessToken, csrfHeader string) (*users.User, error) {
	claims, err := s.codec.Decode(accessToken)
	if err != nil || claims.TokenType != token.TypeAccess {
		return nil, ErrInvalidToken
	}

	if csrfHeader == "" || csrfHeader != claims.CSRF {
		return nil, ErrCSRFMismatch
	}

	return s.resolveSubject(ctx, claims.Subject)
}

// looks up the token subject and enforces the active flag
func (s *Service) resolveSubject(ctx context.Context, userID string) (*users.User, error) {
	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			// the subject disappeared since issuance - session is gone
			return nil, ErrInvalidCredentials
		}

		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if !user.IsActive {
		return nil, ErrAccountInactive
	}

	return user, nil
}

// mints an access/refresh pair bound to a newly generated CSRF value
func (s *Service) issuePair(userID string) (*TokenPair, error) {
	csrf, err := newCSRFToken()
	if err != nil {
		return nil, fmt.Errorf("generating csrf token: %w", err)
	}

	accessToken, err := s.codec.Issue(userID, token.TypeAccess, s.accessTTL, csrf)
	if err != nil {
		return nil, fmt.Errorf("issuing access token: %w", err)
	}

	refreshToken, err := s.codec.Issue(userID, token.TypeRefresh, s.refreshTTL, csrf)
	if err != nil {
		return nil, fmt.Errorf("issuing refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    int(s.accessTTL.Seconds()),
		CSRFToken:    csrf,
	}, nil
}
