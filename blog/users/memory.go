package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// in-memory user store with the same semantics as the postgres
// repository. used in tests and local development without a database.
type MemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]*User
	byEmail map[string]*User
}

// creates an empty in-memory user store
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[string]*User),
		byEmail: make(map[string]*User),
	}
}

// inserts a new user, enforcing email uniqueness
func (r *MemoryRepository) Insert(_ context.Context, email, fullName, passwordHash string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[email]; exists {
		return nil, ErrDuplicateEmail
	}

	user := &User{
		ID:           uuid.NewString(),
		Email:        email,
		FullName:     fullName,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	r.byID[user.ID] = user
	r.byEmail[user.Email] = user

	copied := *user

	return &copied, nil
}

// finds a user by their email (exact match)
func (r *MemoryRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.byEmail[email]
	if !exists {
		return nil, ErrNotFound
	}

	copied := *user

	return &copied, nil
}

// finds a user by their ID
func (r *MemoryRepository) FindByID(_ context.Context, userID string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.byID[userID]
	if !exists {
		return nil, ErrNotFound
	}

	copied := *user

	return &copied, nil
}

// toggles the active flag on an account. account-status changes happen
// outside the auth flows themselves.
func (r *MemoryRepository) SetActive(_ context.Context, userID string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.byID[userID]
	if !exists {
		return ErrNotFound
	}

	user.IsActive = active

	return nil
}
