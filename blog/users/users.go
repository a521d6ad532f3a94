package users

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// postgres error code for unique constraint violations
const uniqueViolationCode = "23505"

// creates a new user repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// inserts a new user. the unique index on email is the authority for
// duplicate detection; violations surface as ErrDuplicateEmail.
func (r *Repository) Insert(ctx context.Context, email, fullName, passwordHash string) (*User, error) {
	var user User

	err := r.db.QueryRow(
		ctx,
		queryInsert,
		uuid.NewString(),
		email,
		fullName,
		passwordHash,
	).Scan(
		&user.ID,
		&user.Email,
		&user.FullName,
		&user.PasswordHash,
		&user.IsActive,
		&user.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, ErrDuplicateEmail
		}

		return nil, err
	}

	return &user, nil
}

// finds a user by their email (exact match)
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.scanOne(r.db.QueryRow(ctx, queryFindByEmail, email))
}

// finds a user by their ID
func (r *Repository) FindByID(ctx context.Context, userID string) (*User, error) {
	return r.scanOne(r.db.QueryRow(ctx, queryFindByID, userID))
}

// toggles the active flag on an account
func (r *Repository) SetActive(ctx context.Context, userID string, active bool) error {
	tag, err := r.db.Exec(ctx, querySetActive, active, userID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *Repository) scanOne(row pgx.Row) (*User, error) {
	var user User

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.FullName,
		&user.PasswordHash,
		&user.IsActive,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &user, nil
}
