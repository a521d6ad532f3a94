package articles

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new article repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// creates a new article
func (r *Repository) Create(ctx context.Context, req CreateArticleRequest) (*Article, error) {
	var article Article

	err := r.db.QueryRow(
		ctx,
		queryCreate,
		uuid.NewString(),
		req.Title,
		req.Content,
	).Scan(
		&article.ID,
		&article.Title,
		&article.Content,
		&article.CreatedAt,
		&article.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &article, nil
}

// lists all articles, newest first
func (r *Repository) List(ctx context.Context) ([]Article, error) {
	rows, err := r.db.Query(ctx, queryList)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanArticles(rows)
}

// gets a single article by its ID
func (r *Repository) Get(ctx context.Context, articleID string) (*Article, error) {
	var article Article

	err := r.db.QueryRow(ctx, queryGet, articleID).Scan(
		&article.ID,
		&article.Title,
		&article.Content,
		&article.CreatedAt,
		&article.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &article, nil
}

// returns articles whose title or content contains the query,
// case-insensitively
func (r *Repository) Search(ctx context.Context, query string) ([]Article, error) {
	pattern := fmt.Sprintf("%%%s%%", query)

	rows, err := r.db.Query(ctx, querySearch, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanArticles(rows)
}

// deletes an article by its ID
func (r *Repository) Delete(ctx context.Context, articleID string) error {
	tag, err := r.db.Exec(ctx, queryDelete, articleID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func scanArticles(rows pgx.Rows) ([]Article, error) {
	articles := []Article{}

	for rows.Next() {
		var article Article

		err := rows.Scan(
			&article.ID,
			&article.Title,
			&article.Content,
			&article.CreatedAt,
			&article.UpdatedAt,
		)

		if err != nil {
			return nil, err
		}

		articles = append(articles, article)
	}

	return articles, rows.Err()
}
