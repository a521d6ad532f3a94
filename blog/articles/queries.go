package articles

const (
	queryCreate = `
		INSERT INTO articles (id, title, content)
		VALUES ($1, $2, $3)
		RETURNING id, title, content, created_at, updated_at
	`

	queryList = `
		SELECT id, title, content, created_at, updated_at
		FROM articles
		ORDER BY created_at DESC
	`

	queryGet = `
		SELECT id, title, content, created_at, updated_at
		FROM articles
		WHERE id = $1
	`

	querySearch = `
		SELECT id, title, content, created_at, updated_at
		FROM articles
		WHERE title ILIKE $1 OR content ILIKE $1
		ORDER BY created_at DESC
	`

	queryDelete = `
		DELETE FROM articles
		WHERE id = $1
	`
)
