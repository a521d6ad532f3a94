package users

const (
	queryInsert = `
		INSERT INTO users (id, email, full_name, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, full_name, password_hash, is_active, created_at
	`

	queryFindByEmail = `
		SELECT id, email, full_name, password_hash, is_active, created_at
		FROM users
		WHERE email = $1
	`

	queryFindByID = `
		SELECT id, email, full_name, password_hash, is_active, created_at
		FROM users
		WHERE id = $1
	`

	querySetActive = `
		UPDATE users
		SET is_active = $1
		WHERE id = $2
	`
)
