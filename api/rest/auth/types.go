package auth

// contains data for creating an account
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name"`
	Password string `json:"password" binding:"required,min=8"`
}

// contains login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// carries the refresh token being exchanged
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
