package auth

import "errors"

// error taxonomy for the authentication flows. signature, structure,
// expiry and wrong-type failures all collapse into ErrInvalidToken so
// clients get no oracle about why a token was rejected.
var (
	ErrDuplicateAccount   = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrCSRFMismatch       = errors.New("csrf token mismatch")
)
