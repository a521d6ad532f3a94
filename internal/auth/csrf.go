package auth

import (
	"crypto/rand"
	"encoding/base64"
)

// 16 random bytes, enough to make guessing the binding infeasible
const csrfTokenBytes = 16

// generates an opaque random CSRF-binding value. a fresh value is minted
// for every login and refresh.
func newCSRFToken() (string, error) {
	buf := make([]byte, csrfTokenBytes)

	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
