// Package password wraps bcrypt hashing of user credentials.
package password

import "golang.org/x/crypto/bcrypt"

// hashes a plaintext password with a fresh random salt
func Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// checks a plaintext password against a stored hash.
// malformed hashes verify as false rather than erroring.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
