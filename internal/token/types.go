package token

import (
	"github.com/golang-jwt/jwt/v5"
)

// token type claim values
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// represents the signed payload of an issued token.
// access and refresh tokens of one pair carry the same CSRF value.
type Claims struct {
	TokenType string `json:"type"`
	CSRF      string `json:"csrf"`
	jwt.RegisteredClaims
}

// encodes and decodes signed, expiring claim sets.
// the signing key is fixed at construction; rotating it invalidates
// every outstanding token.
type Codec struct {
	secret []byte
	method jwt.SigningMethod
}
