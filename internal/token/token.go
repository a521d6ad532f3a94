package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// creates a codec for the given signing secret and HMAC algorithm
func NewCodec(secret, algorithm string) (*Codec, error) {
	if secret == "" {
		return nil, fmt.Errorf("signing secret must not be empty")
	}

	var method jwt.SigningMethod

	switch algorithm {
	case "HS256":
		method = jwt.SigningMethodHS256
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("unsupported signing algorithm: %s", algorithm)
	}

	return &Codec{
		secret: []byte(secret),
		method: method,
	}, nil
}

// issues a signed token for the subject with the given type, lifetime
// and CSRF binding value
func (c *Codec) Issue(subject, tokenType string, ttl time.Duration, csrf string) (string, error) {
	now := time.Now()

	claims := Claims{
		TokenType: tokenType,
		CSRF:      csrf,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(c.method, claims).SignedString(c.secret)
}

// decodes and validates a token string. rejects invalid signatures,
// structural garbage and expired tokens. does NOT check the token type -
// that is the caller's responsibility, so access and refresh tokens share
// one signature path.
func (c *Codec) Decode(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return c.secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
