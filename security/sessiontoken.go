// Package security issues and validates the volunteer session token. The
// login itself is a shared-passcode placeholder; the token only keeps a
// browser session alive, it is not an authentication hardening layer.
package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type SessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// CreateSessionToken signs an HS256 token for a logged-in volunteer.
func CreateSessionToken(secret string, expiresIn time.Duration) (string, error) {
	claims := SessionClaims{
		Role: "volunteer",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "checkin",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken validates a token string and returns its claims.
func ParseSessionToken(tokenStr, secret string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
