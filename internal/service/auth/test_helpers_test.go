package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// signTestToken signs an arbitrary claim set with the given secret so
// tests can construct tokens the service itself would never issue.
func signTestToken(secret, subject, email string, issuedAt, expiresAt time.Time) (string, error) {
	claims := jwtCustomClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
