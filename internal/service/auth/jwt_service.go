package auth

import (
	"context"
	"time"
)

// JWTService defines operations for issuing and verifying JWT access tokens.
type JWTService interface {
	// GenerateToken creates a signed access token carrying the user's
	// identity. Pure function of its inputs, the current time, the
	// signing secret, and the configured lifetime.
	GenerateToken(ctx context.Context, userID int64, email string) (string, error)

	// ValidateToken verifies the signature and time claims of the token
	// string and extracts the claims. Returns ErrExpiredToken,
	// ErrTokenNotYetValid, or ErrInvalidToken on failure. Pure
	// computation: no I/O, no store lookup.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// Lifetime reports the configured token lifetime, for advertising
	// expires_in to clients.
	Lifetime() time.Duration
}

// Claims is the verified claim set extracted from a valid token.
type Claims struct {
	// UserID is the authenticated user, parsed from the subject claim.
	UserID int64 `json:"uid"`

	// Email is the user's email at issuance time.
	Email string `json:"email"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
