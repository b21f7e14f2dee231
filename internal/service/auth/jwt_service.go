// Package auth issues and verifies the bearer tokens that gate every
// mutating endpoint, and hashes user credentials.
package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT encoding the user's email.
	// Returns ErrMissingEmail when email is empty, otherwise the signed
	// token string or an error if signing fails.
	GenerateToken(ctx context.Context, email string) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns the decoded claims if the token is valid, or
	// ErrInvalidToken / ErrExpiredToken / ErrTokenNotYetValid if
	// validation fails.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the decoded claims carried by a bearer token.
// No claim is checked against the resource being accessed: a valid token
// authorizes any protected route at the protocol level.
type Claims struct {
	// Email identifies the account the token was issued for.
	Email string `json:"email,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
