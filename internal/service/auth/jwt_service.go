package auth

import (
	"context"
	"time"
)

// IdentityClaims is the caller-supplied identity a token is minted from.
// Email is the only field the platform keys on; name travels along for
// client convenience.
type IdentityClaims struct {
	Email string
	Name  string
}

// JWTService defines operations for managing JWT session tokens.
type JWTService interface {
	// GenerateToken creates a signed session token for the given identity.
	// Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, identity IdentityClaims) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns an error if validation fails (expired, invalid
	// signature, malformed, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the decoded claims of a validated session token.
// It extends standard JWT registered claims with identity fields.
type Claims struct {
	// Email is the verified identity of the caller. Handlers must trust
	// this field and never a client-supplied identity instead.
	Email string

	// Name is the display name the token was minted with, if any.
	Name string

	// Standard registered JWT claims
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
