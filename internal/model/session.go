package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionTTL is the lifetime of a session token.
const SessionTTL = 24 * time.Hour

// Claim is the user identity carried inside a session token.
type Claim struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

// SessionClaims is a verified session token payload.
type SessionClaims struct {
	User      Claim
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IssuedToken is a freshly signed session token.
type IssuedToken struct {
	Token     string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenManager signs and verifies session tokens.
type TokenManager interface {
	Issue(claim Claim) (IssuedToken, error)
	Verify(token string) (SessionClaims, error)
}

// RevocationStore remembers session tokens invalidated before their expiry.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// SessionResult is returned by flows that establish a session.
type SessionResult struct {
	User  Claim
	Token IssuedToken
}
