package model

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// UserStore defines persistence operations for user credentials.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
	UpdatePassword(ctx context.Context, email string, passwordHash string) error
}

// User represents a registered account with its password hash.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Claim returns the identity claim carried by session tokens.
func (u User) Claim() Claim {
	return Claim{ID: u.ID, Email: u.Email, Name: u.Name}
}

// NormalizeEmail returns the comparison key for an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RegisterParams contains the data needed to create an account.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
}

// LoginParams contains credentials presented at login.
type LoginParams struct {
	Email    string
	Password string
}

// ResetPasswordParams contains the data for a direct password reset.
type ResetPasswordParams struct {
	Email       string
	NewPassword string
}
