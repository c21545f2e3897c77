package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dtroode/lifeos-server/internal/logger"
	"github.com/dtroode/lifeos-server/internal/model"
)

// ErrPasswordResetDisabled is returned by ResetPassword when the flow is turned off.
var ErrPasswordResetDisabled = fmt.Errorf("password reset: %w", model.ErrDisabled)

const minPasswordChars = 6

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
	CompareDummy(password string)
}

// SessionIssuer mints session tokens.
type SessionIssuer interface {
	Issue(ctx context.Context, claim model.Claim) (model.IssuedToken, error)
}

// Auth implements registration, login and password reset.
type Auth struct {
	userStore          model.UserStore
	hasher             PasswordHasher
	sessions           SessionIssuer
	allowPasswordReset bool
	logger             *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher PasswordHasher,
	sessions SessionIssuer,
	allowPasswordReset bool,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:          userStore,
		hasher:             hasher,
		sessions:           sessions,
		allowPasswordReset: allowPasswordReset,
		logger:             logger,
	}
}

// Register creates an account and signs the new user in.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.SessionResult, error) {
	email := model.NormalizeEmail(params.Email)
	a.logger.Debug("Auth service: starting user registration",
		"email", email)

	name := strings.TrimSpace(params.Name)
	if utf8.RuneCountInString(name) < 2 {
		return model.SessionResult{}, model.NewValidationError("name", "Name must be at least 2 characters")
	}
	if err := validatePassword("password", params.Password); err != nil {
		return model.SessionResult{}, err
	}

	_, err := a.userStore.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: user already exists",
			"email", email)
		return model.SessionResult{}, model.ErrConflict
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.SessionResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", email,
			"error", err.Error())
		return model.SessionResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user, err := a.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, model.ErrConflict) {
		a.logger.Info("Auth service: user created concurrently",
			"email", email)
		return model.SessionResult{}, model.ErrConflict
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.SessionResult{}, fmt.Errorf("failed to create user: %w", err)
	}

	result, err := a.startSession(ctx, user)
	if err != nil {
		return model.SessionResult{}, err
	}

	a.logger.Info("Auth service: user registration completed successfully",
		"user_id", user.ID)

	return result, nil
}

// Login checks credentials and signs the user in. Unknown email and wrong
// password both yield model.ErrInvalidCredentials after the same amount of work.
func (a *Auth) Login(ctx context.Context, params model.LoginParams) (model.SessionResult, error) {
	email := model.NormalizeEmail(params.Email)
	a.logger.Debug("Auth service: starting user login",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.hasher.CompareDummy(params.Password)
		a.logger.Info("Auth service: login failed",
			"email", email)
		return model.SessionResult{}, model.ErrInvalidCredentials
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.SessionResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := a.hasher.Compare(user.PasswordHash, params.Password); err != nil {
		a.logger.Info("Auth service: login failed",
			"email", email)
		return model.SessionResult{}, model.ErrInvalidCredentials
	}

	result, err := a.startSession(ctx, user)
	if err != nil {
		return model.SessionResult{}, err
	}

	a.logger.Info("Auth service: user login completed successfully",
		"user_id", user.ID)

	return result, nil
}

// ResetPassword replaces the password of the account with the given email.
// An unknown email is not an error so the response does not reveal which emails are registered.
func (a *Auth) ResetPassword(ctx context.Context, params model.ResetPasswordParams) error {
	if !a.allowPasswordReset {
		return ErrPasswordResetDisabled
	}
	if err := validatePassword("newPassword", params.NewPassword); err != nil {
		return err
	}

	email := model.NormalizeEmail(params.Email)

	hash, err := a.hasher.Hash(params.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	err = a.userStore.UpdatePassword(ctx, email, hash)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: password reset for unknown email",
			"email", email)
		return nil
	}
	if err != nil {
		a.logger.Error("Auth service: failed to update password",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to update password: %w", err)
	}

	a.logger.Info("Auth service: password reset completed",
		"email", email)

	return nil
}

// CurrentUser returns the account behind a verified session. A session whose
// user no longer exists is unauthorized.
func (a *Auth) CurrentUser(ctx context.Context, id uuid.UUID) (model.Claim, error) {
	user, err := a.userStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: session user not found",
			"user_id", id)
		return model.Claim{}, model.ErrUnauthorized
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by id",
			"user_id", id,
			"error", err.Error())
		return model.Claim{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user.Claim(), nil
}

// validatePassword checks the length rules for a new password. The lower
// bound counts characters, the upper bound counts bytes as bcrypt does.
func validatePassword(field, password string) error {
	if utf8.RuneCountInString(password) < minPasswordChars {
		return model.NewValidationError(field, "Password must be at least 6 characters")
	}
	if len(password) > model.MaxPasswordBytes {
		return model.NewValidationError(field, fmt.Sprintf("Password must be at most %d bytes", model.MaxPasswordBytes))
	}
	return nil
}

func (a *Auth) startSession(ctx context.Context, user model.User) (model.SessionResult, error) {
	claim := user.Claim()
	issued, err := a.sessions.Issue(ctx, claim)
	if err != nil {
		return model.SessionResult{}, fmt.Errorf("failed to start session: %w", err)
	}
	return model.SessionResult{User: claim, Token: issued}, nil
}
