package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/lifeos-server/internal/logger"
	"github.com/dtroode/lifeos-server/internal/model"
)

// ResetPasswordMessage is returned by forgot-password whether or not the
// email belongs to an account.
const ResetPasswordMessage = "If this email is registered, the password has been reset."

// AuthService defines registration, login, password reset and session user lookup.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) (model.SessionResult, error)
	Login(ctx context.Context, params model.LoginParams) (model.SessionResult, error)
	ResetPassword(ctx context.Context, params model.ResetPasswordParams) error
	CurrentUser(ctx context.Context, id uuid.UUID) (model.Claim, error)
}

// SessionService verifies and revokes session tokens.
type SessionService interface {
	Verify(ctx context.Context, token string) (model.Claim, error)
	Revoke(ctx context.Context, token string) error
}

type registerRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

var registerMessages = validationMessages{
	"name":         "Name must be at least 2 characters",
	"email":        "Invalid email address",
	"password":     "Password must be at least 6 characters",
	"password.max": "Password must be at most 72 bytes",
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

var loginMessages = validationMessages{
	"email":    "Invalid email address",
	"password": "Password is required",
}

type forgotPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"newPassword" binding:"required,min=6,max=72"`
}

var forgotPasswordMessages = validationMessages{
	"email":           "Invalid email address",
	"newPassword":     "Password must be at least 6 characters",
	"newPassword.max": "Password must be at most 72 bytes",
}

type userResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func newUserResponse(claim model.Claim) userResponse {
	return userResponse{ID: claim.ID, Name: claim.Name, Email: claim.Email}
}

// Auth handles the /api/auth endpoints.
type Auth struct {
	authService    AuthService
	sessions       SessionService
	cookie         *SessionCookie
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(
	authService AuthService,
	sessions SessionService,
	cookie *SessionCookie,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		authService:    authService,
		sessions:       sessions,
		cookie:         cookie,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register creates an account and signs the user in.
func (h *Auth) Register(c *gin.Context) {
	var req registerRequest
	if err := bind(c, &req, registerMessages); err != nil {
		abortWithError(c, err)
		return
	}

	h.logger.Debug("Auth handler: processing registration request",
		"email", req.Email)

	result, err := h.authService.Register(c.Request.Context(), model.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Debug("Auth handler: registration failed",
			"email", req.Email,
			"error", err.Error())
		abortWithError(c, err)
		return
	}

	h.cookie.Login(c, result.Token)

	h.logger.Info("Auth handler: user registered",
		"user_id", result.User.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    newUserResponse(result.User),
	})
}

// Login verifies credentials and sets the session cookie.
func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := bind(c, &req, loginMessages); err != nil {
		abortWithError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), model.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Debug("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		abortWithError(c, err)
		return
	}

	h.cookie.Login(c, result.Token)

	h.logger.Info("Auth handler: user logged in",
		"user_id", result.User.ID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    newUserResponse(result.User),
	})
}

// Logout clears the session cookie and revokes the token when revocation is enabled.
func (h *Auth) Logout(c *gin.Context) {
	if token := h.cookie.Token(c); token != "" {
		if err := h.sessions.Revoke(c.Request.Context(), token); err != nil {
			h.logger.Error("Auth handler: failed to revoke session",
				"error", err.Error())
		}
	}

	h.cookie.Logout(c)

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// ForgotPassword resets the password directly. The answer is the same for
// known and unknown emails.
func (h *Auth) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := bind(c, &req, forgotPasswordMessages); err != nil {
		abortWithError(c, err)
		return
	}

	err := h.authService.ResetPassword(c.Request.Context(), model.ResetPasswordParams{
		Email:       req.Email,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": ResetPasswordMessage})
}

// Session returns the user behind the current session.
func (h *Auth) Session(c *gin.Context) {
	claim, ok := h.contextManager.GetClaimFromContext(c.Request.Context())
	if !ok {
		abortWithError(c, model.ErrUnauthorized)
		return
	}

	user, err := h.authService.CurrentUser(c.Request.Context(), claim.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user)})
}
