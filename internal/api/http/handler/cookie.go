package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/lifeos-server/internal/model"
)

// SessionCookie writes and clears the session cookie.
type SessionCookie struct {
	name   string
	secure bool
}

// NewSessionCookie creates a cookie writer. secure should be true everywhere
// except local development over plain HTTP.
func NewSessionCookie(name string, secure bool) *SessionCookie {
	return &SessionCookie{name: name, secure: secure}
}

// Login stores the session token in the cookie until the token expires.
func (s *SessionCookie) Login(c *gin.Context, token model.IssuedToken) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     s.name,
		Value:    token.Token,
		Path:     "/",
		Expires:  token.ExpiresAt,
		MaxAge:   int(token.ExpiresAt.Sub(token.IssuedAt) / time.Second),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Logout deletes the cookie.
func (s *SessionCookie) Logout(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Token returns the session token sent with the request, if any.
func (s *SessionCookie) Token(c *gin.Context) string {
	token, err := c.Cookie(s.name)
	if err != nil {
		return ""
	}
	return token
}
