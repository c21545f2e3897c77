package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/lifeos-server/internal/logger"
	"github.com/dtroode/lifeos-server/internal/model"
)

// Authenticate guards API routes with the session cookie and answers 401
// instead of redirecting.
type Authenticate struct {
	cookieName     string
	sessions       SessionVerifier
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(cookieName string, sessions SessionVerifier, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		cookieName:     cookieName,
		sessions:       sessions,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Handle verifies the cookie and stores the claim in the request context.
func (m *Authenticate) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.cookieName)
		if err != nil || token == "" {
			m.reject(c)
			return
		}

		claim, err := m.sessions.Verify(c.Request.Context(), token)
		if err != nil {
			m.logger.Debug("Authenticate middleware: invalid session",
				"path", c.Request.URL.Path,
				"error", err.Error())
			m.reject(c)
			return
		}

		c.Request = c.Request.WithContext(m.contextManager.SetClaimToContext(c.Request.Context(), claim))
		c.Next()
	}
}

func (m *Authenticate) reject(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
}
