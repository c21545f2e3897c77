package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/lifeos-server/internal/logger"
	"github.com/dtroode/lifeos-server/internal/model"
)

// SessionVerifier resolves the identity behind a session token.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (model.Claim, error)
}

// Gate guards page routes. Protected pages require a valid session cookie;
// public-only pages bounce signed-in users to the landing page.
type Gate struct {
	config         model.GateConfig
	cookieName     string
	sessions       SessionVerifier
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewGate creates a new Gate middleware instance.
func NewGate(
	config model.GateConfig,
	cookieName string,
	sessions SessionVerifier,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Gate {
	return &Gate{
		config:         config,
		cookieName:     cookieName,
		sessions:       sessions,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Handle returns the gin handler. It is meant for engine.Use so it runs for
// every request, matched route or not.
func (g *Gate) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if isAPIPath(path) {
			c.Next()
			return
		}

		protected := g.config.IsProtected(path)
		publicOnly := g.config.IsPublicOnly(path)
		if !protected && !publicOnly {
			c.Next()
			return
		}

		claim, ok := g.session(c)

		if protected {
			if !ok {
				g.logger.Debug("Gate middleware: redirecting anonymous request",
					"path", path)
				g.redirect(c, g.config.LoginPath)
				return
			}
			c.Request = c.Request.WithContext(g.contextManager.SetClaimToContext(c.Request.Context(), claim))
			c.Next()
			return
		}

		if ok {
			g.redirect(c, g.config.LandingPath)
			return
		}
		c.Next()
	}
}

func (g *Gate) session(c *gin.Context) (model.Claim, bool) {
	token, err := c.Cookie(g.cookieName)
	if err != nil || token == "" {
		return model.Claim{}, false
	}

	claim, err := g.sessions.Verify(c.Request.Context(), token)
	if err != nil {
		return model.Claim{}, false
	}
	return claim, true
}

func (g *Gate) redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusTemporaryRedirect, location)
	c.Abort()
}

func isAPIPath(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}
