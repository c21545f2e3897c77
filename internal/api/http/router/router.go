package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/lifeos-server/internal/api/http/handler"
	"github.com/dtroode/lifeos-server/internal/api/http/middleware"
	"github.com/dtroode/lifeos-server/internal/logger"
	"github.com/dtroode/lifeos-server/internal/model"
)

// SessionService verifies and revokes session tokens.
type SessionService interface {
	middleware.SessionVerifier
	handler.SessionService
}

// Options holds the HTTP-level settings of the router.
type Options struct {
	Gate          model.GateConfig
	CookieName    string
	SecureCookie  bool
	MaxAttachment int64
}

// Router wires handlers and middleware into a gin engine.
type Router struct {
	authService    handler.AuthService
	sessions       SessionService
	capsuleService handler.CapsuleService
	pinger         handler.Pinger
	contextManager model.ContextManager
	options        Options
	logger         *logger.Logger
}

// New creates new HTTP Router instance. pinger may be nil.
func New(
	authService handler.AuthService,
	sessions SessionService,
	capsuleService handler.CapsuleService,
	pinger handler.Pinger,
	contextManager model.ContextManager,
	options Options,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		sessions:       sessions,
		capsuleService: capsuleService,
		pinger:         pinger,
		contextManager: contextManager,
		options:        options,
		logger:         logger,
	}
}

// Register builds the engine. The access gate runs for every request,
// including ones that match no route.
func (r *Router) Register() *gin.Engine {
	logging := middleware.NewLogging(r.logger)
	gate := middleware.NewGate(r.options.Gate, r.options.CookieName, r.sessions, r.contextManager, r.logger)

	e := gin.New()
	e.HandleMethodNotAllowed = true
	e.Use(logging.Handle(), gin.CustomRecovery(r.recover), gate.Handle())

	e.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})
	e.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method Not Allowed"})
	})

	health := handler.NewHealth(r.pinger, r.logger)
	e.GET("/healthz", health.Check)

	r.registerPageRoutes(e)
	r.registerAuthRoutes(e)
	r.registerCapsuleRoutes(e)

	return e
}

func (r *Router) recover(c *gin.Context, recovered any) {
	r.logger.Error("HTTP handler panicked",
		"path", c.Request.URL.Path,
		"panic", recovered)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
}

var (
	publicPages    = []string{"login", "register"}
	protectedPages = []string{"dashboard", "memories", "moods", "messages", "vault"}
)

func (r *Router) registerPageRoutes(e *gin.Engine) {
	pages := handler.NewPage(r.contextManager)
	for _, name := range publicPages {
		e.GET("/"+name, pages.Public(name))
	}
	for _, name := range protectedPages {
		e.GET("/"+name, pages.Protected(name))
	}
}

func (r *Router) registerAuthRoutes(e *gin.Engine) {
	cookie := handler.NewSessionCookie(r.options.CookieName, r.options.SecureCookie)
	authHandler := handler.NewAuth(r.authService, r.sessions, cookie, r.contextManager, r.logger)
	authenticate := middleware.NewAuthenticate(r.options.CookieName, r.sessions, r.contextManager, r.logger)

	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.GET("/session", authenticate.Handle(), authHandler.Session)
}

func (r *Router) registerCapsuleRoutes(e *gin.Engine) {
	capsuleHandler := handler.NewCapsule(r.capsuleService, r.contextManager, r.options.MaxAttachment, r.logger)
	authenticate := middleware.NewAuthenticate(r.options.CookieName, r.sessions, r.contextManager, r.logger)

	messages := e.Group("/api/messages", authenticate.Handle())
	messages.GET("", capsuleHandler.List)
	messages.POST("", capsuleHandler.Create)
	messages.DELETE("", capsuleHandler.Delete)
	messages.DELETE("/:id", capsuleHandler.Delete)
	messages.GET("/:id/attachment", capsuleHandler.Attachment)
}
