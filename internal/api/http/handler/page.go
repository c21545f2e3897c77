package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/lifeos-server/internal/model"
)

// Page serves page descriptors. Rendering is left to the client; the server
// only decides who may see which page.
type Page struct {
	contextManager model.ContextManager
}

// NewPage creates a new Page handler.
func NewPage(contextManager model.ContextManager) *Page {
	return &Page{contextManager: contextManager}
}

// Public describes a page open to anonymous visitors.
func (h *Page) Public(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"page": name})
	}
}

// Protected describes a page behind the access gate together with its viewer.
func (h *Page) Protected(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claim, ok := h.contextManager.GetClaimFromContext(c.Request.Context())
		if !ok {
			abortWithError(c, model.ErrUnauthorized)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"page": name,
			"user": newUserResponse(claim),
		})
	}
}
