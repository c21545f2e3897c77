package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	httpcontext "github.com/dtroode/lifeos-server/internal/api/http/context"
	"github.com/dtroode/lifeos-server/internal/model"
)

var testClaim = model.Claim{
	ID:    uuid.MustParse("7d7b8d0e-4c1c-4a43-9d5e-2f7b2d6c9a11"),
	Email: "alice@example.com",
	Name:  "Alice",
}

// newEngine returns a test engine that authenticates every request as claim
// when claim is not nil.
func newEngine(claim *model.Claim) (*gin.Engine, *httpcontext.Manager) {
	gin.SetMode(gin.TestMode)
	contextManager := httpcontext.NewManager()

	r := gin.New()
	if claim != nil {
		r.Use(func(c *gin.Context) {
			c.Request = c.Request.WithContext(contextManager.SetClaimToContext(c.Request.Context(), *claim))
			c.Next()
		})
	}
	return r, contextManager
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
