package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/lifeos-server/internal/mocks"
	"github.com/dtroode/lifeos-server/internal/model"
	"github.com/dtroode/lifeos-server/internal/testutil"
)

func newCapsuleRouter(t *testing.T, claim *model.Claim, maxAttachment int64) (*gin.Engine, *mocks.CapsuleService) {
	t.Helper()

	capsuleService := mocks.NewCapsuleService(t)
	r, contextManager := newEngine(claim)

	h := NewCapsule(capsuleService, contextManager, maxAttachment, testutil.MakeNoopLogger())
	r.GET("/api/messages", h.List)
	r.POST("/api/messages", h.Create)
	r.DELETE("/api/messages", h.Delete)
	r.DELETE("/api/messages/:id", h.Delete)
	r.GET("/api/messages/:id/attachment", h.Attachment)

	return r, capsuleService
}

func authenticated() *model.Claim {
	c := testClaim
	return &c
}

func TestCapsule_RequiresClaim(t *testing.T) {
	r, _ := newCapsuleRouter(t, nil, 1<<20)

	requests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/messages"},
		{http.MethodPost, "/api/messages"},
		{http.MethodDelete, "/api/messages?id=" + uuid.NewString()},
		{http.MethodGet, "/api/messages/" + uuid.NewString() + "/attachment"},
	}

	for _, req := range requests {
		w := doJSON(t, r, req.method, req.path, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", req.method, req.path)
	}
}

func TestCapsule_List(t *testing.T) {
	r, capsuleService := newCapsuleRouter(t, authenticated(), 1<<20)

	unlockAt := time.Date(2030, 5, 17, 12, 0, 0, 0, time.UTC)
	views := []model.CapsuleView{
		{ID: uuid.New(), OwnerID: testClaim.ID, Content: model.LockedPlaceholder(unlockAt), UnlockAt: unlockAt, Locked: true},
		{ID: uuid.New(), OwnerID: testClaim.ID, Content: "hello past me", UnlockAt: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	capsuleService.On("List", mock.Anything, testClaim.ID).Return(views, nil).Once()

	w := doJSON(t, r, http.MethodGet, "/api/messages", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"id":"`+views[0].ID.String()+`","userId":"`+testClaim.ID.String()+`","content":"Locked until 2030-05-17","unlockAt":"2030-05-17T12:00:00Z","createdAt":"0001-01-01T00:00:00Z","isLocked":true,"hasAttachment":false},
		{"id":"`+views[1].ID.String()+`","userId":"`+testClaim.ID.String()+`","content":"hello past me","unlockAt":"2020-01-01T00:00:00Z","createdAt":"0001-01-01T00:00:00Z","isLocked":false,"hasAttachment":false}
	]`, w.Body.String())
}

func TestCapsule_List_Empty(t *testing.T) {
	r, capsuleService := newCapsuleRouter(t, authenticated(), 1<<20)

	capsuleService.On("List", mock.Anything, testClaim.ID).Return([]model.CapsuleView{}, nil).Once()

	w := doJSON(t, r, http.MethodGet, "/api/messages", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCapsule_Create_JSON(t *testing.T) {
	r, capsuleService := newCapsuleRouter(t, authenticated(), 1<<20)

	unlockAt := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	view := model.CapsuleView{ID: uuid.New(), OwnerID: testClaim.ID, Content: model.LockedPlaceholder(unlockAt), UnlockAt: unlockAt, Locked: true}

	capsuleService.On("Create", mock.Anything, testClaim.ID, mock.MatchedBy(func(p model.CreateCapsuleParams) bool {
		return p.Content == "open me later" && p.UnlockAt.Equal(unlockAt) && p.Attachment == nil
	})).Return(view, nil).Once()

	w := doJSON(t, r, http.MethodPost, "/api/messages", map[string]string{
		"content":  "open me later",
		"unlockAt": "2030-01-02T03:04:05Z",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, view.ID.String(), body["id"])
	assert.Equal(t, true, body["isLocked"])
	assert.Equal(t, "Locked until 2030-01-02", body["content"])
}

func TestCapsule_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    any
		wantMsg string
	}{
		{
			name:    "missing content",
			body:    map[string]string{"unlockAt": "2030-01-02T03:04:05Z"},
			wantMsg: "Content is required",
		},
		{
			name:    "missing unlock date",
			body:    map[string]string{"content": "hi"},
			wantMsg: "Unlock date is required",
		},
		{
			name:    "unparseable unlock date",
			body:    map[string]string{"content": "hi", "unlockAt": "next tuesday"},
			wantMsg: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newCapsuleRouter(t, authenticated(), 1<<20)

			w := doJSON(t, r, http.MethodPost, "/api/messages", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantMsg, decodeBody(t, w)["error"])
		})
	}
}

func TestCapsule_Create_ServiceValidation(t *testing.T) {
	r, capsuleService := newCapsuleRouter(t, authenticated(), 1<<20)

	capsuleService.On("Create", mock.Anything, testClaim.ID, mock.Anything).
		Return(model.CapsuleView{}, model.NewValidationError("unlockAt", "Unlock date must be in the future")).Once()

	w := doJSON(t, r, http.MethodPost, "/api/messages", map[string]string{
		"content":  "too late",
		"unlockAt": "2001-01-01T00:00:00Z",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Unlock date must be in the future", decodeBody(t, w)["error"])
}

func newMultipartRequest(t *testing.T, fields map[string]string, fileName, contentType string, data []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileName != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="attachment"; filename="`+fileName+`"`)
		header.Set("Content-Type", contentType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/messages", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestCapsule_Create_Multipart(t *testing.T) {
	r, capsuleService := newCapsuleRouter(t, authenticated(), 1<<20)

	var uploaded []byte
	var params model.CreateCapsuleParams
	capsuleService.On("Create", mock.Anything, testClaim.ID, mock.Anything).
		Run(func(args mock.Arguments) {
			params = args.Get(2).(model.CreateCapsuleParams)
			require.NotNil(t, params.Attachment)
			data, err := io.ReadAll(params.Attachment.Reader)
			require.NoError(t, err)
			uploaded = data
		}).
		Return(model.CapsuleView{ID: uuid.New(), Locked: true, HasAttachment: true}, nil).Once()

	req := newMultipartRequest(t, map[string]string{
		"content":  "with a photo",
		"unlockAt": "2030-01-02T03:04:05Z",
	}, "photo.png", "image/png", []byte("png-bytes"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "with a photo", params.Content)
	assert.True(t, params.UnlockAt.Equal(time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)))
	assert.Equal(t, "photo.png", params.Attachment.Name)
	assert.Equal(t, "image/png", params.Attachment.ContentType)
	assert.Equal(t, int64(len("png-bytes")), params.Attachment.Size)
	assert.Equal(t, []byte("png-bytes"), uploaded)
	assert.Equal(t, true, decodeBody(t, w)["hasAttachment"])
}

func TestCapsule_Create_MultipartWithoutFile(t *testing.T) {
	r, capsuleService := newCapsuleRouter(t, authenticated(), 1<<20)

	capsuleService.On("Create", mock.Anything, testClaim.ID, mock.MatchedBy(func(p model.CreateCapsuleParams) bool {
		return p.Content == "plain" && p.Attachment == nil
	})).Return(model.CapsuleView{ID: uuid.New(), Locked: true}, nil).Once()

	req := newMultipartRequest(t, map[string]string{
		"content":  "plain",
		"unlockAt": "2030-01-02T03:04:05Z",
	}, "", "", nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestCapsule_Create_MultipartTooLarge(t *testing.T) {
	r, _ := newCapsuleRouter(t, authenticated(), 16)

	req := newMultipartRequest(t, map[string]string{
		"content":  "huge",
		"unlockAt": "2030-01-02T03:04:05Z",
	}, "big.bin", "application/octet-stream", bytes.Repeat([]byte{1}, multipartOverhead+64))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["error"])
}

func TestCapsule_Delete(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		path       string
		setup      func(s *mocks.CapsuleService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "query id",
			path: "/api/messages?id=" + id.String(),
			setup: func(s *mocks.CapsuleService) {
				s.On("Delete", mock.Anything, id, testClaim.ID).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true}`,
		},
		{
			name: "path id",
			path: "/api/messages/" + id.String(),
			setup: func(s *mocks.CapsuleService) {
				s.On("Delete", mock.Anything, id, testClaim.ID).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true}`,
		},
		{
			name:       "missing id",
			path:       "/api/messages",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Message ID required"}`,
		},
		{
			name:       "malformed id",
			path:       "/api/messages?id=not-a-uuid",
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Message not found"}`,
		},
		{
			name: "foreign or missing capsule",
			path: "/api/messages/" + id.String(),
			setup: func(s *mocks.CapsuleService) {
				s.On("Delete", mock.Anything, id, testClaim.ID).Return(model.ErrNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Message not found"}`,
		},
		{
			name: "store failure",
			path: "/api/messages/" + id.String(),
			setup: func(s *mocks.CapsuleService) {
				s.On("Delete", mock.Anything, id, testClaim.ID).Return(assert.AnError).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, capsuleService := newCapsuleRouter(t, authenticated(), 1<<20)
			if tt.setup != nil {
				tt.setup(capsuleService)
			}

			w := doJSON(t, r, http.MethodDelete, tt.path, nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestCapsule_Attachment(t *testing.T) {
	id := uuid.New()

	t.Run("unlocked", func(t *testing.T) {
		r, capsuleService := newCapsuleRouter(t, authenticated(), 1<<20)

		view := model.CapsuleView{
			ID:             id,
			HasAttachment:  true,
			AttachmentName: "letter.txt",
			AttachmentType: "text/plain",
			AttachmentSize: int64(len("dear me")),
		}
		capsuleService.On("Attachment", mock.Anything, id, testClaim.ID).
			Return(io.NopCloser(bytes.NewBufferString("dear me")), view, nil).Once()

		w := doJSON(t, r, http.MethodGet, "/api/messages/"+id.String()+"/attachment", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "dear me", w.Body.String())
		assert.Equal(t, "text/plain", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename=letter.txt`, w.Header().Get("Content-Disposition"))
	})

	t.Run("locked", func(t *testing.T) {
		r, capsuleService := newCapsuleRouter(t, authenticated(), 1<<20)

		capsuleService.On("Attachment", mock.Anything, id, testClaim.ID).
			Return(nil, model.CapsuleView{}, model.ErrCapsuleLocked).Once()

		w := doJSON(t, r, http.MethodGet, "/api/messages/"+id.String()+"/attachment", nil)

		assert.Equal(t, http.StatusLocked, w.Code)
		assert.Equal(t, "Message is still locked", decodeBody(t, w)["error"])
	})

	t.Run("malformed id", func(t *testing.T) {
		r, _ := newCapsuleRouter(t, authenticated(), 1<<20)

		w := doJSON(t, r, http.MethodGet, "/api/messages/abc/attachment", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
