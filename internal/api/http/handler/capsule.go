package handler

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/lifeos-server/internal/logger"
	"github.com/dtroode/lifeos-server/internal/model"
)

// multipartOverhead is the allowance for form fields and boundaries on top
// of the attachment itself.
const multipartOverhead = 1 << 20

// CapsuleService defines operations on time capsules.
type CapsuleService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]model.CapsuleView, error)
	Create(ctx context.Context, ownerID uuid.UUID, params model.CreateCapsuleParams) (model.CapsuleView, error)
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	Attachment(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (io.ReadCloser, model.CapsuleView, error)
}

type createCapsuleRequest struct {
	Content  string    `json:"content" form:"content" binding:"required"`
	UnlockAt time.Time `json:"unlockAt" form:"unlockAt" binding:"required"`
}

var createCapsuleMessages = validationMessages{
	"content":  "Content is required",
	"unlockAt": "Unlock date is required",
}

// Capsule handles the /api/messages endpoints.
type Capsule struct {
	capsuleService CapsuleService
	contextManager model.ContextManager
	maxAttachment  int64
	logger         *logger.Logger
}

// NewCapsule creates a new Capsule handler. maxAttachment bounds the size of
// multipart request bodies.
func NewCapsule(
	capsuleService CapsuleService,
	contextManager model.ContextManager,
	maxAttachment int64,
	logger *logger.Logger,
) *Capsule {
	return &Capsule{
		capsuleService: capsuleService,
		contextManager: contextManager,
		maxAttachment:  maxAttachment,
		logger:         logger,
	}
}

// List returns all capsules of the current user.
func (h *Capsule) List(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	capsules, err := h.capsuleService.List(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, capsules)
}

// Create seals a new capsule. The body is either JSON or a multipart form
// with an optional "attachment" file.
func (h *Capsule) Create(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	multipart := c.ContentType() == gin.MIMEMultipartPOSTForm
	if multipart {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxAttachment+multipartOverhead)
	}

	var req createCapsuleRequest
	if err := bind(c, &req, createCapsuleMessages); err != nil {
		abortWithError(c, err)
		return
	}

	params := model.CreateCapsuleParams{
		Content:  req.Content,
		UnlockAt: req.UnlockAt,
	}

	if multipart {
		fileHeader, err := c.FormFile("attachment")
		switch {
		case errors.Is(err, http.ErrMissingFile):
		case err != nil:
			abortWithError(c, model.NewValidationError("attachment", invalidBodyMessage))
			return
		default:
			file, err := fileHeader.Open()
			if err != nil {
				abortWithError(c, err)
				return
			}
			defer file.Close()

			params.Attachment = &model.AttachmentUpload{
				Name:        fileHeader.Filename,
				ContentType: fileHeader.Header.Get("Content-Type"),
				Size:        fileHeader.Size,
				Reader:      file,
			}
		}
	}

	view, err := h.capsuleService.Create(c.Request.Context(), userID, params)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// Delete removes a capsule. The id comes from the path or the "id" query parameter.
func (h *Capsule) Delete(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	rawID := c.Param("id")
	if rawID == "" {
		rawID = c.Query("id")
	}
	if rawID == "" {
		abortWithError(c, model.NewValidationError("id", "Message ID required"))
		return
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		abortWithError(c, model.ErrNotFound)
		return
	}

	if err := h.capsuleService.Delete(c.Request.Context(), id, userID); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Attachment streams the attachment of an unlocked capsule.
func (h *Capsule) Attachment(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithError(c, model.ErrNotFound)
		return
	}

	reader, view, err := h.capsuleService.Attachment(c.Request.Context(), id, userID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	defer reader.Close()

	contentType := view.AttachmentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	headers := map[string]string{
		"Content-Disposition":    mime.FormatMediaType("attachment", map[string]string{"filename": view.AttachmentName}),
		"X-Content-Type-Options": "nosniff",
	}

	h.logger.Debug("Capsule handler: streaming attachment",
		"capsule_id", id,
		"size", view.AttachmentSize)

	c.DataFromReader(http.StatusOK, view.AttachmentSize, contentType, reader, headers)
}

func (h *Capsule) userID(c *gin.Context) (uuid.UUID, bool) {
	claim, ok := h.contextManager.GetClaimFromContext(c.Request.Context())
	if !ok {
		abortWithError(c, model.ErrUnauthorized)
		return uuid.Nil, false
	}
	return claim.ID, true
}
