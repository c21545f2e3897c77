package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/lifeos-server/internal/logger"
	"github.com/dtroode/lifeos-server/internal/model"
)

// DefaultMaxAttachmentSize bounds attachment uploads unless overridden.
const DefaultMaxAttachmentSize int64 = 10 << 20

// Capsule manages time-locked messages. Every operation is scoped by owner.
type Capsule struct {
	capsuleStore  model.CapsuleStore
	storage       model.Storage
	maxAttachment int64
	now           func() time.Time
	logger        *logger.Logger
}

// CapsuleOption configures the Capsule service.
type CapsuleOption func(*Capsule)

// WithCapsuleClock overrides the time source used for lock decisions.
func WithCapsuleClock(now func() time.Time) CapsuleOption {
	return func(s *Capsule) {
		s.now = now
	}
}

// WithMaxAttachmentSize limits the size of attachments accepted by Create.
func WithMaxAttachmentSize(size int64) CapsuleOption {
	return func(s *Capsule) {
		s.maxAttachment = size
	}
}

// NewCapsule creates the service. storage may be nil, in which case
// attachments are rejected.
func NewCapsule(
	capsuleStore model.CapsuleStore,
	storage model.Storage,
	logger *logger.Logger,
	opts ...CapsuleOption,
) *Capsule {
	s := &Capsule{
		capsuleStore:  capsuleStore,
		storage:       storage,
		maxAttachment: DefaultMaxAttachmentSize,
		now:           time.Now,
		logger:        logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create seals a new capsule for owner. unlockAt must lie strictly in the future.
func (s *Capsule) Create(ctx context.Context, ownerID uuid.UUID, params model.CreateCapsuleParams) (model.CapsuleView, error) {
	if ownerID == uuid.Nil {
		return model.CapsuleView{}, model.ErrUnauthorized
	}
	if strings.TrimSpace(params.Content) == "" {
		return model.CapsuleView{}, model.NewValidationError("content", "Content is required")
	}

	now := s.now()
	if !params.UnlockAt.After(now) {
		return model.CapsuleView{}, model.NewValidationError("unlockAt", "Unlock date must be in the future")
	}

	capsule := model.Capsule{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Content:   params.Content,
		UnlockAt:  params.UnlockAt,
		CreatedAt: now,
	}

	if params.Attachment != nil {
		attachment, err := s.uploadAttachment(ctx, capsule, params.Attachment)
		if err != nil {
			return model.CapsuleView{}, err
		}
		capsule.Attachment = &attachment
	}

	saved, err := s.capsuleStore.Create(ctx, capsule)
	if err != nil {
		if capsule.Attachment != nil {
			if err := s.storage.Delete(ctx, capsule.Attachment.Key); err != nil {
				s.logger.Error("Capsule service: failed to delete orphaned attachment",
					"capsule_id", capsule.ID,
					"error", err.Error())
			}
		}
		s.logger.Error("Capsule service: failed to create capsule",
			"user_id", ownerID,
			"error", err.Error())
		return model.CapsuleView{}, fmt.Errorf("failed to create capsule: %w", err)
	}

	s.logger.Info("Capsule service: capsule sealed",
		"user_id", ownerID,
		"capsule_id", saved.ID,
		"unlock_at", saved.UnlockAt)

	return saved.View(now), nil
}

// List returns the owner's capsules with content withheld for those still locked.
func (s *Capsule) List(ctx context.Context, ownerID uuid.UUID) ([]model.CapsuleView, error) {
	if ownerID == uuid.Nil {
		return nil, model.ErrUnauthorized
	}

	capsules, err := s.capsuleStore.GetByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("Capsule service: failed to list capsules",
			"user_id", ownerID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to get capsules by owner: %w", err)
	}

	now := s.now()
	views := make([]model.CapsuleView, 0, len(capsules))
	for _, c := range capsules {
		views = append(views, c.View(now))
	}

	return views, nil
}

// Delete removes a capsule owned by owner. Capsules that do not exist or
// belong to someone else yield model.ErrNotFound and are left untouched.
func (s *Capsule) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	if ownerID == uuid.Nil {
		return model.ErrUnauthorized
	}

	deleted, err := s.capsuleStore.DeleteOwned(ctx, id, ownerID)
	if errors.Is(err, model.ErrNotFound) {
		return model.ErrNotFound
	}
	if err != nil {
		s.logger.Error("Capsule service: failed to delete capsule",
			"user_id", ownerID,
			"capsule_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to delete capsule: %w", err)
	}

	if deleted.Attachment != nil && s.storage != nil {
		if err := s.storage.Delete(ctx, deleted.Attachment.Key); err != nil {
			s.logger.Error("Capsule service: failed to delete attachment",
				"capsule_id", id,
				"error", err.Error())
		}
	}

	s.logger.Info("Capsule service: capsule deleted",
		"user_id", ownerID,
		"capsule_id", id)

	return nil
}

// Attachment opens the attachment of an unlocked capsule. The caller closes the reader.
func (s *Capsule) Attachment(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (io.ReadCloser, model.CapsuleView, error) {
	if ownerID == uuid.Nil {
		return nil, model.CapsuleView{}, model.ErrUnauthorized
	}

	capsule, err := s.capsuleStore.GetOwned(ctx, id, ownerID)
	if errors.Is(err, model.ErrNotFound) {
		return nil, model.CapsuleView{}, model.ErrNotFound
	}
	if err != nil {
		return nil, model.CapsuleView{}, fmt.Errorf("failed to get capsule: %w", err)
	}

	if capsule.Attachment == nil || s.storage == nil {
		return nil, model.CapsuleView{}, model.ErrNotFound
	}

	now := s.now()
	if capsule.LockedAt(now) {
		return nil, model.CapsuleView{}, model.ErrCapsuleLocked
	}

	exists, err := s.storage.Exists(ctx, capsule.Attachment.Key)
	if err != nil {
		s.logger.Error("Capsule service: failed to check attachment",
			"capsule_id", id,
			"error", err.Error())
		return nil, model.CapsuleView{}, fmt.Errorf("failed to check attachment: %w", err)
	}
	if !exists {
		s.logger.Warn("Capsule service: attachment object is missing",
			"capsule_id", id,
			"key", capsule.Attachment.Key)
		return nil, model.CapsuleView{}, model.ErrNotFound
	}

	reader, err := s.storage.Download(ctx, capsule.Attachment.Key)
	if err != nil {
		s.logger.Error("Capsule service: failed to download attachment",
			"capsule_id", id,
			"error", err.Error())
		return nil, model.CapsuleView{}, fmt.Errorf("failed to download attachment: %w", err)
	}

	return reader, capsule.View(now), nil
}

func (s *Capsule) uploadAttachment(ctx context.Context, capsule model.Capsule, upload *model.AttachmentUpload) (model.Attachment, error) {
	if s.storage == nil {
		return model.Attachment{}, model.NewValidationError("attachment", "Attachments are not enabled")
	}
	if upload.Reader == nil || upload.Size <= 0 {
		return model.Attachment{}, model.NewValidationError("attachment", "Attachment is empty")
	}
	if upload.Size > s.maxAttachment {
		return model.Attachment{}, model.NewValidationError("attachment",
			fmt.Sprintf("Attachment must not exceed %d bytes", s.maxAttachment))
	}

	contentType := upload.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	attachment := model.Attachment{
		Key:         attachmentKey(capsule.OwnerID, capsule.ID),
		Name:        upload.Name,
		ContentType: contentType,
		Size:        upload.Size,
	}

	err := s.storage.Upload(ctx, attachment.Key, upload.Reader, upload.Size, contentType)
	if err != nil {
		s.logger.Error("Capsule service: failed to upload attachment",
			"capsule_id", capsule.ID,
			"error", err.Error())
		return model.Attachment{}, fmt.Errorf("failed to upload attachment: %w", err)
	}

	return attachment, nil
}

func attachmentKey(ownerID, capsuleID uuid.UUID) string {
	return fmt.Sprintf("capsules/%s/%s", ownerID, capsuleID)
}
