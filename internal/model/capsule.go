package model

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// CapsuleStore defines persistence operations for time capsules.
// Every method is scoped by owner.
type CapsuleStore interface {
	Create(ctx context.Context, capsule Capsule) (Capsule, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]Capsule, error)
	GetOwned(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (Capsule, error)
	DeleteOwned(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (Capsule, error)
}

// Capsule is a stored time-locked message. Whether it is locked is never
// stored; see LockedAt.
type Capsule struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Content    string
	UnlockAt   time.Time
	CreatedAt  time.Time
	Attachment *Attachment
}

// Attachment describes an object stored next to a capsule.
type Attachment struct {
	Key         string
	Name        string
	ContentType string
	Size        int64
}

// LockedAt reports whether the capsule is still sealed at the given instant.
func (c Capsule) LockedAt(now time.Time) bool {
	return now.Before(c.UnlockAt)
}

// View renders the capsule as seen by its owner at the given instant.
// Content and attachment details are withheld while locked.
func (c Capsule) View(now time.Time) CapsuleView {
	v := CapsuleView{
		ID:            c.ID,
		OwnerID:       c.OwnerID,
		UnlockAt:      c.UnlockAt,
		CreatedAt:     c.CreatedAt,
		Locked:        c.LockedAt(now),
		HasAttachment: c.Attachment != nil,
	}

	if v.Locked {
		v.Content = LockedPlaceholder(c.UnlockAt)
		return v
	}

	v.Content = c.Content
	if c.Attachment != nil {
		v.AttachmentName = c.Attachment.Name
		v.AttachmentType = c.Attachment.ContentType
		v.AttachmentSize = c.Attachment.Size
	}
	return v
}

// LockedPlaceholder is the text returned instead of the content of a locked capsule.
func LockedPlaceholder(unlockAt time.Time) string {
	return fmt.Sprintf("Locked until %s", unlockAt.UTC().Format(time.DateOnly))
}

// CapsuleView is a capsule as returned to callers.
type CapsuleView struct {
	ID             uuid.UUID `json:"id"`
	OwnerID        uuid.UUID `json:"userId"`
	Content        string    `json:"content"`
	UnlockAt       time.Time `json:"unlockAt"`
	CreatedAt      time.Time `json:"createdAt"`
	Locked         bool      `json:"isLocked"`
	HasAttachment  bool      `json:"hasAttachment"`
	AttachmentName string    `json:"attachmentName,omitempty"`
	AttachmentType string    `json:"attachmentType,omitempty"`
	AttachmentSize int64     `json:"attachmentSize,omitempty"`
}

// CreateCapsuleParams contains parameters to seal a new capsule.
type CreateCapsuleParams struct {
	Content    string
	UnlockAt   time.Time
	Attachment *AttachmentUpload
}

// AttachmentUpload is an attachment supplied at capsule creation.
type AttachmentUpload struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}
