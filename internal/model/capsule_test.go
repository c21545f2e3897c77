package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCapsule_LockedAt(t *testing.T) {
	unlock := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	c := Capsule{UnlockAt: unlock}

	assert.True(t, c.LockedAt(unlock.Add(-time.Nanosecond)))
	assert.False(t, c.LockedAt(unlock))
	assert.False(t, c.LockedAt(unlock.Add(time.Hour)))
}

func TestCapsule_View(t *testing.T) {
	unlock := time.Date(2026, 5, 1, 23, 30, 0, 0, time.FixedZone("X", -3*3600))
	c := Capsule{
		ID:       uuid.New(),
		OwnerID:  uuid.New(),
		Content:  "see you later",
		UnlockAt: unlock,
		Attachment: &Attachment{
			Key:         "k",
			Name:        "photo.jpg",
			ContentType: "image/jpeg",
			Size:        42,
		},
	}

	tests := []struct {
		name     string
		now      time.Time
		expected CapsuleView
	}{
		{
			name: "locked",
			now:  unlock.Add(-time.Second),
			expected: CapsuleView{
				ID:            c.ID,
				OwnerID:       c.OwnerID,
				Content:       "Locked until 2026-05-02",
				UnlockAt:      unlock,
				Locked:        true,
				HasAttachment: true,
			},
		},
		{
			name: "unlocked",
			now:  unlock,
			expected: CapsuleView{
				ID:             c.ID,
				OwnerID:        c.OwnerID,
				Content:        "see you later",
				UnlockAt:       unlock,
				HasAttachment:  true,
				AttachmentName: "photo.jpg",
				AttachmentType: "image/jpeg",
				AttachmentSize: 42,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, c.View(tt.now))
		})
	}
}

func TestCapsule_ViewNeverLeaksLockedContent(t *testing.T) {
	c := Capsule{Content: "secret", UnlockAt: time.Now().Add(time.Hour)}
	v := c.View(time.Now())

	assert.NotContains(t, v.Content, "secret")
	assert.False(t, v.HasAttachment)
}
