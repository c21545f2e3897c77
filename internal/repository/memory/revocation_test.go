package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevocationList(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewRevocationList()
	l.now = func() time.Time { return now }

	require.NoError(t, l.Revoke(ctx, "a", now.Add(time.Hour)))
	require.NoError(t, l.Revoke(ctx, "expired", now.Add(-time.Second)))

	revoked, err := l.IsRevoked(ctx, "a")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = l.IsRevoked(ctx, "expired")
	require.NoError(t, err)
	assert.False(t, revoked)
	assert.Equal(t, 1, len(l.revoked))

	now = now.Add(time.Hour)
	revoked, err = l.IsRevoked(ctx, "a")
	require.NoError(t, err)
	assert.False(t, revoked)
	assert.Equal(t, 0, len(l.revoked))
}

func TestRevocationList_PrunesOnRevoke(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewRevocationList()
	l.now = func() time.Time { return now }

	require.NoError(t, l.Revoke(ctx, "a", now.Add(time.Minute)))
	now = now.Add(2 * time.Minute)
	require.NoError(t, l.Revoke(ctx, "b", now.Add(time.Minute)))

	assert.Equal(t, 1, len(l.revoked))
}
