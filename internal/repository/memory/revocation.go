package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dtroode/lifeos-server/internal/model"
)

var _ model.RevocationStore = (*RevocationList)(nil)

// RevocationList keeps revoked token ids until the tokens would have expired anyway.
type RevocationList struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewRevocationList() *RevocationList {
	return &RevocationList{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (l *RevocationList) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pruneLocked()
	if !l.now().Before(expiresAt) {
		return nil
	}
	l.revoked[tokenID] = expiresAt
	return nil
}

func (l *RevocationList) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	expiresAt, ok := l.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if !l.now().Before(expiresAt) {
		delete(l.revoked, tokenID)
		return false, nil
	}
	return true, nil
}

func (l *RevocationList) pruneLocked() {
	now := l.now()
	for id, exp := range l.revoked {
		if !now.Before(exp) {
			delete(l.revoked, id)
		}
	}
}
