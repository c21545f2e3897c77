package context

import (
	"context"

	"github.com/google/uuid"

	"github.com/dtroode/lifeos-server/internal/model"
)

type claimKey struct{}

// Manager stores the verified session claim in a request context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

var _ model.ContextManager = (*Manager)(nil)

// SetClaimToContext returns a copy of ctx carrying claim.
func (m *Manager) SetClaimToContext(ctx context.Context, claim model.Claim) context.Context {
	return context.WithValue(ctx, claimKey{}, claim)
}

// GetClaimFromContext returns the claim stored by SetClaimToContext.
// A claim without a user id counts as absent.
func (m *Manager) GetClaimFromContext(ctx context.Context) (model.Claim, bool) {
	claim, ok := ctx.Value(claimKey{}).(model.Claim)
	if !ok || claim.ID == uuid.Nil {
		return model.Claim{}, false
	}
	return claim, true
}
