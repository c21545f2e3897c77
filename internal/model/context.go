package model

import (
	"context"
)

// ContextManager carries the verified session claim through a request context.
type ContextManager interface {
	SetClaimToContext(ctx context.Context, claim Claim) context.Context
	GetClaimFromContext(ctx context.Context) (Claim, bool)
}
