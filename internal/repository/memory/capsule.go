package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/lifeos-server/internal/model"
)

var _ model.CapsuleStore = (*CapsuleRepository)(nil)

type CapsuleRepository struct {
	mu       sync.RWMutex
	capsules []model.Capsule
}

func NewCapsuleRepository() *CapsuleRepository {
	return &CapsuleRepository{}
}

func (r *CapsuleRepository) Create(_ context.Context, capsule model.Capsule) (model.Capsule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.capsules {
		if c.ID == capsule.ID {
			return model.Capsule{}, model.ErrConflict
		}
	}

	capsule = cloneCapsule(capsule)
	r.capsules = append(r.capsules, capsule)
	return cloneCapsule(capsule), nil
}

func (r *CapsuleRepository) GetByOwner(_ context.Context, ownerID uuid.UUID) ([]model.Capsule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var owned []model.Capsule
	for _, c := range r.capsules {
		if c.OwnerID == ownerID {
			owned = append(owned, cloneCapsule(c))
		}
	}
	return owned, nil
}

func (r *CapsuleRepository) GetOwned(_ context.Context, id uuid.UUID, ownerID uuid.UUID) (model.Capsule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.capsules {
		if c.ID == id && c.OwnerID == ownerID {
			return cloneCapsule(c), nil
		}
	}
	return model.Capsule{}, model.ErrNotFound
}

func (r *CapsuleRepository) DeleteOwned(_ context.Context, id uuid.UUID, ownerID uuid.UUID) (model.Capsule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.capsules {
		if c.ID == id && c.OwnerID == ownerID {
			r.capsules = append(r.capsules[:i:i], r.capsules[i+1:]...)
			return c, nil
		}
	}
	return model.Capsule{}, model.ErrNotFound
}

func cloneCapsule(c model.Capsule) model.Capsule {
	if c.Attachment != nil {
		a := *c.Attachment
		c.Attachment = &a
	}
	return c
}
