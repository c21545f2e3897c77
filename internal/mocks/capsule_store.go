package mocks

import (
	context "context"
	model "github.com/dtroode/lifeos-server/internal/model"
	uuid "github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
)

// CapsuleStore is a testify mock for the CapsuleStore type
type CapsuleStore struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, capsule
func (_m *CapsuleStore) Create(ctx context.Context, capsule model.Capsule) (model.Capsule, error) {
	ret := _m.Called(ctx, capsule)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 model.Capsule
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Capsule) (model.Capsule, error)); ok {
		return rf(ctx, capsule)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.Capsule) model.Capsule); ok {
		r0 = rf(ctx, capsule)
	} else {
		r0 = ret.Get(0).(model.Capsule)
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.Capsule) error); ok {
		r1 = rf(ctx, capsule)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetByOwner provides a mock function with given fields: ctx, ownerID
func (_m *CapsuleStore) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Capsule, error) {
	ret := _m.Called(ctx, ownerID)

	if len(ret) == 0 {
		panic("no return value specified for GetByOwner")
	}

	var r0 []model.Capsule
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) ([]model.Capsule, error)); ok {
		return rf(ctx, ownerID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) []model.Capsule); ok {
		r0 = rf(ctx, ownerID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]model.Capsule)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, ownerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetOwned provides a mock function with given fields: ctx, id, ownerID
func (_m *CapsuleStore) GetOwned(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (model.Capsule, error) {
	ret := _m.Called(ctx, id, ownerID)

	if len(ret) == 0 {
		panic("no return value specified for GetOwned")
	}

	var r0 model.Capsule
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) (model.Capsule, error)); ok {
		return rf(ctx, id, ownerID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) model.Capsule); ok {
		r0 = rf(ctx, id, ownerID)
	} else {
		r0 = ret.Get(0).(model.Capsule)
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r1 = rf(ctx, id, ownerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeleteOwned provides a mock function with given fields: ctx, id, ownerID
func (_m *CapsuleStore) DeleteOwned(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (model.Capsule, error) {
	ret := _m.Called(ctx, id, ownerID)

	if len(ret) == 0 {
		panic("no return value specified for DeleteOwned")
	}

	var r0 model.Capsule
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) (model.Capsule, error)); ok {
		return rf(ctx, id, ownerID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) model.Capsule); ok {
		r0 = rf(ctx, id, ownerID)
	} else {
		r0 = ret.Get(0).(model.Capsule)
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r1 = rf(ctx, id, ownerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewCapsuleStore creates a new instance of CapsuleStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewCapsuleStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *CapsuleStore {
	mock := &CapsuleStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
