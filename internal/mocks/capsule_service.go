package mocks

import (
	context "context"
	model "github.com/dtroode/lifeos-server/internal/model"
	uuid "github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
	io "io"
)

// CapsuleService is a testify mock for the CapsuleService type
type CapsuleService struct {
	mock.Mock
}

// Attachment provides a mock function with given fields: ctx, id, ownerID
func (_m *CapsuleService) Attachment(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (io.ReadCloser, model.CapsuleView, error) {
	ret := _m.Called(ctx, id, ownerID)

	if len(ret) == 0 {
		panic("no return value specified for Attachment")
	}

	var r0 io.ReadCloser
	var r1 model.CapsuleView
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) (io.ReadCloser, model.CapsuleView, error)); ok {
		return rf(ctx, id, ownerID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) io.ReadCloser); ok {
		r0 = rf(ctx, id, ownerID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(io.ReadCloser)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID) model.CapsuleView); ok {
		r1 = rf(ctx, id, ownerID)
	} else {
		r1 = ret.Get(1).(model.CapsuleView)
	}

	if rf, ok := ret.Get(2).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r2 = rf(ctx, id, ownerID)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// Create provides a mock function with given fields: ctx, ownerID, params
func (_m *CapsuleService) Create(ctx context.Context, ownerID uuid.UUID, params model.CreateCapsuleParams) (model.CapsuleView, error) {
	ret := _m.Called(ctx, ownerID, params)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 model.CapsuleView
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, model.CreateCapsuleParams) (model.CapsuleView, error)); ok {
		return rf(ctx, ownerID, params)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, model.CreateCapsuleParams) model.CapsuleView); ok {
		r0 = rf(ctx, ownerID, params)
	} else {
		r0 = ret.Get(0).(model.CapsuleView)
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, model.CreateCapsuleParams) error); ok {
		r1 = rf(ctx, ownerID, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Delete provides a mock function with given fields: ctx, id, ownerID
func (_m *CapsuleService) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	ret := _m.Called(ctx, id, ownerID)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r0 = rf(ctx, id, ownerID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// List provides a mock function with given fields: ctx, ownerID
func (_m *CapsuleService) List(ctx context.Context, ownerID uuid.UUID) ([]model.CapsuleView, error) {
	ret := _m.Called(ctx, ownerID)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 []model.CapsuleView
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) ([]model.CapsuleView, error)); ok {
		return rf(ctx, ownerID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) []model.CapsuleView); ok {
		r0 = rf(ctx, ownerID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]model.CapsuleView)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, ownerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewCapsuleService creates a new instance of CapsuleService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewCapsuleService(t interface {
	mock.TestingT
	Cleanup(func())
}) *CapsuleService {
	mock := &CapsuleService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
