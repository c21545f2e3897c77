package mocks

import (
	context "context"
	model "github.com/dtroode/lifeos-server/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// ContextManager is a testify mock for the ContextManager type
type ContextManager struct {
	mock.Mock
}

// GetClaimFromContext provides a mock function with given fields: ctx
func (_m *ContextManager) GetClaimFromContext(ctx context.Context) (model.Claim, bool) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for GetClaimFromContext")
	}

	var r0 model.Claim
	var r1 bool
	if rf, ok := ret.Get(0).(func(context.Context) (model.Claim, bool)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) model.Claim); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(model.Claim)
	}

	if rf, ok := ret.Get(1).(func(context.Context) bool); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Get(1).(bool)
	}

	return r0, r1
}

// SetClaimToContext provides a mock function with given fields: ctx, claim
func (_m *ContextManager) SetClaimToContext(ctx context.Context, claim model.Claim) context.Context {
	ret := _m.Called(ctx, claim)

	if len(ret) == 0 {
		panic("no return value specified for SetClaimToContext")
	}

	var r0 context.Context
	if rf, ok := ret.Get(0).(func(context.Context, model.Claim) context.Context); ok {
		r0 = rf(ctx, claim)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(context.Context)
		}
	}

	return r0
}

// NewContextManager creates a new instance of ContextManager. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewContextManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *ContextManager {
	mock := &ContextManager{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
