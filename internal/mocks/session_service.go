package mocks

import (
	context "context"
	model "github.com/dtroode/lifeos-server/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// SessionService is a testify mock for the SessionService type
type SessionService struct {
	mock.Mock
}

// Issue provides a mock function with given fields: ctx, claim
func (_m *SessionService) Issue(ctx context.Context, claim model.Claim) (model.IssuedToken, error) {
	ret := _m.Called(ctx, claim)

	if len(ret) == 0 {
		panic("no return value specified for Issue")
	}

	var r0 model.IssuedToken
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Claim) (model.IssuedToken, error)); ok {
		return rf(ctx, claim)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.Claim) model.IssuedToken); ok {
		r0 = rf(ctx, claim)
	} else {
		r0 = ret.Get(0).(model.IssuedToken)
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.Claim) error); ok {
		r1 = rf(ctx, claim)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Revoke provides a mock function with given fields: ctx, token
func (_m *SessionService) Revoke(ctx context.Context, token string) error {
	ret := _m.Called(ctx, token)

	if len(ret) == 0 {
		panic("no return value specified for Revoke")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, token)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Verify provides a mock function with given fields: ctx, token
func (_m *SessionService) Verify(ctx context.Context, token string) (model.Claim, error) {
	ret := _m.Called(ctx, token)

	if len(ret) == 0 {
		panic("no return value specified for Verify")
	}

	var r0 model.Claim
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (model.Claim, error)); ok {
		return rf(ctx, token)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) model.Claim); ok {
		r0 = rf(ctx, token)
	} else {
		r0 = ret.Get(0).(model.Claim)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, token)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewSessionService creates a new instance of SessionService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewSessionService(t interface {
	mock.TestingT
	Cleanup(func())
}) *SessionService {
	mock := &SessionService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
