package mocks

import (
	context "context"

	model "github.com/dtroode/lifeos-server/internal/model"
	mock "github.com/stretchr/testify/mock"

	uuid "github.com/google/uuid"
)

// AuthService is a testify mock for the AuthService type
type AuthService struct {
	mock.Mock
}

// CurrentUser provides a mock function with given fields: ctx, id
func (_m *AuthService) CurrentUser(ctx context.Context, id uuid.UUID) (model.Claim, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for CurrentUser")
	}

	var r0 model.Claim
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (model.Claim, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) model.Claim); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(model.Claim)
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Login provides a mock function with given fields: ctx, params
func (_m *AuthService) Login(ctx context.Context, params model.LoginParams) (model.SessionResult, error) {
	ret := _m.Called(ctx, params)

	if len(ret) == 0 {
		panic("no return value specified for Login")
	}

	var r0 model.SessionResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.LoginParams) (model.SessionResult, error)); ok {
		return rf(ctx, params)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.LoginParams) model.SessionResult); ok {
		r0 = rf(ctx, params)
	} else {
		r0 = ret.Get(0).(model.SessionResult)
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.LoginParams) error); ok {
		r1 = rf(ctx, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Register provides a mock function with given fields: ctx, params
func (_m *AuthService) Register(ctx context.Context, params model.RegisterParams) (model.SessionResult, error) {
	ret := _m.Called(ctx, params)

	if len(ret) == 0 {
		panic("no return value specified for Register")
	}

	var r0 model.SessionResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.RegisterParams) (model.SessionResult, error)); ok {
		return rf(ctx, params)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.RegisterParams) model.SessionResult); ok {
		r0 = rf(ctx, params)
	} else {
		r0 = ret.Get(0).(model.SessionResult)
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.RegisterParams) error); ok {
		r1 = rf(ctx, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ResetPassword provides a mock function with given fields: ctx, params
func (_m *AuthService) ResetPassword(ctx context.Context, params model.ResetPasswordParams) error {
	ret := _m.Called(ctx, params)

	if len(ret) == 0 {
		panic("no return value specified for ResetPassword")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, model.ResetPasswordParams) error); ok {
		r0 = rf(ctx, params)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewAuthService creates a new instance of AuthService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewAuthService(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuthService {
	mock := &AuthService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
