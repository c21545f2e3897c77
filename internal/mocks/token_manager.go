package mocks

import (
	model "github.com/dtroode/lifeos-server/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// TokenManager is a testify mock for the TokenManager type
type TokenManager struct {
	mock.Mock
}

// Issue provides a mock function with given fields: claim
func (_m *TokenManager) Issue(claim model.Claim) (model.IssuedToken, error) {
	ret := _m.Called(claim)

	if len(ret) == 0 {
		panic("no return value specified for Issue")
	}

	var r0 model.IssuedToken
	var r1 error
	if rf, ok := ret.Get(0).(func(model.Claim) (model.IssuedToken, error)); ok {
		return rf(claim)
	}
	if rf, ok := ret.Get(0).(func(model.Claim) model.IssuedToken); ok {
		r0 = rf(claim)
	} else {
		r0 = ret.Get(0).(model.IssuedToken)
	}

	if rf, ok := ret.Get(1).(func(model.Claim) error); ok {
		r1 = rf(claim)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Verify provides a mock function with given fields: token
func (_m *TokenManager) Verify(token string) (model.SessionClaims, error) {
	ret := _m.Called(token)

	if len(ret) == 0 {
		panic("no return value specified for Verify")
	}

	var r0 model.SessionClaims
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (model.SessionClaims, error)); ok {
		return rf(token)
	}
	if rf, ok := ret.Get(0).(func(string) model.SessionClaims); ok {
		r0 = rf(token)
	} else {
		r0 = ret.Get(0).(model.SessionClaims)
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(token)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewTokenManager creates a new instance of TokenManager. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewTokenManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *TokenManager {
	mock := &TokenManager{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
