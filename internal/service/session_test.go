package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/lifeos-server/internal/mocks"
	"github.com/dtroode/lifeos-server/internal/model"
	"github.com/dtroode/lifeos-server/internal/repository/memory"
	"github.com/dtroode/lifeos-server/internal/testutil"
	"github.com/dtroode/lifeos-server/internal/token"
)

func TestSession_IssueAndVerify(t *testing.T) {
	ctx := context.Background()
	s := NewSession(token.NewJWT("secret"), nil, testutil.MakeNoopLogger())
	claim := model.Claim{ID: uuid.New(), Email: "a@x.com", Name: "Alice"}

	issued, err := s.Issue(ctx, claim)
	require.NoError(t, err)

	got, err := s.Verify(ctx, issued.Token)
	require.NoError(t, err)
	assert.Equal(t, claim, got)
}

func TestSession_VerifyWrapsInvalidToken(t *testing.T) {
	ctx := context.Background()
	tokens := mocks.NewTokenManager(t)
	tokens.On("Verify", "bad").Return(model.SessionClaims{}, errors.New("boom"))

	s := NewSession(tokens, nil, testutil.MakeNoopLogger())

	_, err := s.Verify(ctx, "bad")
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestSession_IssueError(t *testing.T) {
	ctx := context.Background()
	tokens := mocks.NewTokenManager(t)
	tokens.On("Issue", mock.Anything).Return(model.IssuedToken{}, errors.New("sign failed"))

	s := NewSession(tokens, nil, testutil.MakeNoopLogger())

	_, err := s.Issue(ctx, model.Claim{ID: uuid.New()})
	require.Error(t, err)
}

func TestSession_RevokeWithoutStoreIsNoop(t *testing.T) {
	ctx := context.Background()
	s := NewSession(token.NewJWT("secret"), nil, testutil.MakeNoopLogger())

	issued, err := s.Issue(ctx, model.Claim{ID: uuid.New()})
	require.NoError(t, err)

	require.NoError(t, s.Revoke(ctx, issued.Token))

	_, err = s.Verify(ctx, issued.Token)
	assert.NoError(t, err)
}

func TestSession_RevokeWithStore(t *testing.T) {
	ctx := context.Background()
	s := NewSession(token.NewJWT("secret"), memory.NewRevocationList(), testutil.MakeNoopLogger())
	claim := model.Claim{ID: uuid.New()}

	revoked, err := s.Issue(ctx, claim)
	require.NoError(t, err)
	other, err := s.Issue(ctx, claim)
	require.NoError(t, err)

	require.NoError(t, s.Revoke(ctx, revoked.Token))

	_, err = s.Verify(ctx, revoked.Token)
	require.ErrorIs(t, err, model.ErrInvalidToken)

	_, err = s.Verify(ctx, other.Token)
	assert.NoError(t, err)

	assert.NoError(t, s.Revoke(ctx, "garbage"))
	assert.NoError(t, s.Revoke(ctx, ""))
}

func TestSession_RevocationStoreFailures(t *testing.T) {
	ctx := context.Background()
	claims := model.SessionClaims{
		User:      model.Claim{ID: uuid.New()},
		TokenID:   "jti",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	tokens := mocks.NewTokenManager(t)
	tokens.On("Verify", "tok").Return(claims, nil)

	store := mocks.NewRevocationStore(t)
	store.On("IsRevoked", mock.Anything, "jti").Return(false, errors.New("down"))
	store.On("Revoke", mock.Anything, "jti", claims.ExpiresAt).Return(errors.New("down"))

	s := NewSession(tokens, store, testutil.MakeNoopLogger())

	_, err := s.Verify(ctx, "tok")
	require.ErrorIs(t, err, model.ErrInvalidToken)

	err = s.Revoke(ctx, "tok")
	require.Error(t, err)
}
