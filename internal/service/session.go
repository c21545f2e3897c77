package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/lifeos-server/internal/logger"
	"github.com/dtroode/lifeos-server/internal/model"
)

// Session issues, verifies and revokes session tokens. Revocation is
// optional: with a nil store sessions are purely stateless and Revoke is a no-op.
type Session struct {
	tokens      model.TokenManager
	revocations model.RevocationStore
	logger      *logger.Logger
}

func NewSession(tokens model.TokenManager, revocations model.RevocationStore, logger *logger.Logger) *Session {
	return &Session{
		tokens:      tokens,
		revocations: revocations,
		logger:      logger,
	}
}

// Issue mints a session token for claim.
func (s *Session) Issue(ctx context.Context, claim model.Claim) (model.IssuedToken, error) {
	issued, err := s.tokens.Issue(claim)
	if err != nil {
		s.logger.Error("Session service: failed to issue token",
			"user_id", claim.ID,
			"error", err.Error())
		return model.IssuedToken{}, fmt.Errorf("failed to issue session token: %w", err)
	}

	s.logger.Debug("Session service: token issued",
		"user_id", claim.ID,
		"expires_at", issued.ExpiresAt)

	return issued, nil
}

// Verify returns the identity carried by token. Any failure wraps model.ErrInvalidToken.
func (s *Session) Verify(ctx context.Context, token string) (model.Claim, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		if !errors.Is(err, model.ErrInvalidToken) {
			err = fmt.Errorf("%w: %v", model.ErrInvalidToken, err)
		}
		return model.Claim{}, err
	}

	if s.revocations != nil {
		revoked, err := s.revocations.IsRevoked(ctx, claims.TokenID)
		if err != nil {
			s.logger.Error("Session service: failed to check revocation",
				"user_id", claims.User.ID,
				"error", err.Error())
			return model.Claim{}, fmt.Errorf("%w: revocation check failed", model.ErrInvalidToken)
		}
		if revoked {
			return model.Claim{}, fmt.Errorf("%w: token revoked", model.ErrInvalidToken)
		}
	}

	return claims.User, nil
}

// Revoke invalidates token before its expiry when revocation is enabled.
// Tokens that no longer verify need no revocation and are ignored.
func (s *Session) Revoke(ctx context.Context, token string) error {
	if s.revocations == nil || token == "" {
		return nil
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil
	}

	if err := s.revocations.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		s.logger.Error("Session service: failed to revoke token",
			"user_id", claims.User.ID,
			"error", err.Error())
		return fmt.Errorf("failed to revoke session token: %w", err)
	}

	s.logger.Info("Session service: token revoked",
		"user_id", claims.User.ID)

	return nil
}
