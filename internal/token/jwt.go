package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/lifeos-server/internal/model"
)

// Claims represents the session JWT payload.
type Claims struct {
	jwt.RegisteredClaims
	User model.Claim `json:"user"`
}

// JWT implements model.TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// Option configures a JWT manager.
type Option func(*JWT)

// WithClock overrides the time source used for issuing and verifying tokens.
func WithClock(now func() time.Time) Option {
	return func(j *JWT) {
		j.now = now
	}
}

// NewJWT creates a session token manager with the provided secret key.
func NewJWT(secretKey string, opts ...Option) *JWT {
	j := &JWT{
		secretKey: []byte(secretKey),
		ttl:       model.SessionTTL,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

var _ model.TokenManager = (*JWT)(nil)

// Issue signs a session token for claim valid for model.SessionTTL.
// Timestamps are truncated to whole seconds, the resolution of JWT dates.
func (j *JWT) Issue(claim model.Claim) (model.IssuedToken, error) {
	issuedAt := j.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(j.ttl)
	jti := uuid.NewString()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   claim.ID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		User: claim,
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return model.IssuedToken{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	return model.IssuedToken{
		Token:     tokenString,
		TokenID:   jti,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}

// Verify validates a session token and returns its payload. Every failure
// wraps model.ErrInvalidToken.
func (j *JWT) Verify(tokenString string) (model.SessionClaims, error) {
	if tokenString == "" {
		return model.SessionClaims{}, fmt.Errorf("%w: empty token", model.ErrInvalidToken)
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return model.SessionClaims{}, fmt.Errorf("%w: %v", model.ErrInvalidToken, err)
	}
	if !token.Valid {
		return model.SessionClaims{}, fmt.Errorf("%w: token is not valid", model.ErrInvalidToken)
	}

	expiresAt := claims.ExpiresAt.Time
	// jwt treats exp as exclusive already; keep the check explicit.
	if !j.now().Before(expiresAt) {
		return model.SessionClaims{}, fmt.Errorf("%w: token expired", model.ErrInvalidToken)
	}
	if claims.User.ID == uuid.Nil || claims.Subject != claims.User.ID.String() {
		return model.SessionClaims{}, fmt.Errorf("%w: subject mismatch", model.ErrInvalidToken)
	}

	var issuedAt time.Time
	if claims.IssuedAt != nil {
		issuedAt = claims.IssuedAt.Time
	}

	return model.SessionClaims{
		User:      claims.User,
		TokenID:   claims.ID,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}
