package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/flipword/api/internal/model"
	"github.com/golang-jwt/jwt/v5"
)

const (
	SessionMaxAge     = 7 * 24 * time.Hour
	SessionCookieName = "flipword_admin_session"
)

var (
	// ErrMissingSecret means no signing secret is configured. It is a
	// configuration error and must not be treated as "unauthenticated".
	ErrMissingSecret = errors.New("ADMIN_JWT_SECRET is not configured")
	// ErrInvalidToken covers every reason a presented token is rejected.
	ErrInvalidToken = errors.New("invalid or expired session token")
)

// SessionService issues and verifies stateless admin session tokens.
type SessionService struct {
	secret []byte
	maxAge time.Duration
	now    func() time.Time
}

type SessionOption func(*SessionService)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) SessionOption {
	return func(s *SessionService) { s.now = now }
}

// WithMaxAge overrides the 7 day session lifetime.
func WithMaxAge(d time.Duration) SessionOption {
	return func(s *SessionService) { s.maxAge = d }
}

func NewSessionService(secret string, opts ...SessionOption) *SessionService {
	s := &SessionService{
		secret: []byte(secret),
		maxAge: SessionMaxAge,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MaxAge is the lifetime of issued tokens.
func (s *SessionService) MaxAge() time.Duration {
	return s.maxAge
}

// Issue signs a new admin token valid for MaxAge.
func (s *SessionService) Issue() (string, error) {
	if len(s.secret) == 0 {
		return "", ErrMissingSecret
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   model.AdminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.maxAge)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm, subject and expiry. Every rejection
// is reported as ErrInvalidToken; only a missing secret is reported as
// ErrMissingSecret.
func (s *SessionService) Verify(tokenString string) (*model.SessionTokenPayload, error) {
	if len(s.secret) == 0 {
		return nil, ErrMissingSecret
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithSubject(model.AdminSubject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	payload := &model.SessionTokenPayload{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		payload.IssuedAt = claims.IssuedAt.Time
	}
	payload.ExpiresAt = claims.ExpiresAt.Time
	return payload, nil
}
