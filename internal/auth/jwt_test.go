package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flipword/api/internal/model"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSessionService_IssueVerify(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := NewSessionService("test-secret", WithClock(fixedClock(now)))

	token, err := svc.Issue()
	require.NoError(t, err)

	payload, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, model.AdminSubject, payload.Subject)
	assert.Equal(t, int64(7*24*60*60), payload.ExpiresAt.Unix()-payload.IssuedAt.Unix())
	assert.Equal(t, now.Unix(), payload.IssuedAt.Unix())
}

func TestSessionService_Verify(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	issuer := NewSessionService("test-secret", WithClock(fixedClock(issuedAt)))
	token, err := issuer.Issue()
	require.NoError(t, err)

	tests := []struct {
		name    string
		svc     *SessionService
		token   func(t *testing.T) string
		wantErr error
	}{
		{
			name:  "valid just before expiry",
			svc:   NewSessionService("test-secret", WithClock(fixedClock(issuedAt.Add(SessionMaxAge-time.Second)))),
			token: func(t *testing.T) string { return token },
		},
		{
			name:    "expired",
			svc:     NewSessionService("test-secret", WithClock(fixedClock(issuedAt.Add(SessionMaxAge+time.Second)))),
			token:   func(t *testing.T) string { return token },
			wantErr: ErrInvalidToken,
		},
		{
			name:    "different secret",
			svc:     NewSessionService("other-secret", WithClock(fixedClock(issuedAt))),
			token:   func(t *testing.T) string { return token },
			wantErr: ErrInvalidToken,
		},
		{
			name:    "malformed",
			svc:     NewSessionService("test-secret"),
			token:   func(t *testing.T) string { return "not.a.token" },
			wantErr: ErrInvalidToken,
		},
		{
			name: "wrong subject",
			svc:  NewSessionService("test-secret", WithClock(fixedClock(issuedAt))),
			token: func(t *testing.T) string {
				claims := jwt.RegisteredClaims{
					Subject:   "someone-else",
					IssuedAt:  jwt.NewNumericDate(issuedAt),
					ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
				}
				signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
				require.NoError(t, err)
				return signed
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "wrong algorithm",
			svc:  NewSessionService("test-secret", WithClock(fixedClock(issuedAt))),
			token: func(t *testing.T) string {
				claims := jwt.RegisteredClaims{
					Subject:   model.AdminSubject,
					IssuedAt:  jwt.NewNumericDate(issuedAt),
					ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
				}
				signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
				require.NoError(t, err)
				return signed
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "missing expiry",
			svc:  NewSessionService("test-secret", WithClock(fixedClock(issuedAt))),
			token: func(t *testing.T) string {
				claims := jwt.RegisteredClaims{Subject: model.AdminSubject}
				signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
				require.NoError(t, err)
				return signed
			},
			wantErr: ErrInvalidToken,
		},
		{
			name:    "missing secret is a configuration error",
			svc:     NewSessionService(""),
			token:   func(t *testing.T) string { return token },
			wantErr: ErrMissingSecret,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := tt.svc.Verify(tt.token(t))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, payload)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.AdminSubject, payload.Subject)
		})
	}
}

func TestSessionService_IssueWithoutSecret(t *testing.T) {
	token, err := NewSessionService("").Issue()
	assert.ErrorIs(t, err, ErrMissingSecret)
	assert.Empty(t, token)
}
