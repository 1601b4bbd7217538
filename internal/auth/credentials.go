package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultHashCost is the bcrypt cost used for generated password hashes.
	DefaultHashCost = 10

	// insecureDefaultPassword is only honoured with an explicit opt-in and
	// never in production.
	insecureDefaultPassword = "admin"
)

// Credentials is the configured admin identity.
type Credentials struct {
	Username string
	// Password is compared verbatim when PasswordHash is empty.
	Password string
	// PasswordHash is a bcrypt hash and takes precedence over Password.
	PasswordHash string
	// AllowInsecureDefault accepts the built-in password when neither
	// Password nor PasswordHash is set. Local evaluation only.
	AllowInsecureDefault bool
}

// CredentialVerifier checks a submitted username/password pair. It has no
// side effects and does no lockout.
type CredentialVerifier struct {
	creds Credentials
}

func NewCredentialVerifier(creds Credentials) *CredentialVerifier {
	return &CredentialVerifier{creds: creds}
}

// Verify reports whether username and password match the configured admin.
func (v *CredentialVerifier) Verify(username, password string) bool {
	if username != v.creds.Username {
		return false
	}

	if v.creds.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(v.creds.PasswordHash), []byte(password)) == nil
	}

	if v.creds.Password != "" {
		return subtle.ConstantTimeCompare([]byte(password), []byte(v.creds.Password)) == 1
	}

	if v.creds.AllowInsecureDefault {
		return password == insecureDefaultPassword
	}
	return false
}

// HashPassword returns a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = DefaultHashCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}
