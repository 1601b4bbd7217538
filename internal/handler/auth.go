package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/flipword/api/internal/auth"
	"github.com/flipword/api/internal/middleware"
	"github.com/flipword/api/internal/validator"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	verifier     *auth.CredentialVerifier
	sessions     *auth.SessionService
	validator    *validator.Validator
	secureCookie bool
	logger       *slog.Logger
}

// NewAuthHandler builds the login endpoints. secureCookie marks the session
// cookie Secure, which production deployments behind TLS need.
func NewAuthHandler(verifier *auth.CredentialVerifier, sessions *auth.SessionService, v *validator.Validator, secureCookie bool, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		verifier:     verifier,
		sessions:     sessions,
		validator:    v,
		secureCookie: secureCookie,
		logger:       logger,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Message   string    `json:"message"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type SessionResponse struct {
	Authenticated bool      `json:"authenticated"`
	Subject       string    `json:"subject"`
	IssuedAt      time.Time `json:"issuedAt"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

// Login checks the admin credentials and starts a session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Username and password are required",
			"details": h.validator.Messages(err),
		})
		return
	}

	if !h.verifier.Verify(req.Username, req.Password) {
		middleware.RecordAdminLogin(false)
		h.logger.Warn("admin login rejected", "client_ip", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token, err := h.sessions.Issue()
	if err != nil {
		if errors.Is(err, auth.ErrMissingSecret) {
			h.logger.Error("cannot issue admin session: signing secret is not configured")
		} else {
			h.logger.Error("failed to issue admin session", "error", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	middleware.RecordAdminLogin(true)
	h.setCookie(c, token, int(h.sessions.MaxAge().Seconds()))
	c.JSON(http.StatusOK, LoginResponse{
		Message:   "Logged in",
		Token:     token,
		ExpiresAt: time.Now().Add(h.sessions.MaxAge()).UTC(),
	})
}

// Logout clears the session cookie. Tokens are stateless, so a copied token
// stays valid until it expires.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Session echoes the verified session. It runs behind AdminMiddleware.
func (h *AuthHandler) Session(c *gin.Context) {
	payload, ok := middleware.Session(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
		return
	}
	c.JSON(http.StatusOK, SessionResponse{
		Authenticated: true,
		Subject:       payload.Subject,
		IssuedAt:      payload.IssuedAt,
		ExpiresAt:     payload.ExpiresAt,
	})
}

func (h *AuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookieName, value, maxAge, "/", "", h.secureCookie, true)
}
