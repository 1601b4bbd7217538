package handler

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/flipword/api/internal/client"
	"github.com/flipword/api/internal/topics"
	"github.com/gin-gonic/gin"
)

// RevalidateHandler lets another process, such as flipctl after an import,
// evict pages from this server's page cache.
type RevalidateHandler struct {
	pages  topics.Revalidator
	secret string
	logger *slog.Logger
}

func NewRevalidateHandler(pages topics.Revalidator, secret string, logger *slog.Logger) *RevalidateHandler {
	return &RevalidateHandler{pages: pages, secret: secret, logger: logger}
}

func (h *RevalidateHandler) Revalidate(c *gin.Context) {
	given := c.GetHeader(client.SecretHeader)
	if subtle.ConstantTimeCompare([]byte(given), []byte(h.secret)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid revalidate secret"})
		return
	}

	var req client.RevalidateRequest
	if err := c.ShouldBindJSON(&req); err != nil || !strings.HasPrefix(req.Path, "/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path must start with /"})
		return
	}

	if err := h.pages.Revalidate(c.Request.Context(), req.Path); err != nil {
		h.logger.Warn("page revalidation failed", "path", req.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Revalidation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"revalidated": true, "path": req.Path})
}
