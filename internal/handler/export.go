package handler

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/flipword/api/internal/exporter"
	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	repo   TopicsRepository
	logger *slog.Logger
}

func NewExportHandler(repo TopicsRepository, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{repo: repo, logger: logger}
}

// Export downloads the whole topics document as json, yaml, csv or md.
func (h *ExportHandler) Export(c *gin.Context) {
	format, err := exporter.ParseFormat(c.DefaultQuery("format", exporter.FormatJSON))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc := h.repo.Load(c.Request.Context())

	var buf bytes.Buffer
	if err := exporter.Write(&buf, format, doc); err != nil {
		h.logger.Error("failed to export topics", "format", format, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Export failed"})
		return
	}

	filename := fmt.Sprintf("flipword-topics-%s.%s", time.Now().Format("20060102"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, exporter.ContentType(format), buf.Bytes())
}
