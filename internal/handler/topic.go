package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/flipword/api/internal/middleware"
	"github.com/flipword/api/internal/render"
	"github.com/flipword/api/internal/topics"
	"github.com/gin-gonic/gin"
)

var errTopicNotFound = errors.New("topic not found")

// TopicHandler serves the public pages: the topic list and one deck.
type TopicHandler struct {
	repo   TopicsRepository
	pages  *render.PageCache
	logger *slog.Logger
}

func NewTopicHandler(repo TopicsRepository, pages *render.PageCache, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{repo: repo, pages: pages, logger: logger}
}

type TopicSummary struct {
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	WordCount int    `json:"wordCount"`
}

// List returns every topic without its words.
func (h *TopicHandler) List(c *gin.Context) {
	h.serve(c, topics.HomePath, func() ([]byte, error) {
		list := h.repo.ListTopics(c.Request.Context())
		summaries := make([]TopicSummary, 0, len(list))
		for _, t := range list {
			summaries = append(summaries, TopicSummary{Slug: t.Slug, Title: t.Title, WordCount: len(t.Words)})
		}
		return json.Marshal(gin.H{"topics": summaries})
	})
}

// Get returns one deck with its words.
func (h *TopicHandler) Get(c *gin.Context) {
	slug := c.Param("slug")
	h.serve(c, topics.TopicPath(slug), func() ([]byte, error) {
		topic, ok := h.repo.GetBySlug(c.Request.Context(), slug)
		if !ok {
			return nil, errTopicNotFound
		}
		return json.Marshal(gin.H{"topic": topic})
	})
}

func (h *TopicHandler) serve(c *gin.Context, path string, fn func() ([]byte, error)) {
	body, hit, err := h.pages.Render(path, fn)
	if errors.Is(err, errTopicNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Topic not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed to render page", "path", path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render page"})
		return
	}

	middleware.RecordPageRender(hit)
	if hit {
		c.Header("X-Cache", "HIT")
	} else {
		c.Header("X-Cache", "MISS")
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// Health reports liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

var _ TopicsRepository = (*topics.Repository)(nil)
