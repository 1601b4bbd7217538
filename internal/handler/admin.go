package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/flipword/api/internal/model"
	"github.com/flipword/api/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	govalidator "github.com/go-playground/validator/v10"
)

// AdminHandler edits the topics document. Every route sits behind
// AdminMiddleware.
type AdminHandler struct {
	repo      TopicsRepository
	validator *validator.Validator
	logger    *slog.Logger
}

func NewAdminHandler(repo TopicsRepository, v *validator.Validator, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{repo: repo, validator: v, logger: logger}
}

// ListTopics returns every topic with its words.
func (h *AdminHandler) ListTopics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"topics": h.repo.ListTopics(c.Request.Context())})
}

func (h *AdminHandler) GetTopic(c *gin.Context) {
	topic, ok := h.repo.GetBySlug(c.Request.Context(), c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Topic not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"topic": topic})
}

// UpsertTopic creates a topic or replaces the one with the same slug.
func (h *AdminHandler) UpsertTopic(c *gin.Context) {
	var topic model.Topic
	if err := bindJSON(c, &topic); err != nil {
		h.badRequest(c, err)
		return
	}
	if err := h.validator.PrepareTopic(&topic); err != nil {
		h.badRequest(c, err)
		return
	}

	h.repo.Upsert(c.Request.Context(), topic)
	h.logger.Info("topic saved", "slug", topic.Slug, "words", len(topic.Words))
	c.JSON(http.StatusCreated, gin.H{"topic": topic})
}

// ReplaceDocument swaps the whole document for the request body.
func (h *AdminHandler) ReplaceDocument(c *gin.Context) {
	var doc model.TopicsDocument
	if err := bindJSON(c, &doc); err != nil {
		h.badRequest(c, err)
		return
	}
	if err := h.validator.PrepareDocument(&doc); err != nil {
		h.badRequest(c, err)
		return
	}

	h.repo.ReplaceAll(c.Request.Context(), doc)
	h.logger.Info("topics document replaced", "topics", len(doc.Topics))
	c.JSON(http.StatusOK, gin.H{"document": doc})
}

// DeleteTopic removes every topic with the slug. Unknown slugs succeed.
func (h *AdminHandler) DeleteTopic(c *gin.Context) {
	slug := c.Param("slug")
	h.repo.DeleteBySlug(c.Request.Context(), slug)
	h.logger.Info("topic deleted", "slug", slug)
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

var errTrailingData = errors.New("unexpected data after the JSON value")

// bindJSON binds and checks the binding tags like ShouldBindJSON, and also
// rejects anything after the first JSON value.
func bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindBodyWith(obj, binding.JSON); err != nil {
		return err
	}
	if body, ok := c.Get(gin.BodyBytesKey); ok {
		if raw, _ := body.([]byte); !json.Valid(raw) {
			return errTrailingData
		}
	}
	return nil
}

func (h *AdminHandler) badRequest(c *gin.Context, err error) {
	var verr *validator.Error
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid topic data", "details": verr.Problems})
		return
	}
	var fieldErrs govalidator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid topic data", "details": h.validator.Messages(err)})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": []string{err.Error()}})
}
