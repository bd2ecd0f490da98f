// Package handlers exposes the registration pipeline to the form frontend.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iedaejin/capstones-supervisors-form/internal/catalog"
	"github.com/iedaejin/capstones-supervisors-form/internal/logger"
	"github.com/iedaejin/capstones-supervisors-form/internal/models"
	"github.com/iedaejin/capstones-supervisors-form/internal/registry"
	"github.com/iedaejin/capstones-supervisors-form/internal/store"
)

type RegistrationHandler struct {
	pipeline *registry.Pipeline
	catalogs *catalog.Provider
	records  *store.Store
	logger   logger.Logger
}

func NewRegistrationHandler(
	pipeline *registry.Pipeline,
	catalogs *catalog.Provider,
	records *store.Store,
	log logger.Logger,
) *RegistrationHandler {
	return &RegistrationHandler{
		pipeline: pipeline,
		catalogs: catalogs,
		records:  records,
		logger:   log,
	}
}

// Submit drives a raw submission through the pipeline.
func (h *RegistrationHandler) Submit(c *gin.Context) {
	var sub models.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		h.logger.Debug("Invalid request body",
			logger.String("error", err.Error()),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	outcome, err := h.pipeline.Submit(c.Request.Context(), sub)
	if err != nil {
		h.logger.Error("Failed to save registration",
			logger.String("supervisor", sub.TrimmedName()),
			logger.Error(err),
		)
		// Nothing was written; the user can resubmit as-is. Internal I/O
		// detail stays out of the response.
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save registration. Please try again.",
		})
		return
	}

	if outcome.Status == registry.StatusRejected {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status":     outcome.Status,
			"rejections": outcome.Result.Rejections,
			"advisories": outcome.Result.Advisories,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":     outcome.Status,
		"record":     outcome.Record,
		"advisories": outcome.Result.Advisories,
	})
}

// programView is one program with its ordered topics, as rendered to the
// form frontend.
type programView struct {
	Program string      `json:"program"`
	Topics  []topicView `json:"topics"`
}

type topicView struct {
	Number      int    `json:"number"`
	ID          string `json:"id"`
	Description string `json:"description"`
}

// GetCatalog returns the loaded topic catalog for rendering the form.
func (h *RegistrationHandler) GetCatalog(c *gin.Context) {
	cat := h.catalogs.Get()

	programs := make([]programView, 0, len(cat.Programs()))
	for _, program := range cat.Programs() {
		topics := cat.Topics(program)
		view := programView{Program: program, Topics: make([]topicView, 0, len(topics))}
		for _, topic := range topics {
			view.Topics = append(view.Topics, topicView{
				Number:      topic.Number,
				ID:          models.TopicID(program, topic.Number),
				Description: topic.Description,
			})
		}
		programs = append(programs, view)
	}

	c.JSON(http.StatusOK, gin.H{
		"programs": programs,
		"topics":   cat.TopicCount(),
		"levels":   models.ExpertiseLevels,
	})
}

// Stats reports registration totals for the summary panel.
func (h *RegistrationHandler) Stats(c *gin.Context) {
	count, err := h.records.Count()
	if err != nil {
		h.logger.Error("Failed to count records",
			logger.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read registration stats"})
		return
	}

	cat := h.catalogs.Get()
	c.JSON(http.StatusOK, gin.H{
		"supervisors": count,
		"programs":    len(cat.Programs()),
		"topics":      cat.TopicCount(),
	})
}
