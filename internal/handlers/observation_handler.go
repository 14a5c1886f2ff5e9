package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/isaqueks/tasks/internal/models"
	"github.com/isaqueks/tasks/internal/services"
)

type ObservationHandler struct {
	service services.ObservationService
}

func NewObservationHandler(service services.ObservationService) *ObservationHandler {
	return &ObservationHandler{service: service}
}

// POST /tasks/:id/observations
func (h *ObservationHandler) Create(c *gin.Context) {
	userID := getUserID(c)
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[observation][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	obs, err := h.service.Create(c.Request.Context(), taskID, userID, req.Content)
	if err != nil {
		log.Printf("[observation][create][err] taskID=%s userID=%s: %v", taskID, userID, err)
		respondError(c, err)
		return
	}
	log.Printf("[observation][create][ok] id=%s taskID=%s", obs.ID, taskID)
	c.JSON(http.StatusCreated, obs)
}

// GET /tasks/:id/observations
func (h *ObservationHandler) List(c *gin.Context) {
	userID := getUserID(c)
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	observations, err := h.service.ListByTask(c.Request.Context(), taskID, userID)
	if err != nil {
		log.Printf("[observation][list][err] taskID=%s userID=%s: %v", taskID, userID, err)
		respondError(c, err)
		return
	}
	if observations == nil {
		observations = []models.Observation{}
	}
	c.JSON(http.StatusOK, observations)
}

// DELETE /tasks/:id/observations/:obs_id
func (h *ObservationHandler) Delete(c *gin.Context) {
	userID := getUserID(c)
	if _, ok := parseIDParam(c, "id"); !ok {
		return
	}
	obsID, ok := parseIDParam(c, "obs_id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), obsID, userID); err != nil {
		log.Printf("[observation][delete][err] id=%s userID=%s: %v", obsID, userID, err)
		respondError(c, err)
		return
	}
	log.Printf("[observation][delete][ok] id=%s", obsID)
	c.JSON(http.StatusOK, gin.H{"message": "Observation deleted successfully"})
}
