package handlers

import (
	"net/http"

	"github.com/evandev76/event-organizer-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RatingHandler handles HTTP requests for post-event ratings
type RatingHandler struct {
	service service.RatingServiceInterface
}

// NewRatingHandler creates a new rating handler
func NewRatingHandler(service service.RatingServiceInterface) *RatingHandler {
	return &RatingHandler{service: service}
}

// GetRating returns an event's rating state for the viewer
// @Summary Get rating
// @Description Aggregate up/down counts, the viewer's own vote and voting eligibility
// @Tags ratings
// @Produce json
// @Param code path string true "Group join code"
// @Param eventId path string true "Event ID (UUID)"
// @Success 200 {object} service.RatingResponse "Rating state"
// @Failure 404 {object} map[string]interface{} "Event not found"
// @Security BearerAuth
// @Router /groups/{code}/events/{eventId}/rating [get]
func (h *RatingHandler) GetRating(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	rating, err := h.service.Get(c.Param("code"), eventID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rating)
}

// SetRating casts, overwrites or clears the caller's vote
// @Summary Set rating
// @Description Cast up/down or clear; only after the event ended and only for participants
// @Tags ratings
// @Accept json
// @Produce json
// @Param code path string true "Group join code"
// @Param eventId path string true "Event ID (UUID)"
// @Param vote body service.SetRatingRequest true "Vote (up, down or clear)"
// @Success 200 {object} service.RatingResponse "Rating state after the vote"
// @Failure 403 {object} map[string]interface{} "Not a participant"
// @Failure 409 {object} map[string]interface{} "Event not ended"
// @Security BearerAuth
// @Router /groups/{code}/events/{eventId}/rating [post]
func (h *RatingHandler) SetRating(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}
	var req service.SetRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.service.Set(c.Param("code"), eventID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rating)
}
