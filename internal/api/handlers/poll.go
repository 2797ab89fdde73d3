package handlers

import (
	"net/http"

	"github.com/evandev76/event-organizer-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PollHandler handles HTTP requests for event polls
type PollHandler struct {
	service service.PollServiceInterface
}

// NewPollHandler creates a new poll handler
func NewPollHandler(service service.PollServiceInterface) *PollHandler {
	return &PollHandler{service: service}
}

// GetPoll returns an event's poll
// @Summary Get poll
// @Description The poll's question, options with derived tallies and the viewer's choice
// @Tags polls
// @Produce json
// @Param code path string true "Group join code"
// @Param eventId path string true "Event ID (UUID)"
// @Success 200 {object} service.PollResponse "Poll"
// @Failure 404 {object} map[string]interface{} "No poll on this event"
// @Security BearerAuth
// @Router /groups/{code}/events/{eventId}/poll [get]
func (h *PollHandler) GetPoll(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	poll, err := h.service.Get(c.Param("code"), eventID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, poll)
}

// SetPoll installs or replaces an event's poll
// @Summary Set poll
// @Description Install a poll, replacing any existing one and discarding its votes; creator only
// @Tags polls
// @Accept json
// @Produce json
// @Param code path string true "Group join code"
// @Param eventId path string true "Event ID (UUID)"
// @Param poll body service.SetPollRequest true "Question and options"
// @Success 201 {object} service.PollResponse "Installed poll"
// @Failure 400 {object} map[string]interface{} "Invalid poll shape"
// @Failure 403 {object} map[string]interface{} "Not the creator"
// @Security BearerAuth
// @Router /groups/{code}/events/{eventId}/poll [post]
func (h *PollHandler) SetPoll(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}
	var req service.SetPollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	poll, err := h.service.Set(c.Param("code"), eventID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, poll)
}

// ClearPoll removes an event's poll
// @Summary Clear poll
// @Description Remove the poll entirely; creator only
// @Tags polls
// @Produce json
// @Param code path string true "Group join code"
// @Param eventId path string true "Event ID (UUID)"
// @Success 204 "Cleared"
// @Failure 403 {object} map[string]interface{} "Not the creator"
// @Security BearerAuth
// @Router /groups/{code}/events/{eventId}/poll [delete]
func (h *PollHandler) ClearPoll(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	if err := h.service.Clear(c.Param("code"), eventID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Vote casts or clears the caller's poll vote
// @Summary Vote on poll
// @Description Cast a single choice, overwrite a prior one, or clear with a null option
// @Tags polls
// @Accept json
// @Produce json
// @Param code path string true "Group join code"
// @Param eventId path string true "Event ID (UUID)"
// @Param vote body service.VoteRequest true "Option ID or null to clear"
// @Success 200 {object} service.PollResponse "Poll after the vote"
// @Failure 400 {object} map[string]interface{} "Option does not exist"
// @Failure 404 {object} map[string]interface{} "No poll on this event"
// @Security BearerAuth
// @Router /groups/{code}/events/{eventId}/poll/vote [post]
func (h *PollHandler) Vote(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}
	var req service.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	poll, err := h.service.Vote(c.Param("code"), eventID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, poll)
}
