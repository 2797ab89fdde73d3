package handlers

import (
	"net/http"

	"github.com/evandev76/event-organizer-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EventHandler handles HTTP requests for group events
type EventHandler struct {
	service service.EventServiceInterface
}

// NewEventHandler creates a new event handler
func NewEventHandler(service service.EventServiceInterface) *EventHandler {
	return &EventHandler{service: service}
}

// CreateEvent creates an event in a group
// @Summary Create an event
// @Description Create an event; a chat announcement and a group pin are created with it
// @Tags events
// @Accept json
// @Produce json
// @Param code path string true "Group join code"
// @Param event body service.EventRequest true "Event data"
// @Success 201 {object} service.EventResponse "Created event"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Not a member"
// @Security BearerAuth
// @Router /groups/{code}/events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req service.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.service.Create(c.Param("code"), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// ListEvents lists a group's events
// @Summary List events
// @Description List a group's events by start time with viewer annotations
// @Tags events
// @Produce json
// @Param code path string true "Group join code"
// @Success 200 {array} service.EventResponse "Events"
// @Failure 403 {object} map[string]interface{} "Not a member"
// @Security BearerAuth
// @Router /groups/{code}/events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	events, err := h.service.List(c.Param("code"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// UpdateEvent updates an event
// @Summary Update an event
// @Description Update an event's details; creator only
// @Tags events
// @Accept json
// @Produce json
// @Param code path string true "Group join code"
// @Param eventId path string true "Event ID (UUID)"
// @Param event body service.EventRequest true "Updated event data"
// @Success 200 {object} service.EventResponse "Updated event"
// @Failure 403 {object} map[string]interface{} "Not the creator"
// @Failure 404 {object} map[string]interface{} "Event not found"
// @Security BearerAuth
// @Router /groups/{code}/events/{eventId} [put]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}
	var req service.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.service.Update(c.Param("code"), eventID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// DeleteEvent deletes an event
// @Summary Delete an event
// @Description Delete an event with its announcement, pin, comments, ratings and poll
// @Tags events
// @Produce json
// @Param code path string true "Group join code"
// @Param eventId path string true "Event ID (UUID)"
// @Success 204 "Deleted"
// @Failure 403 {object} map[string]interface{} "Not the creator"
// @Failure 404 {object} map[string]interface{} "Event not found"
// @Security BearerAuth
// @Router /groups/{code}/events/{eventId} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	if err := h.service.Delete(c.Param("code"), eventID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
