package handlers

import (
	"net/http"

	"github.com/evandev76/event-organizer-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CommentHandler handles HTTP requests for event comments
type CommentHandler struct {
	service service.CommentServiceInterface
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(service service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{service: service}
}

func commentPathIDs(c *gin.Context) (eventID, commentID uuid.UUID, ok bool) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return uuid.Nil, uuid.Nil, false
	}
	if raw := c.Param("commentId"); raw != "" {
		commentID, err = uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
			return uuid.Nil, uuid.Nil, false
		}
	}
	return eventID, commentID, true
}

// ListComments lists an event's comments
// @Summary List comments
// @Description List an event's comments chronologically, reaction-annotated
// @Tags comments
// @Produce json
// @Param code path string true "Group join code"
// @Param eventId path string true "Event ID (UUID)"
// @Success 200 {array} service.CommentResponse "Comments"
// @Failure 404 {object} map[string]interface{} "Event not found"
// @Security BearerAuth
// @Router /groups/{code}/events/{eventId}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	eventID, _, ok := commentPathIDs(c)
	if !ok {
		return
	}
	comments, err := h.service.List(c.Param("code"), eventID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// AddComment appends a comment to an event
// @Summary Add a comment
// @Description Add a comment to an event's discussion thread
// @Tags comments
// @Accept json
// @Produce json
// @Param code path string true "Group join code"
// @Param eventId path string true "Event ID (UUID)"
// @Param comment body service.CommentRequest true "Comment text"
// @Success 201 {object} service.CommentResponse "Created comment"
// @Failure 400 {object} map[string]interface{} "Empty comment"
// @Security BearerAuth
// @Router /groups/{code}/events/{eventId}/comments [post]
func (h *CommentHandler) AddComment(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	eventID, _, ok := commentPathIDs(c)
	if !ok {
		return
	}
	var req service.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.service.Add(c.Param("code"), eventID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// EditComment rewrites a comment
// @Summary Edit a comment
// @Description Rewrite a comment; author only
// @Tags comments
// @Accept json
// @Produce json
// @Param code path string true "Group join code"
// @Param eventId path string true "Event ID (UUID)"
// @Param commentId path string true "Comment ID (UUID)"
// @Param comment body service.CommentRequest true "New text"
// @Success 200 {object} service.CommentResponse "Edited comment"
// @Failure 403 {object} map[string]interface{} "Not the author"
// @Failure 404 {object} map[string]interface{} "Comment not found"
// @Security BearerAuth
// @Router /groups/{code}/events/{eventId}/comments/{commentId} [put]
func (h *CommentHandler) EditComment(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	eventID, commentID, ok := commentPathIDs(c)
	if !ok {
		return
	}
	var req service.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.service.Edit(c.Param("code"), eventID, commentID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// DeleteComment removes a comment
// @Summary Delete a comment
// @Description Delete a comment; author or the event's creator
// @Tags comments
// @Produce json
// @Param code path string true "Group join code"
// @Param eventId path string true "Event ID (UUID)"
// @Param commentId path string true "Comment ID (UUID)"
// @Success 204 "Deleted"
// @Failure 403 {object} map[string]interface{} "No deletion right"
// @Failure 404 {object} map[string]interface{} "Comment not found"
// @Security BearerAuth
// @Router /groups/{code}/events/{eventId}/comments/{commentId} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	eventID, commentID, ok := commentPathIDs(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Param("code"), eventID, commentID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ReactToComment toggles an emoji reaction on a comment
// @Summary React to a comment
// @Description Toggle the caller's emoji reaction and return the recomputed aggregate
// @Tags comments
// @Accept json
// @Produce json
// @Param code path string true "Group join code"
// @Param eventId path string true "Event ID (UUID)"
// @Param commentId path string true "Comment ID (UUID)"
// @Param reaction body service.ReactRequest true "Emoji"
// @Success 200 {object} service.ReactionResponse "Reaction state"
// @Failure 400 {object} map[string]interface{} "Emoji not allowed"
// @Failure 404 {object} map[string]interface{} "Comment not found"
// @Security BearerAuth
// @Router /groups/{code}/events/{eventId}/comments/{commentId}/react [post]
func (h *CommentHandler) ReactToComment(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	eventID, commentID, ok := commentPathIDs(c)
	if !ok {
		return
	}
	var req service.ReactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.service.React(c.Param("code"), eventID, commentID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}
