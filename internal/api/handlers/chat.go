package handlers

import (
	"net/http"

	"github.com/evandev76/event-organizer-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChatHandler handles HTTP requests for the group chat thread
type ChatHandler struct {
	service service.ChatServiceInterface
}

// NewChatHandler creates a new chat handler
func NewChatHandler(service service.ChatServiceInterface) *ChatHandler {
	return &ChatHandler{service: service}
}

// ListChat returns the chat read model
// @Summary Read the chat
// @Description Latest messages in chronological order plus pinned messages and pinned event ids
// @Tags chat
// @Produce json
// @Param code path string true "Group join code"
// @Success 200 {object} service.ChatResponse "Chat"
// @Failure 403 {object} map[string]interface{} "Not a member"
// @Security BearerAuth
// @Router /groups/{code}/chat [get]
func (h *ChatHandler) ListChat(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	chat, err := h.service.List(c.Param("code"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, chat)
}

// PostMessage appends a text message
// @Summary Post a message
// @Description Append a text message to the group chat
// @Tags chat
// @Accept json
// @Produce json
// @Param code path string true "Group join code"
// @Param message body service.PostMessageRequest true "Message text"
// @Success 201 {object} service.ChatMessageResponse "Posted message"
// @Failure 400 {object} map[string]interface{} "Empty message"
// @Security BearerAuth
// @Router /groups/{code}/chat [post]
func (h *ChatHandler) PostMessage(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req service.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.service.Post(c.Param("code"), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

// EditMessage rewrites a text message
// @Summary Edit a message
// @Description Rewrite a text message; author only
// @Tags chat
// @Accept json
// @Produce json
// @Param code path string true "Group join code"
// @Param messageId path string true "Message ID (UUID)"
// @Param message body service.PostMessageRequest true "New text"
// @Success 200 {object} service.ChatMessageResponse "Edited message"
// @Failure 403 {object} map[string]interface{} "Not the author or kind immutable"
// @Failure 404 {object} map[string]interface{} "Message not found"
// @Security BearerAuth
// @Router /groups/{code}/chat/{messageId} [put]
func (h *ChatHandler) EditMessage(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	messageID, err := uuid.Parse(c.Param("messageId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID"})
		return
	}
	var req service.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.service.Edit(c.Param("code"), messageID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}

// DeleteMessage removes a message
// @Summary Delete a message
// @Description Delete a message; authorization depends on the message kind
// @Tags chat
// @Produce json
// @Param code path string true "Group join code"
// @Param messageId path string true "Message ID (UUID)"
// @Success 204 "Deleted"
// @Failure 403 {object} map[string]interface{} "No deletion right"
// @Failure 404 {object} map[string]interface{} "Message not found"
// @Security BearerAuth
// @Router /groups/{code}/chat/{messageId} [delete]
func (h *ChatHandler) DeleteMessage(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	messageID, err := uuid.Parse(c.Param("messageId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID"})
		return
	}

	if err := h.service.Delete(c.Param("code"), messageID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// TogglePin pins or unpins a text message
// @Summary Toggle a message pin
// @Description Pin or unpin a text message; author or moderator
// @Tags chat
// @Produce json
// @Param code path string true "Group join code"
// @Param messageId path string true "Message ID (UUID)"
// @Success 200 {object} service.ChatMessageResponse "Message after toggle"
// @Failure 403 {object} map[string]interface{} "Not pinnable or no right"
// @Failure 404 {object} map[string]interface{} "Message not found"
// @Security BearerAuth
// @Router /groups/{code}/chat/{messageId}/pin [post]
func (h *ChatHandler) TogglePin(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	messageID, err := uuid.Parse(c.Param("messageId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID"})
		return
	}

	message, err := h.service.TogglePin(c.Param("code"), messageID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}

// ReactToMessage toggles an emoji reaction on a message
// @Summary React to a message
// @Description Toggle the caller's emoji reaction and return the recomputed aggregate
// @Tags chat
// @Accept json
// @Produce json
// @Param code path string true "Group join code"
// @Param messageId path string true "Message ID (UUID)"
// @Param reaction body service.ReactRequest true "Emoji"
// @Success 200 {object} service.ReactionResponse "Reaction state"
// @Failure 400 {object} map[string]interface{} "Emoji not allowed"
// @Failure 404 {object} map[string]interface{} "Message not found"
// @Security BearerAuth
// @Router /groups/{code}/chat/{messageId}/react [post]
func (h *ChatHandler) ReactToMessage(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	messageID, err := uuid.Parse(c.Param("messageId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID"})
		return
	}
	var req service.ReactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.service.React(c.Param("code"), messageID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}
