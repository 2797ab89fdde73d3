package handlers

import (
	"net/http"

	"github.com/evandev76/event-organizer-app/internal/service"

	"github.com/gin-gonic/gin"
)

// GroupHandler handles HTTP requests for groups, members and invites
type GroupHandler struct {
	service service.GroupServiceInterface
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(service service.GroupServiceInterface) *GroupHandler {
	return &GroupHandler{service: service}
}

// CreateGroup creates a new group
// @Summary Create a group
// @Description Create a group; the caller becomes its owner and receives the join code
// @Tags groups
// @Accept json
// @Produce json
// @Param group body service.CreateGroupRequest true "Group data"
// @Success 201 {object} service.GroupResponse "Created group"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req service.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.service.Create(&req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, group)
}

// ListGroups lists the caller's groups
// @Summary List my groups
// @Description List the groups the caller belongs to, newest first
// @Tags groups
// @Produce json
// @Success 200 {array} service.GroupResponse "Groups"
// @Security BearerAuth
// @Router /groups [get]
func (h *GroupHandler) ListGroups(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	groups, err := h.service.ListForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// GetGroup resolves a group by its join code
// @Summary Get group by code
// @Description Resolve a group by join code; the caller must be a member
// @Tags groups
// @Produce json
// @Param code path string true "Group join code"
// @Success 200 {object} service.GroupResponse "Group"
// @Failure 403 {object} map[string]interface{} "Not a member"
// @Failure 404 {object} map[string]interface{} "Group not found"
// @Security BearerAuth
// @Router /groups/{code} [get]
func (h *GroupHandler) GetGroup(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	group, err := h.service.Resolve(c.Param("code"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

// JoinGroup joins a group by code
// @Summary Join a group
// @Description Join the group behind a join code; joining twice is a no-op
// @Tags groups
// @Produce json
// @Param code path string true "Group join code"
// @Success 200 {object} service.GroupResponse "Joined group"
// @Failure 404 {object} map[string]interface{} "Group not found"
// @Security BearerAuth
// @Router /groups/{code}/join [post]
func (h *GroupHandler) JoinGroup(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	group, err := h.service.Join(c.Param("code"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

// LeaveGroup removes the caller's membership
// @Summary Leave a group
// @Description Remove the caller's membership; the group itself persists
// @Tags groups
// @Produce json
// @Param code path string true "Group join code"
// @Success 204 "Left group"
// @Failure 403 {object} map[string]interface{} "Not a member"
// @Failure 404 {object} map[string]interface{} "Group not found"
// @Security BearerAuth
// @Router /groups/{code}/leave [post]
func (h *GroupHandler) LeaveGroup(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	if err := h.service.Leave(c.Param("code"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteGroup deletes a group
// @Summary Delete a group
// @Description Delete a group and everything it scopes; owner only
// @Tags groups
// @Produce json
// @Param code path string true "Group join code"
// @Success 204 "Deleted"
// @Failure 403 {object} map[string]interface{} "Not the owner"
// @Failure 404 {object} map[string]interface{} "Group not found"
// @Security BearerAuth
// @Router /groups/{code} [delete]
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Param("code"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListMembers lists a group's members
// @Summary List members
// @Description List a group's members with roles, in join order
// @Tags groups
// @Produce json
// @Param code path string true "Group join code"
// @Success 200 {array} service.MemberResponse "Members"
// @Failure 403 {object} map[string]interface{} "Not a member"
// @Failure 404 {object} map[string]interface{} "Group not found"
// @Security BearerAuth
// @Router /groups/{code}/members [get]
func (h *GroupHandler) ListMembers(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	members, err := h.service.Members(c.Param("code"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// CreateInvite issues an invite token for a group
// @Summary Create an invite
// @Description Issue a shareable invite token; owner or admin only
// @Tags groups
// @Accept json
// @Produce json
// @Param code path string true "Group join code"
// @Param invite body service.CreateInviteRequest true "Invite settings"
// @Success 201 {object} service.InviteResponse "Created invite"
// @Failure 403 {object} map[string]interface{} "Insufficient role"
// @Security BearerAuth
// @Router /groups/{code}/invites [post]
func (h *GroupHandler) CreateInvite(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req service.CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invite, err := h.service.CreateInvite(c.Param("code"), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invite)
}

// ListInvites lists a group's invites
// @Summary List invites
// @Description List a group's invite tokens, newest first; owner or admin only
// @Tags groups
// @Produce json
// @Param code path string true "Group join code"
// @Success 200 {array} service.InviteResponse "Invites"
// @Failure 403 {object} map[string]interface{} "Insufficient role"
// @Failure 404 {object} map[string]interface{} "Group not found"
// @Security BearerAuth
// @Router /groups/{code}/invites [get]
func (h *GroupHandler) ListInvites(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	invites, err := h.service.ListInvites(c.Param("code"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invites)
}

// RevokeInvite deletes an invite token
// @Summary Revoke an invite
// @Description Delete an invite so its token can no longer be redeemed; owner or admin only
// @Tags groups
// @Produce json
// @Param code path string true "Group join code"
// @Param token path string true "Invite token"
// @Success 204 "Revoked"
// @Failure 403 {object} map[string]interface{} "Insufficient role"
// @Failure 404 {object} map[string]interface{} "Invite not found"
// @Security BearerAuth
// @Router /groups/{code}/invites/{token} [delete]
func (h *GroupHandler) RevokeInvite(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	if err := h.service.RevokeInvite(c.Param("code"), userID, c.Param("token")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AcceptInvite redeems an invite token
// @Summary Accept an invite
// @Description Join the group behind an invite token
// @Tags groups
// @Produce json
// @Param token path string true "Invite token"
// @Success 200 {object} service.GroupResponse "Joined group"
// @Failure 404 {object} map[string]interface{} "Invite not found"
// @Failure 410 {object} map[string]interface{} "Invite expired or exhausted"
// @Security BearerAuth
// @Router /invites/{token}/accept [post]
func (h *GroupHandler) AcceptInvite(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	group, err := h.service.AcceptInvite(c.Param("token"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}
