package handlers

import (
	"net/http"

	"github.com/evandev76/event-organizer-app/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for signup, login and identity
type AuthHandler struct {
	service service.UserServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service service.UserServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// Signup registers a new account
// @Summary Register a new account
// @Description Create an account with email and password and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param account body service.SignupRequest true "Account data"
// @Success 201 {object} service.AuthResponse "Account created"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Email already registered"
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req service.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.Signup(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login authenticates an account
// @Summary Log in
// @Description Verify credentials and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Credentials"
// @Success 200 {object} service.AuthResponse "Authenticated"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me returns the caller's resolved identity
// @Summary Current identity
// @Description Resolve the identity behind the bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} service.UserResponse "Resolved identity"
// @Failure 401 {object} map[string]interface{} "Unauthenticated"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	resp, err := h.service.Me(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
