package handlers

import (
	"errors"
	"net/http"

	"github.com/dandi-labs/dandi-dashboard/internal/models"
	"github.com/dandi-labs/dandi-dashboard/internal/services/playground"
	"github.com/gin-gonic/gin"
)

// PlaygroundHandler handles the playground submit and protected page flow
type PlaygroundHandler struct {
	playgroundService *playground.Service
}

// NewPlaygroundHandler creates a new PlaygroundHandler instance
func NewPlaygroundHandler(playgroundService *playground.Service) *PlaygroundHandler {
	return &PlaygroundHandler{playgroundService: playgroundService}
}

// Handoff handles POST /api/v1/playground/handoff
// @Summary Submit a key from the playground
// @Description Issue a short-lived, single-use token carrying the key to the protected page
// @Tags playground
// @Accept json
// @Produce json
// @Param request body models.HandoffRequest true "Key to hand off"
// @Success 200 {object} map[string]interface{} "success: true, token: string"
// @Failure 400 {object} map[string]interface{} "success: false, error: error message"
// @Router /api/v1/playground/handoff [post]
func (h *PlaygroundHandler) Handoff(c *gin.Context) {
	var req models.HandoffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "API key is required",
		})
		return
	}

	token, err := h.playgroundService.IssueToken(req.APIKey)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
	})
}

// Protected handles GET /api/v1/protected
// @Summary Validate a handed-off key
// @Description Redeem a playground token and report whether its key is valid
// @Tags playground
// @Produce json
// @Param token query string true "Handoff token"
// @Success 200 {object} models.ProtectedResponse
// @Failure 400 {object} map[string]interface{} "success: false, error: error message"
// @Failure 401 {object} map[string]interface{} "success: false, error: error message"
// @Router /api/v1/protected [get]
func (h *PlaygroundHandler) Protected(c *gin.Context) {
	valid, err := h.playgroundService.Redeem(c.Request.Context(), c.Query("token"))
	if err != nil {
		status := http.StatusUnauthorized
		if errors.Is(err, playground.ErrTokenRequired) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	if valid {
		c.JSON(http.StatusOK, models.ProtectedResponse{Success: true, Valid: true, Message: "Valid API Key, /protected can be accessed"})
		return
	}
	c.JSON(http.StatusOK, models.ProtectedResponse{Success: true, Valid: false, Message: "Invalid API Key"})
}
