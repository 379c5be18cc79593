package handlers

import (
	"net/http"
	"strings"

	"github.com/dandi-labs/dandi-dashboard/internal/models"
	"github.com/dandi-labs/dandi-dashboard/internal/services/api_key"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ValidateKeyHandler serves the public key validation endpoint
type ValidateKeyHandler struct {
	validationService *api_key.ValidationService
}

// NewValidateKeyHandler creates a new ValidateKeyHandler instance
func NewValidateKeyHandler(validationService *api_key.ValidationService) *ValidateKeyHandler {
	return &ValidateKeyHandler{validationService: validationService}
}

// ValidateKey handles POST /api/validate-key
// @Summary Validate API key
// @Description Check whether an API key exists
// @Tags validation
// @Accept json
// @Produce json
// @Param request body models.ValidateKeyRequest true "Key to validate"
// @Success 200 {object} models.ValidateKeyResponse
// @Failure 400 {object} models.ValidateKeyResponse
// @Failure 401 {object} models.ValidateKeyResponse
// @Failure 500 {object} models.ValidateKeyResponse
// @Router /api/validate-key [post]
func (h *ValidateKeyHandler) ValidateKey(c *gin.Context) {
	var req models.ValidateKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Unexpected error in validate-key")
		c.JSON(http.StatusInternalServerError, models.ValidateKeyResponse{Valid: false, Message: "Internal server error"})
		return
	}

	apiKey, ok := req.APIKey.(string)
	if !ok || strings.TrimSpace(apiKey) == "" {
		c.JSON(http.StatusBadRequest, models.ValidateKeyResponse{Valid: false, Message: "API key is required"})
		return
	}

	result := h.validationService.Check(c.Request.Context(), apiKey)
	switch result.Outcome {
	case api_key.OutcomeValid:
		c.JSON(http.StatusOK, models.ValidateKeyResponse{Valid: true, Message: "API key is valid"})
	case api_key.OutcomeError:
		c.JSON(http.StatusInternalServerError, models.ValidateKeyResponse{Valid: false, Message: "Error validating API key"})
	default:
		c.JSON(http.StatusUnauthorized, models.ValidateKeyResponse{Valid: false, Message: "Invalid API key"})
	}
}
