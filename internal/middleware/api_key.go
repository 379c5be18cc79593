package middleware

import (
	"net/http"
	"strings"

	"github.com/dandi-labs/dandi-dashboard/internal/services/api_key"
	"github.com/gin-gonic/gin"
)

// APIKeyMiddleware handles API key authentication
type APIKeyMiddleware struct {
	validationService *api_key.ValidationService
}

// NewAPIKeyMiddleware creates a new API key middleware
func NewAPIKeyMiddleware(validationService *api_key.ValidationService) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		validationService: validationService,
	}
}

// RequireAPIKey rejects requests without a valid key in the X-API-Key header
// or an "Authorization: ApiKey <key>" header
func (m *APIKeyMiddleware) RequireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-API-Key")
		if key == "" {
			if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "ApiKey ") {
				key = strings.TrimPrefix(authHeader, "ApiKey ")
			}
		}

		if strings.TrimSpace(key) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "API key is required",
			})
			return
		}

		result := m.validationService.Check(c.Request.Context(), key)
		switch result.Outcome {
		case api_key.OutcomeValid:
			c.Set("api_key_id", result.APIKeyID)
			c.Set("auth_type", "api_key")
			c.Next()
		case api_key.OutcomeError:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Error validating API key",
			})
		default:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Invalid API key",
			})
		}
	}
}
