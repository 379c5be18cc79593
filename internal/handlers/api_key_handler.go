package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dandi-labs/dandi-dashboard/internal/models"
	"github.com/dandi-labs/dandi-dashboard/internal/services"
	"github.com/dandi-labs/dandi-dashboard/internal/services/api_key"
	"github.com/dandi-labs/dandi-dashboard/internal/services/excel"
	"github.com/dandi-labs/dandi-dashboard/internal/utils"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const sseHeartbeatInterval = 30 * time.Second

// APIKeyHandler handles HTTP requests related to API keys
type APIKeyHandler struct {
	apiKeyService *api_key.Service
	excelService  *excel.Service
	sseHub        *services.SSEHub
}

// NewAPIKeyHandler creates a new APIKeyHandler instance
func NewAPIKeyHandler(apiKeyService *api_key.Service, excelService *excel.Service, sseHub *services.SSEHub) *APIKeyHandler {
	return &APIKeyHandler{
		apiKeyService: apiKeyService,
		excelService:  excelService,
		sseHub:        sseHub,
	}
}

// List handles GET /api/v1/api-keys
// @Summary List API keys
// @Description List every API key, newest first. Secrets are masked.
// @Tags api-keys
// @Produce json
// @Param page query int false "Page number (default: 1)" minimum(1)
// @Param page_size query int false "Items per page (max: 100). Omit to list every key." minimum(1) maximum(100)
// @Success 200 {object} map[string]interface{} "success: true, api_keys: []models.APIKeyResponse"
// @Failure 500 {object} map[string]interface{} "success: false, error: error message"
// @Router /api/v1/api-keys [get]
func (h *APIKeyHandler) List(c *gin.Context) {
	keys, err := h.apiKeyService.FetchAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	body := gin.H{"success": true}
	page, pageSize, paginate := utils.ParsePaginationFromQuery(c.Query("page"), c.Query("page_size"))
	if paginate {
		start, end := utils.PageBounds(len(keys), page, pageSize)
		body["pagination"] = utils.CalculatePaginationInfo(len(keys), page, pageSize)
		keys = keys[start:end]
	}

	response := make([]models.APIKeyResponse, len(keys))
	for i, key := range keys {
		masked := api_key.MaskAPIKey(key.Key)
		key.Key = masked
		response[i] = models.APIKeyResponse{APIKey: key, MaskedKey: masked}
	}
	body["api_keys"] = response

	c.JSON(http.StatusOK, body)
}

// Create handles POST /api/v1/api-keys
// @Summary Create API key
// @Description Create a new API key. The secret is generated by the server.
// @Tags api-keys
// @Accept json
// @Produce json
// @Param request body models.APIKeyFormData true "API key form"
// @Success 201 {object} map[string]interface{} "success: true, message: string"
// @Failure 400 {object} map[string]interface{} "success: false, error: error message"
// @Failure 500 {object} map[string]interface{} "success: false, error: error message"
// @Router /api/v1/api-keys [post]
func (h *APIKeyHandler) Create(c *gin.Context) {
	var form models.APIKeyFormData
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.apiKeyService.Create(c.Request.Context(), form); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "API key created successfully",
	})
}

// Reveal handles GET /api/v1/api-keys/:id/reveal
// @Summary Reveal API key
// @Description Return the full secret of an API key for display or copying
// @Tags api-keys
// @Produce json
// @Param id path string true "API key ID"
// @Success 200 {object} map[string]interface{} "success: true, key: string"
// @Failure 404 {object} map[string]interface{} "success: false, error: error message"
// @Failure 500 {object} map[string]interface{} "success: false, error: error message"
// @Router /api/v1/api-keys/{id}/reveal [get]
func (h *APIKeyHandler) Reveal(c *gin.Context) {
	key, err := h.apiKeyService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      key.ID,
		"key":     key.Key,
	})
}

// Update handles PUT /api/v1/api-keys/:id
// @Summary Update API key
// @Description Update the editable fields of an API key. The secret never changes.
// @Tags api-keys
// @Accept json
// @Produce json
// @Param id path string true "API key ID"
// @Param request body models.APIKeyFormData true "API key form"
// @Success 200 {object} map[string]interface{} "success: true, message: string"
// @Failure 400 {object} map[string]interface{} "success: false, error: error message"
// @Failure 404 {object} map[string]interface{} "success: false, error: error message"
// @Failure 500 {object} map[string]interface{} "success: false, error: error message"
// @Router /api/v1/api-keys/{id} [put]
func (h *APIKeyHandler) Update(c *gin.Context) {
	var form models.APIKeyFormData
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.apiKeyService.Update(c.Request.Context(), c.Param("id"), form); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "API key updated successfully",
	})
}

// Delete handles DELETE /api/v1/api-keys/:id
// @Summary Delete API key
// @Description Permanently delete an API key
// @Tags api-keys
// @Produce json
// @Param id path string true "API key ID"
// @Success 200 {object} map[string]interface{} "success: true, message: string"
// @Failure 404 {object} map[string]interface{} "success: false, error: error message"
// @Failure 500 {object} map[string]interface{} "success: false, error: error message"
// @Router /api/v1/api-keys/{id} [delete]
func (h *APIKeyHandler) Delete(c *gin.Context) {
	if err := h.apiKeyService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "API key deleted successfully",
	})
}

// Export handles GET /api/v1/api-keys/export
// @Summary Export API keys to Excel
// @Description Download every API key as an xlsx workbook. Secrets are masked.
// @Tags api-keys
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary "Excel file"
// @Failure 500 {object} map[string]interface{} "success: false, error: error message"
// @Router /api/v1/api-keys/export [get]
func (h *APIKeyHandler) Export(c *gin.Context) {
	var buf bytes.Buffer
	result, err := h.excelService.ExportAPIKeys(c.Request.Context(), &buf)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", result.Filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// Events handles GET /api/v1/api-keys/events
// @Summary Stream API key events
// @Description Stream API key lifecycle events via Server-Sent Events (SSE)
// @Tags api-keys
// @Produce text/event-stream
// @Success 200 "SSE stream"
// @Router /api/v1/api-keys/events [get]
func (h *APIKeyHandler) Events(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // Disable buffering for nginx

	clientChan := h.sseHub.RegisterClient()
	defer h.sseHub.UnregisterClient(clientChan)

	c.SSEvent("connected", gin.H{"message": "Connected to API key event stream"})
	c.Writer.Flush()

	ticker := time.NewTicker(sseHeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			logrus.Debug("SSE client disconnected")
			return
		case <-ticker.C:
			if _, err := fmt.Fprintf(c.Writer, ": heartbeat %s\n\n", time.Now().Format(time.RFC3339)); err != nil {
				return
			}
			c.Writer.Flush()
		case message, ok := <-clientChan:
			if !ok {
				return
			}
			if _, err := c.Writer.Write(message); err != nil {
				logrus.Errorf("Failed to write SSE message: %v", err)
				return
			}
			c.Writer.Flush()
		}
	}
}

// respondError maps service errors onto HTTP statuses
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch api_key.KindOf(err) {
	case api_key.KindValidation:
		status = http.StatusBadRequest
	case api_key.KindService:
		if errors.Is(err, api_key.ErrAPIKeyNotFound) {
			status = http.StatusNotFound
		}
	}

	if status >= http.StatusInternalServerError {
		logrus.WithError(err).WithField("path", c.FullPath()).Error("API key request failed")
		sentry.CaptureException(err)
	}

	c.JSON(status, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}
