package router

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dandi-labs/dandi-dashboard/internal/config"
	"github.com/dandi-labs/dandi-dashboard/internal/database"
	"github.com/dandi-labs/dandi-dashboard/internal/database/repository"
	"github.com/dandi-labs/dandi-dashboard/internal/models"
	"github.com/dandi-labs/dandi-dashboard/internal/services"
	"github.com/dandi-labs/dandi-dashboard/internal/services/api_key"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T, basePath string) (http.Handler, *gorm.DB) {
	t.Helper()

	cfg := &config.Config{
		BasePath:         basePath,
		GinMode:          "test",
		CORSAllowOrigins: []string{"*"},
		Database: config.DatabaseConfig{
			Driver: config.DriverSQLite,
			DSN:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		},
		Handoff: config.HandoffConfig{Secret: "test-secret", TTL: time.Minute},
	}

	db, err := database.InitDB(cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	r, err := SetupRouter(cfg, db, services.NewSSEHub(), nil)
	require.NoError(t, err)
	return r, db
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestSetupRouter_Routes(t *testing.T) {
	r, _ := newTestRouter(t, "/dandi")

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/dandi/api/v1/health", http.StatusOK},
		{http.MethodGet, "/dandi/metrics", http.StatusOK},
		{http.MethodGet, "/dandi/api/v1/api-keys", http.StatusOK},
		{http.MethodGet, "/dandi/swagger/index.html", http.StatusOK},
		{http.MethodGet, "/api/v1/health", http.StatusNotFound},
		{http.MethodGet, "/dandi/api/v1/protected/resource", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := serve(r, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestSetupRouter_ValidateKeyEndpoint(t *testing.T) {
	r, _ := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodPost, "/api/validate-key", bytes.NewBufferString(`{"apiKey":"dandi-dev-missing"}`))
	req.Header.Set("Content-Type", "application/json")
	w := serve(r, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"valid":false,"message":"Invalid API key"}`, w.Body.String())
}

func TestSetupRouter_ProtectedResourceWithKey(t *testing.T) {
	r, db := newTestRouter(t, "")
	service := api_key.NewService(repository.NewAPIKeyRepository(db), nil)
	require.NoError(t, service.Create(context.Background(), models.APIKeyFormData{Name: "Backend", Type: models.APIKeyTypeDev}))
	keys, err := service.FetchAll(context.Background())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/protected/resource", nil)
	req.Header.Set("X-API-Key", keys[0].Key)
	w := serve(r, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), keys[0].ID)
}

func TestSetupRouter_CORSPreflight(t *testing.T) {
	r, _ := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodOptions, "/api/validate-key", nil)
	req.Header.Set("Origin", "https://dashboard.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := serve(r, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
