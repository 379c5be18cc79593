package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/dandi-labs/dandi-dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handoff(t *testing.T, s *testServer, key string) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/v1/playground/handoff", map[string]interface{}{"apiKey": key})
	require.Equal(t, http.StatusOK, w.Code)
	token, ok := decode(t, w)["token"].(string)
	require.True(t, ok)
	return token
}

func TestPlaygroundFlow(t *testing.T) {
	s := newTestServer(t)
	created := s.createKey(t, "Backend", models.APIKeyTypeDev)

	token := handoff(t, s, created.Key)
	w := s.do(t, http.MethodGet, "/api/v1/protected?token="+url.QueryEscape(token), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["valid"])
	assert.Equal(t, "Valid API Key, /protected can be accessed", body["message"])

	w = s.do(t, http.MethodGet, "/api/v1/protected?token="+url.QueryEscape(token), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPlaygroundFlow_InvalidKey(t *testing.T) {
	s := newTestServer(t)

	token := handoff(t, s, "dandi-dev-unknown")
	w := s.do(t, http.MethodGet, "/api/v1/protected?token="+url.QueryEscape(token), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["valid"])
	assert.Equal(t, "Invalid API Key", body["message"])
}

func TestPlayground_Errors(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/playground/handoff", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/protected", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/protected?token=garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
