package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ledger/config"
	"ledger/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	cfg := &config.Config{
		Server:    config.ServerConfig{Mode: "test"},
		Session:   config.SessionConfig{Secret: "router-secret", ExpireTime: 24 * time.Hour},
		RateLimit: config.RateLimitConfig{MaxAttempts: 10, WindowSeconds: 60},
	}
	middleware.InitJWT(cfg)
	return cfg
}

func TestSetupRouter_PublicRoutes(t *testing.T) {
	r := SetupRouter(testConfig(), zap.NewNop())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/categories", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bills & Utilities")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ledger_http_requests_total")
}

func TestSetupRouter_ProjectRoutesRequireSession(t *testing.T) {
	r := SetupRouter(testConfig(), zap.NewNop())

	paths := []struct{ method, path string }{
		{"GET", "/api/projects/p-1"},
		{"DELETE", "/api/projects/p-1"},
		{"PUT", "/api/projects/p-1/password"},
		{"GET", "/api/projects/p-1/income"},
		{"POST", "/api/projects/p-1/income"},
		{"PUT", "/api/projects/p-1/income/i-1"},
		{"DELETE", "/api/projects/p-1/expenses/e-1"},
		{"GET", "/api/projects/p-1/stats"},
		{"GET", "/api/projects/p-1/export/income"},
		{"POST", "/api/projects/p-1/export/email"},
	}
	for _, p := range paths {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(p.method, p.path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, p.method+" "+p.path)
	}
}

func TestSetupRouter_SessionMismatch(t *testing.T) {
	r := SetupRouter(testConfig(), zap.NewNop())

	token, err := middleware.GenerateToken("p-1", "wedding", time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/projects/p-2/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Session does not match project")
}

func TestSetupRouter_SessionStatus(t *testing.T) {
	r := SetupRouter(testConfig(), zap.NewNop())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/projects/p-1/session", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"valid":false}`, w.Body.String())
}

func TestSetupRouter_CORSPreflight(t *testing.T) {
	r := SetupRouter(testConfig(), zap.NewNop())

	req := httptest.NewRequest("OPTIONS", "/api/projects", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
