// Package api - HTTP endpoint tests
package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"archcost/core/pricing"
	"archcost/core/types"
	"archcost/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Admin = testAdminConfig(t, "hunter2")
	return NewServer("test", cfg, pricing.NewService(), nil, nil, nil)
}

func doJSON(t *testing.T, s *Server, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestEstimateEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/estimate",
		`{"architecture": "monolith", "traffic": {"daily_active_users": 1000}}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result types.EstimationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, types.ArchMonolith, result.Architecture)
	assert.Equal(t, "USD", result.Currency)
	assert.Greater(t, result.MonthlyCost.Total, 0.0)
	assert.Equal(t, result.MonthlyCost.Total*12, result.YearlyCost)
}

func TestEstimateAppliesTrafficDefaults(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/estimate",
		`{"architecture": "serverless", "traffic": {"daily_active_users": 500}, "currency": "eur"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var result types.EstimationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "EUR", result.Currency)
	assert.Equal(t, 50, result.TrafficInput.APIRequestsPerUser)
	assert.Equal(t, 1.5, result.TrafficInput.PeakTrafficMultiplier)
	assert.Equal(t, "cloudwatch", result.TrafficInput.Monitoring.Provider)
}

func TestEstimateRejectsUnknownArchitecture(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/estimate",
		`{"architecture": "mainframe", "traffic": {"daily_active_users": 1000}}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "mainframe")
}

func TestEstimateRejectsInvalidTraffic(t *testing.T) {
	s := newTestServer(t)
	for _, body := range []string{
		`{"architecture": "monolith", "traffic": {"daily_active_users": 0}}`,
		`{"architecture": "monolith", "traffic": {"daily_active_users": -5}}`,
		`{"architecture": "monolith", "traffic": {"daily_active_users": 1000, "peak_traffic_multiplier": 50}}`,
		`{"architecture": "monolith"`, // broken JSON
	} {
		rec := doJSON(t, s, http.MethodPost, "/estimate", body, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
	}
}

func TestHealthAndVersion(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")

	rec = doJSON(t, s, http.MethodGet, "/version", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "archcost")
}

func TestProvidersListsArchitecturesAndClouds(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/providers", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Architectures  []string           `json:"architectures"`
		CloudProviders map[string]float64 `json:"cloud_providers"`
		Currencies     []string           `json:"currencies"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.ElementsMatch(t, []string{"monolith", "microservices", "serverless", "hybrid"}, resp.Architectures)
	assert.Equal(t, 1.0, resp.CloudProviders["AWS"])
	assert.Contains(t, resp.Currencies, "INR")
}

func TestPricingStatusWithoutPipeline(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/pricing/status", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "last_updated")
}

func TestAdminLoginIssuesToken(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/admin/login",
		`{"username": "admin", "password": "hunter2"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "bearer", resp.TokenType)
	assert.NotEmpty(t, resp.AccessToken)

	// Token grants access to the admin endpoint; without a pipeline the
	// refresh is unavailable but the request is authorized.
	rec = doJSON(t, s, http.MethodPost, "/admin/refresh-prices", "",
		map[string]string{"Authorization": "Bearer " + resp.AccessToken})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/admin/login",
		`{"username": "admin", "password": "wrong"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshRequiresBearerToken(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/admin/refresh-prices", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/admin/refresh-prices", "",
		map[string]string{"Authorization": "Bearer garbage"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestContactValidatesSubmission(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/contact",
		`{"name": "A", "email": "not-an-email", "subject": "Hi", "message": "x"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/contact",
		`{"name": "A", "email": "a@example.com", "subject": "Hi", "message": "x"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"received":true`)
	assert.Contains(t, rec.Body.String(), `"emailed":false`)
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/health", "", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodOptions, "/estimate", "",
		map[string]string{"Origin": "https://example.com"})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
