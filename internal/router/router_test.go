package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/butterflysteps/backend/internal/environment"
	"github.com/butterflysteps/backend/internal/middleware"
	"github.com/butterflysteps/backend/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(limiter *middleware.RateLimiter) http.Handler {
	env := environment.NewMock(time.Date(2025, 7, 5, 20, 0, 0, 0, time.UTC))
	return New(env, Options{
		Config: &utils.AppConfig{
			AllowedOrigins: []string{"*"},
			MetricsUser:    "ops",
			MetricsPass:    "secret",
		},
		Registry:    prometheus.NewRegistry(),
		RateLimiter: limiter,
	})
}

func post(h http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(map[string]interface{}{"data": body})
	r := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	r.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, r)
	return rr
}

func TestProfileRoundTrip(t *testing.T) {
	h := newRouter(middleware.NewRateLimiter(1000, 100))

	rr := post(h, "/create-user-profile", map[string]string{"idToken": "uid:u1", "displayName": "Walker"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = post(h, "/session-login", map[string]string{"idToken": "uid:u1"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"modal":"profile_setup"`)

	rr = post(h, "/get-user-profile", map[string]string{"idToken": "uid:u1"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"displayName":"Walker"`)
}

func TestSessionActionsRouted(t *testing.T) {
	h := newRouter(middleware.NewRateLimiter(1000, 100))

	rr := post(h, "/create-user-profile", map[string]string{"idToken": "uid:u1", "displayName": "Walker"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = post(h, "/session-complete-profile-setup", map[string]interface{}{
		"idToken": "uid:u1", "displayName": "Walker", "activityStatus": "Very Active", "stepGoal": 100000,
	})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"profileComplete":true`)

	rr = post(h, "/session-submit-steps", map[string]interface{}{"idToken": "uid:u1", "steps": 800})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"coinAvailable":true`)

	rr = post(h, "/session-create-team", map[string]string{"idToken": "uid:u1", "name": "Monarchs"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"teamName":"Monarchs"`)

	rr = post(h, "/session-join-team", map[string]string{"idToken": "uid:u1", "teamId": "TZZZZZZ"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"reason":"already_on_team"`)
}

func TestOnlyPostServesFunctions(t *testing.T) {
	h := newRouter(middleware.NewRateLimiter(1000, 100))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/submit-steps", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestMetricsNeedCredentials(t *testing.T) {
	h := newRouter(middleware.NewRateLimiter(1000, 100))

	post(h, "/get-community-stats", map[string]string{"idToken": "uid:u1"})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	r := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	r.SetBasicAuth("ops", "secret")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, r)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), `http_requests_total{method="POST",path="/get-community-stats",status="200"} 1`))
}

func TestRateLimited(t *testing.T) {
	h := newRouter(middleware.NewRateLimiter(0.001, 1))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}
