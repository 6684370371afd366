package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordDecision(t *testing.T) {
	m := NewMetrics()

	m.RecordDecision("owner_or_admin", "owner", true)
	m.RecordDecision("owner_or_admin", "not_owner", false)
	m.RecordDecision("owner_or_admin", "not_owner", false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.decisionsTotal.WithLabelValues("owner_or_admin", "allow", "owner")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.decisionsTotal.WithLabelValues("owner_or_admin", "deny", "not_owner")))
}

func TestRecordHTTPRequestAndRateLimit(t *testing.T) {
	m := NewMetrics()

	m.RecordHTTPRequest(http.MethodGet, "/api/properties/:id", http.StatusOK, 20*time.Millisecond)
	m.RecordRateLimitDecision(false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/properties/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rateLimitTotal.WithLabelValues("limited")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordDecision("self_or_admin", "self", true)
		m.RecordHTTPRequest(http.MethodGet, "/health", http.StatusOK, time.Millisecond)
		m.RecordRateLimitDecision(true)
	})
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := NewMetrics()
	m.RecordDecision("role_allowlist", "role_allowed", true)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "casa_authz_decisions_total")
}
