package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.InputAccepted("farm_size")
	m.InputAccepted("farm_size")
	m.InputRejected("farm_size", "out_of_range")
	m.AdvisoryRendered("soil", "LOW")
	m.MenuChoice("3")
	m.MenuChoice("invalid")
	m.BusOutcome("duplicate")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.InputsAccepted.WithLabelValues("farm_size")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InputsRejected.WithLabelValues("farm_size", "out_of_range")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Advisories.WithLabelValues("soil", "LOW")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MenuChoices.WithLabelValues("invalid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BusPublished.WithLabelValues("duplicate")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.InputAccepted("x")
	m.InputRejected("x", "y")
	m.AdvisoryRendered("k", "t")
	m.MenuChoice("1")
	m.BusOutcome("published")
}

func TestHandlerServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.AdvisoryRendered("market", "HIGH")

	srv := NewServer("127.0.0.1:0", reg, zap.NewNop())
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `farm_advisor_advisories_total{kind="market",tier="HIGH"} 1`)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHealthUsesSource(t *testing.T) {
	srv := NewServer("127.0.0.1:0", prometheus.NewRegistry(), zap.NewNop()).WithHealth(func() Health {
		return Health{Status: "degraded", Checks: map[string]string{"bus": "breaker open"}}
	})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"degraded","checks":{"bus":"breaker open"}}`, rec.Body.String())

	srv.WithHealth(func() Health { return Health{Status: "down"} })
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestServerStopsWithContext(t *testing.T) {
	reg := prometheus.NewRegistry()
	srv := NewServer("127.0.0.1:0", reg, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done, err := srv.Start(ctx)
	require.NoError(t, err)
	cancel()
	<-done
}
