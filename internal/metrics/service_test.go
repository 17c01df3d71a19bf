package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)

	s.IncRefreshRuns()
	s.IncRefreshRuns()
	s.IncHistoryWrites("RANKED_SOLO_5x5")
	s.IncMatchesIngested()
	s.ObserveRefreshDuration(1.5)

	assert.Equal(t, 2.0, testutil.ToFloat64(s.RefreshRuns))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.HistoryWrites.WithLabelValues("RANKED_SOLO_5x5")))
	assert.Equal(t, 0.0, testutil.ToFloat64(s.HistoryWrites.WithLabelValues("RANKED_FLEX_SR")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.MatchesIngested))
}

func TestMetricsHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)
	s.IncRefreshRejected()

	rr := httptest.NewRecorder()
	NewMetricsHandler(reg).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "summoner_refresh_rejected_total 1")
}
