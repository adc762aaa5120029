package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/autor/:id", "404"))

	ObserveRequest("get", "/autor/:id", http.StatusNotFound, 12*time.Millisecond)

	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/autor/:id", "404"))
	assert.Equal(t, before+1, after)
}

func TestObserveRequestUnmatchedPath(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("POST", "unmatched", "404"))

	ObserveRequest("POST", "", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("POST", "unmatched", "404")))
}

func TestTrackInFlight(t *testing.T) {
	base := testutil.ToFloat64(httpInFlight)

	done := TrackInFlight()
	assert.Equal(t, base+1, testutil.ToFloat64(httpInFlight))

	done()
	assert.Equal(t, base, testutil.ToFloat64(httpInFlight))
}

func TestRecordError(t *testing.T) {
	before := testutil.ToFloat64(operationErrors.WithLabelValues("conflict"))
	RecordError("conflict")
	assert.Equal(t, before+1, testutil.ToFloat64(operationErrors.WithLabelValues("conflict")))

	beforeUnknown := testutil.ToFloat64(operationErrors.WithLabelValues("unknown"))
	RecordError("")
	assert.Equal(t, beforeUnknown+1, testutil.ToFloat64(operationErrors.WithLabelValues("unknown")))
}

func TestPoolCollector(t *testing.T) {
	c := NewPoolCollector(func() (PoolSnapshot, bool) {
		return PoolSnapshot{AcquiredConns: 2, IdleConns: 3, TotalConns: 5, MaxConns: 25, AcquireCount: 40}, true
	})

	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(c))

	assert.Equal(t, 5, testutil.CollectAndCount(c))

	expected := `
# HELP catalog_db_pool_total_connections Connections currently open.
# TYPE catalog_db_pool_total_connections gauge
catalog_db_pool_total_connections 5
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "catalog_db_pool_total_connections"))
}

func TestPoolCollectorSkipsWhenUnavailable(t *testing.T) {
	c := NewPoolCollector(func() (PoolSnapshot, bool) { return PoolSnapshot{}, false })
	assert.Equal(t, 0, testutil.CollectAndCount(c))
}

func TestHandlerExposesMetrics(t *testing.T) {
	ObserveRequest("GET", "/livros", http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "catalog_http_requests_total")
}
