package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"emailfinder/pkg/controller"
	"emailfinder/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics_RecordsMatchedRoute(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/lookups/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	handler := controller.WithMetrics(mux)

	before := counterValue(t, "GET /v1/lookups/{id}", "404")

	for range 2 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/lookups/abc", nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	}

	require.InDelta(t, before+2, counterValue(t, "GET /v1/lookups/{id}", "404"), 0)
}

func TestWithMetrics_Unmatched(t *testing.T) {
	handler := controller.WithMetrics(http.NewServeMux())

	before := counterValue(t, "unmatched", "404")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	require.InDelta(t, before+1, counterValue(t, "unmatched", "404"), 0)
}

func counterValue(t *testing.T, route, code string) float64 {
	t.Helper()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	for _, f := range families {
		if f.GetName() != metrics.Namespace+"_http_requests_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			if labels["route"] == route && labels["code"] == code && labels["method"] == http.MethodGet {
				return m.GetCounter().GetValue()
			}
		}
	}

	return 0
}
