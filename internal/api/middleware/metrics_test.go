package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkleclean/SCS-BookingService/pkg/metrics"
)

// counterValue ищет значение счётчика http_requests_total
// с заданными метками в default registry
func counterValue(t *testing.T, method, path, status string) (float64, bool) {
	t.Helper()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != "http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			if labels["method"] == method && labels["path"] == path && labels["status"] == status {
				return m.GetCounter().GetValue(), true
			}
		}
	}
	return 0, false
}

func TestMetricsMiddleware(t *testing.T) {
	collector := metrics.New("test-service")

	router := mux.NewRouter()
	router.Use(MetricsMiddleware(collector, "test-service"))
	router.HandleFunc("/api/v1/bookings/{bookingId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/availability/slots", func(w http.ResponseWriter, r *http.Request) {
		// статус не выставляется явно, должен записаться 200
		_, _ = w.Write([]byte(`{"slots":[]}`))
	}).Methods(http.MethodGet)

	t.Run("records route template and handler status", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/HC12345", nil)
		router.ServeHTTP(httptest.NewRecorder(), req)

		// Метка path должна быть шаблоном маршрута, а не конкретным URL
		value, found := counterValue(t, http.MethodGet, "/api/v1/bookings/{bookingId}", "404")
		require.True(t, found, "expected http_requests_total sample for the route template")
		assert.Equal(t, float64(1), value)

		_, foundRaw := counterValue(t, http.MethodGet, "/api/v1/bookings/HC12345", "404")
		assert.False(t, foundRaw, "raw URL must not become a label value")
	})

	t.Run("defaults to 200 when handler writes no header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/availability/slots", nil)
		router.ServeHTTP(httptest.NewRecorder(), req)

		value, found := counterValue(t, http.MethodGet, "/api/v1/availability/slots", "200")
		require.True(t, found)
		assert.Equal(t, float64(1), value)
	})
}
