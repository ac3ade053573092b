package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsMiddlewareRecordsRequest(t *testing.T) {
	testCases := []struct {
		name       string
		method     string
		path       string
		label      string
		statusCode int
	}{
		{
			name:       "uses route pattern",
			method:     http.MethodPost,
			path:       "/transactions",
			label:      "/transactions",
			statusCode: http.StatusSeeOther,
		},
		{
			name:       "nested api route",
			method:     http.MethodGet,
			path:       "/api/v1/summary",
			label:      "/api/v1/summary",
			statusCode: http.StatusTeapot,
		},
		{
			name:       "unknown path collapses",
			method:     http.MethodGet,
			path:       "/wp-admin/setup.php",
			label:      unmatchedPath,
			statusCode: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			httpRequestsTotal.Reset()
			httpRequestDuration.Reset()
			httpRequestsInFlight.Set(0)

			handlerCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				w.WriteHeader(tc.statusCode)
			})

			r := chi.NewRouter()
			r.Use(Metrics)
			r.Post("/transactions", next)
			r.Route("/api/v1", func(r chi.Router) {
				r.Get("/summary", next)
			})
			r.NotFound(next)

			req := httptest.NewRequest(tc.method, tc.path, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			if !handlerCalled {
				t.Fatalf("next handler was not invoked")
			}

			if got := testutil.ToFloat64(httpRequestsInFlight); got != 0 {
				t.Fatalf("expected in-flight gauge to return to 0, got %v", got)
			}

			counter := httpRequestsTotal.WithLabelValues(tc.method, tc.label, strconv.Itoa(tc.statusCode))
			if got := testutil.ToFloat64(counter); got != 1 {
				t.Fatalf("expected counter to be 1, got %v", got)
			}
		})
	}
}

func TestRoutePathWithoutRouter(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	if got := routePath(req); got != unmatchedPath {
		t.Fatalf("routePath = %q, expected %q", got, unmatchedPath)
	}
}
