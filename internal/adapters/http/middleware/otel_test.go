package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/gantt-dashboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/gantt-dashboard/internal/platform/telemetry"
)

// These tests swap the global TracerProvider and do not run in parallel.

func installTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return exporter
}

// tracedRouter mounts a few dashboard-shaped routes behind the middleware.
func tracedRouter(metrics *telemetry.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(metrics))
	r.Get("/api/v1/projects/{name}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Post("/ui/tasks", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusSeeOther)
	})
	r.Post("/api/v1/stages", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	return r
}

func spanAttrs(s sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range s.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestOpenTelemetry_Spans(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		wantName   string
		wantStatus int64
		wantError  bool
	}{
		{
			name:       "project name stays out of span name",
			method:     http.MethodGet,
			target:     "/api/v1/projects/Solar%20Roof",
			wantName:   "HTTP GET /api/v1/projects/{name}",
			wantStatus: http.StatusOK,
		},
		{
			name:       "form redirect",
			method:     http.MethodPost,
			target:     "/ui/tasks",
			wantName:   "HTTP POST /ui/tasks",
			wantStatus: http.StatusSeeOther,
		},
		{
			name:       "server error marks span",
			method:     http.MethodPost,
			target:     "/api/v1/stages",
			wantName:   "HTTP POST /api/v1/stages",
			wantStatus: http.StatusInternalServerError,
			wantError:  true,
		},
		{
			name:       "unmatched route",
			method:     http.MethodGet,
			target:     "/favicon.ico",
			wantName:   "HTTP GET unmatched",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter := installTracer(t)

			tracedRouter(nil).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tt.method, tt.target, http.NoBody))

			spans := exporter.GetSpans().Snapshots()
			require.Len(t, spans, 1)
			span := spans[0]

			assert.Equal(t, tt.wantName, span.Name())
			attrs := spanAttrs(span)
			assert.Equal(t, tt.method, attrs["http.method"].AsString())
			assert.Equal(t, tt.wantStatus, attrs["http.status_code"].AsInt64())
			if tt.wantError {
				assert.Equal(t, codes.Error, span.Status().Code)
			} else {
				assert.NotEqual(t, codes.Error, span.Status().Code)
			}
		})
	}
}

func TestOpenTelemetry_ContinuesIncomingTrace(t *testing.T) {
	exporter := installTracer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/Solar%20Roof", http.NoBody)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	tracedRouter(nil).ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans().Snapshots()
	require.Len(t, spans, 1)
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", spans[0].SpanContext().TraceID().String())
	assert.Equal(t, "00f067aa0ba902b7", spans[0].Parent().SpanID().String())
}

func TestOpenTelemetry_RecordsServerMetrics(t *testing.T) {
	installTracer(t)

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	metrics, err := telemetry.NewMetrics(mp)
	require.NoError(t, err)

	h := tracedRouter(metrics)
	for _, name := range []string{"Solar%20Roof", "Garden", "Garage"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/projects/"+name, http.NoBody))
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total metricdata.Sum[int64]
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == "http.server.request.total" {
				total, _ = m.Data.(metricdata.Sum[int64])
			}
		}
	}

	require.Len(t, total.DataPoints, 1, "one series per route, not per project")
	dp := total.DataPoints[0]
	assert.Equal(t, int64(3), dp.Value)
	route, ok := dp.Attributes.Value(telemetry.AttrHTTPRoute)
	require.True(t, ok)
	assert.Equal(t, "/api/v1/projects/{name}", route.AsString())
}

func TestOpenTelemetry_NilMetrics(t *testing.T) {
	installTracer(t)

	rec := httptest.NewRecorder()
	tracedRouter(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ui/tasks", http.NoBody))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}
