package telemetry

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Attribute keys for metric labels.
var (
	AttrHTTPMethod = attribute.Key("http.method")
	AttrHTTPRoute  = attribute.Key("http.route")
	AttrHTTPStatus = attribute.Key("http.status_code")
	AttrOperation  = attribute.Key("operation")
	AttrStore      = attribute.Key("store")
	AttrResult     = attribute.Key("result")
)

const instrumentationScope = "github.com/jsamuelsen11/gantt-dashboard"

// Metrics holds the dashboard's instruments.
type Metrics struct {
	// HTTP server, recorded by the OpenTelemetry middleware.
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter

	// Registry mutations by operation and result, and the cost of the
	// whole-collection save each successful mutation pays.
	MutationTotal     metric.Int64Counter
	StoreSaveDuration metric.Float64Histogram
}

// NewMetrics registers every instrument on mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(instrumentationScope)
	m := &Metrics{}
	var err error

	if m.ServerRequestDuration, err = meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of incoming HTTP requests"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("creating http.server.request.duration: %w", err)
	}

	if m.ServerRequestTotal, err = meter.Int64Counter("http.server.request.total",
		metric.WithDescription("Incoming HTTP requests"),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, fmt.Errorf("creating http.server.request.total: %w", err)
	}

	if m.MutationTotal, err = meter.Int64Counter("dashboard.mutation.total",
		metric.WithDescription("Project collection mutations"),
		metric.WithUnit("{mutation}"),
	); err != nil {
		return nil, fmt.Errorf("creating dashboard.mutation.total: %w", err)
	}

	if m.StoreSaveDuration, err = meter.Float64Histogram("dashboard.store.save.duration",
		metric.WithDescription("Duration of whole-collection saves"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("creating dashboard.store.save.duration: %w", err)
	}

	return m, nil
}
