package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Status labels for note operations.
const (
	StatusSuccess   = "success"
	StatusNotFound  = "not_found"
	StatusInvalid   = "invalid_input"
	StatusIntegrity = "integrity_error"
	StatusError     = "error"
)

// BusinessMetrics records note lifecycle operations.
type BusinessMetrics interface {
	// ObserveOperation counts one operation and records its latency.
	ObserveOperation(ctx context.Context, operation, status string, elapsed time.Duration)

	// RecordIntegrityFailure counts reads whose stored envelope failed to open.
	// Any increase means stored data was altered or the key changed.
	RecordIntegrityFailure(ctx context.Context, operation string)
}

type businessMetrics struct {
	operations metric.Int64Counter
	latency    metric.Float64Histogram
	integrity  metric.Int64Counter
}

// NewBusinessMetrics registers the note instruments under namespace.
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operations, err := meter.Int64Counter(
		namespace+"_note_operations_total",
		metric.WithDescription("Note lifecycle operations by outcome"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create note operation counter: %w", err)
	}

	latency, err := meter.Float64Histogram(
		namespace+"_note_operation_duration_seconds",
		metric.WithDescription("Note lifecycle operation latency"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create note latency histogram: %w", err)
	}

	integrity, err := meter.Int64Counter(
		namespace+"_integrity_failures_total",
		metric.WithDescription("Stored notes that failed authentication on read"),
		metric.WithUnit("{failure}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create integrity counter: %w", err)
	}

	return &businessMetrics{operations: operations, latency: latency, integrity: integrity}, nil
}

func (b *businessMetrics) ObserveOperation(ctx context.Context, operation, status string, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
	b.operations.Add(ctx, 1, attrs)
	b.latency.Record(ctx, elapsed.Seconds(), attrs)
}

func (b *businessMetrics) RecordIntegrityFailure(ctx context.Context, operation string) {
	b.integrity.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", operation)))
}

// NoOpBusinessMetrics is used when METRICS_ENABLED is false.
type NoOpBusinessMetrics struct{}

func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

func (*NoOpBusinessMetrics) ObserveOperation(context.Context, string, string, time.Duration) {}

func (*NoOpBusinessMetrics) RecordIntegrityFailure(context.Context, string) {}
