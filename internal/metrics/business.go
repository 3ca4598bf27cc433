package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Label values shared by the engine decorators.
const (
	DomainCrypto = "crypto"

	StatusSuccess = "success"
	StatusError   = "error"
)

// Status maps an operation result to its status label.
func Status(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusSuccess
}

// BusinessMetrics records engine operations.
// Operations are "encrypt", "decrypt", "encrypt_fields" and "decrypt_fields" in
// the "crypto" domain; status is "success" or "error".
type BusinessMetrics interface {
	// RecordOperation counts one operation.
	RecordOperation(ctx context.Context, domain, operation, status string)

	// RecordDuration records the operation duration in seconds.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)
}

type businessMetrics struct {
	*instruments
}

// NewBusinessMetrics creates <namespace>_operations_total and
// <namespace>_operation_duration_seconds on the given meter provider.
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	inst, err := newInstruments(
		meterProvider.Meter(namespace),
		namespace+"_operations_total",
		namespace+"_operation_duration_seconds",
		"{operation}",
		"business operations",
	)
	if err != nil {
		return nil, err
	}

	return &businessMetrics{instruments: inst}, nil
}

func operationAttributes(domain, operation, status string) metric.MeasurementOption {
	return metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
}

// RecordOperation increments the operation counter.
func (b *businessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.counter.Add(ctx, 1, operationAttributes(domain, operation, status))
}

// RecordDuration records the duration histogram.
func (b *businessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.duration.Record(ctx, duration.Seconds(), operationAttributes(domain, operation, status))
}

// NoOpBusinessMetrics discards everything. Used when metrics are disabled.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a no-op BusinessMetrics implementation.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

// RecordOperation does nothing.
func (n *NoOpBusinessMetrics) RecordOperation(context.Context, string, string, string) {}

// RecordDuration does nothing.
func (n *NoOpBusinessMetrics) RecordDuration(context.Context, string, string, time.Duration, string) {}
