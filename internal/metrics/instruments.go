package metrics

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// instruments pairs a counter with a duration histogram. Both the engine and
// the HTTP layer record one count and one duration per event.
type instruments struct {
	counter  metric.Int64Counter
	duration metric.Float64Histogram
}

func newInstruments(meter metric.Meter, counterName, durationName, unit, subject string) (*instruments, error) {
	counter, err := meter.Int64Counter(
		counterName,
		metric.WithDescription(fmt.Sprintf("Total number of %s", subject)),
		metric.WithUnit(unit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s counter: %w", counterName, err)
	}

	duration, err := meter.Float64Histogram(
		durationName,
		metric.WithDescription(fmt.Sprintf("Duration of %s in seconds", subject)),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s histogram: %w", durationName, err)
	}

	return &instruments{counter: counter, duration: duration}, nil
}
