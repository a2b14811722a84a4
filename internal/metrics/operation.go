package metrics

import "time"

// Track records one boundary operation. classify maps the returned error to
// an outcome label.
func Track(operation string, classify func(error) string, fn func() error) error {
	start := time.Now()

	OperationsInFlight.Inc()
	defer OperationsInFlight.Dec()

	err := fn()

	OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	OperationsTotal.WithLabelValues(operation, classify(err)).Inc()
	return err
}
