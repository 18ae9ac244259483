package model

import "fmt"

// Signal selects which fixture group a generation run produces.
type Signal string

const (
	SignalAll     Signal = "all"
	SignalLogs    Signal = "logs"
	SignalTraces  Signal = "traces"
	SignalMetrics Signal = "metrics"

	//Individual metric aggregation kinds
	SignalMetricsGauge                Signal = "metrics-gauge"
	SignalMetricsSum                  Signal = "metrics-sum"
	SignalMetricsHistogram            Signal = "metrics-histogram"
	SignalMetricsExponentialHistogram Signal = "metrics-exponential-histogram"
	SignalMetricsSummary              Signal = "metrics-summary"
	SignalMetricsMixed                Signal = "metrics-mixed"
)

var validSignals = map[Signal]bool{
	SignalAll:                         true,
	SignalLogs:                        true,
	SignalTraces:                      true,
	SignalMetrics:                     true,
	SignalMetricsGauge:                true,
	SignalMetricsSum:                  true,
	SignalMetricsHistogram:            true,
	SignalMetricsExponentialHistogram: true,
	SignalMetricsSummary:              true,
	SignalMetricsMixed:                true,
}

// ParseSignal validates a selector string before any generation begins.
func ParseSignal(value string) (Signal, error) {
	signal := Signal(value)
	if !validSignals[signal] {
		return "", fmt.Errorf("unknown signal selector %q", value)
	}
	return signal, nil
}

// MetricKind returns the aggregation kind for a metrics-<kind> selector, or
// an empty string for every other selector.
func (s Signal) MetricKind() string {
	switch s {
	case SignalMetricsGauge:
		return "gauge"
	case SignalMetricsSum:
		return "sum"
	case SignalMetricsHistogram:
		return "histogram"
	case SignalMetricsExponentialHistogram:
		return "exponential_histogram"
	case SignalMetricsSummary:
		return "summary"
	case SignalMetricsMixed:
		return "mixed"
	}
	return ""
}
