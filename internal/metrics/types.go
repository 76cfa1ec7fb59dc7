package metrics

import "time"

type HTTPMetric struct {
	Time       time.Time
	Method     string
	Path       string
	StatusCode int
	DurationMs float64
	ClientIP   string
	Error      string
}

// CounterMetric is one increment of a named counter with labels.
type CounterMetric struct {
	Time   time.Time
	Name   string
	Value  float64
	Labels map[string]string
}
