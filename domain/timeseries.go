package domain

import (
	"math"

	"github.com/netkit-wifi/netkit/internal/netkiterr"
)

// DataPoint is a single (timestamp, value) sample.
type DataPoint struct {
	TimestampMs int64
	Value       float64
}

// TimeSeries is an ordered sequence of samples for one named metric,
// Invariant: timestamps strictly non-decreasing, all
// values finite.
type TimeSeries struct {
	MetricName string
	DataPoints []DataPoint
}

// Validate enforces the TimeSeries invariants
func (t TimeSeries) Validate() error {
	for i, p := range t.DataPoints {
		if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
			return netkiterr.NewInvalidInput("dataPoints", "all values must be finite")
		}
		if i > 0 && p.TimestampMs < t.DataPoints[i-1].TimestampMs {
			return netkiterr.NewInvalidInput("dataPoints", "timestamps must be non-decreasing")
		}
	}
	return nil
}

// Values extracts the value component of every point, in order.
func (t TimeSeries) Values() []float64 {
	out := make([]float64, len(t.DataPoints))
	for i, p := range t.DataPoints {
		out[i] = p.Value
	}
	return out
}
