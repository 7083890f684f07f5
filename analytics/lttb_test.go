package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netkit-wifi/netkit/analytics"
	"github.com/netkit-wifi/netkit/domain"
)

func TestDownsampleLTTBPreservesEndpointsOnRamp(t *testing.T) {
	points := make([]domain.DataPoint, 101)
	for i := range points {
		points[i] = domain.DataPoint{TimestampMs: int64(i), Value: float64(i)}
	}
	series := domain.TimeSeries{MetricName: "ramp", DataPoints: points}

	out := analytics.DownsampleLTTB(series, 4)

	require.Len(t, out, 4)
	require.Equal(t, domain.DataPoint{TimestampMs: 0, Value: 0}, out[0])
	require.Equal(t, domain.DataPoint{TimestampMs: 100, Value: 100}, out[3])
	for i := 1; i < len(out); i++ {
		require.Greater(t, out[i].TimestampMs, out[i-1].TimestampMs)
		require.GreaterOrEqual(t, out[i].Value, out[i-1].Value)
	}
}
