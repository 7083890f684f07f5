package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netkit-wifi/netkit/analytics"
)

func TestCompareToBaselineStableWithinFivePercent(t *testing.T) {
	current := map[string]float64{"rssi": 100}
	baseline := map[string]float64{"rssi": 102}

	comparisons := analytics.CompareToBaseline(current, baseline, nil, 10)

	require.Len(t, comparisons, 1)
	require.Equal(t, analytics.ChangeStable, comparisons[0].Direction)
}

func TestBenchmarkGradesFromScore(t *testing.T) {
	result := analytics.Benchmark(
		map[string]float64{"throughput": 95},
		map[string]float64{"throughput": 100},
		nil,
	)
	require.InDelta(t, 95.0, result.Score, 0.001)
	require.Equal(t, analytics.GradeExcellent, result.Grade)
}

func TestHealthScoreClampedRange(t *testing.T) {
	score := analytics.HealthScore([]analytics.HealthMetric{
		{Name: "rssi", Value: -40, Weight: 1},
		{Name: "snr", Value: 40, Weight: 1},
	})
	require.GreaterOrEqual(t, score, 0.0)
	require.LessOrEqual(t, score, 100.0)
}
