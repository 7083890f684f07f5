package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netkit-wifi/netkit/analytics"
)

func TestCorrelatePearsonPerfectLine(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 2*v + 7
	}

	result, err := analytics.Correlate(x, y, analytics.MethodPearson)
	require.NoError(t, err)
	require.GreaterOrEqual(t, result.Coefficient, 0.999)
	require.LessOrEqual(t, result.Coefficient, 1.0)
	require.Equal(t, analytics.StrengthVeryStrong, result.Strength)
	require.Equal(t, analytics.DirectionPositive, result.Direction)
}

func TestCorrelateRequiresMinimumSamples(t *testing.T) {
	_, err := analytics.Correlate([]float64{1, 2, 3}, []float64{1, 2, 3}, analytics.MethodPearson)
	require.Error(t, err)
}

func TestCorrelateZeroVarianceReturnsZero(t *testing.T) {
	x := make([]float64, 10)
	y := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	for i := range x {
		x[i] = 5
	}

	result, err := analytics.Correlate(x, y, analytics.MethodPearson)
	require.NoError(t, err)
	require.Equal(t, 0.0, result.Coefficient)
}

func TestFindOutliersRequiresMinimumSamples(t *testing.T) {
	_, err := analytics.FindOutliers([]float64{1, 2}, 1.5)
	require.Error(t, err)
}

func TestBuildHistogramConstantValues(t *testing.T) {
	h, err := analytics.BuildHistogram([]float64{5, 5, 5})
	require.NoError(t, err)
	require.Len(t, h.Bins, 1)
	require.Equal(t, 3, h.Bins[0].Count)
}
