package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netkit-wifi/netkit/analytics"
	"github.com/netkit-wifi/netkit/domain"
)

func TestInterpolateNearestNeighbor(t *testing.T) {
	scans := []domain.ScanPoint{
		{Location: domain.Point2D{X: 0, Y: 0}, RSSI: -40},
		{Location: domain.Point2D{X: 10, Y: 10}, RSSI: -80},
	}
	rssi := analytics.Interpolate(analytics.MethodNearestNeighbor, domain.Point2D{X: 1, Y: 1}, scans, 0, 0)
	require.Equal(t, -40.0, rssi)
}

func TestInterpolateIDWExactHit(t *testing.T) {
	scans := []domain.ScanPoint{
		{Location: domain.Point2D{X: 5, Y: 5}, RSSI: -55},
	}
	rssi := analytics.Interpolate(analytics.MethodIDW, domain.Point2D{X: 5, Y: 5}, scans, 2, 50)
	require.Equal(t, -55.0, rssi)
}

func TestInterpolateNoScansReturnsDefault(t *testing.T) {
	rssi := analytics.Interpolate(analytics.MethodIDW, domain.Point2D{}, nil, 2, 50)
	require.Equal(t, -100.0, rssi)
}

func TestClassifyCoverageDefaults(t *testing.T) {
	require.Equal(t, analytics.CoverageExcellent, analytics.ClassifyCoverage(-45, analytics.DefaultCoverageThresholds))
	require.Equal(t, analytics.CoverageNoSignal, analytics.ClassifyCoverage(-95, analytics.DefaultCoverageThresholds))
}
