package domain

import "math"

// Point2D is a planar coordinate in meters, used by spatial
// interpolation and coverage mapping.
type Point2D struct {
	X, Y float64
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(o Point2D) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// ScanPoint is a single RSSI sample collected at a location.
type ScanPoint struct {
	Location    Point2D
	RSSI        int
	BSSID       BSSID
	TimestampMs int64
}
