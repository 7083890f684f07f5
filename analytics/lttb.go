package analytics

import (
	"gonum.org/v1/gonum/floats"

	"github.com/netkit-wifi/netkit/domain"
)

// DownsampleLTTB reduces series to targetPoints using the
// Largest-Triangle-Three-Buckets algorithm: the first
// and last points are always kept; the remaining points are bucketed
// and, within each bucket, the point forming the largest triangle with
// the previously selected point and the next bucket's mean is kept.
// When targetPoints is below 3, or not below the series length, a copy
// of the whole series is returned unreduced.
func DownsampleLTTB(series domain.TimeSeries, targetPoints int) []domain.DataPoint {
	points := series.DataPoints
	if targetPoints >= len(points) || targetPoints < 3 {
		return append([]domain.DataPoint(nil), points...)
	}

	out := make([]domain.DataPoint, 0, targetPoints)
	out = append(out, points[0])

	bucketSize := float64(len(points)-2) / float64(targetPoints-2)
	selected := points[0]

	for i := 0; i < targetPoints-2; i++ {
		bucketStart := int(float64(i)*bucketSize) + 1
		bucketEnd := int(float64(i+1)*bucketSize) + 1
		if bucketEnd > len(points)-1 {
			bucketEnd = len(points) - 1
		}

		nextStart := bucketEnd
		nextEnd := int(float64(i+2)*bucketSize) + 1
		if nextEnd > len(points) {
			nextEnd = len(points)
		}
		if nextStart >= nextEnd {
			nextEnd = nextStart + 1
			if nextEnd > len(points) {
				nextEnd = len(points)
			}
		}
		avgX, avgY := meanPoint(points[nextStart:nextEnd])

		bestArea := -1.0
		bestIdx := bucketStart
		for j := bucketStart; j < bucketEnd; j++ {
			area := triangleArea(selected, points[j], avgX, avgY)
			if area > bestArea {
				bestArea = area
				bestIdx = j
			}
		}

		selected = points[bestIdx]
		out = append(out, selected)
	}

	out = append(out, points[len(points)-1])
	return out
}

func meanPoint(pts []domain.DataPoint) (x, y float64) {
	if len(pts) == 0 {
		return 0, 0
	}
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = float64(p.TimestampMs)
		ys[i] = p.Value
	}
	n := float64(len(pts))
	return floats.Sum(xs) / n, floats.Sum(ys) / n
}

func triangleArea(a, b domain.DataPoint, cx, cy float64) float64 {
	ax, ay := float64(a.TimestampMs), a.Value
	bx, by := float64(b.TimestampMs), b.Value
	area := (ax-cx)*(by-ay) - (ax-bx)*(cy-ay)
	if area < 0 {
		return -area
	}
	return area
}
