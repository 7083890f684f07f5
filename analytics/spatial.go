package analytics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/netkit-wifi/netkit/domain"
)

// InterpolationMethod selects the estimator used by Interpolate.
type InterpolationMethod string

const (
	MethodNearestNeighbor InterpolationMethod = "NEAREST_NEIGHBOR"
	MethodBilinear        InterpolationMethod = "BILINEAR"
	MethodIDW             InterpolationMethod = "IDW"
	MethodKriging         InterpolationMethod = "KRIGING"
)

const defaultNoSignalRSSI = -100

// Interpolate estimates the RSSI at p from scans. KRIGING is an
// alias for IDW; no semivariogram model is fitted.
func Interpolate(method InterpolationMethod, p domain.Point2D, scans []domain.ScanPoint, power float64, maxDist float64) float64 {
	switch method {
	case MethodNearestNeighbor:
		return nearestNeighbor(p, scans)
	case MethodBilinear:
		return bilinear(p, scans)
	case MethodIDW, MethodKriging:
		return idw(p, scans, power, maxDist)
	default:
		return defaultNoSignalRSSI
	}
}

func nearestNeighbor(p domain.Point2D, scans []domain.ScanPoint) float64 {
	if len(scans) == 0 {
		return defaultNoSignalRSSI
	}
	best := scans[0]
	bestDist := p.Distance(best.Location)
	for _, s := range scans[1:] {
		d := p.Distance(s.Location)
		if d < bestDist {
			bestDist = d
			best = s
		}
	}
	return float64(best.RSSI)
}

// bilinear uses inverse-distance weighting over the 4 nearest scan
// points, with `1/(d+0.001)` weights to avoid division by zero.
func bilinear(p domain.Point2D, scans []domain.ScanPoint) float64 {
	if len(scans) == 0 {
		return defaultNoSignalRSSI
	}

	sorted := append([]domain.ScanPoint(nil), scans...)
	sort.Slice(sorted, func(i, j int) bool {
		return p.Distance(sorted[i].Location) < p.Distance(sorted[j].Location)
	})
	if len(sorted) > 4 {
		sorted = sorted[:4]
	}

	weights := make([]float64, len(sorted))
	values := make([]float64, len(sorted))
	for i, s := range sorted {
		weights[i] = 1 / (p.Distance(s.Location) + 0.001)
		values[i] = float64(s.RSSI)
	}
	weightSum := floats.Sum(weights)
	if weightSum == 0 {
		return defaultNoSignalRSSI
	}
	return floats.Dot(weights, values) / weightSum
}

// idw filters scans within maxDist, returns an exact hit's RSSI if one
// lies within 0.01m of p, else the inverse-distance-weighted mean with
// weight `1/d^power`.
func idw(p domain.Point2D, scans []domain.ScanPoint, power, maxDist float64) float64 {
	if power <= 0 {
		power = 2
	}
	if maxDist <= 0 {
		maxDist = 50
	}

	var inRange []domain.ScanPoint
	for _, s := range scans {
		if p.Distance(s.Location) <= maxDist {
			inRange = append(inRange, s)
		}
	}
	if len(inRange) == 0 {
		return defaultNoSignalRSSI
	}

	for _, s := range inRange {
		if p.Distance(s.Location) <= 0.01 {
			return float64(s.RSSI)
		}
	}

	weights := make([]float64, len(inRange))
	values := make([]float64, len(inRange))
	for i, s := range inRange {
		d := p.Distance(s.Location)
		weights[i] = 1 / math.Pow(d, power)
		values[i] = float64(s.RSSI)
	}
	return floats.Dot(weights, values) / floats.Sum(weights)
}

// Bounds is a rectangular area in meters.
type Bounds struct {
	Width, Height float64
}

// GridDimensions returns the heatmap grid's (width, height) cell
// counts for bounds at the given resolution.
func GridDimensions(bounds Bounds, resolution float64) (width, height int) {
	if resolution <= 0 {
		resolution = 1
	}
	width = int(math.Ceil(bounds.Width / resolution))
	if width < 1 {
		width = 1
	}
	height = int(math.Ceil(bounds.Height / resolution))
	if height < 1 {
		height = 1
	}
	return width, height
}

// CoverageLevel is the closed RSSI-quality enumeration.
type CoverageLevel string

const (
	CoverageExcellent CoverageLevel = "EXCELLENT"
	CoverageGood      CoverageLevel = "GOOD"
	CoverageFair      CoverageLevel = "FAIR"
	CoveragePoor      CoverageLevel = "POOR"
	CoverageVeryPoor  CoverageLevel = "VERY_POOR"
	CoverageNoSignal  CoverageLevel = "NO_SIGNAL"
)

// CoverageThresholds are the RSSI cutoffs for each CoverageLevel,
// defaulting to {-50,-60,-70,-80,-90}.
type CoverageThresholds struct {
	Excellent, Good, Fair, Poor, VeryPoor int
}

// DefaultCoverageThresholds is the default threshold set.
var DefaultCoverageThresholds = CoverageThresholds{
	Excellent: -50,
	Good:      -60,
	Fair:      -70,
	Poor:      -80,
	VeryPoor:  -90,
}

// ClassifyCoverage tiers an RSSI reading into a CoverageLevel against
// the given thresholds.
func ClassifyCoverage(rssi int, thresholds CoverageThresholds) CoverageLevel {
	switch {
	case rssi >= thresholds.Excellent:
		return CoverageExcellent
	case rssi >= thresholds.Good:
		return CoverageGood
	case rssi >= thresholds.Fair:
		return CoverageFair
	case rssi >= thresholds.Poor:
		return CoveragePoor
	case rssi >= thresholds.VeryPoor:
		return CoverageVeryPoor
	default:
		return CoverageNoSignal
	}
}

// CoverageReport summarizes a grid of classified cells as a
// percentage rollup by quality level.
type CoverageReport struct {
	Percentages map[CoverageLevel]float64
}

// SummarizeCoverage computes the percentage of cells at each
// CoverageLevel.
func SummarizeCoverage(cellRSSI []int, thresholds CoverageThresholds) CoverageReport {
	counts := make(map[CoverageLevel]int)
	for _, rssi := range cellRSSI {
		counts[ClassifyCoverage(rssi, thresholds)]++
	}
	total := len(cellRSSI)
	percentages := make(map[CoverageLevel]float64, len(counts))
	if total > 0 {
		for level, count := range counts {
			percentages[level] = float64(count) / float64(total) * 100
		}
	}
	return CoverageReport{Percentages: percentages}
}
