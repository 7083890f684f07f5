package analytics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/netkit-wifi/netkit/internal/netkiterr"
)

// HistogramBin is one bucket of a Histogram.
type HistogramBin struct {
	Lower, Upper float64
	Count        int
}

// Histogram is the output of BuildHistogram.
type Histogram struct {
	Bins []HistogramBin
}

// BuildHistogram bins values using the Sturges rule (⌈1+log2(n)⌉ bins).
// When every value is identical, a single unit-width bin centered on
// the value is returned instead.
func BuildHistogram(values []float64) (Histogram, error) {
	if len(values) == 0 {
		return Histogram{}, netkiterr.NewInsufficientData("BuildHistogram", 1, 0)
	}

	lo, hi := minMax(values)
	if lo == hi {
		return Histogram{Bins: []HistogramBin{{Lower: lo - 0.5, Upper: hi + 0.5, Count: len(values)}}}, nil
	}

	binCount := int(math.Ceil(1 + math.Log2(float64(len(values)))))
	if binCount < 1 {
		binCount = 1
	}
	width := (hi - lo) / float64(binCount)

	bins := make([]HistogramBin, binCount)
	for i := range bins {
		bins[i] = HistogramBin{Lower: lo + float64(i)*width, Upper: lo + float64(i+1)*width}
	}

	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= binCount {
			idx = binCount - 1
		}
		if idx < 0 {
			idx = 0
		}
		bins[idx].Count++
	}

	return Histogram{Bins: bins}, nil
}

// KdeEstimate is one (x, density) sample from EstimateKde.
type KdeEstimate struct {
	X       float64
	Density float64
}

// EstimateKde evaluates a Gaussian-kernel density estimate over
// points equally spaced points, with a Silverman-rule bandwidth and an
// evaluation range extended 10% beyond the data range
func EstimateKde(values []float64, points int) ([]KdeEstimate, error) {
	if len(values) < 2 {
		return nil, netkiterr.NewInsufficientData("EstimateKde", 2, len(values))
	}
	if points < 2 {
		points = 2
	}

	bandwidth := silvermanBandwidth(values)
	lo, hi := minMax(values)
	span := hi - lo
	lo -= 0.1 * span
	hi += 0.1 * span
	if lo == hi {
		lo--
		hi++
	}

	out := make([]KdeEstimate, points)
	step := (hi - lo) / float64(points-1)
	for i := 0; i < points; i++ {
		x := lo + float64(i)*step
		out[i] = KdeEstimate{X: x, Density: gaussianKdeAt(x, values, bandwidth)}
	}
	return out, nil
}

func gaussianKdeAt(x float64, values []float64, bandwidth float64) float64 {
	var sum float64
	for _, v := range values {
		u := (x - v) / bandwidth
		sum += math.Exp(-0.5*u*u) / math.Sqrt(2*math.Pi)
	}
	return sum / (float64(len(values)) * bandwidth)
}

func silvermanBandwidth(values []float64) float64 {
	n := float64(len(values))
	sigma := stat.StdDev(values, nil)
	iqr := interQuartileRange(values)
	spread := sigma
	if iqr/1.34 < spread {
		spread = iqr / 1.34
	}
	if spread == 0 {
		spread = sigma
	}
	if spread == 0 {
		spread = 1
	}
	return 0.9 * spread * math.Pow(n, -0.2)
}

// Outlier reports one value flagged by the IQR rule.
type Outlier struct {
	Index int
	Value float64
}

// FindOutliers flags values outside `[Q1 - k*IQR, Q3 + k*IQR]`.
// Requires at least 4 samples.
func FindOutliers(values []float64, k float64) ([]Outlier, error) {
	if len(values) < 4 {
		return nil, netkiterr.NewInsufficientData("FindOutliers", 4, len(values))
	}
	if k <= 0 {
		k = 1.5
	}

	q1, q3 := quartiles(values)
	iqr := q3 - q1
	lowerBound := q1 - k*iqr
	upperBound := q3 + k*iqr

	var outliers []Outlier
	for i, v := range values {
		if v < lowerBound || v > upperBound {
			outliers = append(outliers, Outlier{Index: i, Value: v})
		}
	}
	return outliers, nil
}

func interQuartileRange(values []float64) float64 {
	q1, q3 := quartiles(values)
	return q3 - q1
}

func quartiles(values []float64) (q1, q3 float64) {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	q1 = stat.Quantile(0.25, stat.Empirical, sorted, nil)
	q3 = stat.Quantile(0.75, stat.Empirical, sorted, nil)
	return q1, q3
}

func minMax(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
