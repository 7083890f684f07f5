// Package analytics implements the statistical, comparative, and
// time-series/spatial analyzers.
package analytics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/netkit-wifi/netkit/internal/netkiterr"
)

// CorrelationMethod selects the estimator used by Correlate.
type CorrelationMethod string

const (
	MethodPearson  CorrelationMethod = "PEARSON"
	MethodSpearman CorrelationMethod = "SPEARMAN"
	MethodKendall  CorrelationMethod = "KENDALL"
)

var minSamples = map[CorrelationMethod]int{
	MethodPearson:  10,
	MethodSpearman: 10,
	MethodKendall:  5,
}

// Strength is the closed correlation-strength enumeration.
type Strength string

const (
	StrengthVeryStrong Strength = "VERY_STRONG"
	StrengthStrong     Strength = "STRONG"
	StrengthModerate   Strength = "MODERATE"
	StrengthWeak       Strength = "WEAK"
	StrengthVeryWeak   Strength = "VERY_WEAK"
	StrengthNegligible Strength = "NEGLIGIBLE"
)

// Direction is the closed correlation-direction enumeration.
type Direction string

const (
	DirectionPositive Direction = "POSITIVE"
	DirectionNegative Direction = "NEGATIVE"
	DirectionNone     Direction = "NONE"
)

// CorrelationResult is the output of Correlate.
type CorrelationResult struct {
	Coefficient float64
	PValue      float64
	Strength    Strength
	Direction   Direction
}

// Correlate computes the correlation between x and y using method.
// Pearson and Spearman need at least 10 samples, Kendall needs at
// least 5. A zero-variance series always yields a zero coefficient.
func Correlate(x, y []float64, method CorrelationMethod) (CorrelationResult, error) {
	if len(x) != len(y) {
		return CorrelationResult{}, netkiterr.NewInvalidInput("y", "must be the same length as x")
	}
	required := minSamples[method]
	if len(x) < required {
		return CorrelationResult{}, netkiterr.NewInsufficientData("Correlate", required, len(x))
	}

	if zeroVariance(x) || zeroVariance(y) {
		return CorrelationResult{Direction: DirectionNone}, nil
	}

	var coeff float64
	switch method {
	case MethodSpearman:
		coeff = stat.Correlation(rank(x), rank(y), nil)
	case MethodKendall:
		coeff = kendallTau(x, y)
	default:
		coeff = stat.Correlation(x, y, nil)
	}

	if coeff > 1 {
		coeff = 1
	}
	if coeff < -1 {
		coeff = -1
	}

	return CorrelationResult{
		Coefficient: coeff,
		PValue:      approxPValue(coeff, len(x)),
		Strength:    strengthOf(coeff),
		Direction:   directionOf(coeff),
	}, nil
}

func zeroVariance(xs []float64) bool {
	if len(xs) == 0 {
		return true
	}
	return stat.Variance(xs, nil) == 0
}

func strengthOf(r float64) Strength {
	abs := math.Abs(r)
	switch {
	case abs >= 0.9:
		return StrengthVeryStrong
	case abs >= 0.7:
		return StrengthStrong
	case abs >= 0.5:
		return StrengthModerate
	case abs >= 0.3:
		return StrengthWeak
	case abs >= 0.1:
		return StrengthVeryWeak
	default:
		return StrengthNegligible
	}
}

func directionOf(r float64) Direction {
	switch {
	case r > 0.1:
		return DirectionPositive
	case r < -0.1:
		return DirectionNegative
	default:
		return DirectionNone
	}
}

// approxPValue derives a two-sided significance estimate for the
// correlation coefficient from its t-statistic, evaluated against the
// standard normal distribution, clamped to [0,1].
func approxPValue(r float64, n int) float64 {
	if n <= 2 {
		return 1
	}
	absR := math.Abs(r)
	if absR >= 1 {
		return 0
	}
	t := absR * math.Sqrt(float64(n-2)/(1-absR*absR))
	// Approximate the two-sided p-value from the t-statistic using a
	// normal approximation, adequate for the sample sizes this package
	// expects.
	p := 2 * (1 - normalCDF(t))
	return clamp01(p)
}

func normalCDF(z float64) float64 {
	return 0.5 * (1 + math.Erf(z/math.Sqrt2))
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// rank assigns fractional ranks to xs, giving tied values the mean
// rank, per the usual Spearman tie-handling rule.
func rank(xs []float64) []float64 {
	type indexed struct {
		value float64
		index int
	}
	idx := make([]indexed, len(xs))
	for i, v := range xs {
		idx[i] = indexed{value: v, index: i}
	}
	sort.Slice(idx, func(i, j int) bool { return idx[i].value < idx[j].value })

	ranks := make([]float64, len(xs))
	i := 0
	for i < len(idx) {
		j := i
		for j < len(idx) && idx[j].value == idx[i].value {
			j++
		}
		meanRank := float64(i+j+1) / 2
		for k := i; k < j; k++ {
			ranks[idx[k].index] = meanRank
		}
		i = j
	}
	return ranks
}

// kendallTau computes Kendall's tau-b, excluding pairs tied in either
// series from the concordant/discordant counts. Pairs are enumerated
// via combin.Combinations rather than a hand-rolled nested loop.
func kendallTau(x, y []float64) float64 {
	n := len(x)
	var concordant, discordant, tiedX, tiedY int
	for _, pair := range combin.Combinations(n, 2) {
		i, j := pair[0], pair[1]
		dx := x[i] - x[j]
		dy := y[i] - y[j]
		switch {
		case dx == 0 && dy == 0:
			tiedX++
			tiedY++
		case dx == 0:
			tiedX++
		case dy == 0:
			tiedY++
		case (dx > 0) == (dy > 0):
			concordant++
		default:
			discordant++
		}
	}
	total := combin.Binomial(n, 2)
	denom := math.Sqrt(float64(total-tiedX)) * math.Sqrt(float64(total-tiedY))
	if denom == 0 {
		return 0
	}
	return float64(concordant-discordant) / denom
}
