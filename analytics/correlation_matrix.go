package analytics

import "github.com/netkit-wifi/netkit/internal/netkiterr"

// CorrelationMatrix holds pairwise correlations across a named set of
// equal-length metric series.
type CorrelationMatrix struct {
	series map[string][]float64
	pairs  map[[2]string]CorrelationResult
}

// NewCorrelationMatrix computes every pairwise correlation across
// series using method. Requires at least 2 metrics, all of equal
// length.
func NewCorrelationMatrix(series map[string][]float64, method CorrelationMethod) (CorrelationMatrix, error) {
	if len(series) < 2 {
		return CorrelationMatrix{}, netkiterr.NewInvalidInput("series", "correlation matrix requires at least 2 metrics")
	}

	var length int
	first := true
	for _, v := range series {
		if first {
			length = len(v)
			first = false
			continue
		}
		if len(v) != length {
			return CorrelationMatrix{}, netkiterr.NewInvalidInput("series", "all metric series must be equal length")
		}
	}

	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}

	pairs := make(map[[2]string]CorrelationResult)
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			result, err := Correlate(series[names[i]], series[names[j]], method)
			if err != nil {
				return CorrelationMatrix{}, err
			}
			pairs[[2]string{names[i], names[j]}] = result
		}
	}

	return CorrelationMatrix{series: series, pairs: pairs}, nil
}

// GetCorrelation looks up the correlation between a and b, checking
// both key orders since the matrix is symmetric.
func (m CorrelationMatrix) GetCorrelation(a, b string) (CorrelationResult, bool) {
	if r, ok := m.pairs[[2]string{a, b}]; ok {
		return r, true
	}
	if r, ok := m.pairs[[2]string{b, a}]; ok {
		return r, true
	}
	return CorrelationResult{}, false
}
