// Package risk implements the Risk Prioritizer: transforms a
// security.NetworkSecurityAnalysis into a sorted list of
// PrioritizedRisk action items.
package risk

// Impact is the 5-level impact scale.
type Impact string

const (
	ImpactCritical    Impact = "CRITICAL"
	ImpactHigh        Impact = "HIGH"
	ImpactMedium      Impact = "MEDIUM"
	ImpactLow         Impact = "LOW"
	ImpactNegligible  Impact = "NEGLIGIBLE"
)

var impactScore = map[Impact]float64{
	ImpactCritical:   1.0,
	ImpactHigh:       0.7,
	ImpactMedium:     0.4,
	ImpactLow:        0.2,
	ImpactNegligible: 0.1,
}

// Score returns the 0-1 numeric score for the impact level.
func (i Impact) Score() float64 { return impactScore[i] }

// ordinal gives a total order for tie-breaking ("impact descending").
func (i Impact) ordinal() int {
	switch i {
	case ImpactCritical:
		return 4
	case ImpactHigh:
		return 3
	case ImpactMedium:
		return 2
	case ImpactLow:
		return 1
	default:
		return 0
	}
}

// Likelihood is the 5-level likelihood scale
type Likelihood string

const (
	LikelihoodCertain  Likelihood = "CERTAIN"
	LikelihoodLikely   Likelihood = "LIKELY"
	LikelihoodPossible Likelihood = "POSSIBLE"
	LikelihoodUnlikely Likelihood = "UNLIKELY"
	LikelihoodRare     Likelihood = "RARE"
)

var likelihoodScore = map[Likelihood]float64{
	LikelihoodCertain:  1.0,
	LikelihoodLikely:   0.7,
	LikelihoodPossible: 0.5,
	LikelihoodUnlikely: 0.3,
	LikelihoodRare:     0.1,
}

// Score returns the 0-1 numeric score for the likelihood level.
func (l Likelihood) Score() float64 { return likelihoodScore[l] }

// Effort is the 3-level remediation-effort scale Its
// score doubles as the priorityScore penalty multiplier.
type Effort string

const (
	EffortLow    Effort = "LOW"
	EffortMedium Effort = "MEDIUM"
	EffortHigh   Effort = "HIGH"
)

var effortScore = map[Effort]float64{
	EffortLow:    1.0,
	EffortMedium: 0.8,
	EffortHigh:   0.6,
}

// Score returns the 0-1 multiplier for the effort level.
func (e Effort) Score() float64 { return effortScore[e] }

// ordinal gives a total order for tie-breaking ("effort ascending" means
// LOW sorts before HIGH).
func (e Effort) ordinal() int {
	switch e {
	case EffortLow:
		return 0
	case EffortMedium:
		return 1
	case EffortHigh:
		return 2
	default:
		return 3
	}
}
