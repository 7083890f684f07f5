package risk

import (
	"fmt"
	"sort"

	"github.com/netkit-wifi/netkit/domain"
	"github.com/netkit-wifi/netkit/security"
)

// PrioritizedRisk is a single ranked action item.
type PrioritizedRisk struct {
	ID               string
	Title            string
	Description      string
	Impact           Impact
	Likelihood       Likelihood
	Effort           Effort
	MitigationSteps  []string
	AffectedBssids   []domain.BSSID
	RiskScore        float64
	PriorityScore    float64
}

// OverallLevel bins the totalRiskScore.
type OverallLevel string

const (
	OverallCritical OverallLevel = "CRITICAL"
	OverallHigh     OverallLevel = "HIGH"
	OverallMedium   OverallLevel = "MEDIUM"
	OverallLow      OverallLevel = "LOW"
	OverallMinimal  OverallLevel = "MINIMAL"
)

// RiskPlan is the full prioritized output of the engine.
type RiskPlan struct {
	Risks           []PrioritizedRisk
	TotalRiskScore  float64
	OverallLevel    OverallLevel
}

// CustomRiskRule lets a caller register additional risk generators
// beyond the fixed taxonomy below, in the style of a pluggable
// detector/rule architecture.
type CustomRiskRule func(analysis security.NetworkSecurityAnalysis) []PrioritizedRisk

func newRisk(id, title, description string, impact Impact, likelihood Likelihood, effort Effort, steps []string, bssids []domain.BSSID) PrioritizedRisk {
	riskScore := impact.Score() * likelihood.Score()
	return PrioritizedRisk{
		ID:              id,
		Title:           title,
		Description:     description,
		Impact:          impact,
		Likelihood:      likelihood,
		Effort:          effort,
		MitigationSteps: steps,
		AffectedBssids:  bssids,
		RiskScore:       riskScore,
		PriorityScore:   riskScore * effort.Score(),
	}
}

// Prioritize runs the fixed generator taxonomy plus any
// custom rules, sorts the resulting risks, and computes the overall
// totals.
func Prioritize(analysis security.NetworkSecurityAnalysis, customRules ...CustomRiskRule) RiskPlan {
	var risks []PrioritizedRisk

	risks = append(risks, generateCriticalNetworkThreat(analysis)...)
	risks = append(risks, generateLowCompliance(analysis)...)
	risks = append(risks, generateMinimumSecurityBelow50(analysis)...)
	risks = append(risks, generatePerBssWps(analysis)...)
	risks = append(risks, generateWeakCipher(analysis)...)
	risks = append(risks, generateMissingPmf(analysis)...)
	risks = append(risks, generateCriticalPerBssThreat(analysis)...)

	for _, rule := range customRules {
		risks = append(risks, rule(analysis)...)
	}

	sortRisks(risks)

	total := totalRiskScore(analysis)
	return RiskPlan{
		Risks:          risks,
		TotalRiskScore: total,
		OverallLevel:   overallLevel(total),
	}
}

// sortRisks orders by (riskScore desc, effort asc, impact desc).
func sortRisks(risks []PrioritizedRisk) {
	sort.SliceStable(risks, func(i, j int) bool {
		a, b := risks[i], risks[j]
		if a.RiskScore != b.RiskScore {
			return a.RiskScore > b.RiskScore
		}
		if a.Effort.ordinal() != b.Effort.ordinal() {
			return a.Effort.ordinal() < b.Effort.ordinal()
		}
		return a.Impact.ordinal() > b.Impact.ordinal()
	})
}

func totalRiskScore(analysis security.NetworkSecurityAnalysis) float64 {
	n := len(analysis.PerBss)
	if n == 0 {
		return 0
	}
	var sum float64
	for _, s := range analysis.PerBss {
		sum += impactFromSeverity(worstSeverityFor(s)).Score()
	}
	v := sum / float64(n)
	return clamp01(v)
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

func overallLevel(score float64) OverallLevel {
	switch {
	case score >= 0.8:
		return OverallCritical
	case score >= 0.6:
		return OverallHigh
	case score >= 0.4:
		return OverallMedium
	case score >= 0.2:
		return OverallLow
	default:
		return OverallMinimal
	}
}

// worstSeverityFor returns the worst severity observed on a single BSS
// (its own issues plus WPS risk level), used to drive the per-BSS
// contribution to totalRiskScore.
func worstSeverityFor(s security.BssSecurityScore) security.Severity {
	worst := s.WpsRisk.Level
	for _, iss := range s.Issues {
		if iss.Severity > worst {
			worst = iss.Severity
		}
	}
	return worst
}

func impactFromSeverity(sev security.Severity) Impact {
	switch sev {
	case security.SeverityCritical:
		return ImpactCritical
	case security.SeverityHigh:
		return ImpactHigh
	case security.SeverityMedium:
		return ImpactMedium
	case security.SeverityLow:
		return ImpactLow
	default:
		return ImpactNegligible
	}
}

func bssID(prefix string, b domain.BSSID) string {
	return fmt.Sprintf("%s_%s", prefix, b)
}
