package security

import "strconv"

// ComplianceLevel bins network-wide posture into the five tiers.
type ComplianceLevel string

const (
	ComplianceFull         ComplianceLevel = "FULL"
	ComplianceHigh         ComplianceLevel = "HIGH"
	ComplianceModerate     ComplianceLevel = "MODERATE"
	ComplianceLow          ComplianceLevel = "LOW"
	ComplianceNonCompliant ComplianceLevel = "NON_COMPLIANT"
)

// NetworkSecurityAnalysis is the network-wide aggregation.
type NetworkSecurityAnalysis struct {
	MeanSecurityScore  float64
	MeanWpsRisk        float64
	WorstThreatLevel   Severity
	SecurityLevelHisto map[SecurityLevel]int
	CriticalWpsCount   int
	Compliance         ComplianceLevel
	CrossApIssues      []SecurityIssue
	PerBss             []BssSecurityScore
}

// AnalyzeNetwork aggregates per-BSS scores into a network-wide
// assessment.
func AnalyzeNetwork(scores []BssSecurityScore) NetworkSecurityAnalysis {
	n := len(scores)
	histo := make(map[SecurityLevel]int)
	if n == 0 {
		return NetworkSecurityAnalysis{
			SecurityLevelHisto: histo,
			Compliance:         ComplianceNonCompliant,
		}
	}

	var sumScore, sumWps float64
	worst := SeverityInfo
	criticalWps := 0
	modernCount := 0
	wpsIssueCount := 0

	ssidLevels := make(map[string]map[SecurityLevel]struct{})
	ssidCount := make(map[string]int)
	var ssidOrder []string

	for _, s := range scores {
		sumScore += s.Overall
		sumWps += s.WpsRisk.Risk
		histo[s.Level]++

		if s.WpsRisk.Level > worst {
			worst = s.WpsRisk.Level
		}
		for _, iss := range s.Issues {
			if iss.Severity > worst {
				worst = iss.Severity
			}
		}
		if s.WpsRisk.Risk >= 0.6 {
			criticalWps++
		}
		if s.WpsRisk.Risk >= 0.2 {
			wpsIssueCount++
		}
		if s.AuthType.IsModern() {
			modernCount++
		}

		if s.SSID != "" {
			if _, ok := ssidCount[s.SSID]; !ok {
				ssidOrder = append(ssidOrder, s.SSID)
				ssidLevels[s.SSID] = make(map[SecurityLevel]struct{})
			}
			ssidLevels[s.SSID][s.Level] = struct{}{}
			ssidCount[s.SSID]++
		}
	}

	var crossApIssues []SecurityIssue
	for _, ssid := range ssidOrder {
		if len(ssidLevels[ssid]) <= 1 {
			continue
		}
		crossApIssues = append(crossApIssues, SecurityIssue{
			Kind:           IssueInconsistentSecurityAcrossAps,
			Severity:       SeverityMedium,
			Recommendation: "Harmonize security configuration across all APs broadcasting this SSID.",
			Context: map[string]string{
				"ssid":  ssid,
				"count": strconv.Itoa(ssidCount[ssid]),
			},
		})
	}
	if len(crossApIssues) > 0 && SeverityMedium > worst {
		worst = SeverityMedium
	}

	modernPct := float64(modernCount) / float64(n)
	wpsIssuePct := float64(wpsIssueCount) / float64(n)

	return NetworkSecurityAnalysis{
		MeanSecurityScore:  sumScore / float64(n),
		MeanWpsRisk:        sumWps / float64(n),
		WorstThreatLevel:   worst,
		SecurityLevelHisto: histo,
		CriticalWpsCount:   criticalWps,
		Compliance:         complianceTier(modernPct, wpsIssuePct),
		CrossApIssues:      crossApIssues,
		PerBss:             scores,
	}
}

// complianceTier implements the ratio-based tier table
func complianceTier(modernPct, wpsIssuePct float64) ComplianceLevel {
	switch {
	case modernPct == 1.0 && wpsIssuePct == 0:
		return ComplianceFull
	case modernPct >= 0.8 && wpsIssuePct < 0.2:
		return ComplianceHigh
	case modernPct >= 0.6 && wpsIssuePct < 0.5:
		return ComplianceModerate
	case modernPct >= 0.3:
		return ComplianceLow
	default:
		return ComplianceNonCompliant
	}
}
