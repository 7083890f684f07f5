package risk

import (
	"fmt"

	"github.com/netkit-wifi/netkit/domain"
	"github.com/netkit-wifi/netkit/security"
)

// generateCriticalNetworkThreat fires when the network's worst observed
// threat level is CRITICAL.
func generateCriticalNetworkThreat(a security.NetworkSecurityAnalysis) []PrioritizedRisk {
	if a.WorstThreatLevel != security.SeverityCritical {
		return nil
	}
	return []PrioritizedRisk{newRisk(
		"NETWORK_CRITICAL_THREAT",
		"Critical Security Threat Detected",
		"At least one BSS in this network carries a critical-severity security issue.",
		ImpactCritical, LikelihoodCertain, EffortMedium,
		[]string{
			"Review the per-BSS critical findings and remediate in priority order",
			"Disable any radios that cannot be remediated immediately",
		},
		affectedBssidsAbove(a, security.SeverityCritical),
	)}
}

// generateLowCompliance fires for MODERATE/LOW/NON_COMPLIANT tiers.
func generateLowCompliance(a security.NetworkSecurityAnalysis) []PrioritizedRisk {
	switch a.Compliance {
	case security.ComplianceFull, security.ComplianceHigh:
		return nil
	}
	impact := ImpactMedium
	if a.Compliance == security.ComplianceNonCompliant {
		impact = ImpactHigh
	}
	return []PrioritizedRisk{newRisk(
		"NETWORK_LOW_COMPLIANCE",
		"Network Security Compliance Below Target",
		fmt.Sprintf("Network-wide compliance tier is %s.", a.Compliance),
		impact, LikelihoodLikely, EffortHigh,
		[]string{
			"Upgrade legacy authentication/cipher configurations across all clusters",
			"Disable or lock down WPS network-wide",
		},
		nil,
	)}
}

// generateMinimumSecurityBelow50 fires when the mean security score is
// below 50%
func generateMinimumSecurityBelow50(a security.NetworkSecurityAnalysis) []PrioritizedRisk {
	if a.MeanSecurityScore >= 0.50 {
		return nil
	}
	return []PrioritizedRisk{newRisk(
		"NETWORK_MIN_SECURITY",
		"Average Security Score Below 50%",
		fmt.Sprintf("Mean per-BSS security score is %.2f, below the 0.50 floor.", a.MeanSecurityScore),
		ImpactHigh, LikelihoodLikely, EffortHigh,
		[]string{"Prioritize remediation of the weakest-scoring BSS radios first"},
		nil,
	)}
}

// generatePerBssWps fires one risk per BSS whose WPS risk score is
// >= 0.6
func generatePerBssWps(a security.NetworkSecurityAnalysis) []PrioritizedRisk {
	var out []PrioritizedRisk
	for _, s := range a.PerBss {
		if s.WpsRisk.Risk < 0.6 {
			continue
		}
		impact := ImpactHigh
		if s.WpsRisk.Risk >= 1.0 {
			impact = ImpactCritical
		}
		out = append(out, newRisk(
			bssID("BSS_WPS", s.BSSID),
			"WPS Vulnerable to PIN Attack",
			fmt.Sprintf("BSS %s has a WPS risk score of %.2f.", s.BSSID, s.WpsRisk.Risk),
			impact, LikelihoodLikely, EffortLow,
			[]string{"Disable WPS on this access point", "Rotate the pre-shared key afterward"},
			[]domain.BSSID{s.BSSID},
		))
	}
	return out
}

// generateWeakCipher fires for BSS radios whose cipher sub-score is
// below 0.4
func generateWeakCipher(a security.NetworkSecurityAnalysis) []PrioritizedRisk {
	var out []PrioritizedRisk
	for _, s := range a.PerBss {
		if s.CipherScore >= 0.4 {
			continue
		}
		out = append(out, newRisk(
			bssID("BSS_WEAK_CIPHER", s.BSSID),
			"Weak Cipher Suite In Use",
			fmt.Sprintf("BSS %s has a cipher strength score of %.2f.", s.BSSID, s.CipherScore),
			ImpactHigh, LikelihoodCertain, EffortMedium,
			[]string{"Disable WEP/TKIP on this radio", "Require CCMP or GCMP only"},
			[]domain.BSSID{s.BSSID},
		))
	}
	return out
}

// generateMissingPmf fires once per PmfDisabledOnProtectedNetwork
// issue, i.e. for WPA2/WPA3 BSS radios whose fingerprint does not
// require PMF; the impact is CRITICAL when the issue's severity is
// CRITICAL (WPA3) and MEDIUM otherwise.
func generateMissingPmf(a security.NetworkSecurityAnalysis) []PrioritizedRisk {
	var out []PrioritizedRisk
	for _, s := range a.PerBss {
		for _, iss := range s.Issues {
			if iss.Kind != security.IssuePmfDisabledOnProtectedNetwork {
				continue
			}
			impact := ImpactMedium
			if iss.Severity == security.SeverityCritical {
				impact = ImpactCritical
			}
			out = append(out, newRisk(
				bssID("BSS_MISSING_PMF", s.BSSID),
				"Protected Management Frames Not Required",
				fmt.Sprintf("BSS %s does not require PMF despite using a modern auth type.", s.BSSID),
				impact, LikelihoodPossible, EffortLow,
				[]string{"Enable and require PMF (802.11w) on this access point"},
				[]domain.BSSID{s.BSSID},
			))
		}
	}
	return out
}

// generateCriticalPerBssThreat fires one risk per BSS whose worst issue
// severity is CRITICAL
func generateCriticalPerBssThreat(a security.NetworkSecurityAnalysis) []PrioritizedRisk {
	var out []PrioritizedRisk
	for _, s := range a.PerBss {
		if worstSeverityFor(s) != security.SeverityCritical {
			continue
		}
		out = append(out, newRisk(
			bssID("BSS_CRITICAL", s.BSSID),
			"Critical Issue On This Access Point",
			fmt.Sprintf("BSS %s has at least one critical-severity finding.", s.BSSID),
			ImpactCritical, LikelihoodCertain, EffortMedium,
			[]string{"Review this BSS's issue list and remediate the critical findings first"},
			[]domain.BSSID{s.BSSID},
		))
	}
	return out
}

func affectedBssidsAbove(a security.NetworkSecurityAnalysis, sev security.Severity) []domain.BSSID {
	var out []domain.BSSID
	for _, s := range a.PerBss {
		if worstSeverityFor(s) >= sev {
			out = append(out, s.BSSID)
		}
	}
	return out
}
