package security

import (
	"fmt"

	"github.com/netkit-wifi/netkit/domain"
)

// Severity is a closed, totally ordered enumeration of issue
// severities.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityLow:
		return "LOW"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityHigh:
		return "HIGH"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// IssueKind tags the SecurityIssue taxonomy, mapped from a sealed
// hierarchy of issue types to a flat tagged variant.
type IssueKind string

const (
	IssueWepInUse                       IssueKind = "WepInUse"
	IssueTkipInUse                      IssueKind = "TkipInUse"
	IssueLegacyCipher                   IssueKind = "LegacyCipher"
	IssuePmfDisabledOnProtectedNetwork  IssueKind = "PmfDisabledOnProtectedNetwork"
	IssueWeakGroupMgmtCipher            IssueKind = "WeakGroupMgmtCipher"
	IssueOpenNetworkWithoutOwe          IssueKind = "OpenNetworkWithoutOwe"
	IssueOweTransitionWithOpenSideVisible IssueKind = "OweTransitionWithOpenSideVisible"
	IssueSuiteBMissingForHighSecurityClaim IssueKind = "SuiteBMissingForHighSecurityClaim"
	IssueTransitionalMode               IssueKind = "TransitionalMode"
	IssueWpsPinEnabled                  IssueKind = "WpsPinEnabled"
	IssueWpsUnknownOrRiskyMode          IssueKind = "WpsUnknownOrRiskyMode"
	IssueMissingRoamingOptimizations    IssueKind = "MissingRoamingOptimizations"
	IssueInconsistentSecurityAcrossAps  IssueKind = "InconsistentSecurityAcrossAps"
	IssueDeprecatedAuthType             IssueKind = "DeprecatedAuthType"
	// IssueSuspiciousSignatureMismatch is an opportunistic issue, added
	// as a generalization of OUI-spoofing detection.
	IssueSuspiciousSignatureMismatch IssueKind = "SuspiciousSignatureMismatch"
)

// SecurityIssue is one emitted finding, carrying the fixed severity and
// a generated recommendation string for its kind.
type SecurityIssue struct {
	Kind           IssueKind
	Severity       Severity
	Recommendation string
	// Context carries the kind-specific payload (cipher name, auth
	// types, ssid, count) formatted into the recommendation already;
	// kept for programmatic consumers that want the raw value instead
	// of parsing the string.
	Context map[string]string
}

func detectIssues(obs domain.BssObservation, overall float64, wpsRisk WpsRiskResult) []SecurityIssue {
	var issues []SecurityIssue
	fp := obs.Fingerprint

	if fp.CipherSet.Has(domain.CipherWEP40) || fp.CipherSet.Has(domain.CipherWEP104) || fp.AuthType == domain.AuthWEP {
		issues = append(issues, SecurityIssue{
			Kind:           IssueWepInUse,
			Severity:       SeverityCritical,
			Recommendation: "Replace WEP with WPA2 or WPA3; WEP is trivially crackable.",
		})
	}

	if fp.CipherSet.Has(domain.CipherTKIP) {
		issues = append(issues, SecurityIssue{
			Kind:           IssueTkipInUse,
			Severity:       SeverityHigh,
			Recommendation: "Disable TKIP and require CCMP/GCMP; TKIP is deprecated under 802.11.",
		})
	}

	for _, c := range fp.CipherSet.Sorted() {
		if c.IsWeak() && c != domain.CipherWEP40 && c != domain.CipherWEP104 && c != domain.CipherTKIP {
			issues = append(issues, SecurityIssue{
				Kind:           IssueLegacyCipher,
				Severity:       SeverityMedium,
				Recommendation: fmt.Sprintf("Retire legacy cipher %s in favor of CCMP or better.", c),
				Context:        map[string]string{"cipher": string(c)},
			})
		}
	}

	isWpa3 := fp.AuthType == domain.AuthWPA3SAE || fp.AuthType == domain.AuthWPA3Enterprise || fp.AuthType == domain.AuthWPA3Enterprise192
	isWpa2 := fp.AuthType == domain.AuthWPA2PSK || fp.AuthType == domain.AuthWPA2Enterprise
	if !fp.PmfRequired && (isWpa3 || isWpa2) {
		sev := SeverityMedium
		if isWpa3 {
			sev = SeverityCritical
		}
		issues = append(issues, SecurityIssue{
			Kind:           IssuePmfDisabledOnProtectedNetwork,
			Severity:       sev,
			Recommendation: fmt.Sprintf("Require Protected Management Frames for %s networks.", fp.AuthType),
			Context:        map[string]string{"auth": string(fp.AuthType)},
		})
	}

	if obs.ManagementCipher != nil && obs.ManagementCipher.IsManagementCipher() && obs.ManagementCipher.Strength() < 70 {
		issues = append(issues, SecurityIssue{
			Kind:           IssueWeakGroupMgmtCipher,
			Severity:       SeverityMedium,
			Recommendation: "Upgrade the management-frame cipher to BIP-GMAC-256.",
		})
	}

	if fp.AuthType == domain.AuthOpen {
		issues = append(issues, SecurityIssue{
			Kind:           IssueOpenNetworkWithoutOwe,
			Severity:       SeverityHigh,
			Recommendation: "Enable OWE (Enhanced Open) to encrypt opportunistically without requiring a shared password.",
		})
	}

	if fp.HasTransitionMode() {
		if fp.TransitionFrom == domain.AuthOpen && fp.TransitionTo == domain.AuthOWE {
			issues = append(issues, SecurityIssue{
				Kind:           IssueOweTransitionWithOpenSideVisible,
				Severity:       SeverityLow,
				Recommendation: fmt.Sprintf("The open side of the OWE transition SSID %q remains visible to passive observers.", obs.SSID),
				Context:        map[string]string{"ssid": obs.SSID},
			})
		}
		issues = append(issues, SecurityIssue{
			Kind:           IssueTransitionalMode,
			Severity:       SeverityLow,
			Recommendation: fmt.Sprintf("Retire the transitional pairing from %s to %s once clients are migrated.", fp.TransitionFrom, fp.TransitionTo),
			Context:        map[string]string{"from": string(fp.TransitionFrom), "to": string(fp.TransitionTo)},
		})
	}

	if fp.AuthType == domain.AuthWPA3Enterprise192 {
		hasSuiteB := fp.CipherSet.Has(domain.CipherGCMP256) && fp.CipherSet.Has(domain.CipherBIPGMAC256)
		if !hasSuiteB {
			issues = append(issues, SecurityIssue{
				Kind:           IssueSuiteBMissingForHighSecurityClaim,
				Severity:       SeverityHigh,
				Recommendation: "WPA3-Enterprise-192 requires Suite-B ciphers (GCMP-256 + BIP-GMAC-256); current cipher set does not qualify.",
			})
		}
	}

	if wr := wpsRisk; wr.Risk > 0 {
		if wr.Risk >= 0.8 {
			issues = append(issues, SecurityIssue{
				Kind:           IssueWpsPinEnabled,
				Severity:       SeverityCritical,
				Recommendation: "Disable WPS PIN entirely; it is vulnerable to brute-force PIN recovery.",
			})
		} else if wr.Risk > 0 {
			issues = append(issues, SecurityIssue{
				Kind:           IssueWpsUnknownOrRiskyMode,
				Severity:       SeverityMedium,
				Recommendation: "Review WPS configuration; its lock/configuration state carries residual risk.",
			})
		}
	}

	if obs.Fingerprint.AuthType.IsDeprecated() {
		issues = append(issues, SecurityIssue{
			Kind:           IssueDeprecatedAuthType,
			Severity:       SeverityMedium,
			Recommendation: fmt.Sprintf("Migrate away from deprecated auth type %s.", fp.AuthType),
			Context:        map[string]string{"auth": string(fp.AuthType)},
		})
	}

	if !hasRoamingOptimizations(obs) {
		issues = append(issues, SecurityIssue{
			Kind:           IssueMissingRoamingOptimizations,
			Severity:       SeverityInfo,
			Recommendation: "Enable 802.11k/v/r to reduce sticky-client roaming failures.",
		})
	}

	if obs.VendorOUI != "" && obs.IETagCount > 5 {
		issues = append(issues, SecurityIssue{
			Kind:           IssueSuspiciousSignatureMismatch,
			Severity:       SeverityMedium,
			Recommendation: "Vendor OUI claims a known manufacturer but the IE fingerprint is unusually generic; verify the radio is not spoofing its vendor identity.",
			Context:        map[string]string{"vendor": obs.VendorOUI},
		})
	}

	return issues
}

func hasRoamingOptimizations(obs domain.BssObservation) bool {
	return obs.HasRoamingOptimizations
}
