// Package security implements the per-BSS and network-wide security
// scoring engine: authentication/cipher/management sub-scores, issue
// detection, WPS risk, and network aggregation into a compliance tier.
package security

import "github.com/netkit-wifi/netkit/domain"

// SecurityLevel bins the composite overall score into five tiers.
type SecurityLevel string

const (
	LevelExcellent SecurityLevel = "EXCELLENT"
	LevelGood      SecurityLevel = "GOOD"
	LevelFair      SecurityLevel = "FAIR"
	LevelWeak      SecurityLevel = "WEAK"
	LevelInsecure  SecurityLevel = "INSECURE"
)

// levelForScore returns the unique bin containing overall, per fixed
// thresholds.
func levelForScore(overall float64) SecurityLevel {
	switch {
	case overall >= 0.90:
		return LevelExcellent
	case overall >= 0.70:
		return LevelGood
	case overall >= 0.50:
		return LevelFair
	case overall >= 0.30:
		return LevelWeak
	default:
		return LevelInsecure
	}
}

// BssSecurityScore is the per-BSS scoring result
type BssSecurityScore struct {
	BSSID             domain.BSSID
	SSID              string
	AuthType          domain.AuthType
	AuthScore         float64
	CipherScore       float64
	MgmtScore         float64
	Overall           float64
	Level             SecurityLevel
	Issues            []SecurityIssue
	WpsRisk           WpsRiskResult
}

// scoreAuth computes the authentication sub-score:
// baseline/100 with a -0.1 penalty when the fingerprint carries a
// transitional mode.
func scoreAuth(fp domain.SecurityFingerprint) float64 {
	score := float64(fp.AuthType.Baseline()) / 100.0
	if fp.HasTransitionMode() {
		score -= 0.1
	}
	return clamp01(score)
}

// scoreCipher computes the cipher-strength sub-score:
// max-strength/100 with a -0.15 "mixed weakening" penalty when a weak
// cipher coexists with a strong one.
func scoreCipher(cs domain.CipherSet) float64 {
	score := float64(cs.MaxStrength()) / 100.0
	if cs.HasWeak() && cs.HasStrong() {
		score -= 0.15
	}
	return clamp01(score)
}

// scoreMgmt computes the management-protection sub-score.
func scoreMgmt(obs domain.BssObservation) float64 {
	var base float64
	switch {
	case !obs.PmfCapable:
		base = 0.0
	case !obs.Fingerprint.PmfRequired:
		base = 0.5
	default:
		base = 1.0
	}

	var mult float64
	if obs.ManagementCipher != nil {
		mult = float64(obs.ManagementCipher.Strength()) / 100.0
	} else {
		mult = 0.6
	}
	return clamp01(base * mult)
}

// ScoreBss computes the full security assessment for a single BSS
// observation.
func ScoreBss(obs domain.BssObservation) BssSecurityScore {
	auth := scoreAuth(obs.Fingerprint)
	cipher := scoreCipher(obs.Fingerprint.CipherSet)
	mgmt := scoreMgmt(obs)
	overall := clamp01(0.40*auth + 0.35*cipher + 0.25*mgmt)

	wpsRisk := assessWpsRisk(obs.WpsInfo)
	issues := detectIssues(obs, overall, wpsRisk)

	return BssSecurityScore{
		BSSID:       obs.BSSID,
		SSID:        obs.SSID,
		AuthType:    obs.Fingerprint.AuthType,
		AuthScore:   auth,
		CipherScore: cipher,
		MgmtScore:   mgmt,
		Overall:     overall,
		Level:       levelForScore(overall),
		Issues:      issues,
		WpsRisk:     wpsRisk,
	}
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
