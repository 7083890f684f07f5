package security

import "github.com/netkit-wifi/netkit/domain"

// WpsRiskResult is the outcome of the deterministic WPS risk table.
type WpsRiskResult struct {
	Risk  float64
	Level Severity
}

// assessWpsRisk evaluates the (supportsPin, locked, wpsState) table
// below. A nil WpsInfo (no WPS observed at all) scores 0.
func assessWpsRisk(info *domain.WpsInfo) WpsRiskResult {
	if info == nil {
		return WpsRiskResult{Risk: 0, Level: SeverityInfo}
	}

	supportsPin := info.SupportsPin()
	locked := info.IsLocked()
	state := info.WpsState

	if !supportsPin && state == domain.WpsNotConfigured && len(info.ConfigMethods) == 0 {
		return WpsRiskResult{Risk: 0.0, Level: SeverityInfo}
	}

	switch {
	case supportsPin && !locked && state == domain.WpsConfigured:
		return WpsRiskResult{Risk: 1.0, Level: SeverityCritical}
	case supportsPin && !locked && state == domain.WpsNotConfigured:
		return WpsRiskResult{Risk: 0.8, Level: SeverityHigh}
	case supportsPin && locked:
		return WpsRiskResult{Risk: 0.6, Level: SeverityMedium}
	case !supportsPin && !locked && state == domain.WpsConfigured:
		return WpsRiskResult{Risk: 0.4, Level: SeverityMedium}
	case !supportsPin && locked:
		return WpsRiskResult{Risk: 0.2, Level: SeverityLow}
	default:
		return WpsRiskResult{Risk: 0.0, Level: SeverityInfo}
	}
}
