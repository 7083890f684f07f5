package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/netkit-wifi/netkit/domain"
	"github.com/netkit-wifi/netkit/security"
)

func TestPrioritizeWpsCriticalScenario(t *testing.T) {
	locked := false
	obs := domain.BssObservation{
		BSSID: "AA:BB:CC:DD:EE:FF",
		SSID:  "HomeNet",
		Fingerprint: domain.SecurityFingerprint{
			AuthType:  domain.AuthWPA2PSK,
			CipherSet: domain.NewCipherSet(domain.CipherCCMP),
		},
		PmfCapable: true,
		WpsInfo: &domain.WpsInfo{
			ConfigMethods: domain.ParseWpsConfigMethods(0x0004),
			WpsState:      domain.WpsConfigured,
			Locked:        &locked,
		},
	}
	score := security.ScoreBss(obs)
	analysis := security.AnalyzeNetwork([]security.BssSecurityScore{score})

	plan := Prioritize(analysis)

	var wpsRisk *PrioritizedRisk
	for i := range plan.Risks {
		if plan.Risks[i].ID == "BSS_WPS_AA:BB:CC:DD:EE:FF" {
			wpsRisk = &plan.Risks[i]
		}
	}
	if assert.NotNil(t, wpsRisk) {
		assert.Equal(t, ImpactCritical, wpsRisk.Impact)
		assert.Equal(t, EffortLow, wpsRisk.Effort)
	}
}

func TestPrioritizeSortOrder(t *testing.T) {
	plan := RiskPlan{Risks: []PrioritizedRisk{
		newRisk("a", "a", "a", ImpactLow, LikelihoodPossible, EffortLow, nil, nil),
		newRisk("b", "b", "b", ImpactCritical, LikelihoodCertain, EffortHigh, nil, nil),
		newRisk("c", "c", "c", ImpactCritical, LikelihoodCertain, EffortLow, nil, nil),
	}}
	sortRisks(plan.Risks)
	assert.Equal(t, "c", plan.Risks[0].ID)
	assert.Equal(t, "b", plan.Risks[1].ID)
	assert.Equal(t, "a", plan.Risks[2].ID)
}
