package security

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/netkit-wifi/netkit/domain"
)

func TestScoreBssWpsCritical(t *testing.T) {
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
			ConfigMethods: domain.ParseWpsConfigMethods(0x0004), // LABEL
			WpsState:      domain.WpsConfigured,
			Locked:        &locked,
		},
	}

	score := ScoreBss(obs)
	assert.InDelta(t, 0.60, score.Overall, 0.05)
	assert.Equal(t, 1.0, score.WpsRisk.Risk)
	assert.Equal(t, SeverityCritical, score.WpsRisk.Level)
}

func TestScoreBssWpa3Perfect(t *testing.T) {
	mgmt := domain.CipherBIPGMAC256
	obs := domain.BssObservation{
		BSSID: "11:22:33:44:55:66",
		SSID:  "SecureNet",
		Fingerprint: domain.SecurityFingerprint{
			AuthType:    domain.AuthWPA3SAE,
			CipherSet:   domain.NewCipherSet(domain.CipherGCMP256, domain.CipherBIPGMAC256),
			PmfRequired: true,
		},
		PmfCapable:       true,
		ManagementCipher: &mgmt,
	}

	score := ScoreBss(obs)
	assert.GreaterOrEqual(t, score.Overall, 0.95)
	assert.Equal(t, LevelExcellent, score.Level)

	analysis := AnalyzeNetwork([]BssSecurityScore{score})
	assert.Equal(t, ComplianceFull, analysis.Compliance)
}

func TestAnalyzeNetworkEmpty(t *testing.T) {
	analysis := AnalyzeNetwork(nil)
	assert.Equal(t, ComplianceNonCompliant, analysis.Compliance)
}

func TestScoreBssDeterministic(t *testing.T) {
	base := domain.BssObservation{
		Fingerprint: domain.SecurityFingerprint{
			AuthType:  domain.AuthWPA2PSK,
			CipherSet: domain.NewCipherSet(domain.CipherCCMP),
		},
		PmfCapable: true,
	}
	a := base
	a.BSSID = "AA:AA:AA:AA:AA:AA"
	b := base
	b.BSSID = "BB:BB:BB:BB:BB:BB"

	assert.Equal(t, ScoreBss(a).Overall, ScoreBss(b).Overall)
}
