package rf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netkit-wifi/netkit/domain"
	"github.com/netkit-wifi/netkit/rf"
)

func TestEvaluateBandSteerPrefers6GHzWhenClear(t *testing.T) {
	candidates := []rf.BandCandidate{
		{Band: domain.Band2_4GHz, IsCurrent: true, ClientRSSI: -80, UtilizationPct: 40, ClientCount: 10},
		{Band: domain.Band6GHz, SupportsWifi6E: true, UtilizationPct: 5, ClientCount: 1},
	}

	decision := rf.EvaluateBandSteer(candidates)

	require.Equal(t, domain.Band6GHz, decision.Target)
	require.True(t, decision.Steer)
}

func TestEvaluateApSteerRespectsRssiFloor(t *testing.T) {
	candidates := []rf.ApCandidate{
		{BSSID: mustBssid(t, "AA:AA:AA:AA:AA:01"), IsCurrent: true, RSSI: -80, UtilizationPct: 100, ClientCount: 20},
		{BSSID: mustBssid(t, "AA:AA:AA:AA:AA:02"), RSSI: -80, UtilizationPct: 0, ClientCount: 0},
	}

	decision := rf.EvaluateApSteer(candidates)

	require.False(t, decision.Steer)
}
