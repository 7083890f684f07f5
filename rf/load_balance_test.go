package rf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netkit-wifi/netkit/domain"
	"github.com/netkit-wifi/netkit/rf"
)

func TestAnalyzeLoadBalanceSevereImbalance(t *testing.T) {
	loads := []rf.ApLoad{
		{BSSID: mustBssid(t, "AA:AA:AA:AA:AA:01"), ClientCount: 20},
		{BSSID: mustBssid(t, "AA:AA:AA:AA:AA:02"), ClientCount: 0},
		{BSSID: mustBssid(t, "AA:AA:AA:AA:AA:03"), ClientCount: 0},
	}

	got := rf.AnalyzeLoadBalance(loads)

	require.InDelta(t, 1.41, got.Imbalance, 0.01)
	require.Equal(t, rf.ImbalanceSevere, got.Classification)
	require.Equal(t, []domain.BSSID{loads[0].BSSID}, got.Overloaded)
	require.Equal(t, []domain.BSSID{loads[1].BSSID, loads[2].BSSID}, got.Underutilized)
}

func TestMovePriorityClamped(t *testing.T) {
	p := rf.MovePriority(rf.ClientMoveContext{CurrentRSSI: -80, TargetRSSI: -60, IsVoip: true})
	require.LessOrEqual(t, p, 100.0)
	require.Greater(t, p, 90.0)
}
