package roaming_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netkit-wifi/netkit/domain"
	"github.com/netkit-wifi/netkit/roaming"
)

func TestEvaluateEmergencySteersRegardlessOfMargin(t *testing.T) {
	current := roaming.CurrentAssociation{BSSID: "AA:AA:AA:AA:AA:01", RSSI: -90, SNR: 5}
	neighbors := []roaming.NeighborBss{
		{BSSID: "AA:AA:AA:AA:AA:02", RSSI: -88, SNR: 6, Load: 10},
	}

	rec := roaming.Evaluate(current, neighbors)

	require.True(t, rec.Steer)
	require.True(t, rec.Emergency)
	require.Equal(t, domain.BSSID("AA:AA:AA:AA:AA:02"), rec.Target)
}

func TestEvaluateRequiresMarginAbsentEmergency(t *testing.T) {
	current := roaming.CurrentAssociation{BSSID: "AA:AA:AA:AA:AA:01", RSSI: -65, SNR: 25}
	neighbors := []roaming.NeighborBss{
		{BSSID: "AA:AA:AA:AA:AA:02", RSSI: -60, SNR: 27, Load: 10},
	}

	rec := roaming.Evaluate(current, neighbors)

	require.False(t, rec.Steer)
}

func TestDetectStickyRequiresTwoConsecutiveWindows(t *testing.T) {
	windows := []roaming.WindowObservation{
		{RoamedAway: false, RssiGainDb: 12},
		{RoamedAway: false, RssiGainDb: 11},
	}
	require.True(t, roaming.DetectSticky(windows))

	windows[1].RoamedAway = true
	require.False(t, roaming.DetectSticky(windows))
}
