package rf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netkit-wifi/netkit/domain"
	"github.com/netkit-wifi/netkit/rf"
)

func mustBssid(t *testing.T, raw string) domain.BSSID {
	t.Helper()
	b, err := domain.NewBSSID(raw)
	require.NoError(t, err)
	return b
}

func openBss(t *testing.T, mac string) domain.BssObservation {
	return domain.BssObservation{
		BSSID: mustBssid(t, mac),
		SSID:  "office",
		Band:  domain.Band2_4GHz,
		Fingerprint: domain.SecurityFingerprint{
			AuthType:  domain.AuthWPA2PSK,
			CipherSet: domain.NewCipherSet(domain.CipherCCMP),
		},
	}
}

func TestPlanChannelsThreeBssNonOverlapping(t *testing.T) {
	bss1 := openBss(t, "AA:AA:AA:AA:AA:01")
	bss2 := openBss(t, "AA:AA:AA:AA:AA:02")
	bss3 := openBss(t, "AA:AA:AA:AA:AA:03")

	cluster, err := domain.NewApCluster("", "office", []domain.BssObservation{bss1, bss2, bss3})
	require.NoError(t, err)

	constraints := rf.ChannelPlanningConstraints{
		Band:                 domain.Band2_4GHz,
		RegulatoryDomain:     domain.FCCRegulatoryDomain,
		MaxApCountPerChannel: 1,
	}

	plan := rf.PlanChannels([]domain.ApCluster{cluster}, constraints, nil)

	require.Len(t, plan.Assignments, 3)
	seen := make(map[int]bool)
	for _, a := range plan.Assignments {
		seen[a.Channel] = true
	}
	require.Equal(t, map[int]bool{1: true, 6: true, 11: true}, seen)
	require.Equal(t, 0.0, plan.CoChannelInterference)
	require.Equal(t, 0.0, plan.AdjacentChannelInterference)
	require.GreaterOrEqual(t, plan.Score, 95.0)
}
