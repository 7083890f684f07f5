package domain

import "github.com/netkit-wifi/netkit/internal/netkiterr"

// NeighborNetwork is a BSS observed from a neighboring, non-managed
// network, relevant to interference/co-channel scoring.
type NeighborNetwork struct {
	BSSID       BSSID
	SSID        string
	Band        Band
	Channel     int
	RSSI        int
	Utilization float64 // 0-100
}

// NetworkObservation is the root input assembled by the caller from
// external parsers.
type NetworkObservation struct {
	Clusters         []ApCluster
	NeighborNetworks []NeighborNetwork
	RegulatoryDomain RegulatoryDomain
	RadarHistory     *RadarHistory
}

// Validate enforces the root precondition used throughout the engines:
// a network observation must describe at least one cluster with at
// least one BSS.
func (n NetworkObservation) Validate() error {
	if len(n.Clusters) == 0 {
		return netkiterr.NewInvalidInput("clusters", "network observation must contain at least one cluster")
	}
	for _, c := range n.Clusters {
		for _, b := range c.Bssids {
			if err := b.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// AllBss flattens every BSS across every cluster, in cluster/insertion
// order.
func (n NetworkObservation) AllBss() []BssObservation {
	var out []BssObservation
	for _, c := range n.Clusters {
		out = append(out, c.Bssids...)
	}
	return out
}
