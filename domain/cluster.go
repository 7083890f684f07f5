package domain

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/netkit-wifi/netkit/internal/netkiterr"
)

// ApCluster groups the BSS radios that belong to a single logical
// multi-AP network sharing an SSID. ClusterId is a UUID-tagged
// identifier for the logical grouping when the caller doesn't supply
// its own.
type ApCluster struct {
	ClusterID string
	SSID      string
	Bssids    []BssObservation
}

// NewApCluster validates the shared-SSID invariant and assigns a
// cluster ID if one is not supplied.
func NewApCluster(clusterID, ssid string, bssids []BssObservation) (ApCluster, error) {
	if len(bssids) == 0 {
		return ApCluster{}, netkiterr.NewInvalidInput("bssids", "cluster must contain at least one BSS")
	}
	for _, b := range bssids {
		if b.SSID != ssid {
			return ApCluster{}, netkiterr.NewInvalidInput("bssids", fmt.Sprintf("bss %s ssid %q does not match cluster ssid %q", b.BSSID, b.SSID, ssid))
		}
	}
	if clusterID == "" {
		clusterID = uuid.NewString()
	}
	return ApCluster{ClusterID: clusterID, SSID: ssid, Bssids: bssids}, nil
}

// IsMultiAp reports whether the cluster spans more than one radio.
func (c ApCluster) IsMultiAp() bool {
	return len(c.Bssids) > 1
}
