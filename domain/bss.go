package domain

import (
	"fmt"

	"github.com/netkit-wifi/netkit/internal/netkiterr"
)

// BssObservation is the immutable per-radio observation tuple
// reported by an external parser.
type BssObservation struct {
	BSSID            BSSID
	SSID             string
	Band             Band
	Channel          int
	ChannelWidth     ChannelWidth
	RSSI             int // dBm, [-100, 0]
	Fingerprint      SecurityFingerprint
	WpsInfo          *WpsInfo
	PmfCapable       bool
	ManagementCipher *CipherSuite

	// VendorOUI and IETagCount are carried through from the external IE
	// parser for the SuspiciousSignatureMismatch opportunistic issue,
	// generalized from OUI-spoofing detection.
	VendorOUI  string
	IETagCount int

	// HasRoamingOptimizations reports whether the parser observed
	// 802.11k/v/r support advertised by this BSS.
	HasRoamingOptimizations bool
}

// Validate checks the preconditions placed on a BssObservation: SSID
// length, RSSI range, and the fingerprint invariants.
func (o BssObservation) Validate() error {
	if len(o.SSID) > 32 {
		return netkiterr.NewInvalidInput("ssid", fmt.Sprintf("length %d exceeds 32 bytes", len(o.SSID)))
	}
	if o.RSSI < -100 || o.RSSI > 0 {
		return netkiterr.NewInvalidInput("rssi", fmt.Sprintf("%d dBm out of range [-100, 0]", o.RSSI))
	}
	if err := o.Fingerprint.Validate(); err != nil {
		return err
	}
	return nil
}
