package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/netkit-wifi/netkit/internal/netkiterr"
)

// reBSSID matches the canonical six-octet colon-separated MAC form,
// case-insensitive on input (normalized to uppercase by NewBSSID).
// Colon separators only; this is the canonical wire form.
var reBSSID = regexp.MustCompile(`^([0-9A-Fa-f]{2}:){5}([0-9A-Fa-f]{2})$`)

// BSSID is a 48-bit MAC address in canonical AA:BB:CC:DD:EE:FF form.
type BSSID string

// NewBSSID validates and normalizes a MAC string to canonical
// uppercase form. Returns InvalidInput if the string is not a
// well-formed six-octet colon-separated MAC.
func NewBSSID(raw string) (BSSID, error) {
	if !reBSSID.MatchString(raw) {
		return "", netkiterr.NewInvalidInput("bssid", fmt.Sprintf("%q is not in AA:BB:CC:DD:EE:FF form", raw))
	}
	return BSSID(strings.ToUpper(raw)), nil
}

// String returns the canonical form.
func (b BSSID) String() string {
	return string(b)
}
