package domain

// WpsConfigMethod is a closed enumeration of WPS configuration methods,
// decoded from a 16-bit capability bitmask.
type WpsConfigMethod string

const (
	WpsUSB               WpsConfigMethod = "USB"
	WpsEthernet          WpsConfigMethod = "ETHERNET"
	WpsLabel             WpsConfigMethod = "LABEL"
	WpsDisplay           WpsConfigMethod = "DISPLAY"
	WpsExternalNFCToken  WpsConfigMethod = "EXTERNAL_NFC_TOKEN"
	WpsIntegratedNFCToken WpsConfigMethod = "INTEGRATED_NFC_TOKEN"
	WpsNFCInterface      WpsConfigMethod = "NFC_INTERFACE"
	WpsPushButton        WpsConfigMethod = "PUSH_BUTTON"
	WpsKeypad            WpsConfigMethod = "KEYPAD"
	WpsVirtualDisplay    WpsConfigMethod = "VIRTUAL_DISPLAY"
	WpsPhysicalDisplay   WpsConfigMethod = "PHYSICAL_DISPLAY"
)

// wpsBitPositions maps bitmask positions to config methods. Unknown
// bits are ignored.
var wpsBitPositions = map[uint16]WpsConfigMethod{
	0x0001: WpsUSB,
	0x0002: WpsEthernet,
	0x0004: WpsLabel,
	0x0008: WpsDisplay,
	0x0010: WpsExternalNFCToken,
	0x0020: WpsIntegratedNFCToken,
	0x0040: WpsNFCInterface,
	0x0080: WpsPushButton,
	0x0100: WpsKeypad,
	0x2000: WpsVirtualDisplay,
	0x4000: WpsPhysicalDisplay,
}

// ParseWpsConfigMethods decodes a 16-bit WPS config-methods bitmask into
// a set of methods, ignoring unknown bit positions.
func ParseWpsConfigMethods(bitmask uint16) map[WpsConfigMethod]struct{} {
	out := make(map[WpsConfigMethod]struct{})
	for bit, method := range wpsBitPositions {
		if bitmask&bit != 0 {
			out[method] = struct{}{}
		}
	}
	return out
}

// supportsPinMethods is the set of config methods that imply the device
// supports the WPS PIN flow.
var supportsPinMethods = map[WpsConfigMethod]struct{}{
	WpsLabel:           {},
	WpsDisplay:         {},
	WpsKeypad:          {},
	WpsVirtualDisplay:  {},
	WpsPhysicalDisplay: {},
}

// WpsState is the WPS configuration state: any integer other than 1
// (NOT_CONFIGURED) or 2 (CONFIGURED) normalizes to NOT_CONFIGURED.
type WpsState string

const (
	WpsNotConfigured WpsState = "NOT_CONFIGURED"
	WpsConfigured    WpsState = "CONFIGURED"
)

// ParseWpsState decodes the integer wire encoding.
func ParseWpsState(code int) WpsState {
	if code == 2 {
		return WpsConfigured
	}
	return WpsNotConfigured
}

// WpsInfo is the immutable WPS configuration tuple.
type WpsInfo struct {
	ConfigMethods map[WpsConfigMethod]struct{}
	WpsState      WpsState
	Locked        *bool
	DeviceName    string
	Manufacturer  string
	ModelName     string
	Version       string
}

// SupportsPin reports whether any of the PIN-capable config methods
// (LABEL, DISPLAY, KEYPAD, VIRTUAL_DISPLAY, PHYSICAL_DISPLAY) are
// present.
func (w WpsInfo) SupportsPin() bool {
	for m := range w.ConfigMethods {
		if _, ok := supportsPinMethods[m]; ok {
			return true
		}
	}
	return false
}

// IsLocked reports the locked state, defaulting to false (unlocked) when
// unknown, since an absent lock-state observation should not mask risk.
func (w WpsInfo) IsLocked() bool {
	return w.Locked != nil && *w.Locked
}
