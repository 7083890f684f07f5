package domain

// AuthType is a closed enumeration of 802.11 authentication/key-management
// types
type AuthType string

const (
	AuthOpen                AuthType = "OPEN"
	AuthOWE                 AuthType = "OWE"
	AuthWEP                 AuthType = "WEP"
	AuthWPAPSK              AuthType = "WPA_PSK"
	AuthWPA2PSK             AuthType = "WPA2_PSK"
	AuthWPA2Enterprise      AuthType = "WPA2_ENTERPRISE"
	AuthWPA3SAE             AuthType = "WPA3_SAE"
	AuthWPA3Enterprise      AuthType = "WPA3_ENTERPRISE"
	AuthWPA3Enterprise192   AuthType = "WPA3_ENTERPRISE_192"
)

type authProfile struct {
	requiresPmf bool
	baseline    int // 0-100
}

var authProfiles = map[AuthType]authProfile{
	AuthOpen:              {requiresPmf: false, baseline: 0},
	AuthOWE:                {requiresPmf: false, baseline: 55},
	AuthWEP:                {requiresPmf: false, baseline: 5},
	AuthWPAPSK:             {requiresPmf: false, baseline: 25},
	AuthWPA2PSK:            {requiresPmf: false, baseline: 70},
	AuthWPA2Enterprise:     {requiresPmf: false, baseline: 75},
	AuthWPA3SAE:            {requiresPmf: true, baseline: 95},
	AuthWPA3Enterprise:     {requiresPmf: true, baseline: 97},
	AuthWPA3Enterprise192:  {requiresPmf: true, baseline: 99},
}

// RequiresPmf reports whether this auth type mandates Protected
// Management Frames.
func (a AuthType) RequiresPmf() bool {
	return authProfiles[a].requiresPmf
}

// Baseline returns the 0-100 baseline score used by the authentication
// sub-score.
func (a AuthType) Baseline() int {
	return authProfiles[a].baseline
}

// IsDeprecated reports whether the auth type is considered legacy for
// the purposes of the DeprecatedAuthType issue.
func (a AuthType) IsDeprecated() bool {
	switch a {
	case AuthWEP, AuthWPAPSK:
		return true
	default:
		return false
	}
}

// transitionalPairs enumerates the (from, to) pairs considered
// "transitional modes" for the -0.1 authentication penalty and the
// TransitionalMode issue.
var transitionalPairs = map[[2]AuthType]struct{}{
	{AuthWPA2PSK, AuthWPA3SAE}:             {},
	{AuthWPA2Enterprise, AuthWPA3Enterprise}: {},
	{AuthOpen, AuthOWE}:                     {},
}

// IsTransitional reports whether (from, to) is a recognized transitional
// security mode pair.
func IsTransitional(from, to AuthType) bool {
	_, ok := transitionalPairs[[2]AuthType{from, to}]
	return ok
}

// IsModern reports whether the auth type is considered "modern" for
// compliance-tier purposes (used to compute the network-wide
// modernPct fraction). OPEN, WEP, and WPA-PSK (TKIP-era) are excluded;
// WPA2-PSK and above qualify, as does OWE.
func (a AuthType) IsModern() bool {
	switch a {
	case AuthWPA2PSK, AuthWPA2Enterprise, AuthWPA3SAE, AuthWPA3Enterprise, AuthWPA3Enterprise192, AuthOWE:
		return true
	default:
		return false
	}
}
