package domain

import (
	"fmt"

	"github.com/netkit-wifi/netkit/internal/netkiterr"
)

// SecurityFingerprint is the immutable security-configuration tuple
// reported for a single BSS.
type SecurityFingerprint struct {
	AuthType       AuthType
	CipherSet      CipherSet
	PmfRequired    bool
	TransitionFrom AuthType // zero value means "no transition mode"
	TransitionTo   AuthType
}

// HasTransitionMode reports whether this fingerprint carries a
// transition-mode pair.
func (f SecurityFingerprint) HasTransitionMode() bool {
	return f.TransitionFrom != "" && f.TransitionTo != ""
}

// Validate enforces two invariants:
//
//	cipherSet is non-empty for any authType != OPEN
//	pmfRequired => authType != {OPEN, WEP}
func (f SecurityFingerprint) Validate() error {
	if f.AuthType != AuthOpen && len(f.CipherSet) == 0 {
		return netkiterr.NewInvalidInput("cipherSet", fmt.Sprintf("must be non-empty for authType %s", f.AuthType))
	}
	if f.PmfRequired && (f.AuthType == AuthOpen || f.AuthType == AuthWEP) {
		return netkiterr.NewInvalidInput("pmfRequired", fmt.Sprintf("cannot be true for authType %s", f.AuthType))
	}
	return nil
}
