package roaming

// WindowObservation is one scan window's roam-eligibility snapshot for
// a client, used by DetectSticky.
type WindowObservation struct {
	RoamedAway    bool
	BestCandidate CurrentAssociation
	RssiGainDb    float64
}

// DetectSticky reports whether a client is sticky: it failed to roam
// in two consecutive windows despite a candidate offering at least a
// 10 dB RSSI improvement being available in both.
func DetectSticky(windows []WindowObservation) bool {
	consecutive := 0
	for _, w := range windows {
		if !w.RoamedAway && w.RssiGainDb >= 10 {
			consecutive++
			if consecutive >= 2 {
				return true
			}
			continue
		}
		consecutive = 0
	}
	return false
}
