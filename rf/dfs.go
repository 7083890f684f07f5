// Package rf implements the RF Optimization Engine: channel/width/DFS
// planning and client/AP steering plus load balancing.
package rf

import "github.com/netkit-wifi/netkit/domain"

// DfsRisk is the closed DFS-risk enumeration.
type DfsRisk string

const (
	DfsNone   DfsRisk = "NONE"
	DfsLow    DfsRisk = "LOW"
	DfsMedium DfsRisk = "MEDIUM"
	DfsHigh   DfsRisk = "HIGH"
)

// penalty returns the score penalty for the risk bin, used by the
// per-channel scoring rule.
func (r DfsRisk) penalty() float64 {
	switch r {
	case DfsHigh:
		return 15
	case DfsMedium:
		return 10
	case DfsLow:
		return 5
	default:
		return 0
	}
}

// AssessDfsRisk estimates DFS radar risk for a channel from a static
// band-keyed table, overridden by observed radarHistory when
// provided. currentChannel is accepted but unused; retained for a
// future channel-scoped variant.
func AssessDfsRisk(currentChannel, channel int, history *domain.RadarHistory) DfsRisk {
	_ = currentChannel

	if history != nil && hasRecordFor(history, channel) {
		rate := history.EventsPerMonth(channel)
		switch {
		case rate >= 4:
			return DfsHigh
		case rate >= 1:
			return DfsMedium
		case rate >= 0.2:
			return DfsLow
		default:
			return DfsNone
		}
	}

	switch {
	case channel >= 52 && channel <= 64:
		return DfsMedium
	case channel >= 100 && channel <= 144:
		return DfsLow
	default:
		return DfsNone
	}
}

func hasRecordFor(history *domain.RadarHistory, channel int) bool {
	for _, e := range history.Events {
		if e.Channel == channel {
			return true
		}
	}
	return false
}
