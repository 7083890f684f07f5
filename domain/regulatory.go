package domain

// RegulatoryDomain supplies the channel set available in a jurisdiction
// and whether DFS is mandatory. A regulatory database implements this
// interface; NetKit ships one concrete implementation,
// FixedRegulatoryDomain, sufficient for the common ETSI/FCC channel
// plans exercised by the channel planner.
type RegulatoryDomain interface {
	Name() string
	ChannelsForBand(band Band, includeDfs bool) []int
	RequiresDfs(band Band, channel int) bool
}

// FixedRegulatoryDomain is a static table-driven RegulatoryDomain.
type FixedRegulatoryDomain struct {
	DomainName string
	// Channels maps a band to its full non-DFS channel list.
	Channels map[Band][]int
	// DfsChannels maps a band to the additional channels that require DFS.
	DfsChannels map[Band][]int
}

func (d FixedRegulatoryDomain) Name() string { return d.DomainName }

func (d FixedRegulatoryDomain) ChannelsForBand(band Band, includeDfs bool) []int {
	out := append([]int(nil), d.Channels[band]...)
	if includeDfs {
		out = append(out, d.DfsChannels[band]...)
	}
	return out
}

func (d FixedRegulatoryDomain) RequiresDfs(band Band, channel int) bool {
	for _, c := range d.DfsChannels[band] {
		if c == channel {
			return true
		}
	}
	return false
}

// FCCRegulatoryDomain is a representative US (FCC) channel plan used by
// the demonstration CLI and tests. 2.4 GHz is restricted to the
// conventional non-overlapping set; a regulator that actually permits
// planning on every 2.4 GHz channel can supply its own RegulatoryDomain.
var FCCRegulatoryDomain = FixedRegulatoryDomain{
	DomainName: "FCC",
	Channels: map[Band][]int{
		Band2_4GHz: {1, 6, 11},
		Band5GHz:   {36, 40, 44, 48, 149, 153, 157, 161, 165},
		Band6GHz:   {1, 5, 9, 13, 17, 21, 25, 29, 33, 37, 41, 45, 49, 53, 57, 61},
	},
	DfsChannels: map[Band][]int{
		Band5GHz: {52, 56, 60, 64, 100, 104, 108, 112, 116, 120, 124, 128, 132, 136, 140, 144},
	},
}

// RadarEvent summarizes observed DFS-radar activity on a channel, used
// to override the static DFS-risk estimate.
type RadarEvent struct {
	Channel        int
	EventsPerMonth float64
}

// RadarHistory is the optional radar-activity record attached to a
// NetworkObservation.
type RadarHistory struct {
	Events []RadarEvent
}

// EventsPerMonth returns the recorded radar activity rate for a channel,
// or 0 if no event is on record.
func (h *RadarHistory) EventsPerMonth(channel int) float64 {
	if h == nil {
		return 0
	}
	for _, e := range h.Events {
		if e.Channel == channel {
			return e.EventsPerMonth
		}
	}
	return 0
}
