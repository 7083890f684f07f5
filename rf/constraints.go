package rf

import "github.com/netkit-wifi/netkit/domain"

// ChannelPlanningConstraints enumerates the planner's tunables.
type ChannelPlanningConstraints struct {
	Band                  domain.Band
	PreferredWidth        domain.ChannelWidth
	PreferredWidths       []domain.ChannelWidth
	RegulatoryDomain      domain.RegulatoryDomain
	AllowDfs              bool
	Allows40MHzIn24GHz    bool
	MaxApCountPerChannel  int
}

// AvailableChannels returns the regulatory domain's channel set for this
// constraint's band, honoring AllowDfs
func (c ChannelPlanningConstraints) AvailableChannels() []int {
	if c.RegulatoryDomain == nil {
		return nil
	}
	return c.RegulatoryDomain.ChannelsForBand(c.Band, c.AllowDfs)
}

func (c ChannelPlanningConstraints) maxApCount() int {
	if c.MaxApCountPerChannel <= 0 {
		return 1 << 30
	}
	return c.MaxApCountPerChannel
}
