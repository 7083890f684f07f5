package rf

import "github.com/netkit-wifi/netkit/domain"

// WidthRecommendation is the output of OptimizeChannelWidth.
type WidthRecommendation struct {
	Width                        domain.ChannelWidth
	ExpectedThroughputImprovement float64 // percent
}

// OptimizeChannelWidth picks a channel width given current utilization
// and neighbor density, using band-specific rules.
func OptimizeChannelWidth(currentChannel int, band domain.Band, utilizationPct float64, neighborCount int, constraints ChannelPlanningConstraints) WidthRecommendation {
	current := currentWidthOrDefault(constraints)
	var width domain.ChannelWidth

	if band == domain.Band2_4GHz {
		if utilizationPct < 30 && constraints.Allows40MHzIn24GHz {
			width = domain.Width40
		} else {
			width = domain.Width20
		}
	} else {
		switch {
		case utilizationPct < 20 && neighborCount < 3:
			width = widestAllowed(band, constraints)
		case utilizationPct < 40 && neighborCount < 6:
			width = capWidth(domain.Width80, band, constraints)
		case utilizationPct < 60:
			width = domain.Width40
		default:
			width = domain.Width20
		}
	}

	ratio := float64(width) / float64(current)
	improvement := (ratio - 1) * 100 * (1 - utilizationPct/100)

	return WidthRecommendation{Width: width, ExpectedThroughputImprovement: improvement}
}

func currentWidthOrDefault(c ChannelPlanningConstraints) domain.ChannelWidth {
	if c.PreferredWidth != 0 {
		return c.PreferredWidth
	}
	return domain.Width20
}

func widestAllowed(band domain.Band, c ChannelPlanningConstraints) domain.ChannelWidth {
	widths := band.ValidWidths()
	widest := domain.Width20
	for _, w := range widths {
		if len(c.PreferredWidths) > 0 && !containsWidth(c.PreferredWidths, w) {
			continue
		}
		if w > widest {
			widest = w
		}
	}
	return widest
}

func capWidth(max domain.ChannelWidth, band domain.Band, c ChannelPlanningConstraints) domain.ChannelWidth {
	best := domain.Width20
	for _, w := range band.ValidWidths() {
		if w > max {
			continue
		}
		if len(c.PreferredWidths) > 0 && !containsWidth(c.PreferredWidths, w) {
			continue
		}
		if w > best {
			best = w
		}
	}
	return best
}

func containsWidth(ws []domain.ChannelWidth, w domain.ChannelWidth) bool {
	for _, v := range ws {
		if v == w {
			return true
		}
	}
	return false
}
