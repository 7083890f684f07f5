package rf

import "github.com/netkit-wifi/netkit/domain"

// channelScore computes the 0-100 per-channel score: base 100, minus
// neighbor penalties, minus a DFS penalty, minus a utilization term,
// clamped to [0,100].
func channelScore(band domain.Band, channel int, neighbors []domain.NeighborNetwork, dfsRisk DfsRisk) float64 {
	score := 100.0
	maxUtil := 0.0

	for _, n := range neighbors {
		if n.Band != band {
			continue
		}
		if n.Channel == channel {
			score -= 20
			if n.Utilization > maxUtil {
				maxUtil = n.Utilization
			}
			continue
		}
		if band == domain.Band2_4GHz {
			delta := n.Channel - channel
			if delta == 1 || delta == -1 || delta == 2 || delta == -2 {
				score -= 10
			}
		}
	}

	score -= dfsRisk.penalty()
	score -= 0.2 * maxUtil

	return clamp(score, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
