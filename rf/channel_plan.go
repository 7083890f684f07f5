package rf

import (
	"sort"

	"github.com/netkit-wifi/netkit/domain"
)

// ChannelAssignment is one BSS's planned channel.
type ChannelAssignment struct {
	BSSID   domain.BSSID
	Channel int
	Score   float64
	DfsRisk DfsRisk
}

// ChannelPlan is the full output of PlanChannels.
type ChannelPlan struct {
	Assignments                []ChannelAssignment
	CoChannelInterference      float64
	AdjacentChannelInterference float64
	Score                       float64
}

// PlanChannels greedily assigns channels to every BSS in clusters,
// most-constrained-first, scoring each candidate channel against
// already-assigned BSS and known neighbor networks.
func PlanChannels(clusters []domain.ApCluster, constraints ChannelPlanningConstraints, neighbors []domain.NeighborNetwork) ChannelPlan {
	available := constraints.AvailableChannels()
	if len(available) == 0 {
		return ChannelPlan{}
	}

	type candidate struct {
		bssid          domain.BSSID
		channel        int
		band           domain.Band
		scoresByChan   map[int]float64
		goodChanCount  int
	}

	var candidates []candidate
	for _, cl := range clusters {
		for _, bss := range cl.Bssids {
			if bss.Band != constraints.Band {
				continue
			}
			scores := make(map[int]float64, len(available))
			good := 0
			for _, ch := range available {
				dfs := AssessDfsRisk(bss.Channel, ch, nil)
				s := channelScore(bss.Band, ch, neighbors, dfs)
				scores[ch] = s
				if s >= 70 {
					good++
				}
			}
			candidates = append(candidates, candidate{
				bssid:         bss.BSSID,
				band:          bss.Band,
				scoresByChan:  scores,
				goodChanCount: good,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].goodChanCount < candidates[j].goodChanCount
	})

	assignedCount := make(map[int]int, len(available))
	var assignments []ChannelAssignment

	for _, c := range candidates {
		bestCh := -1
		bestAdj := -1.0
		for _, ch := range available {
			if assignedCount[ch] >= constraints.maxApCount() {
				continue
			}
			adj := c.scoresByChan[ch] - 10*float64(assignedCount[ch])
			if bestCh == -1 || adj > bestAdj {
				bestAdj = adj
				bestCh = ch
			}
		}
		if bestCh == -1 {
			// No channel has room; fall back to the globally
			// highest-scoring channel regardless of the cap, so every
			// BSS still receives an assignment.
			for _, ch := range available {
				if bestCh == -1 || c.scoresByChan[ch] > c.scoresByChan[bestCh] {
					bestCh = ch
				}
			}
		}
		assignedCount[bestCh]++
		assignments = append(assignments, ChannelAssignment{
			BSSID:   c.bssid,
			Channel: bestCh,
			Score:   c.scoresByChan[bestCh],
			DfsRisk: AssessDfsRisk(0, bestCh, nil),
		})
	}

	co := coChannelInterference(assignedCount)
	adj := 0.0
	if constraints.Band == domain.Band2_4GHz {
		adj = adjacentChannelInterference(assignments)
	}
	dfsPenalty := worstDfsPenalty(assignments)
	score := clamp(100-40*co-20*adj-dfsPenalty, 0, 100)

	return ChannelPlan{
		Assignments:                 assignments,
		CoChannelInterference:       co,
		AdjacentChannelInterference: adj,
		Score:                       score,
	}
}

// coChannelInterference implements // mean_over_channels((assigned-1)/assigned), counting only channels
// that received at least one assignment.
func coChannelInterference(assignedCount map[int]int) float64 {
	var sum float64
	var n int
	for _, count := range assignedCount {
		if count == 0 {
			continue
		}
		sum += float64(count-1) / float64(count)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// adjacentChannelInterference implements 2.4 GHz-only mean
// of 1/|delta| over all pairs with |delta| in {1,2}.
func adjacentChannelInterference(assignments []ChannelAssignment) float64 {
	var sum float64
	var n int
	for i := 0; i < len(assignments); i++ {
		for j := i + 1; j < len(assignments); j++ {
			delta := assignments[i].Channel - assignments[j].Channel
			if delta < 0 {
				delta = -delta
			}
			if delta == 1 || delta == 2 {
				sum += 1.0 / float64(delta)
				n++
			}
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func worstDfsPenalty(assignments []ChannelAssignment) float64 {
	var worst float64
	for _, a := range assignments {
		if p := a.DfsRisk.penalty(); p > worst {
			worst = p
		}
	}
	return worst
}
