package mesh

import "github.com/netkit-wifi/netkit/domain"

// BottleneckLink reports a backhaul link flagged as constraining the
// mesh.
type BottleneckLink struct {
	Link   Link
	Impact float64
}

// FindBottlenecks flags every link matching the bottleneck
// predicate (sub-100 Mbps throughput, sub-0.5 quality, over-20ms
// latency, or an explicit flag) and scores its impact as a blend of
// the fraction of the mesh downstream of it and its quality deficit.
func FindBottlenecks(t Topology) []BottleneckLink {
	var out []BottleneckLink
	total := len(t.Nodes)

	for _, l := range t.Links {
		if !isBottleneck(l) {
			continue
		}
		downstream := downstreamCount(t, l)
		fraction := 0.0
		if total > 0 {
			fraction = float64(downstream) / float64(total)
		}
		impact := 0.6*fraction + 0.4*(1-l.Quality)
		out = append(out, BottleneckLink{Link: l, Impact: impact})
	}

	return out
}

func isBottleneck(l Link) bool {
	return l.ThroughputMbps < 100 || l.Quality < 0.5 || l.LatencyMs > 20 || l.Flagged
}

// downstreamCount counts the nodes reachable from l.B without
// traversing back through l.A, treating l.A as the upstream side of
// the link (the side closer to the root).
func downstreamCount(t Topology, l Link) int {
	visited := map[domain.BSSID]bool{l.A: true}
	stack := []domain.BSSID{l.B}
	count := 0
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true
		count++
		for _, n := range t.neighbors(id) {
			next := other(n, id)
			if !visited[next] {
				stack = append(stack, next)
			}
		}
	}
	return count
}
