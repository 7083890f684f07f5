package mesh

import "github.com/netkit-wifi/netkit/domain"

// LoopFindingKind is the closed tag for a topology finding from
// DetectLoops.
type LoopFindingKind string

const (
	LoopSimpleCycle    LoopFindingKind = "SIMPLE_CYCLE"
	LoopRedundantPaths LoopFindingKind = "REDUNDANT_PATHS"
)

// LoopFinding is one topology observation from DetectLoops.
type LoopFinding struct {
	Kind  LoopFindingKind
	Nodes []domain.BSSID
}

// DetectLoops walks the topology as an undirected graph with an
// explicit recursion-stack, reporting a SIMPLE_CYCLE finding for every
// back-edge encountered (an edge to a node already on the current
// path, other than the traversal parent) and a REDUNDANT_PATHS
// informational finding when the mesh declares more than one ROOT.
func DetectLoops(t Topology) []LoopFinding {
	var findings []LoopFinding

	if roots := t.rootCount(); roots > 1 {
		var rootIDs []domain.BSSID
		for _, n := range t.Nodes {
			if n.Role == RoleRoot {
				rootIDs = append(rootIDs, n.ID)
			}
		}
		findings = append(findings, LoopFinding{Kind: LoopRedundantPaths, Nodes: rootIDs})
	}

	visited := make(map[domain.BSSID]bool)
	onStack := make(map[domain.BSSID]bool)
	reported := make(map[[2]domain.BSSID]bool)

	var walk func(id, parent domain.BSSID)
	walk = func(id, parent domain.BSSID) {
		visited[id] = true
		onStack[id] = true
		for _, l := range t.neighbors(id) {
			next := other(l, id)
			if next == parent {
				continue
			}
			if onStack[next] {
				key := edgeKey(id, next)
				if !reported[key] {
					reported[key] = true
					findings = append(findings, LoopFinding{Kind: LoopSimpleCycle, Nodes: []domain.BSSID{id, next}})
				}
				continue
			}
			if !visited[next] {
				walk(next, id)
			}
		}
		onStack[id] = false
	}

	for _, n := range t.Nodes {
		if !visited[n.ID] {
			walk(n.ID, "")
		}
	}

	return findings
}

func edgeKey(a, b domain.BSSID) [2]domain.BSSID {
	if a < b {
		return [2]domain.BSSID{a, b}
	}
	return [2]domain.BSSID{b, a}
}
