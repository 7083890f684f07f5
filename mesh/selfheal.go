package mesh

import "github.com/netkit-wifi/netkit/domain"

// FailureKind is the closed tag for FailureScenario, mapping a sealed
// failure-scenario hierarchy onto a tagged enum.
type FailureKind string

const (
	FailureSingleNode FailureKind = "SINGLE_NODE_FAILURE"
	FailureSingleLink FailureKind = "SINGLE_LINK_FAILURE"
)

// FailureScenario is a single fault to simulate against a topology.
type FailureScenario struct {
	Kind FailureKind
	Node domain.BSSID // set for FailureSingleNode
	A, B domain.BSSID // set for FailureSingleLink
}

// SelfHealResult is the outcome of simulating one FailureScenario.
type SelfHealResult struct {
	Scenario      FailureScenario
	Recoverable   bool
	ServiceImpact float64
	RecoveryTimeS float64
}

// SimulateFailure evaluates a single FailureScenario against the
// topology: a ROOT node failure is recoverable only if
// another ROOT exists; any other node or link failure is recoverable
// iff the mesh has redundancy (more than one path around the fault).
// Service impact scales with the fraction of nodes downstream of the
// fault, scaled by 0.5 for a recoverable node fault and by 0.3 for a
// recoverable link fault; recovery time is a fixed 60s
// for a node fault and 30s for a link fault, when recoverable.
func SimulateFailure(t Topology, scenario FailureScenario) SelfHealResult {
	switch scenario.Kind {
	case FailureSingleNode:
		return simulateNodeFailure(t, scenario)
	case FailureSingleLink:
		return simulateLinkFailure(t, scenario)
	default:
		return SelfHealResult{Scenario: scenario}
	}
}

func simulateNodeFailure(t Topology, scenario FailureScenario) SelfHealResult {
	node := findNode(t, scenario.Node)

	var recoverable bool
	if node.Role == RoleRoot {
		recoverable = t.rootCount() > 1
	} else {
		recoverable = hasRedundancy(t, scenario.Node)
	}

	fraction := nodeDownstreamFraction(t, scenario.Node)
	impactFactor := 1.0
	if recoverable {
		impactFactor = 0.5
	}

	result := SelfHealResult{
		Scenario:      scenario,
		Recoverable:   recoverable,
		ServiceImpact: fraction * impactFactor,
	}
	if recoverable {
		result.RecoveryTimeS = 60
	}
	return result
}

func simulateLinkFailure(t Topology, scenario FailureScenario) SelfHealResult {
	link, ok := findLink(t, scenario.A, scenario.B)
	recoverable := ok && hasAlternatePath(t, link)

	fraction := 0.0
	if ok {
		fraction = float64(downstreamCount(t, link)) / float64(max(1, len(t.Nodes)))
	}
	factor := 1.0
	if recoverable {
		factor = 0.3
	}

	result := SelfHealResult{
		Scenario:      scenario,
		Recoverable:   recoverable,
		ServiceImpact: fraction * factor,
	}
	if recoverable {
		result.RecoveryTimeS = 30
	}
	return result
}

func findNode(t Topology, id domain.BSSID) Node {
	for _, n := range t.Nodes {
		if n.ID == id {
			return n
		}
	}
	return Node{ID: id, Role: RoleLeaf}
}

func findLink(t Topology, a, b domain.BSSID) (Link, bool) {
	for _, l := range t.Links {
		if (l.A == a && l.B == b) || (l.A == b && l.B == a) {
			return l, true
		}
	}
	return Link{}, false
}

// hasRedundancy reports whether removing id still leaves every other
// node connected to some ROOT.
func hasRedundancy(t Topology, id domain.BSSID) bool {
	remaining := removeNode(t, id)
	for _, n := range remaining.Nodes {
		if n.Role == RoleRoot {
			continue
		}
		if !reachesRoot(remaining, n.ID) {
			return false
		}
	}
	return true
}

// hasAlternatePath reports whether removing l still leaves its two
// endpoints connected.
func hasAlternatePath(t Topology, l Link) bool {
	remaining := removeLink(t, l)
	return connected(remaining, l.A, l.B)
}

func removeNode(t Topology, id domain.BSSID) Topology {
	var nodes []Node
	for _, n := range t.Nodes {
		if n.ID != id {
			nodes = append(nodes, n)
		}
	}
	var links []Link
	for _, l := range t.Links {
		if l.A != id && l.B != id {
			links = append(links, l)
		}
	}
	return Topology{Nodes: nodes, Links: links}
}

func removeLink(t Topology, target Link) Topology {
	var links []Link
	for _, l := range t.Links {
		if l == target {
			continue
		}
		links = append(links, l)
	}
	return Topology{Nodes: t.Nodes, Links: links}
}

func reachesRoot(t Topology, start domain.BSSID) bool {
	visited := map[domain.BSSID]bool{start: true}
	stack := []domain.BSSID{start}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if findNode(t, id).Role == RoleRoot {
			return true
		}
		for _, l := range t.neighbors(id) {
			next := other(l, id)
			if !visited[next] {
				visited[next] = true
				stack = append(stack, next)
			}
		}
	}
	return false
}

func connected(t Topology, a, b domain.BSSID) bool {
	visited := map[domain.BSSID]bool{a: true}
	stack := []domain.BSSID{a}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == b {
			return true
		}
		for _, l := range t.neighbors(id) {
			next := other(l, id)
			if !visited[next] {
				visited[next] = true
				stack = append(stack, next)
			}
		}
	}
	return false
}

func nodeDownstreamFraction(t Topology, id domain.BSSID) float64 {
	remaining := removeNode(t, id)
	reachable := 0
	for _, n := range remaining.Nodes {
		if reachesRoot(remaining, n.ID) {
			reachable++
		}
	}
	unreachable := len(remaining.Nodes) - reachable
	if len(t.Nodes) == 0 {
		return 0
	}
	return float64(unreachable) / float64(len(t.Nodes))
}
