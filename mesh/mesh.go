// Package mesh implements the Mesh Analyzer: backhaul quality
// classification, bottleneck-link detection, undirected loop
// detection, and self-healing failure simulation over a mesh AP
// topology.
package mesh

import "github.com/netkit-wifi/netkit/domain"

// NodeRole distinguishes the mesh's gateway(s) from relay nodes.
type NodeRole string

const (
	RoleRoot  NodeRole = "ROOT"
	RoleRelay NodeRole = "RELAY"
	RoleLeaf  NodeRole = "LEAF"
)

// Node is one AP participating in the mesh topology.
type Node struct {
	ID   domain.BSSID
	Role NodeRole
}

// Link is a backhaul connection between two mesh nodes.
type Link struct {
	A              domain.BSSID
	B              domain.BSSID
	Wired          bool
	Dedicated      bool
	ThroughputMbps float64
	Quality        float64 // 0-1
	LatencyMs      float64
	HopCount       int
	Flagged        bool
}

// Topology is the immutable input to every mesh analysis, represented
// as plain node/link lists per the source's identifier-reference
// convention (no pointer graph).
type Topology struct {
	Nodes []Node
	Links []Link
}

func (t Topology) rootCount() int {
	n := 0
	for _, node := range t.Nodes {
		if node.Role == RoleRoot {
			n++
		}
	}
	return n
}

func (t Topology) neighbors(id domain.BSSID) []Link {
	var out []Link
	for _, l := range t.Links {
		if l.A == id || l.B == id {
			out = append(out, l)
		}
	}
	return out
}

func other(l Link, id domain.BSSID) domain.BSSID {
	if l.A == id {
		return l.B
	}
	return l.A
}
