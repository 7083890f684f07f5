package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netkit-wifi/netkit/domain"
	"github.com/netkit-wifi/netkit/mesh"
)

func star(t *testing.T) mesh.Topology {
	t.Helper()
	root := domain.BSSID("AA:AA:AA:AA:AA:01")
	leaf1 := domain.BSSID("AA:AA:AA:AA:AA:02")
	leaf2 := domain.BSSID("AA:AA:AA:AA:AA:03")
	return mesh.Topology{
		Nodes: []mesh.Node{
			{ID: root, Role: mesh.RoleRoot},
			{ID: leaf1, Role: mesh.RoleLeaf},
			{ID: leaf2, Role: mesh.RoleLeaf},
		},
		Links: []mesh.Link{
			{A: root, B: leaf1, Wired: true, Quality: 1, ThroughputMbps: 1000},
			{A: root, B: leaf2, Wired: true, Quality: 1, ThroughputMbps: 1000},
		},
	}
}

func TestClassifyBackhaulAllWired(t *testing.T) {
	require.Equal(t, mesh.BackhaulExcellent, mesh.ClassifyBackhaul(star(t)))
}

func TestDetectLoopsNoCycleInStar(t *testing.T) {
	findings := mesh.DetectLoops(star(t))
	require.Empty(t, findings)
}

func TestDetectLoopsFindsSimpleCycle(t *testing.T) {
	topo := star(t)
	leaf1 := topo.Nodes[1].ID
	leaf2 := topo.Nodes[2].ID
	topo.Links = append(topo.Links, mesh.Link{A: leaf1, B: leaf2, Quality: 1})

	findings := mesh.DetectLoops(topo)

	var kinds []mesh.LoopFindingKind
	for _, f := range findings {
		kinds = append(kinds, f.Kind)
	}
	require.Contains(t, kinds, mesh.LoopSimpleCycle)
}

func TestSimulateFailureRootWithoutBackupNotRecoverable(t *testing.T) {
	topo := star(t)
	result := mesh.SimulateFailure(topo, mesh.FailureScenario{
		Kind: mesh.FailureSingleNode,
		Node: topo.Nodes[0].ID,
	})
	require.False(t, result.Recoverable)
	require.Equal(t, 0.0, result.RecoveryTimeS)
}

func TestFindBottlenecksFlagsLowThroughputLink(t *testing.T) {
	topo := star(t)
	topo.Links[1].ThroughputMbps = 10
	bottlenecks := mesh.FindBottlenecks(topo)
	require.Len(t, bottlenecks, 1)
	require.Equal(t, topo.Links[1], bottlenecks[0].Link)
}
