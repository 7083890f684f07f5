// Command netkit-bench assembles a synthetic NetworkObservation and
// runs it through the security scoring, risk prioritization, channel
// planning, and mesh backhaul engines, printing a summary report.
// It exists to exercise the library end to end; it is not part of the
// public API.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/netkit-wifi/netkit/domain"
	"github.com/netkit-wifi/netkit/internal/obslog"
	"github.com/netkit-wifi/netkit/internal/obsmetrics"
	"github.com/netkit-wifi/netkit/mesh"
	"github.com/netkit-wifi/netkit/rf"
	"github.com/netkit-wifi/netkit/risk"
	"github.com/netkit-wifi/netkit/security"
)

var verbose bool

func main() {
	root := &cobra.Command{
		Use:   "netkit-bench",
		Short: "Run NetKit's analysis engines against a synthetic network and print a report.",
		Long: `netkit-bench builds a small synthetic multi-AP deployment in memory,
runs it through the security scoring, risk prioritization, channel
planning, and mesh analysis engines, and prints a human-readable
summary of the results.`,
		RunE: runBench,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runBench(cmd *cobra.Command, _ []string) error {
	logger := obslog.New(verbose)
	logger.Info("starting netkit-bench run")

	obsmetrics.Register()

	network := syntheticNetwork()

	analysis := timedEngine("security", func() security.NetworkSecurityAnalysis {
		return security.AnalyzeNetwork(scoreAll(network))
	})
	fmt.Printf("network security: mean score %.2f (compliance %s)\n", analysis.MeanSecurityScore, analysis.Compliance)

	plan := timedEngine("risk", func() risk.RiskPlan {
		return risk.Prioritize(analysis)
	})
	fmt.Printf("risk plan: %d findings, overall %s\n", len(plan.Risks), plan.OverallLevel)
	for _, r := range plan.Risks {
		obsmetrics.RisksIdentified.WithLabelValues(string(r.Impact)).Inc()
		fmt.Printf("  - [%s/%s] %s\n", r.Impact, r.Effort, r.ID)
	}

	constraints := rf.ChannelPlanningConstraints{
		Band:                 domain.Band2_4GHz,
		RegulatoryDomain:     domain.FCCRegulatoryDomain,
		MaxApCountPerChannel: 1,
	}
	channelPlan := timedEngine("rf", func() rf.ChannelPlan {
		return rf.PlanChannels(network.Clusters, constraints, network.NeighborNetworks)
	})
	fmt.Printf("channel plan score: %.1f (co-channel %.2f, adjacent %.2f)\n",
		channelPlan.Score, channelPlan.CoChannelInterference, channelPlan.AdjacentChannelInterference)

	topology := syntheticTopology(network)
	quality := timedEngine("mesh", func() mesh.BackhaulQuality {
		return mesh.ClassifyBackhaul(topology)
	})
	fmt.Printf("mesh backhaul quality: %s\n", quality)

	return nil
}

// timedEngine records an invocation and its duration against the
// named engine before returning fn's result.
func timedEngine[T any](engine string, fn func() T) T {
	obsmetrics.EngineInvocations.WithLabelValues(engine).Inc()
	start := time.Now()
	defer func() {
		obsmetrics.EngineDuration.WithLabelValues(engine).Observe(time.Since(start).Seconds())
	}()
	return fn()
}

func syntheticNetwork() domain.NetworkObservation {
	bss1 := domain.BssObservation{
		BSSID: domain.BSSID("AA:BB:CC:00:00:01"),
		SSID:  "corp",
		Band:  domain.Band2_4GHz,
		Fingerprint: domain.SecurityFingerprint{
			AuthType:    domain.AuthWPA2PSK,
			CipherSet:   domain.NewCipherSet(domain.CipherCCMP),
			PmfRequired: false,
		},
		PmfCapable: true,
	}
	bss2 := domain.BssObservation{
		BSSID: domain.BSSID("AA:BB:CC:00:00:02"),
		SSID:  "corp",
		Band:  domain.Band5GHz,
		Fingerprint: domain.SecurityFingerprint{
			AuthType:    domain.AuthWPA3SAE,
			CipherSet:   domain.NewCipherSet(domain.CipherGCMP256),
			PmfRequired: true,
		},
		PmfCapable:       true,
		ManagementCipher: cipherPtr(domain.CipherBIPGMAC256),
	}

	cluster, err := domain.NewApCluster("", "corp", []domain.BssObservation{bss1, bss2})
	if err != nil {
		panic(err)
	}

	return domain.NetworkObservation{Clusters: []domain.ApCluster{cluster}}
}

func cipherPtr(c domain.CipherSuite) *domain.CipherSuite { return &c }

func scoreAll(network domain.NetworkObservation) []security.BssSecurityScore {
	var scores []security.BssSecurityScore
	for _, bss := range network.AllBss() {
		scores = append(scores, security.ScoreBss(bss))
	}
	return scores
}

func syntheticTopology(network domain.NetworkObservation) mesh.Topology {
	var nodes []mesh.Node
	var links []mesh.Link
	for _, cl := range network.Clusters {
		for i, bss := range cl.Bssids {
			role := mesh.RoleRelay
			if i == 0 {
				role = mesh.RoleRoot
			}
			nodes = append(nodes, mesh.Node{ID: bss.BSSID, Role: role})
			if i > 0 {
				links = append(links, mesh.Link{
					A: cl.Bssids[0].BSSID, B: bss.BSSID,
					Wired: true, Quality: 1, ThroughputMbps: 1000,
				})
			}
		}
	}
	return mesh.Topology{Nodes: nodes, Links: links}
}
