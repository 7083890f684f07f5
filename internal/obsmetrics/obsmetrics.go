// Package obsmetrics provides optional Prometheus instrumentation for
// callers that want to track engine invocation counts and latencies.
// No NetKit engine references this package directly — metrics are
// recorded by the caller around an engine call, consistent with the
// core never reaching for ambient state.
package obsmetrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// EngineInvocations counts calls into each analysis engine.
	EngineInvocations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "netkit",
			Name:      "engine_invocations_total",
			Help:      "Total number of invocations per analysis engine",
		},
		[]string{"engine"},
	)

	// EngineDuration tracks engine call latency.
	EngineDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "netkit",
			Name:      "engine_duration_seconds",
			Help:      "Duration of analysis engine invocations",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"engine"},
	)

	// RisksIdentified counts prioritized risks emitted by the risk
	// prioritizer, labeled by impact level.
	RisksIdentified = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "netkit",
			Name:      "risks_identified_total",
			Help:      "Total number of prioritized risks emitted, by impact level",
		},
		[]string{"impact"},
	)

	once sync.Once
)

// Register registers every metric with the default Prometheus
// registry. Idempotent; safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.DefaultRegisterer.Register(EngineInvocations)
		prometheus.DefaultRegisterer.Register(EngineDuration)
		prometheus.DefaultRegisterer.Register(RisksIdentified)
	})
}
