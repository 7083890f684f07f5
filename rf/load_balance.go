package rf

import (
	"math"

	"github.com/netkit-wifi/netkit/domain"
)

// ImbalanceClass is the closed classification.
type ImbalanceClass string

const (
	ImbalanceBalanced    ImbalanceClass = "BALANCED"
	ImbalanceModerate    ImbalanceClass = "MODERATE"
	ImbalanceSignificant ImbalanceClass = "SIGNIFICANT"
	ImbalanceSevere      ImbalanceClass = "SEVERE"
)

// ApLoad is one AP's load sample for LoadBalanceAnalysis.
type ApLoad struct {
	BSSID       domain.BSSID
	ClientCount int
	Utilization float64
	Airtime     float64
}

// LoadBalanceAnalysis is the output of AnalyzeLoadBalance.
type LoadBalanceAnalysis struct {
	Imbalance      float64
	Classification ImbalanceClass
	Overloaded     []domain.BSSID
	Underutilized  []domain.BSSID
}

// AnalyzeLoadBalance computes the weighted coefficient-of-variation
// imbalance factor across clientCount/utilization/airtime (weights
// 0.4/0.4/0.2, clamped to [0,2]), classifies it, and flags
// overloaded/underutilized APs relative to the mean.
func AnalyzeLoadBalance(loads []ApLoad) LoadBalanceAnalysis {
	if len(loads) == 0 {
		return LoadBalanceAnalysis{Classification: ImbalanceBalanced}
	}

	clientCounts := make([]float64, len(loads))
	utilizations := make([]float64, len(loads))
	airtimes := make([]float64, len(loads))
	for i, l := range loads {
		clientCounts[i] = float64(l.ClientCount)
		utilizations[i] = l.Utilization
		airtimes[i] = l.Airtime
	}

	cvClients := coefficientOfVariation(clientCounts)
	cvUtil := coefficientOfVariation(utilizations)
	cvAirtime := coefficientOfVariation(airtimes)

	// A dimension that is zero on every AP (e.g. utilization or
	// airtime telemetry that was never populated) carries no signal
	// and would otherwise just dilute the factor toward zero; drop it
	// and renormalize the remaining weights to sum to 1.
	weights := [3]float64{0.4, 0.4, 0.2}
	cvs := [3]float64{cvClients, cvUtil, cvAirtime}
	allZero := [3]bool{allZero(clientCounts), allZero(utilizations), allZero(airtimes)}

	var weightSum float64
	for i, z := range allZero {
		if !z {
			weightSum += weights[i]
		}
	}
	if weightSum == 0 {
		weightSum = 1
	}

	var imbalance float64
	for i := range weights {
		if allZero[i] {
			continue
		}
		imbalance += (weights[i] / weightSum) * cvs[i]
	}

	if imbalance > 2 {
		imbalance = 2
	}
	if imbalance < 0 {
		imbalance = 0
	}

	var class ImbalanceClass
	switch {
	case imbalance < 0.3:
		class = ImbalanceBalanced
	case imbalance < 0.5:
		class = ImbalanceModerate
	case imbalance < 0.7:
		class = ImbalanceSignificant
	default:
		class = ImbalanceSevere
	}

	meanClients := mean(clientCounts)
	meanUtil := mean(utilizations)

	var overloaded, underutilized []domain.BSSID
	for _, l := range loads {
		switch {
		case float64(l.ClientCount) > 1.5*meanClients || l.Utilization > 1.3*meanUtil:
			overloaded = append(overloaded, l.BSSID)
		case float64(l.ClientCount) < 0.5*meanClients:
			underutilized = append(underutilized, l.BSSID)
		}
	}

	return LoadBalanceAnalysis{
		Imbalance:      imbalance,
		Classification: class,
		Overloaded:     overloaded,
		Underutilized:  underutilized,
	}
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func allZero(xs []float64) bool {
	for _, x := range xs {
		if x != 0 {
			return false
		}
	}
	return true
}

func coefficientOfVariation(xs []float64) float64 {
	m := mean(xs)
	if m == 0 {
		return 0
	}
	var sumSq float64
	for _, x := range xs {
		d := x - m
		sumSq += d * d
	}
	stddev := math.Sqrt(sumSq / float64(len(xs)))
	return stddev / m
}

// ClientMoveContext carries the signal-bonus inputs for MovePriority.
type ClientMoveContext struct {
	CurrentRSSI  int
	TargetRSSI   int
	IsVoip       bool
	IsVideo      bool
}

// MovePriority computes the 0-100 priority for migrating a client as
// part of load balancing: base 50, a signal-delta bonus
// bin, a low-RSSI bonus, and traffic-class bonuses, clamped to
// [0,100].
func MovePriority(ctx ClientMoveContext) float64 {
	priority := 50.0
	delta := ctx.TargetRSSI - ctx.CurrentRSSI

	switch {
	case delta >= 15:
		priority += 30
	case delta >= 10:
		priority += 20
	case delta >= 5:
		priority += 10
	default:
		priority -= 20
	}

	if ctx.CurrentRSSI < -75 {
		priority += 15
	}
	if ctx.IsVoip {
		priority += 10
	}
	if ctx.IsVideo {
		priority += 5
	}

	return clamp(priority, 0, 100)
}
