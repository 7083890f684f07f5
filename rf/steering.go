package rf

import "github.com/netkit-wifi/netkit/domain"

// BandCandidate is one band a client could be steered to, with the
// inputs needed to score it.
type BandCandidate struct {
	Band             domain.Band
	UtilizationPct   float64
	ClientCount      int
	IsCurrent        bool
	ClientRSSI       int
	SupportsWifi6    bool
	SupportsWifi6E   bool
}

// BandSteerDecision is the output of EvaluateBandSteer.
type BandSteerDecision struct {
	Scores  map[domain.Band]float64
	Target  domain.Band
	Current domain.Band
	Steer   bool
}

// EvaluateBandSteer scores every candidate band and decides whether to
// steer the client off its current band, using a band-score rule:
// base 50, band bonuses, utilization/clientCount penalties,
// capability bonuses, and a low-RSSI-on-2.4GHz bonus for leaving it,
// plus a hysteresis bonus for staying put. Steers iff the best score
// beats the current score by at least 15 and the target differs from
// current.
func EvaluateBandSteer(candidates []BandCandidate) BandSteerDecision {
	scores := make(map[domain.Band]float64, len(candidates))
	var current domain.Band
	var currentScore float64
	best := domain.Band("")
	var bestScore float64
	first := true

	for _, c := range candidates {
		s := bandScore(c)
		scores[c.Band] = s
		if c.IsCurrent {
			current = c.Band
			currentScore = s
		}
		if first || s > bestScore {
			bestScore = s
			best = c.Band
			first = false
		}
	}

	steer := best != current && (bestScore-currentScore) >= 15

	return BandSteerDecision{Scores: scores, Target: best, Current: current, Steer: steer}
}

func bandScore(c BandCandidate) float64 {
	score := 50.0

	switch c.Band {
	case domain.Band6GHz:
		score += 30
	case domain.Band5GHz:
		score += 20
	case domain.Band2_4GHz:
		score += 10
	}

	score -= 0.3 * c.UtilizationPct
	score -= 2 * float64(c.ClientCount)

	if c.Band == domain.Band6GHz && c.SupportsWifi6E {
		score += 15
	}
	if c.Band == domain.Band5GHz && c.SupportsWifi6 {
		score += 10
	}
	if c.ClientRSSI < -70 && c.Band == domain.Band2_4GHz {
		score += 15
	}
	if c.IsCurrent {
		score += 10
	}

	return score
}

// ApCandidate is one access point a client could be steered to, with
// the inputs needed to score it.
type ApCandidate struct {
	BSSID          domain.BSSID
	RSSI           int
	UtilizationPct float64
	ClientCount    int
	IsCurrent      bool
}

// ApSteerDecision is the output of EvaluateApSteer.
type ApSteerDecision struct {
	Scores  map[domain.BSSID]float64
	Target  domain.BSSID
	Current domain.BSSID
	Steer   bool
}

// EvaluateApSteer scores every candidate AP and decides whether to
// steer the client, using an AP-score rule: base 50, RSSI bins,
// utilization/clientCount penalties, a hysteresis bonus. Steers iff the
// score delta is at least 10, the target's RSSI is at least -75 dBm,
// and the target differs from current.
func EvaluateApSteer(candidates []ApCandidate) ApSteerDecision {
	scores := make(map[domain.BSSID]float64, len(candidates))
	var current domain.BSSID
	var currentScore float64
	var best domain.BSSID
	var bestScore float64
	var bestRSSI int
	first := true

	for _, c := range candidates {
		s := apScore(c)
		scores[c.BSSID] = s
		if c.IsCurrent {
			current = c.BSSID
			currentScore = s
		}
		if first || s > bestScore {
			bestScore = s
			best = c.BSSID
			bestRSSI = c.RSSI
			first = false
		}
	}

	steer := best != current && (bestScore-currentScore) >= 10 && bestRSSI >= -75

	return ApSteerDecision{Scores: scores, Target: best, Current: current, Steer: steer}
}

func apScore(c ApCandidate) float64 {
	score := 50.0

	switch {
	case c.RSSI >= -60:
		score += 30
	case c.RSSI >= -70:
		score += 20
	case c.RSSI >= -75:
		score += 10
	}

	score -= 20 * (c.UtilizationPct / 100)
	score -= 15 * (float64(c.ClientCount) / 20)

	if c.IsCurrent {
		score += 15
	}

	return score
}
