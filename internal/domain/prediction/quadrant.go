package prediction

import "github.com/okian/cbbpredictor/internal/domain/team"

// neutralQuadrantScore is returned when every quadrant weight is zero.
const neutralQuadrantScore = 0.5

// SmoothedWinRate is the Laplace-smoothed win rate (w+α)/(w+l+2α).
// A 0-0 record yields exactly 0.5.
func SmoothedWinRate(wins, losses int, alpha float64) float64 {
	return (float64(wins) + alpha) / (float64(wins+losses) + 2*alpha)
}

// WeightedQuadrantScore collapses a team's four quadrant records into one
// value in [0,1] using the configured quadrant weights.
func WeightedQuadrantScore(t team.Metrics, cfg Config) float64 {
	var weighted, weightSum float64
	for i, r := range t.Quadrants() {
		w := cfg.QuadrantWeights[i]
		weighted += w * SmoothedWinRate(r.Wins, r.Losses, cfg.LaplaceAlpha)
		weightSum += w
	}
	if weightSum == 0 {
		return neutralQuadrantScore
	}
	return weighted / weightSum
}
