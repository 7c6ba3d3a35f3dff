// Package prediction turns two teams' advanced stats into a home-win probability.
//
// The model is closed form: four weighted "home minus away" advantages plus a
// home-court constant form a score, and a logistic maps the score to a
// probability. Every function here is pure; Config travels by value.
package prediction

import "github.com/okian/cbbpredictor/internal/domain/team"

// Contribution names, in reporting order.
const (
	ContributionNET              = "NET_adv"
	ContributionSOR              = "SOR_adv"
	ContributionEfficiencyMargin = "AdjEffMargin_adv"
	ContributionQuadrants        = "Quadrants_adv"
	ContributionHomeCourt        = "HomeCourt_bonus"
)

// Contribution is one additive term of the composite score.
type Contribution struct {
	Name  string
	Value float64
}

// Result is the outcome of one matchup prediction.
type Result struct {
	Home        string
	Away        string
	Score       float64 // composite score before the logistic
	HomeWinProb float64
	// Contributions holds the five additive terms of Score in fixed order:
	// NET, SOR, efficiency margin, quadrants, home court.
	Contributions []Contribution
}

// Contribution returns the term named name.
func (r Result) Contribution(name string) (float64, bool) {
	for _, c := range r.Contributions {
		if c.Name == name {
			return c.Value, true
		}
	}
	return 0, false
}

// Predict estimates the probability that home beats away.
// To give the away side the venue, swap the arguments; for a neutral site
// pass a Config with HomeCourtBonus set to zero.
func Predict(home, away team.Metrics, cfg Config) Result {
	// Lower rank is better, so away - home is positive when home ranks higher.
	netTerm := cfg.NETWeight * (float64(away.NETRank-home.NETRank) / cfg.NETRankScale)
	sorTerm := cfg.SORWeight * (float64(away.SORRank-home.SORRank) / cfg.SORRankScale)

	emAdv := (home.EfficiencyMargin() - away.EfficiencyMargin()) / cfg.EfficiencyMarginScale
	emTerm := cfg.EfficiencyMarginWeight * emAdv

	// Quadrant scores are already normalised to [0,1].
	quadAdv := WeightedQuadrantScore(home, cfg) - WeightedQuadrantScore(away, cfg)
	quadTerm := cfg.QuadrantsWeight * quadAdv

	score := netTerm + sorTerm + emTerm + quadTerm
	score += cfg.HomeCourtBonus

	return Result{
		Home:        home.Name,
		Away:        away.Name,
		Score:       score,
		HomeWinProb: Logistic(score, cfg.LogisticSlope),
		Contributions: []Contribution{
			{Name: ContributionNET, Value: netTerm},
			{Name: ContributionSOR, Value: sorTerm},
			{Name: ContributionEfficiencyMargin, Value: emTerm},
			{Name: ContributionQuadrants, Value: quadTerm},
			{Name: ContributionHomeCourt, Value: cfg.HomeCourtBonus},
		},
	}
}
