// Package config defines process configuration and how it is loaded.
//
// Conventions:
// - New() returns the built-in defaults.
// - Load(ctx) layers defaults, an optional YAML file and CBB_* env vars.
// - Errors are wrapped with this package's sentinels.
package config

import (
	"github.com/okian/cbbpredictor/internal/domain/prediction"
	"github.com/okian/cbbpredictor/internal/domain/team"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Model holds the prediction tuning constants.
	Model Model `koanf:"model"`

	// Matchup is the game the demo predicts.
	Matchup Matchup `koanf:"matchup"`
}

// Model mirrors prediction.Config with koanf keys.
type Model struct {
	NETWeight              float64 `koanf:"net_weight"`
	SORWeight              float64 `koanf:"sor_weight"`
	EfficiencyMarginWeight float64 `koanf:"efficiency_margin_weight"`
	QuadrantsWeight        float64 `koanf:"quadrants_weight"`
	HomeCourtBonus         float64 `koanf:"home_court_bonus"`
	NETRankScale           float64 `koanf:"net_rank_scale"`
	SORRankScale           float64 `koanf:"sor_rank_scale"`
	EfficiencyMarginScale  float64 `koanf:"efficiency_margin_scale"`
	LogisticSlope          float64 `koanf:"logistic_slope"`
	LaplaceAlpha           float64 `koanf:"laplace_alpha"`

	QuadrantWeights QuadrantWeights `koanf:"quadrant_weights"`
}

// QuadrantWeights are the per-quadrant aggregation weights.
type QuadrantWeights struct {
	Q1 float64 `koanf:"q1"`
	Q2 float64 `koanf:"q2"`
	Q3 float64 `koanf:"q3"`
	Q4 float64 `koanf:"q4"`
}

// Matchup names the two teams of the demo game.
type Matchup struct {
	Home team.Metrics `koanf:"home"`
	Away team.Metrics `koanf:"away"`

	// NeutralSite drops the home-court bonus.
	NeutralSite bool `koanf:"neutral_site"`
}

// New returns a Config holding the built-in defaults.
func New() *Config {
	d := prediction.DefaultConfig()
	return &Config{
		LogLevel: "info",
		Model: Model{
			NETWeight:              d.NETWeight,
			SORWeight:              d.SORWeight,
			EfficiencyMarginWeight: d.EfficiencyMarginWeight,
			QuadrantsWeight:        d.QuadrantsWeight,
			HomeCourtBonus:         d.HomeCourtBonus,
			NETRankScale:           d.NETRankScale,
			SORRankScale:           d.SORRankScale,
			EfficiencyMarginScale:  d.EfficiencyMarginScale,
			LogisticSlope:          d.LogisticSlope,
			LaplaceAlpha:           d.LaplaceAlpha,
			QuadrantWeights: QuadrantWeights{
				Q1: d.QuadrantWeights[0],
				Q2: d.QuadrantWeights[1],
				Q3: d.QuadrantWeights[2],
				Q4: d.QuadrantWeights[3],
			},
		},
		Matchup: Matchup{
			Home: team.Metrics{
				Name:             "Home U",
				NETRank:          12,
				SORRank:          18,
				AdjOffEfficiency: 118.5,
				AdjDefEfficiency: 96.2,
				Q1:               team.QuadrantRecord{Wins: 6, Losses: 3},
				Q2:               team.QuadrantRecord{Wins: 5, Losses: 2},
				Q3:               team.QuadrantRecord{Wins: 6, Losses: 1},
				Q4:               team.QuadrantRecord{Wins: 6, Losses: 0},
			},
			Away: team.Metrics{
				Name:             "Away State",
				NETRank:          19,
				SORRank:          26,
				AdjOffEfficiency: 114.2,
				AdjDefEfficiency: 98.0,
				Q1:               team.QuadrantRecord{Wins: 4, Losses: 5},
				Q2:               team.QuadrantRecord{Wins: 6, Losses: 3},
				Q3:               team.QuadrantRecord{Wins: 7, Losses: 1},
				Q4:               team.QuadrantRecord{Wins: 7, Losses: 0},
			},
		},
	}
}

// PredictionConfig converts the model section into a prediction.Config.
func (m Model) PredictionConfig() prediction.Config {
	return prediction.Config{
		NETWeight:              m.NETWeight,
		SORWeight:              m.SORWeight,
		EfficiencyMarginWeight: m.EfficiencyMarginWeight,
		QuadrantsWeight:        m.QuadrantsWeight,
		HomeCourtBonus:         m.HomeCourtBonus,
		NETRankScale:           m.NETRankScale,
		SORRankScale:           m.SORRankScale,
		EfficiencyMarginScale:  m.EfficiencyMarginScale,
		LogisticSlope:          m.LogisticSlope,
		QuadrantWeights: [team.QuadrantCount]float64{
			m.QuadrantWeights.Q1,
			m.QuadrantWeights.Q2,
			m.QuadrantWeights.Q3,
			m.QuadrantWeights.Q4,
		},
		LaplaceAlpha: m.LaplaceAlpha,
	}
}
