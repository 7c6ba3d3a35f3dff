package prediction_test

import (
	"math"
	"testing"

	"github.com/okian/cbbpredictor/internal/domain/prediction"
	"github.com/okian/cbbpredictor/internal/domain/team"
	. "github.com/smartystreets/goconvey/convey"
)

const tolerance = 1e-4

func homeU() team.Metrics {
	return team.Metrics{
		Name:             "Home U",
		NETRank:          12,
		SORRank:          18,
		AdjOffEfficiency: 118.5,
		AdjDefEfficiency: 96.2,
		Q1:               team.QuadrantRecord{Wins: 6, Losses: 3},
		Q2:               team.QuadrantRecord{Wins: 5, Losses: 2},
		Q3:               team.QuadrantRecord{Wins: 6, Losses: 1},
		Q4:               team.QuadrantRecord{Wins: 6, Losses: 0},
	}
}

func awayState() team.Metrics {
	return team.Metrics{
		Name:             "Away State",
		NETRank:          19,
		SORRank:          26,
		AdjOffEfficiency: 114.2,
		AdjDefEfficiency: 98.0,
		Q1:               team.QuadrantRecord{Wins: 4, Losses: 5},
		Q2:               team.QuadrantRecord{Wins: 6, Losses: 3},
		Q3:               team.QuadrantRecord{Wins: 7, Losses: 1},
		Q4:               team.QuadrantRecord{Wins: 7, Losses: 0},
	}
}

func TestPredict_DefaultScenario(t *testing.T) {
	Convey("Given Home U hosting Away State with default tuning", t, func() {
		res := prediction.Predict(homeU(), awayState(), prediction.DefaultConfig())

		Convey("Then the result carries both team names", func() {
			So(res.Home, ShouldEqual, "Home U")
			So(res.Away, ShouldEqual, "Away State")
		})

		Convey("Then contributions are reported in fixed order", func() {
			names := make([]string, 0, len(res.Contributions))
			for _, c := range res.Contributions {
				names = append(names, c.Name)
			}
			So(names, ShouldResemble, []string{
				prediction.ContributionNET,
				prediction.ContributionSOR,
				prediction.ContributionEfficiencyMargin,
				prediction.ContributionQuadrants,
				prediction.ContributionHomeCourt,
			})
		})

		Convey("Then each feature term matches the hand computation", func() {
			net, ok := res.Contribution(prediction.ContributionNET)
			So(ok, ShouldBeTrue)
			So(net, ShouldAlmostEqual, 0.0350, tolerance)

			sor, _ := res.Contribution(prediction.ContributionSOR)
			So(sor, ShouldAlmostEqual, 0.0320, tolerance)

			// margins 22.3 vs 16.2 -> 0.35 * 6.1 / 10
			em, _ := res.Contribution(prediction.ContributionEfficiencyMargin)
			So(em, ShouldAlmostEqual, 0.2135, tolerance)

			quad, _ := res.Contribution(prediction.ContributionQuadrants)
			So(quad, ShouldBeGreaterThan, 0)
			So(quad, ShouldAlmostEqual, 0.0188, tolerance)

			bonus, _ := res.Contribution(prediction.ContributionHomeCourt)
			So(bonus, ShouldEqual, 0.10)
		})

		Convey("Then the score is the sum of the contributions", func() {
			var sum float64
			for _, c := range res.Contributions {
				sum += c.Value
			}
			So(res.Score, ShouldAlmostEqual, sum, 1e-12)
			So(res.Score, ShouldAlmostEqual, 0.3993, tolerance)
		})

		Convey("Then the home side is favoured", func() {
			So(res.HomeWinProb, ShouldBeGreaterThan, 0.5)
			So(res.HomeWinProb, ShouldAlmostEqual, 0.6316, tolerance)
			So(res.HomeWinProb, ShouldEqual, prediction.Logistic(res.Score, prediction.DefaultLogisticSlope))
		})

		Convey("When looking up an unknown contribution", func() {
			_, ok := res.Contribution("pace_adv")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestPredict_Symmetry(t *testing.T) {
	Convey("Given a neutral-site config", t, func() {
		cfg := prediction.NewConfig(prediction.WithHomeCourtBonus(0))
		a, b := homeU(), awayState()

		Convey("When swapping home and away", func() {
			ab := prediction.Predict(a, b, cfg)
			ba := prediction.Predict(b, a, cfg)

			Convey("Then the scores are exact negatives", func() {
				So(ab.Score, ShouldEqual, -ba.Score)
			})

			Convey("And the probabilities are complementary", func() {
				So(ab.HomeWinProb, ShouldAlmostEqual, 1-ba.HomeWinProb, 1e-12)
			})

			Convey("And every feature term flips sign", func() {
				for i := 0; i < 4; i++ {
					So(ab.Contributions[i].Value, ShouldEqual, -ba.Contributions[i].Value)
				}
			})
		})
	})
}

func TestPredict_IdenticalTeams(t *testing.T) {
	Convey("Given value-identical home and away teams", t, func() {
		cfg := prediction.DefaultConfig()
		res := prediction.Predict(homeU(), homeU(), cfg)

		Convey("Then every feature term is exactly zero", func() {
			for _, c := range res.Contributions[:4] {
				So(c.Value, ShouldEqual, 0)
			}
		})

		Convey("Then the score is exactly the home-court bonus", func() {
			So(res.Score, ShouldEqual, cfg.HomeCourtBonus)
			So(res.HomeWinProb, ShouldEqual, prediction.Logistic(cfg.HomeCourtBonus, cfg.LogisticSlope))
		})

		Convey("When the bonus is removed", func() {
			res := prediction.Predict(homeU(), homeU(), cfg.With(prediction.WithHomeCourtBonus(0)))
			So(res.Score, ShouldEqual, 0)
			So(res.HomeWinProb, ShouldEqual, 0.5)
		})
	})
}

func TestPredict_ConfigIsolation(t *testing.T) {
	Convey("Given two configs derived from the defaults", t, func() {
		base := prediction.DefaultConfig()
		steep := base.With(prediction.WithLogisticSlope(3.0))

		Convey("Then deriving one leaves the other untouched", func() {
			So(base.LogisticSlope, ShouldEqual, prediction.DefaultLogisticSlope)
			So(steep.LogisticSlope, ShouldEqual, 3.0)
		})

		Convey("Then a steeper slope gives a more extreme probability for the same score", func() {
			p1 := prediction.Predict(homeU(), awayState(), base)
			p2 := prediction.Predict(homeU(), awayState(), steep)
			So(p2.Score, ShouldEqual, p1.Score)
			So(p2.HomeWinProb, ShouldBeGreaterThan, p1.HomeWinProb)
		})

		Convey("Then zero feature weights leave only the bonus", func() {
			cfg := base.With(prediction.WithFeatureWeights(0, 0, 0, 0))
			res := prediction.Predict(homeU(), awayState(), cfg)
			So(res.Score, ShouldEqual, cfg.HomeCourtBonus)
		})
	})
}

func TestNewConfig(t *testing.T) {
	Convey("Given the option constructors", t, func() {
		Convey("When no options are given", func() {
			So(prediction.NewConfig(), ShouldResemble, prediction.DefaultConfig())
		})

		Convey("When every option is applied", func() {
			cfg := prediction.NewConfig(
				prediction.WithFeatureWeights(0.1, 0.2, 0.3, 0.4),
				prediction.WithHomeCourtBonus(0.05),
				prediction.WithRankScales(40, 60),
				prediction.WithEfficiencyMarginScale(12),
				prediction.WithLogisticSlope(2),
				prediction.WithQuadrantWeights(1, 1, 1, 1),
				prediction.WithLaplaceAlpha(0.5),
			)
			So(cfg.NETWeight, ShouldEqual, 0.1)
			So(cfg.SORWeight, ShouldEqual, 0.2)
			So(cfg.EfficiencyMarginWeight, ShouldEqual, 0.3)
			So(cfg.QuadrantsWeight, ShouldEqual, 0.4)
			So(cfg.HomeCourtBonus, ShouldEqual, 0.05)
			So(cfg.NETRankScale, ShouldEqual, 40)
			So(cfg.SORRankScale, ShouldEqual, 60)
			So(cfg.EfficiencyMarginScale, ShouldEqual, 12)
			So(cfg.LogisticSlope, ShouldEqual, 2)
			So(cfg.QuadrantWeights, ShouldResemble, [4]float64{1, 1, 1, 1})
			So(cfg.LaplaceAlpha, ShouldEqual, 0.5)
		})

		Convey("When divisors or alpha are non-positive", func() {
			cfg := prediction.NewConfig(
				prediction.WithRankScales(0, -1),
				prediction.WithEfficiencyMarginScale(0),
				prediction.WithLaplaceAlpha(-2),
			)
			So(cfg.NETRankScale, ShouldEqual, prediction.DefaultNETRankScale)
			So(cfg.SORRankScale, ShouldEqual, prediction.DefaultSORRankScale)
			So(cfg.EfficiencyMarginScale, ShouldEqual, prediction.DefaultEfficiencyMarginScale)
			So(cfg.LaplaceAlpha, ShouldEqual, prediction.DefaultLaplaceAlpha)
		})
	})
}

func TestQuadrants(t *testing.T) {
	Convey("Given the Laplace-smoothed win rate", t, func() {
		Convey("When a quadrant has no games", func() {
			So(prediction.SmoothedWinRate(0, 0, 1.0), ShouldEqual, 0.5)
			So(prediction.SmoothedWinRate(0, 0, 0.25), ShouldEqual, 0.5)
		})

		Convey("When a record is tiny and perfect", func() {
			r := prediction.SmoothedWinRate(1, 0, 1.0)
			So(r, ShouldAlmostEqual, 2.0/3.0, 1e-12)
		})

		Convey("Then rates stay strictly inside (0,1)", func() {
			for _, alpha := range []float64{0.01, 0.5, 1, 3} {
				for w := 0; w <= 30; w += 5 {
					for l := 0; l <= 30; l += 5 {
						r := prediction.SmoothedWinRate(w, l, alpha)
						So(r, ShouldBeGreaterThan, 0)
						So(r, ShouldBeLessThan, 1)
					}
				}
			}
		})
	})

	Convey("Given the weighted quadrant score", t, func() {
		cfg := prediction.DefaultConfig()

		Convey("When using default weights", func() {
			So(prediction.WeightedQuadrantScore(homeU(), cfg), ShouldAlmostEqual, 0.6890, tolerance)
			So(prediction.WeightedQuadrantScore(awayState(), cfg), ShouldAlmostEqual, 0.5952, tolerance)
		})

		Convey("When a team has played no games at all", func() {
			empty := team.Metrics{Name: "New U", NETRank: 300, SORRank: 300}
			So(prediction.WeightedQuadrantScore(empty, cfg), ShouldAlmostEqual, 0.5, 1e-12)
		})

		Convey("When every quadrant weight is zero", func() {
			zero := cfg.With(prediction.WithQuadrantWeights(0, 0, 0, 0))
			So(prediction.WeightedQuadrantScore(homeU(), zero), ShouldEqual, 0.5)
			So(prediction.WeightedQuadrantScore(awayState(), zero), ShouldEqual, 0.5)

			Convey("Then the quadrant term vanishes", func() {
				res := prediction.Predict(homeU(), awayState(), zero)
				q, _ := res.Contribution(prediction.ContributionQuadrants)
				So(q, ShouldEqual, 0)
			})
		})

		Convey("When only Q1 is weighted", func() {
			q1 := cfg.With(prediction.WithQuadrantWeights(1, 0, 0, 0))
			So(prediction.WeightedQuadrantScore(homeU(), q1), ShouldAlmostEqual, 7.0/11.0, 1e-12)
		})

		Convey("Then scores stay within [0,1]", func() {
			lopsided := homeU()
			lopsided.Q1 = team.QuadrantRecord{Wins: 40}
			lopsided.Q2 = team.QuadrantRecord{Wins: 40}
			lopsided.Q3 = team.QuadrantRecord{Wins: 40}
			lopsided.Q4 = team.QuadrantRecord{Wins: 40}
			s := prediction.WeightedQuadrantScore(lopsided, cfg)
			So(s, ShouldBeLessThanOrEqualTo, 1)
			So(s, ShouldBeGreaterThanOrEqualTo, 0)
		})
	})
}

func TestLogistic(t *testing.T) {
	Convey("Given the logistic mapper", t, func() {
		Convey("When the score is zero", func() {
			for _, slope := range []float64{0.1, 1, 1.35, 10, 1000} {
				So(prediction.Logistic(0, slope), ShouldEqual, 0.5)
			}
		})

		Convey("Then it is strictly increasing for a positive slope", func() {
			prev := prediction.Logistic(-5, 1.35)
			for s := -4.9; s <= 5; s += 0.1 {
				p := prediction.Logistic(s, 1.35)
				So(p, ShouldBeGreaterThan, prev)
				prev = p
			}
		})

		Convey("Then it is symmetric around zero", func() {
			for _, s := range []float64{0.1, 0.4, 1.2, 2} {
				So(prediction.Logistic(s, 1.35), ShouldAlmostEqual, 1-prediction.Logistic(-s, 1.35), 1e-12)
			}
		})

		Convey("When the score is extreme", func() {
			hi := prediction.Logistic(1e6, 1.35)
			lo := prediction.Logistic(-1e6, 1.35)
			So(math.IsNaN(hi), ShouldBeFalse)
			So(math.IsNaN(lo), ShouldBeFalse)
			So(hi, ShouldEqual, 1)
			So(lo, ShouldEqual, 0)
		})
	})
}
