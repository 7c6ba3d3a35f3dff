package prediction

import "github.com/okian/cbbpredictor/internal/domain/team"

// Default model constants.
const (
	DefaultNETWeight              = 0.25
	DefaultSORWeight              = 0.20
	DefaultEfficiencyMarginWeight = 0.35
	DefaultQuadrantsWeight        = 0.20
	DefaultHomeCourtBonus         = 0.10
	DefaultNETRankScale           = 50.0
	DefaultSORRankScale           = 50.0
	DefaultEfficiencyMarginScale  = 10.0 // 10 pts/100 possessions is a large gap
	DefaultLogisticSlope          = 1.35
	DefaultLaplaceAlpha           = 1.0

	// Quadrant weights favour results against the hardest schedule.
	DefaultQ1Weight = 0.50
	DefaultQ2Weight = 0.25
	DefaultQ3Weight = 0.15
	DefaultQ4Weight = 0.10
)

// Config is the full set of model tuning constants. It is passed by value
// into every prediction, so a caller holding one cannot affect another.
type Config struct {
	NETWeight              float64
	SORWeight              float64
	EfficiencyMarginWeight float64
	QuadrantsWeight        float64

	// HomeCourtBonus is added to the score unscaled.
	HomeCourtBonus float64

	NETRankScale          float64
	SORRankScale          float64
	EfficiencyMarginScale float64

	LogisticSlope float64

	// QuadrantWeights are indexed Q1..Q4.
	QuadrantWeights [team.QuadrantCount]float64
	LaplaceAlpha    float64
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		NETWeight:              DefaultNETWeight,
		SORWeight:              DefaultSORWeight,
		EfficiencyMarginWeight: DefaultEfficiencyMarginWeight,
		QuadrantsWeight:        DefaultQuadrantsWeight,
		HomeCourtBonus:         DefaultHomeCourtBonus,
		NETRankScale:           DefaultNETRankScale,
		SORRankScale:           DefaultSORRankScale,
		EfficiencyMarginScale:  DefaultEfficiencyMarginScale,
		LogisticSlope:          DefaultLogisticSlope,
		QuadrantWeights:        [team.QuadrantCount]float64{DefaultQ1Weight, DefaultQ2Weight, DefaultQ3Weight, DefaultQ4Weight},
		LaplaceAlpha:           DefaultLaplaceAlpha,
	}
}

// Option applies a configuration option to a Config.
type Option func(*Config)

// NewConfig starts from DefaultConfig and applies opts in order.
func NewConfig(opts ...Option) Config {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// With returns a copy of c with opts applied.
func (c Config) With(opts ...Option) Config {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithFeatureWeights sets the four top-level feature weights.
func WithFeatureWeights(net, sor, efficiencyMargin, quadrants float64) Option {
	return func(c *Config) {
		c.NETWeight = net
		c.SORWeight = sor
		c.EfficiencyMarginWeight = efficiencyMargin
		c.QuadrantsWeight = quadrants
	}
}

// WithHomeCourtBonus sets the venue bonus. Zero models a neutral site.
func WithHomeCourtBonus(bonus float64) Option {
	return func(c *Config) {
		c.HomeCourtBonus = bonus
	}
}

// WithRankScales sets the NET and SOR divisors. Non-positive values are ignored.
func WithRankScales(net, sor float64) Option {
	return func(c *Config) {
		if net > 0 {
			c.NETRankScale = net
		}
		if sor > 0 {
			c.SORRankScale = sor
		}
	}
}

// WithEfficiencyMarginScale sets the efficiency margin divisor. Non-positive values are ignored.
func WithEfficiencyMarginScale(scale float64) Option {
	return func(c *Config) {
		if scale > 0 {
			c.EfficiencyMarginScale = scale
		}
	}
}

// WithLogisticSlope sets the logistic slope.
func WithLogisticSlope(slope float64) Option {
	return func(c *Config) {
		c.LogisticSlope = slope
	}
}

// WithQuadrantWeights sets the Q1..Q4 weights. All zero is allowed and
// makes every team's quadrant score 0.5.
func WithQuadrantWeights(q1, q2, q3, q4 float64) Option {
	return func(c *Config) {
		c.QuadrantWeights = [team.QuadrantCount]float64{q1, q2, q3, q4}
	}
}

// WithLaplaceAlpha sets the smoothing constant. Non-positive values are ignored.
func WithLaplaceAlpha(alpha float64) Option {
	return func(c *Config) {
		if alpha > 0 {
			c.LaplaceAlpha = alpha
		}
	}
}
