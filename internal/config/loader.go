package config

import (
	"context"
	"fmt"
	"maps"
	"math"
	"os"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment knobs.
const (
	envPrefix     = "CBB_"
	envConfigPath = "CBB_CONFIG"
	envNestingSep = "__"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if CBB_CONFIG is set
//  3. env (prefix CBB_, "__" descends a level: CBB_MODEL__LOGISTIC_SLOPE)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv(envConfigPath); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrLoadConfig, path, err)
		}
	}

	// CBB_MATCHUP__HOME__NET_RANK -> matchup.home.net_rank
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(s, envNestingSep, ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: environment: %w", ErrLoadConfig, err)
	}

	// Unmarshal over a copy of the defaults so absent keys keep them.
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects tuning that would divide by zero or invert the model.
func (c *Config) Validate() error {
	m := c.Model
	positive := map[string]float64{
		"net_rank_scale":          m.NETRankScale,
		"sor_rank_scale":          m.SORRankScale,
		"efficiency_margin_scale": m.EfficiencyMarginScale,
		"logistic_slope":          m.LogisticSlope,
		"laplace_alpha":           m.LaplaceAlpha,
	}
	for _, key := range slices.Sorted(maps.Keys(positive)) {
		v := positive[key]
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("%w: model.%s must be a positive number, got %v", ErrInvalidConfig, key, v)
		}
	}

	qw := map[string]float64{
		"q1": m.QuadrantWeights.Q1,
		"q2": m.QuadrantWeights.Q2,
		"q3": m.QuadrantWeights.Q3,
		"q4": m.QuadrantWeights.Q4,
	}
	for _, key := range slices.Sorted(maps.Keys(qw)) {
		v := qw[key]
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: model.quadrant_weights.%s must be >= 0, got %v", ErrInvalidConfig, key, v)
		}
	}

	finite := map[string]float64{
		"net_weight":               m.NETWeight,
		"sor_weight":               m.SORWeight,
		"efficiency_margin_weight": m.EfficiencyMarginWeight,
		"quadrants_weight":         m.QuadrantsWeight,
		"home_court_bonus":         m.HomeCourtBonus,
	}
	for _, key := range slices.Sorted(maps.Keys(finite)) {
		v := finite[key]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: model.%s must be finite", ErrInvalidConfig, key)
		}
	}
	return nil
}
