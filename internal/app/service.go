// Package service wires the prediction model to validation, logging and
// metrics for callers such as the demo command.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/okian/cbbpredictor/internal/domain/prediction"
	"github.com/okian/cbbpredictor/internal/domain/team"
	"github.com/okian/cbbpredictor/pkg/logger"
	"github.com/okian/cbbpredictor/pkg/metrics"
)

// Prediction is a model result tagged for correlation in logs.
type Prediction struct {
	ID      string
	Neutral bool
	prediction.Result
}

// Service serves matchup predictions. It holds no mutable state after New,
// so Predict may be called from many goroutines.
type Service struct {
	cfg      prediction.Config
	validate bool
	metrics  *metrics.Manager
	logger   logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithModelConfig sets the model tuning used for every prediction.
func WithModelConfig(cfg prediction.Config) Option {
	return func(s *Service) {
		s.cfg = cfg
	}
}

// WithValidation toggles input validation. When off, out-of-contract
// inputs flow straight into the arithmetic.
func WithValidation(enabled bool) Option {
	return func(s *Service) {
		s.validate = enabled
	}
}

// WithMetrics sets the metrics manager; the process-wide one is used otherwise.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// New constructs a Service with the default model tuning.
func New(opts ...Option) *Service {
	s := &Service{
		cfg:      prediction.DefaultConfig(),
		validate: true,
		metrics:  metrics.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	return s
}

// Config returns the model tuning snapshot.
func (s *Service) Config() prediction.Config {
	return s.cfg
}

// Predict estimates the probability that home beats away at home's venue.
func (s *Service) Predict(ctx context.Context, home, away team.Metrics) (Prediction, error) {
	return s.predict(ctx, home, away, s.cfg, false)
}

// PredictNeutral predicts a game with no venue advantage; a is reported as home.
func (s *Service) PredictNeutral(ctx context.Context, a, b team.Metrics) (Prediction, error) {
	return s.predict(ctx, a, b, s.cfg.With(prediction.WithHomeCourtBonus(0)), true)
}

func (s *Service) predict(ctx context.Context, home, away team.Metrics, cfg prediction.Config, neutral bool) (Prediction, error) {
	if s.validate {
		for _, t := range []team.Metrics{home, away} {
			if err := team.Validate(t); err != nil {
				var ie *team.InvalidInputError
				if errors.As(err, &ie) {
					s.metrics.RecordRejected(ie.Field)
				}
				s.logger.Warn(ctx, "rejected prediction input", logger.Error(err))
				return Prediction{}, err
			}
		}
	}

	start := time.Now()
	res := prediction.Predict(home, away, cfg)
	elapsed := time.Since(start)

	p := Prediction{
		ID:      uuid.NewString(),
		Neutral: neutral,
		Result:  res,
	}

	venue := metrics.VenueHome
	if neutral {
		venue = metrics.VenueNeutral
	}
	s.metrics.RecordPrediction(venue, res.Score, res.HomeWinProb, elapsed)

	fields := []logger.Field{
		logger.String("id", p.ID),
		logger.String("home", res.Home),
		logger.String("away", res.Away),
		logger.Bool("neutral", neutral),
		logger.Float64("score", res.Score),
		logger.Float64("home_win_prob", res.HomeWinProb),
	}
	for _, c := range res.Contributions {
		fields = append(fields, logger.Float64(c.Name, c.Value))
	}
	s.logger.Debug(ctx, "prediction complete", fields...)

	return p, nil
}
