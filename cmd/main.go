package main

import (
	"context"
	"fmt"
	"io"
	"os"

	app "github.com/okian/cbbpredictor/internal/app"
	"github.com/okian/cbbpredictor/internal/config"
	"github.com/okian/cbbpredictor/internal/report"
	"github.com/okian/cbbpredictor/pkg/logger"
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		// Use stderr directly since logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			os.Stderr.WriteString("failed to sync logger: " + err.Error() + "\n")
		}
	}()

	if err := run(context.Background(), os.Stdout); err != nil {
		logger.Get().Error(context.Background(), "prediction failed", logger.Error(err))
		os.Exit(1)
	}
}

// run loads configuration, predicts the configured matchup and writes the
// report to out.
func run(ctx context.Context, out io.Writer) error {
	loggerInstance := logger.Get()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc := app.New(
		app.WithLogger(loggerInstance),
		app.WithModelConfig(cfg.Model.PredictionConfig()),
	)

	home, away := cfg.Matchup.Home, cfg.Matchup.Away
	predict := svc.Predict
	if cfg.Matchup.NeutralSite {
		predict = svc.PredictNeutral
	}

	p, err := predict(ctx, home, away)
	if err != nil {
		return fmt.Errorf("predict %s vs %s: %w", home.Name, away.Name, err)
	}

	_, err = io.WriteString(out, report.Format(p.Result))
	return err
}
