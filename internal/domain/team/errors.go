package team

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is the sentinel kind for out-of-contract team metrics.
var ErrInvalidInput = errors.New("invalid team metrics")

// InvalidInputError names the offending team and field.
type InvalidInputError struct {
	Team   string
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: team %q field %s: %s", ErrInvalidInput, e.Team, e.Field, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidInput).
func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// Validate checks m against the model's input contract: ranks start at 1,
// win/loss counts are non-negative and efficiencies are finite.
// The model itself never calls this; it is meant for the call boundary.
func Validate(m Metrics) error {
	invalid := func(field, reason string) error {
		return &InvalidInputError{Team: m.Name, Field: field, Reason: reason}
	}

	if m.Name == "" {
		return invalid("name", "must not be empty")
	}
	if m.NETRank < 1 {
		return invalid("net_rank", fmt.Sprintf("must be >= 1, got %d", m.NETRank))
	}
	if m.SORRank < 1 {
		return invalid("sor_rank", fmt.Sprintf("must be >= 1, got %d", m.SORRank))
	}
	if math.IsNaN(m.AdjOffEfficiency) || math.IsInf(m.AdjOffEfficiency, 0) {
		return invalid("adj_off_efficiency", "must be finite")
	}
	if math.IsNaN(m.AdjDefEfficiency) || math.IsInf(m.AdjDefEfficiency, 0) {
		return invalid("adj_def_efficiency", "must be finite")
	}
	for i, r := range m.Quadrants() {
		field := fmt.Sprintf("q%d", i+1)
		if r.Wins < 0 {
			return invalid(field+".wins", fmt.Sprintf("must be >= 0, got %d", r.Wins))
		}
		if r.Losses < 0 {
			return invalid(field+".losses", fmt.Sprintf("must be >= 0, got %d", r.Losses))
		}
	}
	return nil
}
