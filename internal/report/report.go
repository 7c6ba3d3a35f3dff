// Package report renders prediction results for humans.
package report

import (
	"fmt"
	"strings"

	"github.com/okian/cbbpredictor/internal/domain/prediction"
)

// Format renders r as the plain-text matchup report. Percentages carry one
// decimal place, every other number four.
func Format(r prediction.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s vs %s\n", r.Home, r.Away)
	fmt.Fprintf(&b, "Home team win probability: %s\n", Percent(r.HomeWinProb))
	fmt.Fprintf(&b, "Model score (pre-logistic): %s\n", Decimal(r.Score))
	b.WriteString("Components (home minus away):\n")
	for _, c := range r.Contributions {
		fmt.Fprintf(&b, "  %s: %s\n", c.Name, Decimal(c.Value))
	}
	return b.String()
}

// Percent formats a probability as a percentage with one decimal, e.g. "63.2%".
func Percent(p float64) string {
	return fmt.Sprintf("%.1f%%", 100*p)
}

// Decimal formats x with four decimals.
func Decimal(x float64) string {
	return fmt.Sprintf("%.4f", x)
}
