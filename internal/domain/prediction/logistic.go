package prediction

import "math"

// Logistic maps score to (0,1) as 1/(1+e^(-slope*score)).
// The exponent is kept non-positive so math.Exp cannot overflow.
func Logistic(score, slope float64) float64 {
	z := slope * score
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}
