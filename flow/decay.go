package flow

import "math"

// Coefficients of the logistic distance-decay polynomial
//
//	lp(d) = c0 + c1·d + c2·√d + c3·d²
//
// fitted to observed cycling trips.
const (
	logitC0 = -3.894
	logitC1 = -0.5872
	logitC2 = 1.832
	logitC3 = 0.007956
)

// ExponentialDecay returns exp(-d/k). k must be positive.
func ExponentialDecay(d, k float64) float64 {
	return math.Exp(-d / k)
}

// LogisticDecay returns the logistic share of flow reaching distance d.
// LogisticDecay(0) ≈ 0.01996.
func LogisticDecay(d float64) float64 {
	lp := logitC0 + logitC1*d + logitC2*math.Sqrt(d) + logitC3*d*d

	return 1 / (1 + math.Exp(-lp))
}

// Decay dispatches on k: exponential for k > 0, logistic otherwise.
func Decay(d, k float64) float64 {
	if k > 0 {
		return ExponentialDecay(d, k)
	}

	return LogisticDecay(d)
}

// DistanceLimit returns the search radius -log10(tol)·k for one dispersal
// origin; tol = 0 with k > 0 gives +Inf. Radii that come out negative or NaN
// (k ≤ 0) are clamped to 0, so the origin is still expanded and neighbours
// at zero distance receive LogisticDecay(0) of its flow.
func DistanceLimit(tol, k float64) float64 {
	lim := -math.Log10(tol) * k
	if math.IsNaN(lim) || lim < 0 {
		return 0
	}

	return lim
}
