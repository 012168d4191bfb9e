// Package formula estimates one-repetition-max capacity from a single
// (weight, reps) observation.
package formula

import "math"

const (
	Brzycki = "brzycki"
	Epley   = "epley"

	Default = Brzycki
)

// Observation is one logged set: a weight lifted for a number of reps.
type Observation struct {
	Weight float64
	Reps   int
}

// EstimateBrzycki returns weight * 36 / (37 - reps).
// The formula is only defined for reps in [1, 36]; outside of that
// region the input weight is returned unchanged.
func EstimateBrzycki(weight float64, reps int) float64 {
	if reps <= 1 || reps >= 37 {
		return weight
	}
	return weight * 36 / float64(37-reps)
}

// EstimateEpley returns weight * (1 + reps/30),
// or the input weight unchanged for a single rep (or less).
func EstimateEpley(weight float64, reps int) float64 {
	if reps <= 1 {
		return weight
	}
	return weight * (1 + float64(reps)/30)
}

// Estimate dispatches to the named formula (Brzycki if unknown or empty)
// and rounds the result to one decimal place.
// Non-positive weight or reps never cause an error, just a zero estimate.
func Estimate(name string, weight float64, reps int) float64 {
	if weight <= 0 || reps <= 0 {
		return 0
	}

	var est float64
	switch name {
	case Epley:
		est = EstimateEpley(weight, reps)
	default:
		est = EstimateBrzycki(weight, reps)
	}

	return math.Round(est*10) / 10
}

// BestEstimate returns the maximum estimate across all observations,
// or 0 when there are none.
func BestEstimate(name string, observations []Observation) float64 {
	var best float64
	for _, o := range observations {
		if est := Estimate(name, o.Weight, o.Reps); est > best {
			best = est
		}
	}
	return best
}
