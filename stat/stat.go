// Package stat implements the small statistics helpers used by the
// evolutionary and policy-gradient trainers: mean/variance, batch
// normalization, and Fisher-Yates shuffling.
package stat

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// Mean returns the arithmetic mean of x.
func Mean(x []float64) float64 {
	return floats.Sum(x) / float64(len(x))
}

// Variance returns the population variance of x using the naive
// two-pass formula (mean, then average squared deviation from the
// mean). This form is numerically unstable for inputs of very large
// magnitude; Welford's online algorithm avoids that at the cost of a
// more involved running update, which isn't needed here since every
// caller already holds the full batch in memory.
func Variance(x []float64) float64 {
	m := Mean(x)
	sum := 0.0
	for _, v := range x {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(x))
}

// MeanVariance returns both Mean(x) and Variance(x) in one pass over
// the mean.
func MeanVariance(x []float64) (mean, variance float64) {
	mean = Mean(x)
	sum := 0.0
	for _, v := range x {
		d := v - mean
		sum += d * d
	}
	return mean, sum / float64(len(x))
}

// Normalize returns a copy of x shifted and scaled to mean 0, standard
// deviation 1. If the variance is 0 (a constant sequence), Normalize
// returns a copy of x shifted to mean 0 without scaling, avoiding a
// division by zero.
func Normalize(x []float64) []float64 {
	mean, variance := MeanVariance(x)
	out := make([]float64, len(x))
	copy(out, x)
	floats.AddConst(-mean, out)

	if variance == 0 {
		return out
	}
	floats.Scale(1/math.Sqrt(variance), out)
	return out
}

// Shuffle permutes x in place using the Fisher-Yates algorithm, drawing
// randomness from r.
func Shuffle[T any](r *rand.Rand, x []T) {
	for i := len(x) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		x[i], x[j] = x[j], x[i]
	}
}
