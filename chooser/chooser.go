// Package chooser implements action-selection strategies: given a set of
// candidates and a parallel set of weights, pick one.
package chooser

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Chooser picks one element of choices, using weights (one per choice)
// to bias the selection. weights must have the same length as choices;
// a mismatch is a fatal contract violation. The result is always one of
// choices.
type Chooser[T any] interface {
	Choose(choices []T, weights []float64) T
}

func checkLengths[T any](choices []T, weights []float64) {
	if len(choices) != len(weights) {
		panic(fmt.Sprintf("chooser: weights length %d must match choices length %d",
			len(weights), len(choices)))
	}
}

func uniformPick[T any](r *rand.Rand, choices []T) T {
	return choices[r.Intn(len(choices))]
}

// Uniform picks uniformly at random, ignoring weights entirely (beyond
// the length check).
type Uniform[T any] struct {
	rand *rand.Rand
}

// NewUniform returns a Uniform chooser seeded with seed.
func NewUniform[T any](seed uint64) *Uniform[T] {
	return &Uniform[T]{rand: rand.New(rand.NewSource(seed))}
}

func (u *Uniform[T]) Choose(choices []T, weights []float64) T {
	checkLengths(choices, weights)
	return uniformPick(u.rand, choices)
}

// Softmax samples proportionally to exp(weight/temperature). If the
// resulting normalizer is 0, Softmax falls back to a uniform pick.
type Softmax[T any] struct {
	Temperature float64
	source      rand.Source
	rand        *rand.Rand
}

// NewSoftmax returns a Softmax chooser with the given temperature (τ).
// Higher temperature means more uniform selection.
func NewSoftmax[T any](temperature float64, seed uint64) *Softmax[T] {
	source := rand.NewSource(seed)
	return &Softmax[T]{Temperature: temperature, source: source, rand: rand.New(source)}
}

func (s *Softmax[T]) Choose(choices []T, weights []float64) T {
	checkLengths(choices, weights)

	probs := make([]float64, len(weights))
	for i, w := range weights {
		x := w / s.Temperature
		if x > 700 {
			x = 700 // guard exp overflow; monotone rescale only
		}
		probs[i] = math.Exp(x)
	}
	total := floats.Sum(probs)
	if total == 0 {
		return uniformPick(s.rand, choices)
	}
	floats.Scale(1/total, probs)

	dist := distuv.NewCategorical(probs, s.source)
	return choices[int(dist.Rand())]
}

// Weighted treats weights as proportional (unnormalized) probabilities
// and samples accordingly. If the total weight is 0, Weighted falls
// back to a uniform pick, matching Softmax's symmetry.
type Weighted[T any] struct {
	source rand.Source
	rand   *rand.Rand
}

// NewWeighted returns a Weighted chooser seeded with seed.
func NewWeighted[T any](seed uint64) *Weighted[T] {
	source := rand.NewSource(seed)
	return &Weighted[T]{source: source, rand: rand.New(source)}
}

func (w *Weighted[T]) Choose(choices []T, weights []float64) T {
	checkLengths(choices, weights)

	total := floats.Sum(weights)
	if total == 0 {
		return uniformPick(w.rand, choices)
	}

	probs := make([]float64, len(weights))
	copy(probs, weights)
	floats.Scale(1/total, probs)

	dist := distuv.NewCategorical(probs, w.source)
	return choices[int(dist.Rand())]
}
