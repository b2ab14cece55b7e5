package approx

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"rlcore/feature"
)

// LinearV is a linear value function w·φ(s) + b over a shared feature
// bank. Weights are laid out [bias, w_1, ..., w_n] so that
// NumParams() == len(bank)+1.
type LinearV[S any] struct {
	bank    feature.Bank[S]
	weights []float64
}

// NewLinearV returns a linear V-function over bank with all weights
// (including bias) initialized to 0.
func NewLinearV[S any](bank feature.Bank[S]) *LinearV[S] {
	return &LinearV[S]{bank: bank, weights: make([]float64, len(bank)+1)}
}

func (v *LinearV[S]) Eval(s S) float64 {
	phi := v.bank.Extract(s)
	return v.weights[0] + floats.Dot(v.weights[1:], phi)
}

// Update shifts the weights by the TD-style rule: e = eval(s) - y,
// w[0] -= alpha*e, w[i+1] -= alpha*e*phi_i(s).
func (v *LinearV[S]) Update(s S, y, alpha float64) {
	phi := v.bank.Extract(s)
	e := v.Eval(s) - y
	v.weights[0] -= alpha * e
	floats.AddScaled(v.weights[1:], -alpha*e, phi)
}

func (v *LinearV[S]) NumParams() int {
	return len(v.weights)
}

func (v *LinearV[S]) GetParams() []float64 {
	out := make([]float64, len(v.weights))
	copy(out, v.weights)
	return out
}

func (v *LinearV[S]) SetParams(p []float64) {
	if len(p) != len(v.weights) {
		panic(fmt.Sprintf("approx: LinearV.SetParams: want %d params, got %d",
			len(v.weights), len(p)))
	}
	copy(v.weights, p)
}

func (v *LinearV[S]) NumFeatures() int {
	return len(v.weights)
}

// ExtractState returns [1, f_1(s), ..., f_n(s)]: both the gradient of
// the output w.r.t. the weights, and the feature vector in the
// FeatureExtractor sense.
func (v *LinearV[S]) ExtractState(s S) []float64 {
	phi := v.bank.Extract(s)
	out := make([]float64, len(phi)+1)
	out[0] = 1
	copy(out[1:], phi)
	return out
}

// Grad returns the gradient of Eval(s) w.r.t. the weights: [1, f_1(s), ..., f_n(s)].
func (v *LinearV[S]) Grad(s S) []float64 {
	return v.ExtractState(s)
}

// Calculate is an alias for Eval, satisfying DifferentiableFunc-shaped
// callers that operate on state-only functions.
func (v *LinearV[S]) Calculate(s S) float64 {
	return v.Eval(s)
}
