// Package graddesc implements the gradient-step rules used by the
// policy-gradient trainer: plain gradient descent,
// momentum, and RMSProp. Each rule maintains whatever running cache it
// needs across calls, initialized to zero on first use, and operates
// directly on plain []float64 parameter vectors and gradients.
package graddesc

import "math"

// Rule computes a parameter step from a gradient and a learning rate,
// possibly maintaining state across calls (momentum/RMSProp caches).
type Rule interface {
	Step(grad []float64, eta float64) []float64
}

// Plain is vanilla gradient descent: step = eta * grad.
type Plain struct{}

func (Plain) Step(grad []float64, eta float64) []float64 {
	step := make([]float64, len(grad))
	for i, g := range grad {
		step[i] = eta * g
	}
	return step
}

// Momentum maintains a running step cache: step_i = m*cache_i + eta*grad_i,
// then cache <- step.
type Momentum struct {
	M     float64
	cache []float64
}

// NewMomentum returns a Momentum rule with decay m.
func NewMomentum(m float64) *Momentum {
	return &Momentum{M: m}
}

func (r *Momentum) Step(grad []float64, eta float64) []float64 {
	if r.cache == nil {
		r.cache = make([]float64, len(grad))
	}
	step := make([]float64, len(grad))
	for i, g := range grad {
		step[i] = r.M*r.cache[i] + eta*g
	}
	r.cache = step
	return step
}

// RMSProp maintains a running mean-square cache:
// cache_i <- rho*cache_i + (1-rho)*grad_i^2,
// step_i = eta*grad_i / (sqrt(cache_i) + epsilon).
type RMSProp struct {
	Rho     float64
	Epsilon float64
	cache   []float64
}

// NewRMSProp returns an RMSProp rule with decay rho and smoothing
// epsilon.
func NewRMSProp(rho, epsilon float64) *RMSProp {
	return &RMSProp{Rho: rho, Epsilon: epsilon}
}

func (r *RMSProp) Step(grad []float64, eta float64) []float64 {
	if r.cache == nil {
		r.cache = make([]float64, len(grad))
	}
	step := make([]float64, len(grad))
	for i, g := range grad {
		r.cache[i] = r.Rho*r.cache[i] + (1-r.Rho)*g*g
		step[i] = eta * g / (math.Sqrt(r.cache[i]) + r.Epsilon)
	}
	return step
}
