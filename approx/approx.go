// Package approx implements function approximators usable as value
// estimators, flat parameter vectors, feature extractors, and
// differentiable objects.
package approx

// VFunction approximates a state-value function.
type VFunction[S any] interface {
	Eval(s S) float64
	// Update shifts the approximator's parameters toward target y with
	// learning rate alpha.
	Update(s S, y, alpha float64)
}

// QFunction approximates a state-action-value function.
type QFunction[S, A any] interface {
	Eval(s S, a A) float64
	Update(s S, a A, y, alpha float64)
}

// ParameterizedFunc exposes an approximator's parameters as a flat
// vector. SetParams(GetParams()) must be a no-op, and GetParams() after
// SetParams(v) must return v.
type ParameterizedFunc interface {
	NumParams() int
	GetParams() []float64
	SetParams(v []float64)
}

// StateFeatureExtractor exposes the per-state feature vector an
// approximator evaluates internally.
type StateFeatureExtractor[S any] interface {
	NumFeatures() int
	ExtractState(s S) []float64
}

// FeatureExtractor exposes the per-(state,action) feature vector an
// approximator evaluates internally.
type FeatureExtractor[S, A any] interface {
	NumFeatures() int
	Extract(s S, a A) []float64
}

// DifferentiableFunc is a parameterized function whose output gradient
// with respect to its own parameters is known in closed form.
type DifferentiableFunc[S, A any] interface {
	ParameterizedFunc
	Calculate(s S, a A) float64
	Grad(s S, a A) []float64
}

// LogDiffFunc exposes the gradient of a log-probability with respect to
// its parameters, as needed by policy-gradient methods.
type LogDiffFunc[S, A any] interface {
	ParameterizedFunc
	LogGrad(s S, a A) []float64
}

// VectorDifferentiableFunc is a parameterized function producing a
// vector output (one value per action dimension) whose gradient with
// respect to its parameters is known in closed form: the mean network
// of a Gaussian agent.
type VectorDifferentiableFunc[S any] interface {
	ParameterizedFunc
	Calculate(s S) []float64
	// Grad returns, for each output dimension i, the gradient of that
	// dimension's output with respect to the parameters.
	Grad(s S) [][]float64
}
