// Package agent implements the action-selection policies that map a
// state to an action, built atop the approximators in package approx and
// the selection strategies in package chooser.
package agent

// Agent maps a state to an action.
type Agent[S, A any] interface {
	GetAction(s S) A
}

// ValueAgent is an Agent whose action selection is driven by an
// underlying Q-function it also exposes for evaluation and update, the
// shape every value-based trainer (QLearner, SARSALearner, DynaQ,
// FittedQIteration) needs.
type ValueAgent[S, A any] interface {
	Agent[S, A]
	Eval(s S, a A) float64
	Update(s S, a A, y, alpha float64)
}

// ParamAgent is an Agent whose behavior is controlled by a flat
// parameter vector, the shape CrossEntropy and NaturalEvo need to
// perturb and install candidate solutions.
type ParamAgent[S, A any] interface {
	Agent[S, A]
	NumParams() int
	GetParams() []float64
	SetParams(v []float64)
}

// LogDiffAgent is a ParamAgent that also exposes the gradient of its own
// log-probability, the shape PolicyGradient needs.
type LogDiffAgent[S, A any] interface {
	ParamAgent[S, A]
	LogGrad(s S, a A) []float64
}
