package trainer

import (
	"rlcore/agent"
	"rlcore/env"
	"rlcore/graddesc"
	"rlcore/period"
	"rlcore/stat"
)

// Policy-gradient defaults.
const (
	DefaultPolicyGradGamma = 0.99
	DefaultPolicyGradEta   = 1e-4
	DefaultPolicyGradIters = 100
)

// DefaultPolicyGradEvalPeriod is the default per-step rollout budget.
func DefaultPolicyGradEvalPeriod() period.TimePeriod { return period.Episodes(5) }

// PolicyGradient trains a LogDiffAgent with a normalized-baseline
// variant of REINFORCE: roll out trajectories, compute per-episode
// discounted returns, z-normalize the returns across the whole batch,
// accumulate the return-weighted log-gradient, and apply one gradient
// step via Rule at learning rate Eta.
type PolicyGradient[S, A any] struct {
	Gamma      float64
	Eta        float64
	Iters      int
	EvalPeriod period.TimePeriod
	Rule       graddesc.Rule
}

// NewPolicyGradient returns a PolicyGradient trainer.
func NewPolicyGradient[S, A any](gamma, eta float64, iters int, evalPeriod period.TimePeriod, rule graddesc.Rule) *PolicyGradient[S, A] {
	return &PolicyGradient[S, A]{Gamma: gamma, Eta: eta, Iters: iters, EvalPeriod: evalPeriod, Rule: rule}
}

// Train runs Iters steps of policy-gradient training against e.
func (pg *PolicyGradient[S, A]) Train(ag agent.LogDiffAgent[S, A], e env.Environment[S, A], budget period.TimePeriod) {
	for iter := 0; iter < pg.Iters && !budget.IsNone(); iter++ {
		var allReturns []float64
		var allStates []S
		var allActions []A

		p := pg.EvalPeriod
		for !p.IsNone() {
			states, actions, rewards := rollout[S, A](ag, e)
			if len(rewards) == 0 {
				p = p.Dec(true)
				continue
			}

			returns := make([]float64, len(rewards))
			g := 0.0
			for t := len(rewards) - 1; t >= 0; t-- {
				g = rewards[t] + pg.Gamma*g
				returns[t] = g
			}

			allStates = append(allStates, states...)
			allActions = append(allActions, actions...)
			allReturns = append(allReturns, returns...)

			p = p.Dec(true)
		}

		if len(allReturns) == 0 {
			budget = budget.Dec(true)
			continue
		}

		normReturns := stat.Normalize(allReturns)

		numParams := ag.NumParams()
		grad := make([]float64, numParams)
		for t := range allStates {
			lg := ag.LogGrad(allStates[t], allActions[t])
			for i := 0; i < numParams; i++ {
				grad[i] += normReturns[t] * lg[i]
			}
		}

		step := pg.Rule.Step(grad, pg.Eta)
		params := ag.GetParams()
		for i := range params {
			params[i] += step[i]
		}
		ag.SetParams(params)

		budget = budget.Dec(true)
	}
}
