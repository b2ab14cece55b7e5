package trainer

import (
	"rlcore/agent"
	"rlcore/chooser"
	"rlcore/env"
	"rlcore/model"
	"rlcore/period"
	"rlcore/space"
)

// Dyna-Q defaults.
const (
	DefaultDynaQGamma = 0.95
	DefaultDynaQAlpha = 0.1
	DefaultDynaQK     = 10
)

// DefaultDynaQPeriod is the default training budget: 30 episodes.
func DefaultDynaQPeriod() period.TimePeriod { return period.Episodes(30) }

// DynaQ trains a ValueAgent the way QLearner does from real experience,
// but additionally learns a TabularModel of the environment from that
// same experience. After every real transition it performs K planning
// updates: sample a state uniformly from the distinct states observed so
// far, sample an action uniformly from the distinct actions observed so
// far, sample a next-state from the model proportionally to its
// transition probabilities for that (state, action), look up the
// model's reward, and apply the same Q-learning update to the resulting
// synthetic transition.
type DynaQ[S comparable, A comparable] struct {
	QLearner *QLearner[S, A]
	Model    *model.TabularModel[S, A]
	K        int

	states      []S
	seenState   map[S]bool
	actions     []A
	seenAction  map[A]bool
	stateChoice chooser.Chooser[S]
	actionChoice chooser.Chooser[A]
	nextChoice  chooser.Chooser[S]
}

// NewDynaQ returns a DynaQ trainer. stateChooser and actionChooser pick
// uniformly among distinct observed states/actions; nextChooser samples
// a next state from the model's per-(s,a) empirical distribution.
func NewDynaQ[S comparable, A comparable](
	actions space.FiniteSpace[A],
	gamma, alpha float64,
	k int,
	stateChooser chooser.Chooser[S],
	actionChooser chooser.Chooser[A],
	nextChooser chooser.Chooser[S],
) *DynaQ[S, A] {
	return &DynaQ[S, A]{
		QLearner:     NewQLearner[S, A](actions, gamma, alpha),
		Model:        model.NewTabularModel[S, A](),
		K:            k,
		seenState:    make(map[S]bool),
		seenAction:   make(map[A]bool),
		stateChoice:  stateChooser,
		actionChoice: actionChooser,
		nextChoice:   nextChooser,
	}
}

func (d *DynaQ[S, A]) observe(s S, a A) {
	if !d.seenState[s] {
		d.seenState[s] = true
		d.states = append(d.states, s)
	}
	if !d.seenAction[a] {
		d.seenAction[a] = true
		d.actions = append(d.actions, a)
	}
}

// TrainStep applies one real-experience Q-learning update, folds the
// transition into the learned model, records state and action as
// observed, then performs K planning updates sampled from the model.
func (d *DynaQ[S, A]) TrainStep(ag agent.ValueAgent[S, A], t env.Transition[S, A], done bool) {
	d.QLearner.TrainStep(ag, t, done)
	d.Model.Update(t)
	d.observe(t.State, t.Action)

	if len(d.states) == 0 || len(d.actions) == 0 {
		return
	}
	stateWeights := uniformWeights(len(d.states))
	actionWeights := uniformWeights(len(d.actions))

	for i := 0; i < d.K; i++ {
		s := d.stateChoice.Choose(d.states, stateWeights)
		a := d.actionChoice.Choose(d.actions, actionWeights)

		nexts, probs, ok := d.Model.NextStates(s, a)
		if !ok {
			continue
		}
		next := d.nextChoice.Choose(nexts, probs)
		reward := d.Model.Reward(s, a, next)
		simT := env.Transition[S, A]{State: s, Action: a, Reward: reward, NextState: next}
		d.QLearner.TrainStep(ag, simT, false)
	}
}

// Train runs ag against e, planning after every real step, until budget
// is exhausted.
func (d *DynaQ[S, A]) Train(ag agent.ValueAgent[S, A], e env.Environment[S, A], budget period.TimePeriod) {
	for !budget.IsNone() {
		obs := e.Reset()
		s := obs.State
		done := false
		for !done {
			a := ag.GetAction(s)
			next := e.Step(a)
			t := env.Transition[S, A]{State: s, Action: a, Reward: next.Reward, NextState: next.State}
			d.TrainStep(ag, t, next.Done)

			s = next.State
			done = next.Done
			budget = budget.Dec(done)
			if budget.IsNone() {
				return
			}
		}
	}
}

func uniformWeights(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return w
}
