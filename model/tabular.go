package model

import "rlcore/env"

type saKey[S, A comparable] struct {
	s S
	a A
}

type sasKey[S, A comparable] struct {
	s, sNext S
	a        A
}

// TabularModel is an empirical tabulator over finite (s,a) -> observed
// next-states and (s,a,s') -> last observed reward.
type TabularModel[S, A comparable] struct {
	counts map[saKey[S, A]]map[S]int
	totals map[saKey[S, A]]int
	reward map[sasKey[S, A]]float64
}

// NewTabularModel returns an empty empirical model.
func NewTabularModel[S, A comparable]() *TabularModel[S, A] {
	return &TabularModel[S, A]{
		counts: make(map[saKey[S, A]]map[S]int),
		totals: make(map[saKey[S, A]]int),
		reward: make(map[sasKey[S, A]]float64),
	}
}

func (m *TabularModel[S, A]) Update(t env.Transition[S, A]) {
	key := saKey[S, A]{s: t.State, a: t.Action}
	if m.counts[key] == nil {
		m.counts[key] = make(map[S]int)
	}
	m.counts[key][t.NextState]++
	m.totals[key]++
	m.reward[sasKey[S, A]{s: t.State, a: t.Action, sNext: t.NextState}] = t.Reward
}

// Transition returns the observed count of next divided by the total
// observations for (curr, action), or 0 if (curr, action) is unseen.
func (m *TabularModel[S, A]) Transition(curr S, action A, next S) float64 {
	key := saKey[S, A]{s: curr, a: action}
	total, ok := m.totals[key]
	if !ok || total == 0 {
		return 0
	}
	return float64(m.counts[key][next]) / float64(total)
}

// Reward returns the stored reward for (curr, action, next), or 0 when
// unseen.
func (m *TabularModel[S, A]) Reward(curr S, action A, next S) float64 {
	return m.reward[sasKey[S, A]{s: curr, a: action, sNext: next}]
}

// NextStates returns the distinct observed next-states for (curr,action)
// and their empirical probabilities, suitable for a Chooser to sample
// from. The second return is false if (curr, action) has never been
// observed.
func (m *TabularModel[S, A]) NextStates(curr S, action A) ([]S, []float64, bool) {
	key := saKey[S, A]{s: curr, a: action}
	total, ok := m.totals[key]
	if !ok || total == 0 {
		return nil, nil, false
	}

	states := make([]S, 0, len(m.counts[key]))
	weights := make([]float64, 0, len(m.counts[key]))
	for s, c := range m.counts[key] {
		states = append(states, s)
		weights = append(weights, float64(c)/float64(total))
	}
	return states, weights, true
}

// DeterministicModel adapts a model of a deterministic environment (one
// that always reports a single next state and reward for a given
// (state, action)) to the Model interface: probability 1 for the unique
// observed next state, 0 for all others.
type DeterministicModel[S, A comparable] struct {
	next   map[saKey[S, A]]S
	reward map[saKey[S, A]]float64
}

// NewDeterministicModel returns an empty deterministic model.
func NewDeterministicModel[S, A comparable]() *DeterministicModel[S, A] {
	return &DeterministicModel[S, A]{
		next:   make(map[saKey[S, A]]S),
		reward: make(map[saKey[S, A]]float64),
	}
}

func (m *DeterministicModel[S, A]) Update(t env.Transition[S, A]) {
	key := saKey[S, A]{s: t.State, a: t.Action}
	m.next[key] = t.NextState
	m.reward[key] = t.Reward
}

func (m *DeterministicModel[S, A]) Transition(curr S, action A, next S) float64 {
	key := saKey[S, A]{s: curr, a: action}
	actual, ok := m.next[key]
	if !ok || actual != next {
		return 0
	}
	return 1
}

func (m *DeterministicModel[S, A]) Reward(curr S, action A, next S) float64 {
	key := saKey[S, A]{s: curr, a: action}
	actual, ok := m.next[key]
	if !ok || actual != next {
		return 0
	}
	return m.reward[key]
}
