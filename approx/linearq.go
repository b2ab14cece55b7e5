package approx

import (
	"fmt"

	"rlcore/feature"
	"rlcore/space"
)

// LinearQ is a per-action collection of linear V-models sharing one
// feature bank. Parameters are laid out action-by-action in the
// enumeration order of the action space; an action with no model yet
// evaluates to 0 and is created lazily on its first Update.
type LinearQ[S any, A comparable] struct {
	bank        feature.Bank[S]
	actionSpace space.FiniteSpace[A]
	models      map[A]*LinearV[S]
	blockSize   int // len(bank) + 1
}

// NewLinearQ returns a linear Q-function sharing bank across one model
// per action in actionSpace.
func NewLinearQ[S any, A comparable](bank feature.Bank[S], actionSpace space.FiniteSpace[A]) *LinearQ[S, A] {
	return &LinearQ[S, A]{
		bank:        bank,
		actionSpace: actionSpace,
		models:      make(map[A]*LinearV[S]),
		blockSize:   len(bank) + 1,
	}
}

func (q *LinearQ[S, A]) Eval(s S, a A) float64 {
	m, ok := q.models[a]
	if !ok {
		return 0
	}
	return m.Eval(s)
}

func (q *LinearQ[S, A]) Update(s S, a A, y, alpha float64) {
	m := q.modelFor(a)
	m.Update(s, y, alpha)
}

func (q *LinearQ[S, A]) modelFor(a A) *LinearV[S] {
	m, ok := q.models[a]
	if !ok {
		m = NewLinearV[S](q.bank)
		q.models[a] = m
	}
	return m
}

func (q *LinearQ[S, A]) NumParams() int {
	return q.blockSize * q.actionSpace.Size()
}

func (q *LinearQ[S, A]) GetParams() []float64 {
	out := make([]float64, q.NumParams())
	for i, a := range q.actionSpace.Enumerate() {
		if m, ok := q.models[a]; ok {
			copy(out[i*q.blockSize:(i+1)*q.blockSize], m.GetParams())
		}
	}
	return out
}

func (q *LinearQ[S, A]) SetParams(p []float64) {
	if len(p) != q.NumParams() {
		panic(fmt.Sprintf("approx: LinearQ.SetParams: want %d params, got %d",
			q.NumParams(), len(p)))
	}
	for i, a := range q.actionSpace.Enumerate() {
		block := p[i*q.blockSize : (i+1)*q.blockSize]
		q.modelFor(a).SetParams(block)
	}
}

func (q *LinearQ[S, A]) NumFeatures() int {
	return q.blockSize * q.actionSpace.Size()
}

// Extract returns a block-one-hot vector: the [1, f_1(s), ..., f_n(s)]
// feature vector placed in the block belonging to a, zero elsewhere.
func (q *LinearQ[S, A]) Extract(s S, a A) []float64 {
	out := make([]float64, q.NumFeatures())
	idx := q.actionSpace.Index(a)
	if idx == space.NotFound {
		panic("approx: LinearQ.Extract: action is not a member of the action space")
	}
	phi := q.bank.Extract(s)
	block := out[idx*q.blockSize : (idx+1)*q.blockSize]
	block[0] = 1
	copy(block[1:], phi)
	return out
}

// Grad returns the gradient of Eval(s,a) w.r.t. the full parameter
// vector: identical in shape to Extract, since the model is linear.
func (q *LinearQ[S, A]) Grad(s S, a A) []float64 {
	return q.Extract(s, a)
}

// Calculate is an alias for Eval, satisfying DifferentiableFunc.
func (q *LinearQ[S, A]) Calculate(s S, a A) float64 {
	return q.Eval(s, a)
}
