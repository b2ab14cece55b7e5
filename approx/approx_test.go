package approx

import (
	"testing"

	"rlcore/feature"
	"rlcore/space"
)

func TestTabularQFreshUpdate(t *testing.T) {
	q := NewTabularQ[int, int]()
	q.Update(0, 0, 10, 0.5)
	if got := q.Eval(0, 0); got != 5 {
		t.Errorf("Eval() = %v, want 5 (alpha*y on a fresh entry)", got)
	}
}

func TestTabularQUnseenIsZero(t *testing.T) {
	q := NewTabularQ[int, int]()
	if got := q.Eval(1, 1); got != 0 {
		t.Errorf("Eval(unseen) = %v, want 0", got)
	}
}

func TestTabularVUpdateRule(t *testing.T) {
	v := NewTabularV[int]()
	v.Update(0, 10, 0.1)
	if got := v.Eval(0); got != 1 {
		t.Errorf("Eval() = %v, want 1", got)
	}
}

func TestLinearVRoundTripParams(t *testing.T) {
	bank := feature.Bank[[]float64]{feature.NewCoordinate(0), feature.NewCoordinate(1)}
	v := NewLinearV[[]float64](bank)
	v.SetParams([]float64{1, 2, 3})

	before := v.Eval([]float64{1, 1})
	v.SetParams(v.GetParams())
	after := v.Eval([]float64{1, 1})
	if before != after {
		t.Errorf("SetParams(GetParams()) changed Eval: %v != %v", before, after)
	}
	if got := v.GetParams(); got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("GetParams() = %v, want [1 2 3]", got)
	}
}

func TestLinearVEval(t *testing.T) {
	bank := feature.Bank[[]float64]{feature.NewCoordinate(0), feature.NewCoordinate(1)}
	v := NewLinearV[[]float64](bank)
	v.SetParams([]float64{1, 2, 3}) // bias=1, w1=2, w2=3
	got := v.Eval([]float64{1, 1}) // 1 + 2*1 + 3*1 = 6
	if got != 6 {
		t.Errorf("Eval() = %v, want 6", got)
	}
}

func TestLinearQLazyCreationAndBlockLayout(t *testing.T) {
	bank := feature.Bank[[]float64]{feature.NewCoordinate(0)}
	actions := space.NewFinite(2, 1)
	q := NewLinearQ[[]float64, int](bank, actions)

	if got := q.Eval([]float64{1}, 0); got != 0 {
		t.Errorf("Eval(unseen action) = %v, want 0", got)
	}

	q.Update([]float64{1}, 1, 4, 1.0) // creates model for action 1, w <- [4, 4]
	if got := q.Eval([]float64{1}, 1); got != 8 {
		t.Errorf("Eval() = %v, want 8 (bias 4 + weight 4 * feature 1)", got)
	}
	if got := q.Eval([]float64{1}, 0); got != 0 {
		t.Errorf("Eval(other action) = %v, want 0 (unaffected)", got)
	}

	params := q.GetParams()
	if len(params) != q.NumParams() {
		t.Fatalf("len(GetParams()) = %d, want %d", len(params), q.NumParams())
	}
}

func TestLinearQExtractBlockOneHot(t *testing.T) {
	bank := feature.Bank[[]float64]{feature.NewCoordinate(0)}
	actions := space.NewFinite(2, 1)
	q := NewLinearQ[[]float64, int](bank, actions)

	phi := q.Extract([]float64{5}, 1)
	want := []float64{0, 0, 1, 5}
	for i := range want {
		if phi[i] != want[i] {
			t.Fatalf("Extract() = %v, want %v", phi, want)
		}
	}
}
