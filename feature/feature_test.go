package feature

import (
	"math"
	"testing"

	"rlcore/metric"
)

func TestCoordinate(t *testing.T) {
	c := NewCoordinate(1)
	s := []float64{10, 20, 30}
	if got := c.Extract(s); got != 20 {
		t.Errorf("Extract() = %v, want 20", got)
	}
}

func TestRBFAtCenterIsOne(t *testing.T) {
	r := NewRBF[[]float64](metric.Vector{}, []float64{1, 2}, 1.0)
	if got := r.Extract([]float64{1, 2}); math.Abs(got-1) > 1e-9 {
		t.Errorf("Extract(center) = %v, want 1", got)
	}
}

func TestBinaryBall(t *testing.T) {
	b := NewBinaryBall[[]float64](metric.Vector{}, []float64{0, 0}, 1.0)
	if got := b.Extract([]float64{0.5, 0}); got != 1 {
		t.Errorf("Extract(inside) = %v, want 1", got)
	}
	if got := b.Extract([]float64{5, 5}); got != 0 {
		t.Errorf("Extract(outside) = %v, want 0", got)
	}
}

func TestBinarySlice(t *testing.T) {
	b := NewBinarySlice(0, -1, 1)
	if got := b.Extract([]float64{0.5}); got != 1 {
		t.Errorf("Extract(in range) = %v, want 1", got)
	}
	if got := b.Extract([]float64{2}); got != 0 {
		t.Errorf("Extract(out of range) = %v, want 0", got)
	}
}

func TestTransformUnary(t *testing.T) {
	c := NewCoordinate(0)
	sq := NewUnary[[]float64](c, func(x float64) float64 { return x * x })
	if got := sq.Extract([]float64{3}); got != 9 {
		t.Errorf("Extract() = %v, want 9", got)
	}
}

func TestTransformBinary(t *testing.T) {
	a := NewCoordinate(0)
	b := NewCoordinate(1)
	sum := NewBinary[[]float64](a, b, func(x, y float64) float64 { return x + y })
	if got := sum.Extract([]float64{2, 3}); got != 5 {
		t.Errorf("Extract() = %v, want 5", got)
	}
}
