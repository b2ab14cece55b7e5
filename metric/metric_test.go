package metric

import "testing"

func TestScalarDist2(t *testing.T) {
	var m Scalar[float64]
	if got := m.Dist2(3, 5); got != 4 {
		t.Errorf("Dist2(3, 5) = %v, want 4", got)
	}
}

func TestVectorDist2(t *testing.T) {
	var m Vector
	if got := m.Dist2([]float64{0, 0}, []float64{3, 4}); got != 25 {
		t.Errorf("Dist2 = %v, want 25", got)
	}
}

func TestVectorDist2UnequalLengthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unequal-length vectors")
		}
	}()
	var m Vector
	m.Dist2([]float64{0}, []float64{0, 1})
}

func TestSequenceMetric(t *testing.T) {
	s := SequenceMetric[float64]{Component: Scalar[float64]{}}
	got := s.Dist2([]float64{0, 0}, []float64{3, 4})
	if got != 25 {
		t.Errorf("Dist2 = %v, want 25", got)
	}
}

func TestProductMetric(t *testing.T) {
	p := Product[float64, float64]{First: Scalar[float64]{}, Second: Scalar[float64]{}}
	got := p.Dist2(Pair[float64, float64]{First: 0, Second: 0}, Pair[float64, float64]{First: 3, Second: 4})
	if got != 25 {
		t.Errorf("Dist2 = %v, want 25", got)
	}
}
