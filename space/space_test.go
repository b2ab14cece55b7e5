package space

import "testing"

func TestFiniteEnumerateIndexRoundTrip(t *testing.T) {
	f := NewFinite(10, 1)
	elems := f.Enumerate()
	for i, e := range elems {
		if f.Index(e) != i {
			t.Errorf("Index(Enumerate()[%d]) = %d, want %d", i, f.Index(e), i)
		}
		if elems[f.Index(e)] != e {
			t.Errorf("Enumerate()[Index(%v)] != %v", e, e)
		}
	}
}

func TestFiniteIndexNotFound(t *testing.T) {
	f := NewFinite(5, 1)
	if idx := f.Index(-1); idx != NotFound {
		t.Errorf("Index(-1) = %d, want NotFound", idx)
	}
	if idx := f.Index(5); idx != NotFound {
		t.Errorf("Index(5) = %d, want NotFound", idx)
	}
}

func TestProductEnumerateOrder(t *testing.T) {
	a := NewFinite(2, 1)
	b := NewFinite(3, 2)
	p := NewProduct[int, int](a, b)

	elems := p.Enumerate()
	if len(elems) != 6 {
		t.Fatalf("len(Enumerate()) = %d, want 6", len(elems))
	}
	// A varies slowest: (0,0) (0,1) (0,2) (1,0) (1,1) (1,2)
	want := []Pair[int, int]{
		{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2},
	}
	for i, w := range want {
		if elems[i] != w {
			t.Errorf("Enumerate()[%d] = %v, want %v", i, elems[i], w)
		}
	}
}

func TestProductIndexRoundTrip(t *testing.T) {
	a := NewFinite(3, 1)
	b := NewFinite(4, 2)
	p := NewProduct[int, int](a, b)

	for i, e := range p.Enumerate() {
		if p.Index(e) != i {
			t.Errorf("Index(%v) = %d, want %d", e, p.Index(e), i)
		}
	}
}

func TestSequenceEnumerateSizeAndIndex(t *testing.T) {
	c := NewFinite(2, 1)
	eq := func(x, y int) bool { return x == y }
	s := NewSequence[int](c, 3, eq)

	elems := s.Enumerate()
	if len(elems) != s.Size() {
		t.Fatalf("len(Enumerate()) = %d, want Size() = %d", len(elems), s.Size())
	}
	for i, e := range elems {
		if s.Index(e) != i {
			t.Errorf("Index(%v) = %d, want %d", e, s.Index(e), i)
		}
	}
}

func TestNewRangeRejectsInvalidBounds(t *testing.T) {
	if _, err := NewRange(1, 1, 1); err == nil {
		t.Error("NewRange(1, 1, ...) should reject lo >= hi")
	}
	if _, err := NewRange(2, 1, 1); err == nil {
		t.Error("NewRange(2, 1, ...) should reject lo >= hi")
	}
}

func TestRangeSamplesWithinBounds(t *testing.T) {
	r, err := NewRange(-1, 1, 42)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 1000; i++ {
		v := r.Sample()
		if v < r.Lo() || v >= r.Hi() {
			t.Fatalf("Sample() = %v, want in [%v, %v)", v, r.Lo(), r.Hi())
		}
	}
}
