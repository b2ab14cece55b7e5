package tracer

import "testing"

func TestIncrementClampsAtMax(t *testing.T) {
	tr := New(10, 3)
	for i := 0; i < 10; i++ {
		tr.Increment()
	}
	if tr.current != 3 {
		t.Fatalf("current = %d, want clamped to max 3", tr.current)
	}
}
