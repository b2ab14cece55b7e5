package feature

import "testing"

func TestTileCoderBankShape(t *testing.T) {
	tc := NewTileCoder([]float64{0, 0}, []float64{1, 1}, [][]int{{4, 4}, {4, 4}}, 7)
	bank := tc.Bank()
	if got, want := len(bank), 2*4*4; got != want {
		t.Fatalf("len(bank) = %d, want %d", got, want)
	}
}

func TestTileCoderExactlyOneActivePerTiling(t *testing.T) {
	tc := NewTileCoder([]float64{0, 0}, []float64{1, 1}, [][]int{{4, 4}, {5, 5}}, 3)
	bank := tc.Bank()
	s := []float64{0.37, 0.82}

	perTiling := map[int]int{}
	for _, f := range bank {
		cell := f.(tileCell)
		if f.Extract(s) == 1 {
			perTiling[cell.tiling]++
		}
	}
	for tiling, count := range perTiling {
		if count != 1 {
			t.Fatalf("tiling %d activated %d cells, want exactly 1", tiling, count)
		}
	}
	if len(perTiling) != 2 {
		t.Fatalf("expected both tilings to activate, got %d", len(perTiling))
	}
}

func TestTileCoderClampsOutOfRangeState(t *testing.T) {
	tc := NewTileCoder([]float64{0, 0}, []float64{1, 1}, [][]int{{4, 4}}, 11)
	bank := tc.Bank()
	inRange := []float64{0.9, 0.9}
	outOfRange := []float64{50, 50}

	activeIn, activeOut := -1, -1
	for i, f := range bank {
		if f.Extract(inRange) == 1 {
			activeIn = i
		}
		if f.Extract(outOfRange) == 1 {
			activeOut = i
		}
	}
	if activeIn == -1 || activeOut == -1 {
		t.Fatal("expected exactly one active feature for both states")
	}
	if activeIn != activeOut {
		t.Fatalf("expected the far out-of-range state to clamp into the edge tile %d, got %d", activeIn, activeOut)
	}
}
