package stat

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func TestMean(t *testing.T) {
	if got := Mean([]float64{1, 2, 3, 4}); got != 2.5 {
		t.Errorf("Mean() = %v, want 2.5", got)
	}
}

func TestVariance(t *testing.T) {
	got := Variance([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if math.Abs(got-4) > 1e-9 {
		t.Errorf("Variance() = %v, want 4", got)
	}
}

func TestNormalizeMeanZeroVarianceOne(t *testing.T) {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	norm := Normalize(x)
	mean, variance := MeanVariance(norm)
	if math.Abs(mean) > 1e-9 {
		t.Errorf("Normalize() mean = %v, want ~0", mean)
	}
	if math.Abs(variance-1) > 1e-9 {
		t.Errorf("Normalize() variance = %v, want ~1", variance)
	}
}

func TestNormalizeConstantSequence(t *testing.T) {
	norm := Normalize([]float64{5, 5, 5})
	for _, v := range norm {
		if v != 0 {
			t.Errorf("Normalize(constant) = %v, want all 0", norm)
		}
	}
}

func TestShufflePreservesElements(t *testing.T) {
	x := []int{1, 2, 3, 4, 5}
	orig := append([]int{}, x...)
	Shuffle(rand.New(rand.NewSource(1)), x)

	counts := make(map[int]int)
	for _, v := range x {
		counts[v]++
	}
	for _, v := range orig {
		counts[v]--
	}
	for _, c := range counts {
		if c != 0 {
			t.Errorf("Shuffle changed the multiset of elements: %v -> %v", orig, x)
		}
	}
}
