package feature

import "rlcore/metric"

// BinaryBall is 1 iff s lies within radius R of Center (by squared
// distance), else 0.
type BinaryBall[S any] struct {
	Metric metric.Metric[S]
	Center S
	R      float64
}

// NewBinaryBall returns a binary-ball feature of radius r around center.
func NewBinaryBall[S any](m metric.Metric[S], center S, r float64) BinaryBall[S] {
	return BinaryBall[S]{Metric: m, Center: center, R: r}
}

func (b BinaryBall[S]) Extract(s S) float64 {
	if b.Metric.Dist2(s, b.Center) <= b.R*b.R {
		return 1
	}
	return 0
}

func (b BinaryBall[S]) Clone() Feature[S] {
	return BinaryBall[S]{Metric: b.Metric, Center: b.Center, R: b.R}
}

// BinarySlice is 1 iff the D-th coordinate of s (interpreted as a
// numeric vector) lies within [Lo, Hi], else 0.
type BinarySlice struct {
	D      int
	Lo, Hi float64
}

// NewBinarySlice returns a binary-slice feature on dimension d.
func NewBinarySlice(d int, lo, hi float64) BinarySlice {
	return BinarySlice{D: d, Lo: lo, Hi: hi}
}

func (b BinarySlice) Extract(s []float64) float64 {
	v := s[b.D]
	if v >= b.Lo && v <= b.Hi {
		return 1
	}
	return 0
}

func (b BinarySlice) Clone() Feature[[]float64] {
	return BinarySlice{D: b.D, Lo: b.Lo, Hi: b.Hi}
}
