package feature

// Coordinate extracts the i-th coordinate of a state interpreted as a
// numeric vector.
type Coordinate struct {
	I int
}

// NewCoordinate returns a Coordinate feature reading index i.
func NewCoordinate(i int) Coordinate {
	return Coordinate{I: i}
}

func (c Coordinate) Extract(s []float64) float64 {
	return s[c.I]
}

func (c Coordinate) Clone() Feature[[]float64] {
	return Coordinate{I: c.I}
}
