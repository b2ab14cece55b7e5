package feature

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/samplemv"
)

// offsetDiv bounds each tiling's random offset to within one
// (binWidth/offsetDiv) of the unshifted grid, so tilings stay close
// enough to overlap usefully.
const offsetDiv = 1.5

// TileCoder tile-codes a bounded real vector: several overlapping
// grids ("tilings") are laid over [minDims, maxDims], each offset by an
// independently sampled random jitter, and a state activates exactly
// one tile per tiling. TileCoder itself is not a Feature; call Bank to
// get one binary indicator Feature per (tiling, tile) cell.
type TileCoder struct {
	minDims, maxDims []float64
	bins             [][]int
	binWidths        [][]float64
	offsets          [][]float64
}

// NewTileCoder returns a TileCoder over the box [minDims, maxDims].
// bins[j] gives the number of tiles along each dimension for tiling j;
// every bins[j] must have the same length as minDims and maxDims.
func NewTileCoder(minDims, maxDims []float64, bins [][]int, seed uint64) *TileCoder {
	if len(minDims) != len(maxDims) {
		panic(fmt.Sprintf("feature: NewTileCoder: minDims length %d != maxDims length %d",
			len(minDims), len(maxDims)))
	}
	if len(bins) == 0 {
		panic("feature: NewTileCoder: at least one tiling is required")
	}

	dims := len(minDims)
	binWidths := make([][]float64, len(bins))
	var bounds []r1.Interval

	for j, tilingBins := range bins {
		if len(tilingBins) != dims {
			panic(fmt.Sprintf("feature: NewTileCoder: tiling %d has %d dims, want %d",
				j, len(tilingBins), dims))
		}
		binWidths[j] = make([]float64, dims)
		for i := 0; i < dims; i++ {
			width := (maxDims[i] - minDims[i]) / float64(tilingBins[i])
			binWidths[j][i] = width
			bounds = append(bounds, r1.Interval{Min: -width / offsetDiv, Max: width / offsetDiv})
		}
	}

	source := rand.NewSource(seed)
	uniform := distmv.NewUniform(bounds, source)
	sampler := samplemv.IID{Dist: uniform}

	// Each tiling draws its own jitter from the full joint distribution,
	// then we keep just the dims-length slice belonging to that tiling.
	offsets := make([][]float64, len(bins))
	for j := range bins {
		sample := mat.NewDense(1, len(bounds), nil)
		sampler.Sample(sample)
		row := mat.Row(nil, 0, sample)
		offsets[j] = row[j*dims : (j+1)*dims]
	}

	return &TileCoder{minDims: minDims, maxDims: maxDims, bins: bins, binWidths: binWidths, offsets: offsets}
}

// tileIndex returns the tile, along dimension i of tiling j, that s
// falls into after applying that tiling's offset, clipped to the
// tiling's bin range.
func (t *TileCoder) tileIndex(s []float64, tiling, dim int) int {
	shifted := s[dim] + t.offsets[tiling][dim]
	tile := math.Floor((shifted - t.minDims[dim]) / t.binWidths[tiling][dim])
	maxTile := float64(t.bins[tiling][dim] - 1)
	if tile < 0 {
		tile = 0
	} else if tile > maxTile {
		tile = maxTile
	}
	return int(tile)
}

// cellIndex returns the flattened (mixed-radix) cell index within
// tiling j that s activates.
func (t *TileCoder) cellIndex(s []float64, tiling int) int {
	index := 0
	for i := 0; i < len(t.bins[tiling]); i++ {
		index = index*t.bins[tiling][i] + t.tileIndex(s, tiling, i)
	}
	return index
}

func (t *TileCoder) cellsInTiling(tiling int) int {
	n := 1
	for _, b := range t.bins[tiling] {
		n *= b
	}
	return n
}

// Bank returns one binary indicator Feature per (tiling, cell) pair,
// across every tiling: exactly one feature per tiling is 1 for any
// given state, the rest are 0.
func (t *TileCoder) Bank() Bank[[]float64] {
	var bank Bank[[]float64]
	for j := range t.bins {
		for cell := 0; cell < t.cellsInTiling(j); cell++ {
			bank = append(bank, tileCell{tc: t, tiling: j, cell: cell})
		}
	}
	return bank
}

// tileCell is the indicator feature for one cell of one tiling.
type tileCell struct {
	tc     *TileCoder
	tiling int
	cell   int
}

func (c tileCell) Extract(s []float64) float64 {
	if c.tc.cellIndex(s, c.tiling) == c.cell {
		return 1
	}
	return 0
}

func (c tileCell) Clone() Feature[[]float64] { return c }
