package baseline

import (
	"fmt"
	"slices"

	"github.com/forestrie/go-stabcount/stab"
)

// DefaultMaxCells caps the dense grid at 64Mi cells (256MiB of counts).
const DefaultMaxCells = 1 << 26

type GridOptions struct {
	maxCells uint64
}

type GridOption func(*GridOptions)

// WithMaxCells overrides DefaultMaxCells.
func WithMaxCells(cells uint64) GridOption {
	return func(o *GridOptions) {
		o.maxCells = cells
	}
}

// DenseGrid stores the count for every cell of the compressed coordinate grid.
//
// Cell (i, j) covers raw X in [xs[i], xs[i+1]) and raw Y in [ys[j], ys[j+1]).
type DenseGrid struct {
	lc    lifecycle
	opts  GridOptions
	rects []stab.Rectangle

	xs     stab.Coords
	ys     stab.Coords
	counts []int32
}

var _ stab.Counter = (*DenseGrid)(nil)

func NewDenseGrid(rects []stab.Rectangle, opts ...GridOption) *DenseGrid {
	g := &DenseGrid{
		lc:    lifecycle{empty: len(rects) == 0},
		opts:  GridOptions{maxCells: DefaultMaxCells},
		rects: slices.Clone(rects),
	}
	for _, o := range opts {
		o(&g.opts)
	}
	return g
}

// GridCells returns the number of cells a dense grid over rects needs.
func GridCells(rects []stab.Rectangle) uint64 {
	return uint64(len(stab.CompressX(rects))) * uint64(len(stab.CompressY(rects)))
}

func (g *DenseGrid) Build() error {
	return g.lc.build(g.build)
}

func (g *DenseGrid) build() error {
	if err := stab.ValidateRectangles(g.rects); err != nil {
		return err
	}
	if len(g.rects) == 0 {
		return nil
	}

	xs := stab.CompressX(g.rects)
	ys := stab.CompressY(g.rects)
	cells := uint64(len(xs)) * uint64(len(ys))
	if cells > g.opts.maxCells {
		return fmt.Errorf("%w: %d x %d cells, limit %d", ErrGridTooLarge, len(xs), len(ys), g.opts.maxCells)
	}

	cols := len(ys)
	counts := make([]int32, cells)

	// Corner deltas of a 2D difference array. x2+1 and y2+1 are always
	// present, so every corner lands inside the grid.
	for _, r := range g.rects {
		x0, x1 := xs.LowerIndex(r.LeftDown.X), xs.LowerIndex(r.RightUp.X+1)
		y0, y1 := ys.LowerIndex(r.LeftDown.Y), ys.LowerIndex(r.RightUp.Y+1)
		counts[x0*cols+y0]++
		counts[x1*cols+y0]--
		counts[x0*cols+y1]--
		counts[x1*cols+y1]++
	}

	for i := range xs {
		row := counts[i*cols : (i+1)*cols]
		for j := 1; j < cols; j++ {
			row[j] += row[j-1]
		}
		if i == 0 {
			continue
		}
		prev := counts[(i-1)*cols : i*cols]
		for j := range row {
			row[j] += prev[j]
		}
	}

	g.xs, g.ys, g.counts = xs, ys, counts
	g.rects = nil
	return nil
}

func (g *DenseGrid) QueryPoint(p stab.Point) (int, error) {
	ok, err := g.lc.ready()
	if !ok {
		return 0, err
	}
	if len(g.counts) == 0 || p.X < g.xs[0] || p.Y < g.ys[0] {
		return 0, nil
	}
	i := g.xs.FloorIndex(p.X)
	j := g.ys.FloorIndex(p.Y)
	return int(g.counts[i*len(g.ys)+j]), nil
}
