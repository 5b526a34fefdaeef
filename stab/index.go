package stab

import (
	"fmt"
	"slices"
	"sync/atomic"
)

const (
	stateEmpty int32 = iota
	stateBuilding
	stateBuilt
)

// Index is the persistent segment tree stabbing counter.
//
// It is not safe to call Build concurrently with QueryPoint. Once Build has
// returned nil, QueryPoint may be called from any number of goroutines.
type Index struct {
	opts  Options
	state atomic.Int32

	// empty is fixed at construction so unbuilt queries need not read rects.
	empty bool
	rects []Rectangle

	rectangleCount int
	xs             Coords
	ys             Coords
	tree           *Tree
	roots          []Ref
	rootXIdxs      []int
}

var _ Counter = (*Index)(nil)

// NewIndex binds the rectangle set. The slice is copied.
func NewIndex(rects []Rectangle, opts ...Option) *Index {
	ix := &Index{
		rects: slices.Clone(rects),
		empty: len(rects) == 0,
	}
	for _, o := range opts {
		o(&ix.opts)
	}
	return ix
}

// Build constructs the index and makes it read-only.
//
// Build may succeed only once. A failed Build leaves the index empty.
func (ix *Index) Build() error {
	if !ix.state.CompareAndSwap(stateEmpty, stateBuilding) {
		if ix.state.Load() == stateBuilding {
			return ErrBuildInProgress
		}
		return ErrAlreadyBuilt
	}
	if err := ix.build(); err != nil {
		ix.reset()
		ix.state.Store(stateEmpty)
		return err
	}
	ix.rects = nil
	ix.state.Store(stateBuilt)
	return nil
}

// Build is a convenience for NewIndex followed by Index.Build.
func Build(rects []Rectangle, opts ...Option) (*Index, error) {
	ix := NewIndex(rects, opts...)
	if err := ix.Build(); err != nil {
		return nil, err
	}
	return ix, nil
}

func (ix *Index) build() error {
	if err := ValidateRectangles(ix.rects); err != nil {
		return err
	}
	ix.rectangleCount = len(ix.rects)
	if ix.rectangleCount == 0 {
		ix.logStats()
		return nil
	}

	ix.xs = CompressX(ix.rects)
	ix.ys = CompressY(ix.rects)
	events := SweepEvents(ix.rects, ix.xs, ix.ys)

	capHint := ix.opts.capacityHint
	if capHint == 0 {
		capHint = recordCapacityHint(ix.rectangleCount, len(ix.ys))
	}
	ix.tree = NewTree(len(ix.ys), capHint)

	root, err := ix.tree.Empty()
	if err != nil {
		return err
	}

	prevXIdx := events[0].XIdx
	for _, ev := range events {
		if ev.XIdx != prevXIdx {
			// The current root is complete for every event at prevXIdx.
			ix.roots = append(ix.roots, root)
			ix.rootXIdxs = append(ix.rootXIdxs, prevXIdx)
			prevXIdx = ev.XIdx
		}
		root, err = ix.tree.Add(root, ev.YStart, ev.YEnd, ev.Delta())
		if err != nil {
			return fmt.Errorf("event at x index %d: %w", ev.XIdx, err)
		}
	}
	ix.roots = append(ix.roots, root)
	ix.rootXIdxs = append(ix.rootXIdxs, prevXIdx)

	ix.logStats()
	return nil
}

func (ix *Index) reset() {
	ix.rectangleCount = 0
	ix.xs = nil
	ix.ys = nil
	ix.tree = nil
	ix.roots = nil
	ix.rootXIdxs = nil
}

func (ix *Index) logStats() {
	if ix.opts.log == nil {
		return
	}
	s := ix.stats()
	ix.opts.log.Debugf(
		"stab index built: rectangles=%d, xs=%d, ys=%d, versions=%d, records=%d",
		s.Rectangles, s.XCoords, s.YCoords, s.Versions, s.Records)
}

// QueryPoint returns the number of rectangles containing p.
func (ix *Index) QueryPoint(p Point) (int, error) {
	if ix.state.Load() != stateBuilt {
		if ix.empty {
			return 0, nil
		}
		return 0, ErrNotBuilt
	}
	return ix.count(p), nil
}

func (ix *Index) count(p Point) int {
	if len(ix.roots) == 0 {
		return 0
	}
	// The maxima need no check: x2+1 and y2+1 map to versions and leaves
	// that no rectangle covers.
	if p.X < ix.xs[0] || p.Y < ix.ys[0] {
		return 0
	}
	xIdx := ix.xs.FloorIndex(p.X)
	yIdx := ix.ys.FloorIndex(p.Y)
	version := floorIndex(ix.rootXIdxs, xIdx)
	if version < 0 {
		return 0
	}
	return ix.tree.TotalAt(ix.roots[version], yIdx)
}

// Built reports whether Build has completed successfully.
func (ix *Index) Built() bool {
	return ix.state.Load() == stateBuilt
}

// Stats describes the size of a built index.
type Stats struct {
	Rectangles int
	XCoords    int
	YCoords    int
	Versions   int
	Records    int
}

// Stats returns the size of the index. It is all zero before Build.
func (ix *Index) Stats() Stats {
	if !ix.Built() {
		return Stats{}
	}
	return ix.stats()
}

func (ix *Index) stats() Stats {
	s := Stats{
		Rectangles: ix.rectangleCount,
		XCoords:    len(ix.xs),
		YCoords:    len(ix.ys),
		Versions:   len(ix.roots),
	}
	if ix.tree != nil {
		s.Records = ix.tree.RecordCount()
	}
	return s
}
