package baseline

import (
	"slices"

	"github.com/forestrie/go-stabcount/stab"
)

// LinearScan counts by testing every rectangle.
type LinearScan struct {
	lc    lifecycle
	rects []stab.Rectangle
}

var _ stab.Counter = (*LinearScan)(nil)

func NewLinearScan(rects []stab.Rectangle) *LinearScan {
	return &LinearScan{
		lc:    lifecycle{empty: len(rects) == 0},
		rects: slices.Clone(rects),
	}
}

// Build only validates the rectangles.
func (s *LinearScan) Build() error {
	return s.lc.build(func() error {
		return stab.ValidateRectangles(s.rects)
	})
}

func (s *LinearScan) QueryPoint(p stab.Point) (int, error) {
	ok, err := s.lc.ready()
	if !ok {
		return 0, err
	}
	n := 0
	for _, r := range s.rects {
		if r.Contains(p) {
			n++
		}
	}
	return n, nil
}
