package stab

import (
	"cmp"
	"slices"
)

// Coords is a strictly increasing sequence of raw coordinates. A value's
// position in the sequence is its compressed coordinate.
type Coords []int64

// CompressX collects {x1, x2, x2+1} for every rectangle, sorted and deduplicated.
func CompressX(rects []Rectangle) Coords {
	xs := make(Coords, 0, 3*len(rects))
	for _, r := range rects {
		xs = append(xs, r.LeftDown.X, r.RightUp.X, r.RightUp.X+1)
	}
	return compact(xs)
}

// CompressY collects {y1, y2, y2+1} for every rectangle, sorted and deduplicated.
func CompressY(rects []Rectangle) Coords {
	ys := make(Coords, 0, 3*len(rects))
	for _, r := range rects {
		ys = append(ys, r.LeftDown.Y, r.RightUp.Y, r.RightUp.Y+1)
	}
	return compact(ys)
}

func compact(cs Coords) Coords {
	slices.Sort(cs)
	return slices.Clip(slices.Compact(cs))
}

// LowerIndex returns the index of the first entry >= v.
//
// Use it for values known to be present; for those it is the exact position.
func (c Coords) LowerIndex(v int64) int {
	i, _ := slices.BinarySearch(c, v)
	return i
}

// FloorIndex returns the index of the last entry <= v, or -1 if every entry is
// greater than v.
func (c Coords) FloorIndex(v int64) int {
	return floorIndex(c, v)
}

// Strict reports whether c is strictly increasing.
func (c Coords) Strict() bool {
	return strictlyIncreasing(c)
}

func floorIndex[T cmp.Ordered](items []T, v T) int {
	i, found := slices.BinarySearch(items, v)
	if found {
		return i
	}
	return i - 1
}

func strictlyIncreasing[T cmp.Ordered](items []T) bool {
	for i := 1; i < len(items); i++ {
		if items[i-1] >= items[i] {
			return false
		}
	}
	return true
}
