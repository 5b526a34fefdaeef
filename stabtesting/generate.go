package stabtesting

import (
	"math/rand/v2"

	"github.com/forestrie/go-stabcount/stab"
)

// NestedRectangles returns n concentric squares. Rectangle i spans
// [10i, 10(2n-i)] on both axes, so the point (10n, 10n) is inside all of them.
func NestedRectangles(n int) []stab.Rectangle {
	rects := make([]stab.Rectangle, 0, n)
	for i := 0; i < n; i++ {
		lo := int64(10 * i)
		hi := int64(10 * (2*n - i))
		rects = append(rects, stab.NewRectangle(lo, lo, hi, hi))
	}
	return rects
}

// UniformPoints draws n points uniformly from [minX, maxX] x [minY, maxY].
// The X and Y streams are seeded independently.
func UniformPoints(n int, minX, maxX, minY, maxY int64, xSeed, ySeed uint64) []stab.Point {
	xr := rand.New(rand.NewPCG(xSeed, xSeed))
	yr := rand.New(rand.NewPCG(ySeed, ySeed))

	points := make([]stab.Point, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, stab.Point{
			X: between(xr, minX, maxX),
			Y: between(yr, minY, maxY),
		})
	}
	return points
}

// RandomRectangles draws n valid rectangles with corners in [-span, span].
// A small span forces shared and touching boundaries.
func RandomRectangles(rng *rand.Rand, n int, span int64) []stab.Rectangle {
	rects := make([]stab.Rectangle, 0, n)
	for i := 0; i < n; i++ {
		x1, x2 := between(rng, -span, span), between(rng, -span, span)
		y1, y2 := between(rng, -span, span), between(rng, -span, span)
		rects = append(rects, stab.NewRectangle(min(x1, x2), min(y1, y2), max(x1, x2), max(y1, y2)))
	}
	return rects
}

// GridPoints returns every integer point of [minX, maxX] x [minY, maxY].
func GridPoints(minX, maxX, minY, maxY int64) []stab.Point {
	var points []stab.Point
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			points = append(points, stab.Point{X: x, Y: y})
		}
	}
	return points
}

// NewRand returns a deterministic generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// between draws from [lo, hi]. The width is computed in uint64 so the full
// int64 range does not overflow.
func between(rng *rand.Rand, lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	width := uint64(hi-lo) + 1
	if width == 0 {
		return int64(rng.Uint64())
	}
	return lo + int64(rng.Uint64N(width))
}
