package stab

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBuild(t *testing.T, rects ...Rectangle) *Index {
	t.Helper()
	ix, err := Build(rects)
	require.NoError(t, err)
	return ix
}

func mustQuery(t *testing.T, c Counter, x, y int64) int {
	t.Helper()
	n, err := c.QueryPoint(Point{X: x, Y: y})
	require.NoError(t, err)
	return n
}

func TestIndexSingleRectangle(t *testing.T) {
	ix := mustBuild(t, NewRectangle(0, 0, 10, 10))

	assert.Equal(t, 1, mustQuery(t, ix, 5, 5))
	assert.Equal(t, 1, mustQuery(t, ix, 10, 10), "inclusive corner")
	assert.Equal(t, 1, mustQuery(t, ix, 0, 0), "inclusive corner")
	assert.Equal(t, 1, mustQuery(t, ix, 0, 7), "inclusive edge")
	assert.Equal(t, 0, mustQuery(t, ix, 11, 0))
	assert.Equal(t, 0, mustQuery(t, ix, -1, 5))
	assert.Equal(t, 0, mustQuery(t, ix, 5, 11))
	assert.Equal(t, 0, mustQuery(t, ix, 5, -1))
	assert.Equal(t, 0, mustQuery(t, ix, math.MaxInt64, math.MaxInt64))
	assert.Equal(t, 0, mustQuery(t, ix, math.MinInt64, 5))
}

func TestIndexOverlappingRectangles(t *testing.T) {
	ix := mustBuild(t,
		NewRectangle(0, 0, 10, 10),
		NewRectangle(5, 5, 15, 15),
	)

	assert.Equal(t, 2, mustQuery(t, ix, 7, 7))
	assert.Equal(t, 1, mustQuery(t, ix, 2, 2))
	assert.Equal(t, 1, mustQuery(t, ix, 12, 12))
	assert.Equal(t, 2, mustQuery(t, ix, 10, 5))
	assert.Equal(t, 2, mustQuery(t, ix, 5, 10))
	assert.Equal(t, 0, mustQuery(t, ix, 12, 2))
	assert.Equal(t, 0, mustQuery(t, ix, 16, 16))

	s := ix.Stats()
	assert.Equal(t, 2, s.Rectangles)
	assert.Equal(t, 6, s.XCoords)
	assert.Equal(t, 6, s.YCoords)
	assert.Equal(t, 4, s.Versions)
}

func TestIndexEmptyNeedsNoBuild(t *testing.T) {
	ix := NewIndex(nil)
	assert.Equal(t, 0, mustQuery(t, ix, 0, 0))
	assert.Equal(t, 0, mustQuery(t, ix, -7, 3))

	require.NoError(t, ix.Build())
	assert.Equal(t, 0, mustQuery(t, ix, 0, 0))
	assert.Equal(t, Stats{}, ix.Stats())
}

func TestIndexQueryBeforeBuild(t *testing.T) {
	ix := NewIndex([]Rectangle{NewRectangle(0, 0, 1, 1)})
	_, err := ix.QueryPoint(Point{})
	require.ErrorIs(t, err, ErrNotBuilt)
	require.False(t, ix.Built())
}

func TestIndexRejectsRebuild(t *testing.T) {
	ix := mustBuild(t, NewRectangle(0, 0, 1, 1))
	require.ErrorIs(t, ix.Build(), ErrAlreadyBuilt)
	assert.Equal(t, 1, mustQuery(t, ix, 1, 1))
}

func TestIndexRejectsMalformedRectangles(t *testing.T) {
	tests := []struct {
		name string
		rect Rectangle
	}{
		{name: "x reversed", rect: NewRectangle(5, 0, 4, 1)},
		{name: "y reversed", rect: NewRectangle(0, 5, 1, 4)},
		{name: "x upper bound overflows", rect: NewRectangle(0, 0, math.MaxInt64, 1)},
		{name: "y upper bound overflows", rect: NewRectangle(0, 0, 1, math.MaxInt64)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix := NewIndex([]Rectangle{NewRectangle(0, 0, 1, 1), tt.rect})
			err := ix.Build()
			require.ErrorIs(t, err, ErrInvalidRectangle)
			require.Contains(t, err.Error(), "rectangle 1")

			// The failed build leaves nothing behind.
			require.False(t, ix.Built())
			_, err = ix.QueryPoint(Point{})
			require.ErrorIs(t, err, ErrNotBuilt)
		})
	}
}

func TestIndexDegenerateRectangles(t *testing.T) {
	ix := mustBuild(t,
		NewRectangle(3, 3, 3, 3),
		NewRectangle(3, 0, 3, 10),
		NewRectangle(-5, 3, 8, 3),
	)
	assert.Equal(t, 3, mustQuery(t, ix, 3, 3))
	assert.Equal(t, 1, mustQuery(t, ix, 3, 4))
	assert.Equal(t, 1, mustQuery(t, ix, 4, 3))
	assert.Equal(t, 0, mustQuery(t, ix, 4, 4))
	assert.Equal(t, 1, mustQuery(t, ix, -5, 3))
	assert.Equal(t, 0, mustQuery(t, ix, -6, 3))
}

func TestIndexDuplicateRectanglesKeepMultiplicity(t *testing.T) {
	r := NewRectangle(-2, -2, 2, 2)
	ix := mustBuild(t, r, r, r)
	assert.Equal(t, 3, mustQuery(t, ix, 0, 0))
	assert.Equal(t, 3, mustQuery(t, ix, 2, -2))
	assert.Equal(t, 0, mustQuery(t, ix, 3, 0))
}

// A closing x2+1 that lands on another rectangle's x1 must not depend on the
// order the two events are applied in.
func TestIndexTouchingBoundariesIgnoreInputOrder(t *testing.T) {
	a := NewRectangle(0, 0, 4, 4)
	b := NewRectangle(5, 0, 9, 9)
	c := NewRectangle(5, 2, 5, 2)

	orders := [][]Rectangle{{a, b, c}, {b, a, c}, {c, b, a}, {c, a, b}}
	for _, rects := range orders {
		ix := mustBuild(t, rects...)
		assert.Equal(t, 1, mustQuery(t, ix, 4, 4))
		assert.Equal(t, 2, mustQuery(t, ix, 5, 2))
		assert.Equal(t, 1, mustQuery(t, ix, 5, 4))
		assert.Equal(t, 0, mustQuery(t, ix, 4, 5))
		assert.Equal(t, 1, mustQuery(t, ix, 9, 9))
		assert.Equal(t, 0, mustQuery(t, ix, 10, 9))
	}
}

func TestIndexIdempotentAndAdditive(t *testing.T) {
	base := []Rectangle{
		NewRectangle(0, 0, 10, 10),
		NewRectangle(5, 5, 15, 15),
		NewRectangle(-3, 8, 2, 20),
	}
	extra := NewRectangle(1, 1, 6, 9)

	before := mustBuild(t, base...)
	after := mustBuild(t, append(base[:len(base):len(base)], extra)...)

	for x := int64(-5); x <= 17; x++ {
		for y := int64(-5); y <= 22; y++ {
			p := Point{X: x, Y: y}
			n1 := mustQuery(t, before, x, y)
			require.Equal(t, n1, mustQuery(t, before, x, y), "idempotence at %v", p)

			want := n1
			if extra.Contains(p) {
				want++
			}
			require.Equal(t, want, mustQuery(t, after, x, y), "additivity at %v", p)
		}
	}
}

func TestIndexConcurrentReaders(t *testing.T) {
	ix := mustBuild(t,
		NewRectangle(0, 0, 10, 10),
		NewRectangle(5, 5, 15, 15),
	)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				n, err := ix.QueryPoint(Point{X: 7, Y: 7})
				if err != nil || n != 2 {
					t.Errorf("concurrent query: n=%d, err=%v", n, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestIndexCopiesRectangles(t *testing.T) {
	rects := []Rectangle{NewRectangle(0, 0, 10, 10)}
	ix := NewIndex(rects)
	rects[0] = NewRectangle(100, 100, 101, 101)
	require.NoError(t, ix.Build())
	assert.Equal(t, 1, mustQuery(t, ix, 5, 5))
}

func TestValidateRectanglesNamesPosition(t *testing.T) {
	err := ValidateRectangles([]Rectangle{
		NewRectangle(0, 0, 1, 1),
		NewRectangle(0, 0, 1, 1),
		NewRectangle(2, 0, 1, 1),
	})
	require.ErrorIs(t, err, ErrInvalidRectangle)
	require.Contains(t, err.Error(), "rectangle 2")
	require.NoError(t, ValidateRectangles(nil))
}
