package stabtesting

import (
	"testing"

	"github.com/forestrie/go-stabcount/stab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNestedRectangles(t *testing.T) {
	rects := NestedRectangles(3)
	require.Equal(t, []stab.Rectangle{
		stab.NewRectangle(0, 0, 60, 60),
		stab.NewRectangle(10, 10, 50, 50),
		stab.NewRectangle(20, 20, 40, 40),
	}, rects)
	require.NoError(t, stab.ValidateRectangles(rects))
}

func TestUniformPointsRepeatable(t *testing.T) {
	a := UniformPoints(50, 0, 100, -20, 20, 42, 13)
	b := UniformPoints(50, 0, 100, -20, 20, 42, 13)
	require.Equal(t, a, b)
	require.Len(t, a, 50)

	for _, p := range a {
		assert.GreaterOrEqual(t, p.X, int64(0))
		assert.LessOrEqual(t, p.X, int64(100))
		assert.GreaterOrEqual(t, p.Y, int64(-20))
		assert.LessOrEqual(t, p.Y, int64(20))
	}

	// The X stream depends only on the X seed.
	c := UniformPoints(50, 0, 100, -20, 20, 42, 7)
	for i := range a {
		assert.Equal(t, a[i].X, c[i].X)
	}
}

func TestUniformPointsSingleValueRange(t *testing.T) {
	for _, p := range UniformPoints(5, 3, 3, 9, 9, 1, 2) {
		assert.Equal(t, stab.Point{X: 3, Y: 9}, p)
	}
}

func TestRandomRectanglesValid(t *testing.T) {
	rects := RandomRectangles(NewRand(1), 200, 4)
	require.Len(t, rects, 200)
	require.NoError(t, stab.ValidateRectangles(rects))
	for _, r := range rects {
		assert.GreaterOrEqual(t, r.LeftDown.X, int64(-4))
		assert.LessOrEqual(t, r.RightUp.Y, int64(4))
	}
}

func TestGridPoints(t *testing.T) {
	points := GridPoints(-1, 1, 0, 1)
	require.Len(t, points, 6)
	assert.Equal(t, stab.Point{X: -1, Y: 0}, points[0])
	assert.Equal(t, stab.Point{X: 1, Y: 1}, points[5])
}
