package stab_test

import (
	"fmt"
	"testing"

	"github.com/forestrie/go-stabcount/baseline"
	"github.com/forestrie/go-stabcount/stab"
	"github.com/forestrie/go-stabcount/stabtesting"
)

const (
	benchXSeed = 42
	benchYSeed = 13
)

type counterFactory func(rects []stab.Rectangle) stab.Counter

var benchCounters = []struct {
	name  string
	newFn counterFactory
	sizes []int
}{
	{
		name:  "tree",
		newFn: func(r []stab.Rectangle) stab.Counter { return stab.NewIndex(r) },
		sizes: []int{10, 100, 1000, 10000, 100000},
	},
	{
		name:  "linear",
		newFn: func(r []stab.Rectangle) stab.Counter { return baseline.NewLinearScan(r) },
		sizes: []int{10, 100, 1000, 10000, 100000},
	},
	{
		// The grid is quadratic in the rectangle count.
		name:  "grid",
		newFn: func(r []stab.Rectangle) stab.Counter { return baseline.NewDenseGrid(r) },
		sizes: []int{10, 100, 1000, 2000},
	},
}

func BenchmarkBuild(b *testing.B) {
	for _, bc := range benchCounters {
		for _, n := range bc.sizes {
			b.Run(fmt.Sprintf("%s/rectangles=%d", bc.name, n), func(b *testing.B) {
				rects := stabtesting.NestedRectangles(n)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					c := bc.newFn(rects)
					if err := c.Build(); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkPerRequest(b *testing.B) {
	for _, bc := range benchCounters {
		for _, n := range bc.sizes {
			b.Run(fmt.Sprintf("%s/rectangles=%d", bc.name, n), func(b *testing.B) {
				hi := int64(n) * 20
				points := stabtesting.UniformPoints(n, 0, hi, 0, hi, benchXSeed, benchYSeed)
				c := bc.newFn(stabtesting.NestedRectangles(n))
				if err := c.Build(); err != nil {
					b.Fatal(err)
				}
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := c.QueryPoint(points[i%len(points)]); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
