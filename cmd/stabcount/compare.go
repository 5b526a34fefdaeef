package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/forestrie/go-stabcount/baseline"
	"github.com/forestrie/go-stabcount/stab"
	"github.com/forestrie/go-stabcount/stabtesting"
	"github.com/spf13/cobra"
)

// maxReportedMismatches limits the per point lines written for a failed
// comparison.
const maxReportedMismatches = 10

func (a *app) newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every implementation over a test case and report disagreements and timings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := ReadCase(cmd.InOrStdin())
			if err != nil {
				return err
			}
			return a.runCompare(c, cmd.OutOrStdout())
		},
	}
	cmd.Flags().Int(flagPoints, 0, "replace the input points with this many uniformly generated points")
	cmd.Flags().Uint64(flagSeed, 42, "seed for generated points")
	cmd.Flags().Uint64(flagMaxCells, baseline.DefaultMaxCells, "cell limit of the grid implementation")
	return cmd
}

type timing struct {
	impl  string
	build time.Duration
	query time.Duration
}

func (a *app) runCompare(c Case, out io.Writer) error {
	points := c.Points
	if a.cfg.Points > 0 {
		minX, maxX, minY, maxY := bounds(c.Rectangles)
		points = stabtesting.UniformPoints(a.cfg.Points, minX, maxX, minY, maxY, a.cfg.Seed, a.cfg.Seed+1)
	}

	// The linear scan is the reference every other answer is checked against.
	impls := []string{implLinear, implTree, implGrid}
	var want []int
	var timings []timing
	mismatches := 0

	for _, impl := range impls {
		counter, err := a.newCounter(impl, c.Rectangles)
		if err != nil {
			return err
		}

		start := time.Now()
		err = counter.Build()
		built := time.Since(start)
		if errors.Is(err, baseline.ErrGridTooLarge) {
			a.log.Infof("compare: skipping %s: %v", impl, err)
			continue
		}
		if err != nil {
			return err
		}

		start = time.Now()
		got, err := queryAll(counter, points)
		if err != nil {
			return err
		}
		timings = append(timings, timing{impl: impl, build: built, query: time.Since(start)})

		if want == nil {
			want = got
			continue
		}
		for i := range points {
			if got[i] == want[i] {
				continue
			}
			if mismatches < maxReportedMismatches {
				fmt.Fprintf(out, "mismatch %s (%d,%d): got %d, want %d\n",
					impl, points[i].X, points[i].Y, got[i], want[i])
			}
			mismatches++
		}
	}

	for _, tm := range timings {
		perQuery := time.Duration(0)
		if len(points) > 0 {
			perQuery = tm.query / time.Duration(len(points))
		}
		fmt.Fprintf(out, "%-6s rectangles=%d points=%d build=%v query=%v per-query=%v\n",
			tm.impl, len(c.Rectangles), len(points), tm.build, tm.query, perQuery)
	}
	if mismatches > 0 {
		return fmt.Errorf("%w: %d answers differ", ErrMismatch, mismatches)
	}
	return nil
}

// bounds returns the rectangle bounding box widened by one on every side, so
// generated points also fall just outside every rectangle.
func bounds(rects []stab.Rectangle) (minX, maxX, minY, maxY int64) {
	if len(rects) == 0 {
		return -1, 1, -1, 1
	}
	minX, minY = int64(math.MaxInt64), int64(math.MaxInt64)
	maxX, maxY = int64(math.MinInt64), int64(math.MinInt64)
	for _, r := range rects {
		minX = min(minX, r.LeftDown.X)
		minY = min(minY, r.LeftDown.Y)
		maxX = max(maxX, r.RightUp.X)
		maxY = max(maxY, r.RightUp.Y)
	}
	minX, maxX = widen(minX, maxX)
	minY, maxY = widen(minY, maxY)
	return minX, maxX, minY, maxY
}

func widen(lo, hi int64) (int64, int64) {
	if lo > math.MinInt64 {
		lo--
	}
	if hi < math.MaxInt64 {
		hi++
	}
	return lo, hi
}
