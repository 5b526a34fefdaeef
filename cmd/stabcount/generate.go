package main

import (
	"fmt"
	"io"

	"github.com/forestrie/go-stabcount/stab"
	"github.com/forestrie/go-stabcount/stabtesting"
	"github.com/spf13/cobra"
)

func (a *app) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a generated test case in the stdin format",
		Long: `With --span 0 the rectangles are nested squares and the points are drawn
from [0, 20n] on both axes. Otherwise rectangles and points are drawn
uniformly from [-span, span].`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd.OutOrStdout())
		},
	}
	cmd.Flags().Int(flagRectangles, 100, "number of rectangles")
	cmd.Flags().Int(flagPoints, 100, "number of points")
	cmd.Flags().Uint64(flagSeed, 42, "generator seed")
	cmd.Flags().Int64(flagSpan, 0, "coordinate span of random rectangles, 0 for nested squares")
	return cmd
}

func (a *app) runGenerate(out io.Writer) error {
	if a.cfg.Rectangles < 0 || a.cfg.Points < 0 {
		return fmt.Errorf("%w: negative rectangle or point count", ErrBadInput)
	}
	var c Case
	seed := a.cfg.Seed
	if a.cfg.Span <= 0 {
		hi := int64(a.cfg.Rectangles) * 20
		c = Case{
			Rectangles: stabtesting.NestedRectangles(a.cfg.Rectangles),
			Points:     stabtesting.UniformPoints(a.cfg.Points, 0, hi, 0, hi, seed, seed+1),
		}
	} else {
		span := a.cfg.Span
		c = Case{
			Rectangles: stabtesting.RandomRectangles(stabtesting.NewRand(seed), a.cfg.Rectangles, span),
			Points:     stabtesting.UniformPoints(a.cfg.Points, -span-1, span+1, -span-1, span+1, seed, seed+1),
		}
	}
	if err := stab.ValidateRectangles(c.Rectangles); err != nil {
		return err
	}
	a.log.Debugf("generated: rectangles=%d, points=%d, seed=%d", len(c.Rectangles), len(c.Points), seed)
	return WriteCase(out, c)
}
