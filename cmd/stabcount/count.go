package main

import (
	"context"
	"io"

	"github.com/forestrie/go-stabcount/baseline"
	"github.com/forestrie/go-stabcount/stab"
	"github.com/spf13/cobra"
)

func (a *app) newCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Read a test case from stdin and write one count per point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCount(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().String(flagImpl, implTree, "implementation: tree, linear or grid")
	cmd.Flags().Uint64(flagMaxCells, baseline.DefaultMaxCells, "cell limit of the grid implementation")
	cmd.Flags().String(flagSnapshot, "", "answer from the named stored snapshot; stdin then holds only the points")
	addStoreFlags(cmd)
	return cmd
}

func (a *app) runCount(ctx context.Context, in io.Reader, out io.Writer) error {
	var counter stab.Counter
	var points []stab.Point

	if a.cfg.Snapshot != "" {
		ix, err := a.loadSnapshot(ctx, a.cfg.Snapshot)
		if err != nil {
			return err
		}
		if points, err = ReadPoints(in); err != nil {
			return err
		}
		counter = ix
	} else {
		c, err := ReadCase(in)
		if err != nil {
			return err
		}
		if counter, err = a.newCounter(a.cfg.Impl, c.Rectangles); err != nil {
			return err
		}
		if err = counter.Build(); err != nil {
			return err
		}
		points = c.Points
	}

	answers, err := queryAll(counter, points)
	if err != nil {
		return err
	}
	return WriteAnswers(out, answers)
}

func queryAll(c stab.Counter, points []stab.Point) ([]int, error) {
	answers := make([]int, len(points))
	for i, p := range points {
		n, err := c.QueryPoint(p)
		if err != nil {
			return nil, err
		}
		answers[i] = n
	}
	return answers, nil
}
