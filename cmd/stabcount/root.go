package main

import (
	"errors"
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-stabcount/baseline"
	"github.com/forestrie/go-stabcount/stab"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	ErrUnknownImpl  = errors.New("stabcount: unknown implementation")
	ErrUnknownStore = errors.New("stabcount: unknown snapshot store")
	ErrMismatch     = errors.New("stabcount: implementations disagree")
)

const serviceName = "stabcount"

// app carries the state shared by the sub commands of one invocation.
type app struct {
	v   *viper.Viper
	cfg Config
	log logger.Logger
}

func newApp() *app {
	return &app{v: newViper()}
}

// close flushes the logger if a command initialized it.
func (a *app) close() {
	if a.log != nil {
		logger.OnExit()
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           serviceName,
		Short:         "Count the rectangles containing each query point",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.v, cmd)
			if err != nil {
				return err
			}
			a.cfg = cfg
			logger.New(cfg.LogLevel)
			a.log = logger.Sugar.WithServiceName(serviceName)
			return nil
		},
	}
	root.PersistentFlags().String(flagLogLevel, "INFO", "log level")

	root.AddCommand(
		a.newCountCmd(),
		a.newCompareCmd(),
		a.newSnapshotCmd(),
		a.newGenerateCmd(),
	)
	return root
}

// newCounter selects a Counter implementation by name.
func (a *app) newCounter(impl string, rects []stab.Rectangle) (stab.Counter, error) {
	switch impl {
	case implTree, "":
		return stab.NewIndex(rects, stab.WithLogger(a.log)), nil
	case implLinear:
		return baseline.NewLinearScan(rects), nil
	case implGrid:
		var opts []baseline.GridOption
		if a.cfg.MaxCells > 0 {
			opts = append(opts, baseline.WithMaxCells(a.cfg.MaxCells))
		}
		return baseline.NewDenseGrid(rects, opts...), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownImpl, impl)
}
