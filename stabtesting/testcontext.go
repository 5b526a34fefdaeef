package stabtesting

import (
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-stabcount/stab"
	"github.com/stretchr/testify/require"
)

type TestContext struct {
	Log logger.Logger
	T   *testing.T
}

type TestConfig struct {
	// Seed fixes the rectangle and point generators so runs are repeatable.
	Seed            uint64
	TestLabelPrefix string
	LogLevel        string // defaults to INFO
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T: t,
	}
	level := cfg.LogLevel
	if level == "" {
		level = "INFO"
	}
	logger.New(level)
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// BuildAll builds every counter, failing the test on the first error.
func (c *TestContext) BuildAll(counters ...stab.Counter) {
	for i, ctr := range counters {
		require.NoError(c.T, ctr.Build(), "counter %d", i)
	}
}

// RequireAgreement fails the test at the first point where got differs from
// want. Both counters must already be built.
func RequireAgreement(t *testing.T, want, got stab.Counter, points []stab.Point) {
	t.Helper()
	for _, p := range points {
		w, err := want.QueryPoint(p)
		require.NoError(t, err)
		g, err := got.QueryPoint(p)
		require.NoError(t, err)
		require.Equal(t, w, g, "count at (%d,%d)", p.X, p.Y)
	}
}
