package baseline

import (
	"sync/atomic"

	"github.com/forestrie/go-stabcount/stab"
)

const (
	stateEmpty int32 = iota
	stateBuilding
	stateBuilt
)

// lifecycle enforces the Empty -> Building -> Built transitions shared by the
// baselines.
type lifecycle struct {
	state atomic.Int32
	empty bool
}

// build runs fn once. A failing fn returns the lifecycle to Empty.
func (l *lifecycle) build(fn func() error) error {
	if !l.state.CompareAndSwap(stateEmpty, stateBuilding) {
		if l.state.Load() == stateBuilding {
			return stab.ErrBuildInProgress
		}
		return stab.ErrAlreadyBuilt
	}
	if err := fn(); err != nil {
		l.state.Store(stateEmpty)
		return err
	}
	l.state.Store(stateBuilt)
	return nil
}

// ready reports whether queries may be answered from built state. ok=false
// with a nil error means the rectangle set is empty and the answer is 0.
func (l *lifecycle) ready() (ok bool, err error) {
	if l.state.Load() == stateBuilt {
		return true, nil
	}
	if l.empty {
		return false, nil
	}
	return false, stab.ErrNotBuilt
}
