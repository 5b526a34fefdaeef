package stab

import (
	"fmt"
	"slices"
)

// State is the complete, exportable content of a built Index.
//
// Xs and Ys are the compressed coordinates, Records the tree arena in
// emission order, and Roots[k] the version anchored at compressed X index
// RootXIdxs[k]. An index over no rectangles has an all-empty State.
type State struct {
	Rectangles int
	Xs         Coords
	Ys         Coords
	Records    []NodeRecord
	Roots      []Ref
	RootXIdxs  []int
}

// State exports the built index. The returned slices are copies.
func (ix *Index) State() (State, error) {
	if !ix.Built() {
		return State{}, ErrNotBuilt
	}
	st := State{
		Rectangles: ix.rectangleCount,
		Xs:         slices.Clone(ix.xs),
		Ys:         slices.Clone(ix.ys),
		Roots:      slices.Clone(ix.roots),
		RootXIdxs:  slices.Clone(ix.rootXIdxs),
	}
	if ix.tree != nil {
		st.Records = slices.Clone(ix.tree.records)
	}
	return st, nil
}

// NewIndexFromState returns a built Index serving the same answers as the
// index st was exported from. st is validated first.
func NewIndexFromState(st State, opts ...Option) (*Index, error) {
	if err := st.Validate(); err != nil {
		return nil, err
	}
	ix := NewIndex(nil, opts...)
	ix.empty = st.Rectangles == 0
	ix.rectangleCount = st.Rectangles
	if len(st.Roots) > 0 {
		ix.xs = slices.Clone(st.Xs)
		ix.ys = slices.Clone(st.Ys)
		ix.tree = &Tree{width: len(st.Ys), records: slices.Clone(st.Records)}
		ix.roots = slices.Clone(st.Roots)
		ix.rootXIdxs = slices.Clone(st.RootXIdxs)
	}
	ix.state.Store(stateBuilt)
	ix.logStats()
	return ix, nil
}

// Validate checks the invariants a built index guarantees. A State that
// passes can be queried without index errors.
func (st State) Validate() error {
	if st.Rectangles < 0 {
		return fmt.Errorf("%w: negative rectangle count", ErrInvalidState)
	}
	if st.Rectangles == 0 {
		if len(st.Xs) != 0 || len(st.Ys) != 0 || len(st.Records) != 0 || len(st.Roots) != 0 || len(st.RootXIdxs) != 0 {
			return fmt.Errorf("%w: empty index carries data", ErrInvalidState)
		}
		return nil
	}

	if len(st.Xs) == 0 || len(st.Ys) == 0 {
		return fmt.Errorf("%w: missing coordinates", ErrInvalidState)
	}
	if !st.Xs.Strict() || !st.Ys.Strict() {
		return fmt.Errorf("%w: coordinates not strictly increasing", ErrInvalidState)
	}
	if uint64(len(st.Records)) >= uint64(NoRef) {
		return fmt.Errorf("%w: %d records", ErrNodeStoreFull, len(st.Records))
	}

	if len(st.Roots) == 0 || len(st.Roots) != len(st.RootXIdxs) {
		return fmt.Errorf(
			"%w: versions and anchors differ: roots=%d, anchors=%d",
			ErrInvalidState, len(st.Roots), len(st.RootXIdxs))
	}
	if st.RootXIdxs[0] != 0 {
		return fmt.Errorf("%w: first version anchored at %d", ErrInvalidState, st.RootXIdxs[0])
	}
	if !strictlyIncreasing(st.RootXIdxs) || st.RootXIdxs[len(st.RootXIdxs)-1] >= len(st.Xs) {
		return fmt.Errorf("%w: version anchors out of order or range", ErrInvalidState)
	}

	n := Ref(len(st.Records))
	for _, root := range st.Roots {
		if root >= n {
			return fmt.Errorf("%w: root %d out of range", ErrInvalidState, root)
		}
	}
	// Postorder emission: children always precede their parent.
	for i, rec := range st.Records {
		ref := Ref(i)
		if (rec.Left != NoRef && rec.Left >= ref) || (rec.Right != NoRef && rec.Right >= ref) {
			return fmt.Errorf("%w: record %d references a later record", ErrInvalidState, i)
		}
	}
	return nil
}
