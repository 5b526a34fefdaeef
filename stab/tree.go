package stab

// NodeRecord is one immutable record of the tree arena.
//
// Sum is an un-pushed delta applied to the record's whole leaf range. Left and
// Right are NoRef when the child has never been materialized.
type NodeRecord struct {
	Left  Ref
	Right Ref
	Sum   int32
}

// Tree is a persistent interval-sum tree over the leaf range [0, width).
//
// A Ref returned by Empty or Add names a version of the tree. Every Ref stays
// valid, and answers the same queries, for the lifetime of the Tree.
type Tree struct {
	width   int
	records []NodeRecord
}

// NewTree creates an empty arena for a tree over width leaves. capHint
// preallocates records.
func NewTree(width int, capHint int) *Tree {
	if capHint < 0 {
		capHint = 0
	}
	return &Tree{
		width:   width,
		records: make([]NodeRecord, 0, capHint),
	}
}

func (t *Tree) Width() int { return t.width }

// RecordCount returns the number of records emitted so far.
func (t *Tree) RecordCount() int { return len(t.records) }

// Record returns the record at ref.
func (t *Tree) Record(ref Ref) NodeRecord { return t.records[ref] }

// Empty emits a zero record with no children.
func (t *Tree) Empty() (Ref, error) {
	return t.emit(NodeRecord{Left: NoRef, Right: NoRef})
}

// Add applies delta to every leaf in [start, end) of the version rooted at
// root and returns the root of the new version. The old version is unchanged.
func (t *Tree) Add(root Ref, start, end int, delta int32) (Ref, error) {
	return t.add(root, 0, t.width, start, end, delta)
}

func (t *Tree) add(ref Ref, lo, hi, start, end int, delta int32) (Ref, error) {
	// Disjoint: share the existing subtree.
	if end <= lo || hi <= start {
		return ref, nil
	}

	rec := t.records[ref]

	// Covered: copy with the delta recorded once for the whole range.
	if start <= lo && hi <= end {
		rec.Sum += delta
		return t.emit(rec)
	}

	// Partial: children first, so the copy is emitted in postorder.
	var err error
	mid := lo + (hi-lo)/2
	if rec.Left == NoRef {
		if rec.Left, err = t.Empty(); err != nil {
			return NoRef, err
		}
	}
	if rec.Left, err = t.add(rec.Left, lo, mid, start, end, delta); err != nil {
		return NoRef, err
	}
	if rec.Right == NoRef {
		if rec.Right, err = t.Empty(); err != nil {
			return NoRef, err
		}
	}
	if rec.Right, err = t.add(rec.Right, mid, hi, start, end, delta); err != nil {
		return NoRef, err
	}
	return t.emit(rec)
}

// TotalAt returns the sum of every delta covering leaf in the version rooted
// at root.
func (t *Tree) TotalAt(root Ref, leaf int) int {
	total := 0
	lo, hi := 0, t.width
	for ref := root; ref != NoRef; {
		rec := t.records[ref]
		total += int(rec.Sum)
		if hi-lo <= 1 {
			break
		}
		mid := lo + (hi-lo)/2
		if leaf < mid {
			ref, hi = rec.Left, mid
		} else {
			ref, lo = rec.Right, mid
		}
	}
	return total
}

func (t *Tree) emit(rec NodeRecord) (Ref, error) {
	if uint64(len(t.records)) >= uint64(NoRef) {
		return NoRef, ErrNodeStoreFull
	}
	ref := Ref(len(t.records))
	t.records = append(t.records, rec)
	return ref, nil
}
