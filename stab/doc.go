package stab

/*

# Stabbing counts over closed integer rectangles

This package answers "how many rectangles contain P" for a fixed rectangle set
that is built once and then queried any number of times.

It follows the same "functional primitives" style as the rest of the module:

- small, composable functions (compression, sweep events, tree updates)
- an explicit record arena instead of pointer graphs
- index arithmetic where possible
- a burden of knowledge on the caller for hot paths

## Build

1. Coordinates are compressed. For every rectangle we keep `{x1, x2, x2+1}`
   (and symmetrically for Y). The `+1` turns the closed upper bound into a
   half-open exclusive bound, so every rectangle covers the compressed ranges
   `[LowerIndex(x1), LowerIndex(x2+1))` and `[LowerIndex(y1), LowerIndex(y2)+1)`.
2. Each rectangle emits an opening event (+1) at `x1` and a closing event (-1)
   at `x2+1`. Events are stable sorted by compressed X only.
3. The events are folded into a persistent interval tree over compressed Y.
   Each distinct event X produces one version: the tree state after every
   event at that X has been applied.

## Records

The tree is stored as an append-only arena of records addressed by `Ref`.
Updates never modify a record; they copy the records on the root-to-leaf
paths they touch and share everything else with the previous version.

Records are emitted in postorder: a record only ever references records with
a smaller `Ref`. `NewIndexFromState` relies on this to reject corrupt state
without walking every version.

A record's `sum` is an un-pushed delta that applies to its whole Y range. The
count for a leaf is the sum of `sum` over the root-to-leaf path.

## Query

For point P we pick the last version whose anchor X is `<= P.X`, the last
compressed Y `<= P.Y`, and walk that single path. Points below the smallest
compressed X or Y answer 0; points beyond the largest are covered by the
`+1` coordinates, whose versions and leaves carry no rectangles.

*/
