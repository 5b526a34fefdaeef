// Package baseline provides the reference stabbing counters the persistent
// index is checked and measured against.
//
// LinearScan tests every rectangle per query and needs no build work. It is
// the correctness oracle. DenseGrid pre-aggregates counts for every cell of
// the compressed coordinate grid, trading O(C^2) memory for O(log C) queries.
//
// Both implement stab.Counter and follow the same lifecycle as stab.Index.
package baseline
