package stab

import "math/bits"

// RecordCountMax bounds the records a build over rectangleCount rectangles can
// emit on a tree of the given width.
//
// Per update and per level at most two partially covered records are copied,
// each materializing up to two zero children, and at most two fully covered
// records are copied. Add the initial empty root.
func RecordCountMax(rectangleCount, width int) uint64 {
	if rectangleCount == 0 || width == 0 {
		return 0
	}
	levels := uint64(DepthMax(width))
	return 1 + 2*uint64(rectangleCount)*8*levels
}

// DepthMax returns the number of levels on the longest root-to-leaf path of a
// tree over width leaves, ceil(log2(width)) + 1.
func DepthMax(width int) int {
	if width <= 1 {
		return 1
	}
	return bits.Len(uint(width-1)) + 1
}

// recordCapacityHint is the initial arena capacity used when no hint is given.
// Typical builds copy about two paths per update.
func recordCapacityHint(rectangleCount, width int) int {
	return 1 + 2*rectangleCount*2*DepthMax(width)
}
