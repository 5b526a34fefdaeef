package stab

import (
	"cmp"
	"slices"
)

// Event is one edge of a rectangle crossing the sweep line.
//
// [YStart, YEnd) is a half-open range of compressed Y coordinates.
type Event struct {
	XIdx    int
	Opening bool
	YStart  int
	YEnd    int
}

// Delta is +1 for an opening event and -1 for a closing one.
func (e Event) Delta() int32 {
	if e.Opening {
		return 1
	}
	return -1
}

// SweepEvents emits an opening event at x1 and a closing event at x2+1 for
// every rectangle and stable sorts them by XIdx. Events sharing an XIdx keep
// their generation order.
//
// xs and ys must have been produced from the same rectangles.
func SweepEvents(rects []Rectangle, xs, ys Coords) []Event {
	events := make([]Event, 0, 2*len(rects))
	for _, r := range rects {
		yStart := ys.LowerIndex(r.LeftDown.Y)
		yEnd := ys.LowerIndex(r.RightUp.Y) + 1
		events = append(events,
			Event{XIdx: xs.LowerIndex(r.LeftDown.X), Opening: true, YStart: yStart, YEnd: yEnd},
			Event{XIdx: xs.LowerIndex(r.RightUp.X + 1), Opening: false, YStart: yStart, YEnd: yEnd},
		)
	}
	slices.SortStableFunc(events, func(a, b Event) int {
		return cmp.Compare(a.XIdx, b.XIdx)
	})
	return events
}
