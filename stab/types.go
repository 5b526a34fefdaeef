package stab

import (
	"errors"
	"fmt"
	"math"
)

// Ref is a record index in a Tree arena.
type Ref uint32

const NoRef = ^Ref(0)

// MaxRectangles bounds the rectangle count so every count fits a record sum.
const MaxRectangles = math.MaxInt32

var (
	ErrInvalidRectangle  = errors.New("stab: invalid rectangle")
	ErrTooManyRectangles = errors.New("stab: rectangle count does not fit in int32")
	ErrNotBuilt          = errors.New("stab: index queried before build")
	ErrAlreadyBuilt      = errors.New("stab: index already built")
	ErrBuildInProgress   = errors.New("stab: build already in progress")
	ErrNodeStoreFull     = errors.New("stab: record arena exceeds Ref capacity")
	ErrInvalidState      = errors.New("stab: invalid index state")
)

// Point is an integer point in the plane.
type Point struct {
	X int64
	Y int64
}

// Rectangle is the closed, axis aligned region [LeftDown.X, RightUp.X] x [LeftDown.Y, RightUp.Y].
type Rectangle struct {
	LeftDown Point
	RightUp  Point
}

func NewRectangle(x1, y1, x2, y2 int64) Rectangle {
	return Rectangle{
		LeftDown: Point{X: x1, Y: y1},
		RightUp:  Point{X: x2, Y: y2},
	}
}

// Validate checks leftDown <= rightUp componentwise. The upper bounds must also
// leave room for the exclusive +1 coordinate used by compression.
func (r Rectangle) Validate() error {
	if r.LeftDown.X > r.RightUp.X || r.LeftDown.Y > r.RightUp.Y {
		return fmt.Errorf("%w: (%d,%d)-(%d,%d) is not ordered",
			ErrInvalidRectangle, r.LeftDown.X, r.LeftDown.Y, r.RightUp.X, r.RightUp.Y)
	}
	if r.RightUp.X == math.MaxInt64 || r.RightUp.Y == math.MaxInt64 {
		return fmt.Errorf("%w: upper bound has no exclusive successor", ErrInvalidRectangle)
	}
	return nil
}

// Contains reports whether p lies in r, boundaries included.
func (r Rectangle) Contains(p Point) bool {
	return r.LeftDown.X <= p.X && p.X <= r.RightUp.X &&
		r.LeftDown.Y <= p.Y && p.Y <= r.RightUp.Y
}

// ValidateRectangles returns the first rectangle error, naming its position.
func ValidateRectangles(rects []Rectangle) error {
	for i, r := range rects {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("rectangle %d: %w", i, err)
		}
	}
	if uint64(len(rects)) > MaxRectangles {
		return ErrTooManyRectangles
	}
	return nil
}

// Counter is the contract shared by every stabbing count implementation.
//
// The rectangle set is bound when the implementation is constructed. Build
// performs the one-time initialization; QueryPoint may be called any number of
// times afterwards, or without Build when the rectangle set is empty.
type Counter interface {
	Build() error
	QueryPoint(p Point) (int, error)
}
