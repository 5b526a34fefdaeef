package baseline

import "errors"

var ErrGridTooLarge = errors.New("baseline: dense grid exceeds the cell limit")
