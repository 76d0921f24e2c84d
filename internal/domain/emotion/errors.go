package emotion

import "errors"

// ErrNoReadings indicates a day with zero observations; such a day has
// no defined emotion category.
var ErrNoReadings = errors.New("no readings for day")

// ErrInvalidValence indicates a non-finite or out-of-range valence
// value, usually a sign of upstream data corruption.
var ErrInvalidValence = errors.New("invalid valence value")

// ErrUnknownStrategy indicates a strategy identifier outside the closed
// set understood by ParseStrategy.
var ErrUnknownStrategy = errors.New("unknown classification strategy")
