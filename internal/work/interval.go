package work

import (
	"fmt"
	"time"

	"glassjoke"
)

// DefaultMaxIntervalDuration caps a break at one hour.
const DefaultMaxIntervalDuration = time.Hour

// Limits bounds interval construction. It is read from config once at
// startup and passed by value.
type Limits struct {
	MaxIntervalDuration time.Duration
}

// DefaultLimits returns the limits used when nothing is configured.
func DefaultLimits() Limits {
	return Limits{MaxIntervalDuration: DefaultMaxIntervalDuration}
}

// Interval is an immutable half-open range [start, end).
type Interval struct {
	start, end TimeOfDay
}

// NewInterval validates that end is not before start and that the duration
// does not exceed limits.MaxIntervalDuration.
func NewInterval(limits Limits, start, end TimeOfDay) (Interval, error) {
	if end.Before(start) {
		return Interval{}, fmt.Errorf("%w: interval end %s is before start %s", glassjoke.ErrInvalidRange, end, start)
	}
	if d := end.Sub(start); d > limits.MaxIntervalDuration {
		return Interval{}, fmt.Errorf("%w: interval duration %s exceeds maximum %s",
			glassjoke.ErrInvalidRange, d, limits.MaxIntervalDuration)
	}
	return Interval{start: start, end: end}, nil
}

// MaxDurationInterval returns the longest interval allowed starting at start.
func MaxDurationInterval(limits Limits, start TimeOfDay) (Interval, error) {
	return NewInterval(limits, start, start.Add(limits.MaxIntervalDuration))
}

func (i Interval) Start() TimeOfDay { return i.start }
func (i Interval) End() TimeOfDay   { return i.end }

// Contains reports start <= t < end. The end instant belongs to whatever comes next.
func (i Interval) Contains(t TimeOfDay) bool {
	return !t.Before(i.start) && t.Before(i.end)
}

func (i Interval) String() string {
	return i.start.String() + "-" + i.end.String()
}
