package work

import (
	"fmt"

	"glassjoke"
)

// Schedule is a working day [start, end) with an optional break nested in it.
type Schedule struct {
	start, end TimeOfDay
	brk        Interval
	hasBreak   bool
}

// NewSchedule builds a schedule without a break.
func NewSchedule(start, end TimeOfDay) (Schedule, error) {
	if end.Before(start) {
		return Schedule{}, fmt.Errorf("%w: schedule end %s is before start %s", glassjoke.ErrInvalidRange, end, start)
	}
	return Schedule{start: start, end: end}, nil
}

// NewScheduleWithBreak builds a schedule whose break must lie within [start, end].
func NewScheduleWithBreak(start, end TimeOfDay, brk Interval) (Schedule, error) {
	s, err := NewSchedule(start, end)
	if err != nil {
		return Schedule{}, err
	}
	if brk.Start().Before(start) || brk.End().After(end) {
		return Schedule{}, fmt.Errorf("%w: break %s must be between working hours %s-%s",
			glassjoke.ErrInvalidRange, brk, start, end)
	}
	s.brk = brk
	s.hasBreak = true
	return s, nil
}

// NineToFive returns 09:00-17:00, with brk when it is non-nil.
func NineToFive(brk *Interval) (Schedule, error) {
	if brk == nil {
		return NewSchedule(Clock(9, 0), Clock(17, 0))
	}
	return NewScheduleWithBreak(Clock(9, 0), Clock(17, 0), *brk)
}

func (s Schedule) Start() TimeOfDay { return s.start }
func (s Schedule) End() TimeOfDay   { return s.end }

// Break returns the break interval and whether there is one.
func (s Schedule) Break() (Interval, bool) { return s.brk, s.hasBreak }

// InRange reports start <= t < end.
func (s Schedule) InRange(t TimeOfDay) bool {
	return !t.Before(s.start) && t.Before(s.end)
}

// OnBreak reports whether t falls in the break.
func (s Schedule) OnBreak(t TimeOfDay) bool {
	return s.hasBreak && s.brk.Contains(t)
}
