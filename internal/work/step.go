package work

import "time"

// TimeStep maps the current tick to the next one.
type TimeStep func(TimeOfDay) TimeOfDay

// Every returns a step that adds d.
func Every(d time.Duration) TimeStep {
	return func(t TimeOfDay) TimeOfDay { return t.Add(d) }
}

// OneHour advances the clock by an hour.
var OneHour = Every(time.Hour)
