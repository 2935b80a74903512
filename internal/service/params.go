package service

import "time"

// DayParams overrides the configured day defaults. Zero values and nil
// pointers keep the default.
type DayParams struct {
	Employee         string   `json:"employee,omitempty"`
	RandomName       bool     `json:"random_name,omitempty"`
	Start            string   `json:"start,omitempty"`       // "09:00"
	End              string   `json:"end,omitempty"`         // "17:00"
	BreakStart       string   `json:"break_start,omitempty"` // the break lasts limits.max_interval
	NoBreak          *bool    `json:"no_break,omitempty"`
	Step             string   `json:"step,omitempty"` // Go duration, e.g. "30m"
	ContainerType    string   `json:"container_type,omitempty"`
	Capacity         *int     `json:"capacity,omitempty"`
	InitialKind      string   `json:"initial_kind,omitempty"`
	InitialAmount    *int     `json:"initial_amount,omitempty"`
	RefillKind       string   `json:"refill_kind,omitempty"`
	RoomTemperatureC *float64 `json:"room_temperature_c,omitempty"`
	WorkIntensity    *int     `json:"work_intensity,omitempty"`
	Seed             *uint64  `json:"seed,omitempty"` // 0 draws a random seed
}

// LogFilter narrows the trace journal.
type LogFilter struct {
	RunID string    // empty means every run
	From  time.Time // inclusive; zero means no lower bound
	To    time.Time // inclusive; zero means no upper bound
	Type  string    // "", "START", "DRINK", "REFILL", "WORK", "BREAK", "OFF_SHIFT", "END", "ERROR"
}
