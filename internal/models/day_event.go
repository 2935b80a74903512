package models

import "time"

// Day event types.
const (
	EventStart    = "START"
	EventDrink    = "DRINK"
	EventRefill   = "REFILL"
	EventWork     = "WORK"
	EventBreak    = "BREAK"
	EventOffShift = "OFF_SHIFT"
	EventEnd      = "END"
	EventError    = "ERROR"
)

// DayEvent is a single trace entry of a simulated day.
type DayEvent struct {
	EventID     string    `json:"event_id"`
	RunID       string    `json:"run_id"`
	Tick        string    `json:"tick"` // simulated time of day, HH:MM
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Metadata    any       `json:"metadata,omitempty"`
}
