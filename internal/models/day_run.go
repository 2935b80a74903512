package models

import "time"

// Run statuses.
const (
	RunCompleted = "COMPLETED"
	RunFailed    = "FAILED"
)

// DayRun summarizes one simulated working day.
type DayRun struct {
	ID            string         `json:"id"`
	Employee      string         `json:"employee"`
	ScheduleStart string         `json:"schedule_start"`
	ScheduleEnd   string         `json:"schedule_end"`
	Break         string         `json:"break,omitempty"` // "12:00-13:00", empty when none
	Ticks         []string       `json:"ticks"`
	WorkTicks     int            `json:"work_ticks"`
	BreakTicks    int            `json:"break_ticks"`
	Refills       int            `json:"refills"`
	ConsumedML    int            `json:"consumed_ml"`
	FinalVolume   int            `json:"final_volume"`
	FinalContents map[string]int `json:"final_contents,omitempty"`
	Status        string         `json:"status"`
	Error         string         `json:"error,omitempty"`
	StartedAt     time.Time      `json:"started_at"`
	FinishedAt    time.Time      `json:"finished_at"`
}
