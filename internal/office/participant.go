// Package office models the people around the glass. Roles are expressed as
// capabilities: an Employee can drink and call an intern but has no Fill
// method; an Intern can fill and drink a capped amount but has no name.
package office

import (
	"glassjoke/internal/container"
	"glassjoke/internal/work"
)

// Activity is what a participant did at a tick.
type Activity string

const (
	ActivityWork     Activity = "WORK"
	ActivityBreak    Activity = "BREAK"
	ActivityOffShift Activity = "OFF_SHIFT"
)

// Participant is the capability set shared by every office role.
type Participant interface {
	Label() string
	Thirsty() bool
	SetThirsty(bool)
	DoScheduledActivity(s work.Schedule, t work.TimeOfDay) (Activity, error)
}

// Filler can top a container up.
type Filler interface {
	Fill(c *container.LiquidContainer, kind container.Kind)
}

// Summoner produces someone who can refill a container.
type Summoner interface {
	Summon() Filler
}

// SummonerFunc adapts a function to Summoner.
type SummonerFunc func() Filler

func (f SummonerFunc) Summon() Filler { return f() }

// state is the thirst flag every role carries.
type state struct {
	thirsty bool
}

func (s *state) Thirsty() bool     { return s.thirsty }
func (s *state) SetThirsty(v bool) { s.thirsty = v }
