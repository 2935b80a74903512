package office

import (
	"fmt"

	"glassjoke"
	"glassjoke/internal/container"
	"glassjoke/internal/logger"
	"glassjoke/internal/thirst"
	"glassjoke/internal/work"
)

// InternAllowance is how much an intern may drink, whatever the conditions.
const InternAllowance = 50

// Intern fills containers and drinks a capped amount. Nobody asks for an
// intern's name, so there is no Name method.
type Intern struct {
	state
	log *logger.Logger
}

var (
	_ Participant = (*Intern)(nil)
	_ Filler      = (*Intern)(nil)
)

func NewIntern(log *logger.Logger) *Intern {
	return &Intern{log: logger.OrNop(log).Named("intern")}
}

func (i *Intern) Label() string { return "intern" }

// Fill tops c up with kind.
func (i *Intern) Fill(c *container.LiquidContainer, kind container.Kind) {
	i.log.Infow("Filling container", "container", c.Type(), "kind", kind)
	c.Fill(kind)
}

// Drink ignores the caller's thirst level and drinks InternAllowance units.
func (i *Intern) Drink(c *container.LiquidContainer, _ thirst.Level) (int, error) {
	return c.Consume(thirst.Fixed(InternAllowance).Total(i), i)
}

// DoScheduledActivity works through the whole schedule. Interns don't have
// breaks; asking one to take the break is an error.
func (i *Intern) DoScheduledActivity(s work.Schedule, t work.TimeOfDay) (Activity, error) {
	if !s.InRange(t) {
		return ActivityOffShift, nil
	}
	if s.OnBreak(t) {
		return "", fmt.Errorf("%w: interns don't have intervals (tick %s)", glassjoke.ErrUnsupportedRoleOperation, t)
	}
	i.log.Info("working")
	i.thirsty = true
	return ActivityWork, nil
}

// Agency is the default Summoner: every call brings a fresh intern.
type Agency struct {
	log *logger.Logger
}

var _ Summoner = (*Agency)(nil)

func NewAgency(log *logger.Logger) *Agency {
	return &Agency{log: logger.OrNop(log)}
}

func (a *Agency) Summon() Filler {
	a.log.Named("InternAgency").Info("Summoning intern...")
	return NewIntern(a.log)
}
