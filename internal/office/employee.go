package office

import (
	"fmt"

	"glassjoke/internal/container"
	"glassjoke/internal/logger"
	"glassjoke/internal/thirst"
	"glassjoke/internal/work"
)

// Employee is the primary actor of the day. Employees never fill their own
// glass; they call an intern.
type Employee struct {
	state
	name string
	log  *logger.Logger
}

var _ Participant = (*Employee)(nil)

// NewEmployee returns a thirsty employee. An empty name takes naming's default.
func NewEmployee(name string, naming Naming, log *logger.Logger) (*Employee, error) {
	resolved, err := naming.resolve(name)
	if err != nil {
		return nil, err
	}
	return &Employee{
		state: state{thirsty: true},
		name:  resolved,
		log:   logger.OrNop(log).Named(fmt.Sprintf("Employee(%s)", resolved)),
	}, nil
}

func (e *Employee) Name() string  { return e.name }
func (e *Employee) Label() string { return "Employee " + e.name }

// Thirsty reports the flag and says so out loud when it is set.
func (e *Employee) Thirsty() bool {
	if e.thirsty {
		e.log.Info("I'm thirsty")
	}
	return e.thirsty
}

// Drink consumes level.Total(e) units. When the glass holds less than that
// the employee drinks what is left and stays thirsty.
func (e *Employee) Drink(c *container.LiquidContainer, level thirst.Level) (int, error) {
	return c.Consume(level.Total(e), e)
}

// CallIntern asks summoner for someone to refill the glass.
func (e *Employee) CallIntern(s Summoner) Filler {
	e.log.Info("Glass is empty, where's the intern?")
	return s.Summon()
}

// DoScheduledActivity works or enjoys the break when t is in working hours,
// getting thirsty either way.
func (e *Employee) DoScheduledActivity(s work.Schedule, t work.TimeOfDay) (Activity, error) {
	e.log.Infow("what should I do?", "tick", t.String())
	if !s.InRange(t) {
		e.log.Info("Not my shift, bye!")
		return ActivityOffShift, nil
	}
	activity := ActivityWork
	if s.OnBreak(t) {
		activity = ActivityBreak
		e.log.Info("enjoying interval")
	} else {
		e.log.Info("Working")
	}
	e.thirsty = true
	return activity, nil
}
