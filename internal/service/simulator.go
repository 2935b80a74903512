package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"glassjoke"
	"glassjoke/internal/container"
	"glassjoke/internal/logger"
	"glassjoke/internal/models"
	"glassjoke/internal/office"
	"glassjoke/internal/thirst"
	"glassjoke/internal/work"

	"github.com/google/uuid"
)

// Worker is the participant whose day is simulated: it drinks and, when the
// glass is empty, calls someone to refill it.
type Worker interface {
	office.Participant
	Drink(c *container.LiquidContainer, level thirst.Level) (int, error)
	CallIntern(s office.Summoner) office.Filler
}

var _ Worker = (*office.Employee)(nil)

// DaySetup is everything a DaySimulator needs. Recorder, Log and Now are optional.
type DaySetup struct {
	RunID      string
	Schedule   work.Schedule
	Worker     Worker
	Container  *container.LiquidContainer
	Summoner   office.Summoner
	Thirst     thirst.Level
	Step       work.TimeStep
	RefillKind container.Kind
	Recorder   Recorder
	Log        *logger.Logger
	Now        func() time.Time
}

// DayReport is what happened during one simulated day.
type DayReport struct {
	Ticks      []work.TimeOfDay
	WorkTicks  int
	BreakTicks int
	Refills    int
	Consumed   int
}

// TickStrings renders the ticks as HH:MM.
func (r DayReport) TickStrings() []string {
	out := make([]string, len(r.Ticks))
	for i, t := range r.Ticks {
		out[i] = t.String()
	}
	return out
}

// DaySimulator advances one worker's day tick by tick.
type DaySimulator struct {
	setup DaySetup
	log   *logger.Logger
}

// NewDaySimulator checks that every required collaborator is present.
func NewDaySimulator(setup DaySetup) (*DaySimulator, error) {
	var errs []error
	if setup.Worker == nil {
		errs = append(errs, errors.New("worker is required"))
	}
	if setup.Container == nil {
		errs = append(errs, errors.New("container is required"))
	}
	if setup.Summoner == nil {
		errs = append(errs, errors.New("summoner is required"))
	}
	if setup.Thirst == nil {
		errs = append(errs, errors.New("thirst level is required"))
	}
	if setup.Step == nil {
		errs = append(errs, errors.New("time step is required"))
	}
	if setup.RefillKind == "" {
		errs = append(errs, errors.New("refill kind is required"))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("new day simulator: %w", err)
	}
	if setup.Recorder == nil {
		setup.Recorder = Discard
	}
	if setup.Now == nil {
		setup.Now = time.Now
	}
	return &DaySimulator{
		setup: setup,
		log:   logger.OrNop(setup.Log).Named("DaySimulator"),
	}, nil
}

// RunDay runs the day from the schedule start until the clock leaves the
// schedule. Any error ends the day; the partial report is returned with it.
func (d *DaySimulator) RunDay(ctx context.Context) (DayReport, error) {
	s := d.setup
	var report DayReport

	tick := s.Schedule.Start()
	d.log.Infow("day started", "worker", s.Worker.Label(), "start", s.Schedule.Start(), "end", s.Schedule.End())
	d.record(ctx, tick, models.EventStart, "day started", map[string]any{
		"worker": s.Worker.Label(),
		"start":  s.Schedule.Start().String(),
		"end":    s.Schedule.End().String(),
		"volume": s.Container.Volume(),
	})

	for s.Schedule.InRange(tick) {
		if err := ctx.Err(); err != nil {
			return report, d.fail(ctx, tick, err)
		}
		report.Ticks = append(report.Ticks, tick)

		if s.Worker.Thirsty() {
			if s.Container.IsEmpty() {
				if err := d.refill(ctx, tick); err != nil {
					return report, d.fail(ctx, tick, err)
				}
				report.Refills++
			}
			n, err := s.Worker.Drink(s.Container, s.Thirst)
			if err != nil {
				return report, d.fail(ctx, tick, fmt.Errorf("drink at %s: %w", tick, err))
			}
			report.Consumed += n
			d.record(ctx, tick, models.EventDrink, fmt.Sprintf("%s drank %d", s.Worker.Label(), n), map[string]any{
				"amount": n,
				"volume": s.Container.Volume(),
			})
		}

		activity, err := s.Worker.DoScheduledActivity(s.Schedule, tick)
		if err != nil {
			return report, d.fail(ctx, tick, fmt.Errorf("scheduled activity at %s: %w", tick, err))
		}
		switch activity {
		case office.ActivityWork:
			report.WorkTicks++
		case office.ActivityBreak:
			report.BreakTicks++
		}
		d.record(ctx, tick, string(activity), fmt.Sprintf("%s: %s", s.Worker.Label(), activity), nil)

		next := s.Step(tick)
		if !next.After(tick) {
			return report, d.fail(ctx, tick, fmt.Errorf("%w: step from %s returned %s", glassjoke.ErrStalledClock, tick, next))
		}
		tick = next
		s.Thirst.Perturb()
	}

	d.log.Infow("day finished", "ticks", len(report.Ticks), "consumed", report.Consumed, "refills", report.Refills)
	d.record(ctx, tick, models.EventEnd, "day finished", map[string]any{
		"ticks":    len(report.Ticks),
		"consumed": report.Consumed,
		"refills":  report.Refills,
		"volume":   s.Container.Volume(),
	})
	return report, nil
}

func (d *DaySimulator) refill(ctx context.Context, tick work.TimeOfDay) error {
	s := d.setup
	filler := s.Worker.CallIntern(s.Summoner)
	if filler == nil {
		return errors.New("summoner returned nobody to refill the container")
	}
	before := s.Container.Volume()
	filler.Fill(s.Container, s.RefillKind)
	added := s.Container.Volume() - before
	d.record(ctx, tick, models.EventRefill, fmt.Sprintf("refilled %d of %s", added, s.RefillKind), map[string]any{
		"kind":   string(s.RefillKind),
		"amount": added,
	})
	return nil
}

func (d *DaySimulator) fail(ctx context.Context, tick work.TimeOfDay, err error) error {
	d.log.Errorw("day aborted", "tick", tick, "err", err)
	d.record(context.WithoutCancel(ctx), tick, models.EventError, err.Error(), nil)
	return err
}

// record emits a trace event. Recorder failures are logged and ignored.
func (d *DaySimulator) record(ctx context.Context, tick work.TimeOfDay, typ, msg string, meta map[string]any) {
	ev := models.DayEvent{
		EventID:     uuid.NewString(),
		RunID:       d.setup.RunID,
		Tick:        tick.String(),
		OccurredAt:  d.setup.Now().UTC(),
		Type:        typ,
		Description: msg,
	}
	if meta != nil {
		ev.Metadata = meta
	}
	if err := d.setup.Recorder.Record(ctx, ev); err != nil {
		d.log.Warnw("record event failed", "type", typ, "err", err)
	}
}
