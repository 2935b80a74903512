package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"glassjoke/internal/config"
	"glassjoke/internal/container"
	"glassjoke/internal/logger"
	"glassjoke/internal/models"
	"glassjoke/internal/office"
	"glassjoke/internal/repository"
	"glassjoke/internal/thirst"
	"glassjoke/internal/work"

	"github.com/google/uuid"
)

// ErrInvalidParams marks day parameters that could not be parsed.
var ErrInvalidParams = errors.New("invalid day parameters")

// DayService builds a day from config defaults plus request overrides, runs
// it and stores the summary and trace.
type DayService struct {
	cfg       config.Config
	runRepo   repository.RunRepo
	eventRepo repository.EventRepo
	metrics   *Metrics
	log       *logger.Logger
	now       func() time.Time
}

func NewDayService(cfg config.Config, runRepo repository.RunRepo, eventRepo repository.EventRepo, metrics *Metrics, log *logger.Logger) *DayService {
	return &DayService{
		cfg:       cfg,
		runRepo:   runRepo,
		eventRepo: eventRepo,
		metrics:   metrics,
		log:       logger.OrNop(log).Named("DayService"),
		now:       time.Now,
	}
}

// daySettings is DayParams resolved against config.Day.
type daySettings struct {
	config.Day
	randomName bool
}

func resolve(p DayParams, d config.Day) (daySettings, error) {
	s := daySettings{Day: d, randomName: p.RandomName}
	override := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}
	override(&s.Employee, p.Employee)
	override(&s.Start, p.Start)
	override(&s.End, p.End)
	override(&s.BreakStart, p.BreakStart)
	override(&s.ContainerType, p.ContainerType)
	override(&s.InitialKind, p.InitialKind)
	override(&s.RefillKind, p.RefillKind)

	if p.Step != "" {
		step, err := time.ParseDuration(p.Step)
		if err != nil {
			return daySettings{}, fmt.Errorf("%w: step %q: %v", ErrInvalidParams, p.Step, err)
		}
		s.Step = step
	}
	if s.Step <= 0 {
		return daySettings{}, fmt.Errorf("%w: step must be positive, got %s", ErrInvalidParams, s.Step)
	}
	if p.NoBreak != nil {
		s.NoBreak = *p.NoBreak
	}
	if p.Capacity != nil {
		s.Capacity = *p.Capacity
	}
	if p.InitialAmount != nil {
		s.InitialAmount = *p.InitialAmount
	}
	if p.RoomTemperatureC != nil {
		s.RoomTemperatureC = *p.RoomTemperatureC
	}
	if p.WorkIntensity != nil {
		s.WorkIntensity = *p.WorkIntensity
	}
	if p.Seed != nil {
		s.Seed = *p.Seed
	}
	return s, nil
}

func parseClock(field, v string) (work.TimeOfDay, error) {
	t, err := work.ParseTimeOfDay(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidParams, field, err)
	}
	return t, nil
}

func (s *DayService) buildSchedule(set daySettings) (work.Schedule, error) {
	start, err := parseClock("start", set.Start)
	if err != nil {
		return work.Schedule{}, err
	}
	end, err := parseClock("end", set.End)
	if err != nil {
		return work.Schedule{}, err
	}
	if set.NoBreak || set.BreakStart == "" {
		return work.NewSchedule(start, end)
	}
	breakStart, err := parseClock("break_start", set.BreakStart)
	if err != nil {
		return work.Schedule{}, err
	}
	brk, err := work.MaxDurationInterval(s.cfg.Limits.Work(), breakStart)
	if err != nil {
		return work.Schedule{}, err
	}
	return work.NewScheduleWithBreak(start, end, brk)
}

func (s *DayService) buildContainer(set daySettings) (*container.LiquidContainer, error) {
	b := container.NewBuilder(s.cfg.Limits.Container()).
		WithCapacity(set.Capacity).
		WithType(container.Type(set.ContainerType)).
		WithLogger(s.log)
	if set.InitialAmount > 0 {
		b.Add(container.Kind(set.InitialKind), set.InitialAmount)
	}
	return b.Build()
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Run simulates one day. Setup problems return an error and store nothing.
// A day that fails while running is stored as FAILED and returned together
// with its error.
func (s *DayService) Run(ctx context.Context, p DayParams, extra Recorder) (models.DayRun, error) {
	set, err := resolve(p, s.cfg.Day)
	if err != nil {
		return models.DayRun{}, err
	}
	schedule, err := s.buildSchedule(set)
	if err != nil {
		return models.DayRun{}, err
	}
	glass, err := s.buildContainer(set)
	if err != nil {
		return models.DayRun{}, err
	}
	if set.RefillKind == "" {
		return models.DayRun{}, fmt.Errorf("%w: refill_kind is empty", ErrInvalidParams)
	}

	rng := newRand(set.Seed)
	name := set.Employee
	if set.randomName {
		name = office.RandomName(rng)
	}
	employee, err := office.NewEmployee(name, office.NewNaming(s.cfg.Limits.DefaultEntityName), s.log)
	if err != nil {
		return models.DayRun{}, err
	}
	level := thirst.NewBuilder().
		RoomTemperatureCelsius(set.RoomTemperatureC).
		WorkIntensity(set.WorkIntensity).
		WithLogger(s.log).
		Build(rng)

	runID := uuid.NewString()
	journal := RecorderFunc(s.eventRepo.Append)
	sim, err := NewDaySimulator(DaySetup{
		RunID:      runID,
		Schedule:   schedule,
		Worker:     employee,
		Container:  glass,
		Summoner:   office.NewAgency(s.log),
		Thirst:     level,
		Step:       work.Every(set.Step),
		RefillKind: container.Kind(set.RefillKind),
		Recorder:   Recorders{journal, extra},
		Log:        s.log,
		Now:        s.now,
	})
	if err != nil {
		return models.DayRun{}, err
	}

	run := models.DayRun{
		ID:            runID,
		Employee:      employee.Name(),
		ScheduleStart: schedule.Start().String(),
		ScheduleEnd:   schedule.End().String(),
		StartedAt:     s.now().UTC(),
	}
	if brk, ok := schedule.Break(); ok {
		run.Break = brk.String()
	}

	report, runErr := sim.RunDay(ctx)

	run.Ticks = report.TickStrings()
	run.WorkTicks = report.WorkTicks
	run.BreakTicks = report.BreakTicks
	run.Refills = report.Refills
	run.ConsumedML = report.Consumed
	run.FinalVolume = glass.Volume()
	run.FinalContents = make(map[string]int, len(glass.Contents()))
	for kind, amount := range glass.Contents() {
		run.FinalContents[string(kind)] = amount
	}
	run.FinishedAt = s.now().UTC()
	run.Status = models.RunCompleted
	if runErr != nil {
		run.Status = models.RunFailed
		run.Error = runErr.Error()
	}

	s.metrics.Observe(run)
	if err := s.runRepo.Save(context.WithoutCancel(ctx), run); err != nil {
		s.log.Errorw("save day run failed", "run_id", run.ID, "err", err)
		return run, errors.Join(runErr, err)
	}
	s.log.Infow("day run stored", "run_id", run.ID, "status", run.Status, "consumed", run.ConsumedML)
	return run, runErr
}
