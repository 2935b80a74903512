package service

import (
	"context"
	"errors"

	"glassjoke/internal/models"
)

// Recorder receives the trace of a simulated day.
type Recorder interface {
	Record(ctx context.Context, e models.DayEvent) error
}

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(ctx context.Context, e models.DayEvent) error

func (f RecorderFunc) Record(ctx context.Context, e models.DayEvent) error { return f(ctx, e) }

// Discard drops every event.
var Discard Recorder = RecorderFunc(func(context.Context, models.DayEvent) error { return nil })

// Recorders fans an event out to every non-nil recorder and joins their errors.
type Recorders []Recorder

func (rs Recorders) Record(ctx context.Context, e models.DayEvent) error {
	var errs []error
	for _, r := range rs {
		if r == nil {
			continue
		}
		if err := r.Record(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
