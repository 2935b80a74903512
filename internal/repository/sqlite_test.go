package repository_test

import (
	"context"
	"testing"
	"time"

	"glassjoke/internal/models"
	"glassjoke/internal/repository"
	"glassjoke/internal/repository/db"
)

func TestSQLite_RoundTrip(t *testing.T) {
	conn, err := db.InitDB(":memory:")
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	repos := repository.NewRepository(conn)
	c := context.Background()
	started := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)

	run := models.DayRun{
		ID:            "run-1",
		Employee:      "John Doe",
		ScheduleStart: "09:00",
		ScheduleEnd:   "17:00",
		Ticks:         []string{"09:00", "10:00"},
		WorkTicks:     2,
		FinalContents: map[string]int{"water": 10},
		Status:        models.RunCompleted,
		StartedAt:     started,
		FinishedAt:    started.Add(time.Second),
	}
	if err := repos.RunRepo.Save(c, run); err != nil {
		t.Fatalf("Save: %v", err)
	}
	run.Refills = 3
	if err := repos.RunRepo.Save(c, run); err != nil {
		t.Fatalf("Save upsert: %v", err)
	}

	got, err := repos.RunRepo.Get(c, "run-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Refills != 3 || len(got.Ticks) != 2 || got.FinalContents["water"] != 10 {
		t.Fatalf("unexpected run: %+v", got)
	}

	for i, typ := range []string{models.EventStart, models.EventDrink, models.EventWork} {
		err := repos.EventRepo.Append(c, models.DayEvent{
			RunID:       "run-1",
			Tick:        "09:00",
			OccurredAt:  started.Add(time.Duration(i) * time.Millisecond),
			Type:        typ,
			Description: typ,
		})
		if err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	events, err := repos.EventRepo.List(c, "run-1", time.Time{}, time.Time{}, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(events) != 3 || events[0].Type != models.EventStart || events[2].Type != models.EventWork {
		t.Fatalf("unexpected events: %+v", events)
	}

	drinks, err := repos.EventRepo.List(c, "run-1", time.Time{}, time.Time{}, "drink")
	if err != nil || len(drinks) != 1 {
		t.Fatalf("drink filter: %v, %+v", err, drinks)
	}
}
