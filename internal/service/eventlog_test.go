package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"glassjoke/internal/models"
)

// fakeEventRepo is a minimal stub that satisfies the repository.EventRepo interface.
type fakeEventRepo struct {
	gotRunID string
	gotFrom  time.Time
	gotTo    time.Time
	gotType  string

	events   []models.DayEvent
	appended []models.DayEvent
	err      error

	calls int
}

func (f *fakeEventRepo) List(_ context.Context, runID string, from, to time.Time, typ string) ([]models.DayEvent, error) {
	f.calls++
	f.gotRunID = runID
	f.gotFrom = from
	f.gotTo = to
	f.gotType = typ
	return f.events, f.err
}

func (f *fakeEventRepo) Append(_ context.Context, e models.DayEvent) error {
	f.appended = append(f.appended, e)
	return f.err
}

func Test_normalizeEventType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		exp  string
	}{
		{name: "empty stays empty", in: "", exp: ""},
		{name: "trim spaces", in: "  START ", exp: "START"},
		{name: "uppercase", in: "drink", exp: "DRINK"},
		{name: "underscore kept", in: " off_shift ", exp: "OFF_SHIFT"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			if got := normalizeEventType(c.in); got != c.exp {
				t.Fatalf("normalizeEventType(%q) = %q; want %q", c.in, got, c.exp)
			}
		})
	}
}

func Test_normalizeAndValidateFilter(t *testing.T) {
	t.Parallel()

	fromLocal := time.Date(2025, time.September, 10, 10, 0, 0, 0, time.FixedZone("UTC+2", 2*3600))
	toUTC := time.Date(2025, time.September, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		in      LogFilter
		want    LogFilter
		wantErr error
	}{
		{
			name: "all zero ok",
			in:   LogFilter{},
			want: LogFilter{},
		},
		{
			name: "from after to",
			in: LogFilter{
				From: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
				To:   time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC),
			},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name: "normalize tz, type and run id",
			in:   LogFilter{RunID: " r1 ", From: fromLocal, To: toUTC, Type: " refill "},
			want: LogFilter{
				RunID: "r1",
				From:  time.Date(2025, time.September, 10, 8, 0, 0, 0, time.UTC),
				To:    toUTC,
				Type:  "REFILL",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := normalizeAndValidateFilter(tc.in)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected err %v; got %v", tc.wantErr, err)
			}
			if err != nil {
				return
			}
			if got.RunID != tc.want.RunID || got.Type != tc.want.Type {
				t.Fatalf("got %+v; want %+v", got, tc.want)
			}
			if !got.From.Equal(tc.want.From) || !got.To.Equal(tc.want.To) {
				t.Fatalf("range: got %v..%v; want %v..%v", got.From, got.To, tc.want.From, tc.want.To)
			}
		})
	}
}

func TestEventLogService_List_DelegatesNormalizedParams(t *testing.T) {
	t.Parallel()

	repo := &fakeEventRepo{events: []models.DayEvent{{EventID: "1"}}}
	svc := NewEventLogService(repo)

	got, err := svc.List(context.Background(), LogFilter{RunID: "r1", Type: "work"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || repo.calls != 1 {
		t.Fatalf("unexpected result %v (calls=%d)", got, repo.calls)
	}
	if repo.gotRunID != "r1" || repo.gotType != "WORK" {
		t.Fatalf("repo got run=%q type=%q", repo.gotRunID, repo.gotType)
	}
}

func TestEventLogService_List_InvalidRangeSkipsRepo(t *testing.T) {
	t.Parallel()

	repo := &fakeEventRepo{}
	svc := NewEventLogService(repo)

	now := time.Now()
	_, err := svc.List(context.Background(), LogFilter{From: now, To: now.Add(-time.Second)})
	if !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("want ErrInvalidTimeRange, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("repo must not be called")
	}
}
