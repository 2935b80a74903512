package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"glassjoke"
	"glassjoke/internal/models"
	"glassjoke/internal/service"

	"github.com/prometheus/client_golang/prometheus"
)

func TestHealth(t *testing.T) {
	r := newTestRouter(&service.Service{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("health status=%d", w.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := service.NewMetrics(reg)
	metrics.Observe(models.DayRun{Status: models.RunCompleted, Ticks: []string{"09:00"}, ConsumedML: 90})

	h := NewHandler(&service.Service{}, reg, nil)
	w := httptest.NewRecorder()
	h.InitRoutes().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("metrics status=%d", w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, `glassjoke_days_total{status="COMPLETED"} 1`) {
		t.Fatalf("days counter missing from:\n%s", body)
	}
}

func TestRunDay(t *testing.T) {
	run := models.DayRun{ID: "run-1", Employee: "John Doe", Status: models.RunCompleted, Ticks: []string{"09:00"}}
	days := &mockDays{run: run}
	r := newTestRouter(&service.Service{Days: days})

	w := postJSON(r, "/api/v1/days", `{"employee":"John Doe","step":"30m","capacity":300,"no_break":true}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got models.DayRun
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ID != "run-1" {
		t.Fatalf("unexpected run: %+v", got)
	}
	p := days.lastParams
	if p.Employee != "John Doe" || p.Step != "30m" || p.Capacity == nil || *p.Capacity != 300 || p.NoBreak == nil || !*p.NoBreak {
		t.Fatalf("params not bound: %+v", p)
	}
}

func TestRunDay_EmptyBodyUsesDefaults(t *testing.T) {
	days := &mockDays{run: models.DayRun{ID: "run-1", Status: models.RunCompleted}}
	r := newTestRouter(&service.Service{Days: days})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/days", nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if days.calls != 1 || days.lastParams.Employee != "" {
		t.Fatalf("unexpected call: %d %+v", days.calls, days.lastParams)
	}
}

func TestRunDay_Errors(t *testing.T) {
	cases := []struct {
		name string
		body string
		days *mockDays
		want int
	}{
		{"malformed body", `{"capacity":"lots"}`, &mockDays{}, http.StatusBadRequest},
		{"invalid params", `{}`, &mockDays{err: fmt.Errorf("%w: step", service.ErrInvalidParams)}, http.StatusBadRequest},
		{"invalid range", `{}`, &mockDays{err: fmt.Errorf("%w: break", glassjoke.ErrInvalidRange)}, http.StatusBadRequest},
		{"invalid name", `{}`, &mockDays{err: glassjoke.ErrInvalidName}, http.StatusBadRequest},
		{"failed day", `{}`, &mockDays{
			run: models.DayRun{ID: "run-2", Status: models.RunFailed},
			err: fmt.Errorf("%w: interns", glassjoke.ErrUnsupportedRoleOperation),
		}, http.StatusUnprocessableEntity},
		{"storage error", `{}`, &mockDays{err: errors.New("disk full")}, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&service.Service{Days: tc.days})
			w := postJSON(r, "/api/v1/days", tc.body)
			if w.Code != tc.want {
				t.Fatalf("status=%d, want %d, body=%s", w.Code, tc.want, w.Body.String())
			}
		})
	}
}

func TestListDays(t *testing.T) {
	hist := &mockHistory{list: []models.DayRun{{ID: "a"}, {ID: "b"}}}
	r := newTestRouter(&service.Service{History: hist})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/days?limit=5", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var out struct {
		Count int             `json:"count"`
		Runs  []models.DayRun `json:"runs"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Count != 2 || hist.lastLimit != 5 {
		t.Fatalf("unexpected: %+v limit=%d", out, hist.lastLimit)
	}

	for _, bad := range []string{"0", "-1", "abc", "100000"} {
		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/days?limit="+bad, nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("limit=%s: status=%d", bad, w.Code)
		}
	}
}

func TestGetDay(t *testing.T) {
	hist := &mockHistory{runs: map[string]models.DayRun{"a": {ID: "a", Employee: "Bob Smith"}}}
	r := newTestRouter(&service.Service{History: hist})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/days/a", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/days/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	hist.err = errors.New("db down")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/days/a", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestDayEvents(t *testing.T) {
	hist := &mockHistory{runs: map[string]models.DayRun{"a": {ID: "a"}}}
	logs := &mockEventLog{resp: []models.DayEvent{{EventID: "e1", RunID: "a", Type: models.EventDrink}}}
	r := newTestRouter(&service.Service{History: hist, EventLog: logs})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/days/a/events?type=drink", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if logs.lastFilter.RunID != "a" || logs.lastFilter.Type != "drink" {
		t.Fatalf("filter = %+v", logs.lastFilter)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/days/zzz/events", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
