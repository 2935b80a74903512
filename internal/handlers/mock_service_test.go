package handlers

import (
	"context"
	"net/http"

	"glassjoke/internal/models"
	"glassjoke/internal/repository"
	"glassjoke/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	enabled    bool
	issueToken string
	issueErr   error
	parseOp    string
	parseErr   error

	lastOperator   string
	lastSecret     string
	lastParseToken string
}

func (m *mockAuth) Enabled() bool { return m.enabled }
func (m *mockAuth) IssueToken(operator, secret string) (string, error) {
	m.lastOperator = operator
	m.lastSecret = secret
	return m.issueToken, m.issueErr
}
func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseOp, m.parseErr
}

// mockDays replays events through extra before returning run.
type mockDays struct {
	run    models.DayRun
	err    error
	events []models.DayEvent

	calls      int
	lastParams service.DayParams
}

func (m *mockDays) Run(ctx context.Context, p service.DayParams, extra service.Recorder) (models.DayRun, error) {
	m.calls++
	m.lastParams = p
	if extra != nil {
		for _, e := range m.events {
			_ = extra.Record(ctx, e)
		}
	}
	return m.run, m.err
}

type mockHistory struct {
	runs      map[string]models.DayRun
	list      []models.DayRun
	err       error
	lastLimit int
}

func (m *mockHistory) List(_ context.Context, limit int) ([]models.DayRun, error) {
	m.lastLimit = limit
	return m.list, m.err
}

func (m *mockHistory) Get(_ context.Context, id string) (models.DayRun, error) {
	if m.err != nil {
		return models.DayRun{}, m.err
	}
	r, ok := m.runs[id]
	if !ok {
		return models.DayRun{}, repository.ErrRunNotFound
	}
	return r, nil
}

type mockEventLog struct {
	resp       []models.DayEvent
	err        error
	lastFilter service.LogFilter
}

func (m *mockEventLog) List(_ context.Context, f service.LogFilter) ([]models.DayEvent, error) {
	m.lastFilter = f
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
