package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"glassjoke"
	"glassjoke/internal/models"
	"glassjoke/internal/repository"
	"glassjoke/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	errRunDay       = "failed to run day"
	errListDays     = "failed to list days"
	errGetDay       = "failed to load day"
	errInvalidLimit = "invalid 'limit'; use a positive integer"
	maxListLimit    = 500
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// isBadInput reports errors caused by the request rather than the server.
func isBadInput(err error) bool {
	return errors.Is(err, service.ErrInvalidParams) ||
		errors.Is(err, glassjoke.ErrInvalidRange) ||
		errors.Is(err, glassjoke.ErrInvalidAmount) ||
		errors.Is(err, glassjoke.ErrInvalidName)
}

// RunDayRequest is an exported model for Swagger docs of the runDay payload.
// Every field is optional and falls back to the configured day.
type RunDayRequest struct {
	Employee         string  `json:"employee,omitempty" example:"John Doe"`
	RandomName       bool    `json:"random_name,omitempty"`
	Start            string  `json:"start,omitempty" example:"09:00"`
	End              string  `json:"end,omitempty" example:"17:00"`
	BreakStart       string  `json:"break_start,omitempty" example:"12:00"`
	NoBreak          bool    `json:"no_break,omitempty"`
	Step             string  `json:"step,omitempty" example:"1h"`
	ContainerType    string  `json:"container_type,omitempty" example:"glass"`
	Capacity         int     `json:"capacity,omitempty" example:"500"`
	InitialKind      string  `json:"initial_kind,omitempty" example:"water"`
	InitialAmount    int     `json:"initial_amount,omitempty" example:"500"`
	RefillKind       string  `json:"refill_kind,omitempty" example:"coffee"`
	RoomTemperatureC float64 `json:"room_temperature_c,omitempty" example:"24"`
	WorkIntensity    int     `json:"work_intensity,omitempty" example:"50000"`
	Seed             uint64  `json:"seed,omitempty" example:"7"`
}

// bindDayParams accepts an empty body as "all defaults".
func bindDayParams(c *gin.Context, p *service.DayParams) error {
	if err := c.ShouldBindJSON(p); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// respondRunError writes the response for a day that did not complete.
func (h *Handler) respondRunError(c *gin.Context, run models.DayRun, err error) {
	switch {
	case isBadInput(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case run.Status == models.RunFailed:
		if h.log != nil {
			h.log.Infow("day_failed", "run_id", run.ID, "err", err)
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "run": run})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errRunDay, "day_run_failed", err)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Simulate a day
// @Description  Runs one working day synchronously and returns its summary. A day aborted by the simulation itself is stored and returned with 422.
// @Tags         days
// @Accept       json
// @Produce      json
// @Param        body  body   RunDayRequest  false  "Overrides of the configured day"
// @Success      201   {object}  models.DayRun
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]interface{}  "error, run"
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/days [post]
// @Security     BearerAuth
func (h *Handler) runDay(c *gin.Context) {
	var params service.DayParams
	if err := bindDayParams(c, &params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
		return
	}

	run, err := h.services.Days.Run(c.Request.Context(), params, nil)
	if err != nil {
		h.respondRunError(c, run, err)
		return
	}
	c.JSON(http.StatusCreated, run)
}

// @Summary      List simulated days
// @Tags         days
// @Produce      json
// @Param        limit  query   int  false  "Maximum number of runs, newest first"  example(20)
// @Success      200    {object}  map[string]interface{}  "count, runs"
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/v1/days [get]
// @Security     BearerAuth
func (h *Handler) listDays(c *gin.Context) {
	limit := 0
	if qs := c.Query("limit"); qs != "" {
		v, err := strconv.Atoi(qs)
		if err != nil || v <= 0 || v > maxListLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidLimit})
			return
		}
		limit = v
	}

	runs, err := h.services.History.List(c.Request.Context(), limit)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListDays, "days_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(runs),
		"runs":  runs,
	})
}

// @Summary      Get a simulated day
// @Tags         days
// @Produce      json
// @Param        id   path   string  true  "Run ID"
// @Success      200  {object}  models.DayRun
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/days/{id} [get]
// @Security     BearerAuth
func (h *Handler) getDay(c *gin.Context) {
	id := c.Param("id")
	run, err := h.services.History.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrRunNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errGetDay, "day_get_failed", err, "run_id", id)
		return
	}
	c.JSON(http.StatusOK, run)
}

// @Summary      Trace of a simulated day
// @Tags         days
// @Produce      json
// @Param        id    path    string  true   "Run ID"
// @Param        type  query   string  false  "Event type"  Enums(START,DRINK,REFILL,WORK,BREAK,OFF_SHIFT,END,ERROR)
// @Success      200   {object}  map[string]interface{}  "count, events"
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/days/{id}/events [get]
// @Security     BearerAuth
func (h *Handler) dayEvents(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	if _, err := h.services.History.Get(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRunNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errGetDay, "day_get_failed", err, "run_id", id)
		return
	}

	events, err := h.services.EventLog.List(ctx, service.LogFilter{RunID: id, Type: c.Query("type")})
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadLogs, "day_events_failed", err, "run_id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":  len(events),
		"events": events,
	})
}
