package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"glassjoke/internal/models"
	"glassjoke/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait    = 10 * time.Second
	paramsWait   = 10 * time.Second
	maxMsgSize   = 1 << 12 // 4 KB
	maxPace      = 10 * time.Second
	maxPaceMilli = 10_000 // 10s in ms
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"` // "event" | "summary" | "error"
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Upgrader for HTTP -> WebSocket.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // TODO: restrict origins once the API has a known front end
}

// wsRunDay upgrades the connection, reads DayParams as the first JSON
// message, runs the day streaming every trace event, then sends the summary.
// Closing the socket cancels the day.
func (h *Handler) wsRunDay(c *gin.Context) {
	pace := h.parsePace(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(paramsWait))

	var params service.DayParams
	if err := conn.ReadJSON(&params); err != nil {
		h.writeEnvelope(conn, wsEnvelope{Type: "error", Error: "invalid day parameters: " + err.Error()})
		return
	}
	_ = conn.SetReadDeadline(time.Time{})

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	go h.startReader(conn, cancel)

	stream := service.RecorderFunc(func(ctx context.Context, ev models.DayEvent) error {
		if pace > 0 {
			select {
			case <-time.After(pace):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(wsEnvelope{Type: "event", Data: ev})
	})

	run, err := h.services.Days.Run(ctx, params, stream)
	if err != nil {
		env := wsEnvelope{Type: "error", Error: err.Error()}
		if run.ID != "" {
			env.Data = run
		}
		h.writeEnvelope(conn, env)
		return
	}
	h.writeEnvelope(conn, wsEnvelope{Type: "summary", Data: run})
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "day finished"),
		time.Now().Add(writeWait))
}

// Helper: parsePace reads ?pace=200ms or ?pace_ms=200 with bounds. The
// default is no delay between events.
func (h *Handler) parsePace(c *gin.Context) time.Duration {
	if s := c.Query("pace"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxPace {
			return d
		}
	}

	if ms := c.Query("pace_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 && v <= maxPaceMilli {
			return time.Duration(v) * time.Millisecond
		}
	}

	return 0
}

// Helper: startReader drains incoming messages to handle control frames and
// cancels the day once the peer goes away.
func (h *Handler) startReader(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
	}
}

func (h *Handler) writeEnvelope(conn *websocket.Conn, env wsEnvelope) {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(env); err != nil && h.log != nil {
		h.log.Infow("ws_write_failed", "type", env.Type, "err", err)
	}
}
