package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/examsys/examination-backend/internal/middleware"
	"github.com/examsys/examination-backend/internal/model"
	"github.com/examsys/examination-backend/internal/service"
	ws "github.com/examsys/examination-backend/internal/websocket"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// An empty allowedOrigins slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams exam countdown ticks over WebSocket.
type WSHandler struct {
	examService *service.ExamService
	log         zerolog.Logger
	upgrader    websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(examService *service.ExamService, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		examService: examService,
		log:         log.With().Str("component", "ws_handler").Logger(),
		upgrader:    buildUpgrader(allowedOrigins),
	}
}

// ExamCountdownStream godoc
// WS /ws/v1/exams/:exam_id/countdown
// Streams {phase, remaining_seconds} once per second while the window is
// open. The ticks are computed from the same phase function the access
// guard enforces, against the window fetched at connect time.
func (h *WSHandler) ExamCountdownStream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	examID, err := strconv.Atoi(c.Param("exam_id"))
	if err != nil || examID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid exam id"})
		return
	}

	// Resolve the window before upgrading so HTTP errors stay HTTP errors.
	status, err := h.examService.Status(c.Request.Context(), claims.StudentID, examID)
	if err != nil {
		if errors.Is(err, service.ErrExamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "exam not found"})
		} else {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "unavailable"})
		}
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	wsLog := h.log.With().
		Int("student_id", claims.StudentID).
		Int("exam_id", examID).
		Logger()

	if status.Phase != model.PhaseOpen {
		_ = ws.WriteTyped(conn, ws.ClosedPayload{Event: ws.EventClosed, Phase: status.Phase})
		return
	}

	wsLog.Debug().Msg("countdown stream opened")

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		now := time.Now()
		if now.After(status.EndTime) {
			_ = ws.WriteTyped(conn, ws.ClosedPayload{Event: ws.EventClosed, Phase: model.PhaseExpired})
			return
		}

		tick := ws.TickPayload{
			Event:            ws.EventTick,
			Phase:            model.PhaseOpen,
			RemainingSeconds: int64(model.Remaining(now, status.EndTime).Seconds()),
		}
		if err := ws.WriteTyped(conn, tick); err != nil {
			wsLog.Debug().Msg("countdown stream closed by client")
			return
		}

		select {
		case <-c.Request.Context().Done():
			return
		case <-ticker.C:
		}
	}
}
