package websocket

import "github.com/examsys/examination-backend/internal/model"

// Event identifies a server → client message type on the countdown stream.
type Event string

const (
	EventTick   Event = "tick"
	EventClosed Event = "closed"
)

// TickPayload is sent once per second while the exam window is open.
type TickPayload struct {
	Event            Event       `json:"event"`
	Phase            model.Phase `json:"phase"`
	RemainingSeconds int64       `json:"remaining_seconds"`
}

// ClosedPayload terminates the stream when the window is not (or no
// longer) open.
type ClosedPayload struct {
	Event Event       `json:"event"`
	Phase model.Phase `json:"phase"`
}
