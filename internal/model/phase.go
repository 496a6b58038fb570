package model

import "time"

// Phase enumerates the states of an exam window for a given student.
type Phase string

const (
	PhaseNotStarted Phase = "NOT_STARTED"
	PhaseOpen       Phase = "OPEN"
	PhaseExpired    Phase = "EXPIRED"
	PhaseCompleted  Phase = "COMPLETED"
)

// ComputePhase derives the exam phase from wall-clock time, the stored
// window and the submission timestamp. It performs no I/O, so the access
// guard and every presentation surface derive the phase identically.
//
// Completed wins over everything else. The boundary instants are inside the
// window: now == start and now == end are both Open.
func ComputePhase(now, start, end time.Time, submittedAt *time.Time) Phase {
	if submittedAt != nil {
		return PhaseCompleted
	}
	if now.Before(start) {
		return PhaseNotStarted
	}
	if now.After(end) {
		return PhaseExpired
	}
	return PhaseOpen
}

// Remaining returns the time left until end, never negative.
func Remaining(now, end time.Time) time.Duration {
	if d := end.Sub(now); d > 0 {
		return d
	}
	return 0
}
