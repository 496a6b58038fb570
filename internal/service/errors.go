package service

import "errors"

// Sentinel errors surfaced by the service layer. Handlers translate these
// to HTTP statuses; anything wrapped stays inside the process and only the
// sentinel crosses the boundary.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidExamID      = errors.New("invalid exam id")
	// ErrExamNotFound covers both a nonexistent exam and one not assigned
	// to the requesting student.
	ErrExamNotFound     = errors.New("exam not found")
	ErrAlreadyCompleted = errors.New("exam already completed")
	ErrNotYetOpen       = errors.New("exam has not started yet")
	ErrWindowExpired    = errors.New("exam time has expired")
	// ErrUnavailable marks a collaborator I/O failure. Retryable; never
	// reported as invalid credentials or not-found.
	ErrUnavailable = errors.New("service unavailable")
)
