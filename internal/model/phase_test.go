package model

import (
	"testing"
	"time"
)

func TestComputePhase(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)
	submitted := start.Add(30 * time.Minute)

	tests := []struct {
		name        string
		now         time.Time
		submittedAt *time.Time
		want        Phase
	}{
		{"before window", start.Add(-time.Hour), nil, PhaseNotStarted},
		{"one second before start", start.Add(-time.Second), nil, PhaseNotStarted},
		{"exactly at start", start, nil, PhaseOpen},
		{"inside window", start.Add(time.Hour), nil, PhaseOpen},
		{"exactly at end", end, nil, PhaseOpen},
		{"one second after end", end.Add(time.Second), nil, PhaseExpired},
		{"long after end", end.Add(24 * time.Hour), nil, PhaseExpired},
		{"submitted inside window", start.Add(45 * time.Minute), &submitted, PhaseCompleted},
		{"submitted wins over not started", start.Add(-time.Hour), &submitted, PhaseCompleted},
		{"submitted wins over expired", end.Add(time.Hour), &submitted, PhaseCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePhase(tt.now, start, end, tt.submittedAt)
			if got != tt.want {
				t.Errorf("ComputePhase(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestRemaining(t *testing.T) {
	end := time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)

	if got := Remaining(end.Add(-90*time.Second), end); got != 90*time.Second {
		t.Errorf("Remaining before end = %v, want 90s", got)
	}
	if got := Remaining(end, end); got != 0 {
		t.Errorf("Remaining at end = %v, want 0", got)
	}
	if got := Remaining(end.Add(time.Minute), end); got != 0 {
		t.Errorf("Remaining after end = %v, want 0", got)
	}
}

func TestAssignedExamCompleted(t *testing.T) {
	var a AssignedExam
	if a.Completed() {
		t.Error("fresh assignment reported completed")
	}
	now := time.Now()
	a.SubmittedAt = &now
	if !a.Completed() {
		t.Error("submitted assignment not reported completed")
	}
}
