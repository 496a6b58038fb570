package model

import "time"

// Exam represents a scheduled examination. Owned by the store; read-only here.
type Exam struct {
	ID         int       `json:"id"`
	TotalGrade float64   `json:"total_grade"`
	CourseID   int       `json:"course_id"`
	CourseName string    `json:"course_name"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
}

// AssignedExam binds a student to an exam and carries the completion state.
// The assignment transitions from "not submitted" to "submitted" at most
// once; the transition itself is owned by the grading routine in the store.
type AssignedExam struct {
	Exam
	SubmittedAt   *time.Time `json:"submitted_at,omitempty"`
	AchievedGrade *float64   `json:"achieved_grade,omitempty"`
}

// Completed reports whether the assignment has been submitted.
func (a *AssignedExam) Completed() bool {
	return a.SubmittedAt != nil
}
