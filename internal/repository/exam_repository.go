package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/examsys/examination-backend/internal/model"
)

// ExamRepository handles exam and assignment data access.
type ExamRepository struct {
	pool *pgxpool.Pool
}

// NewExamRepository creates a new ExamRepository.
func NewExamRepository(pool *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{pool: pool}
}

const assignedExamColumns = `
	e.id, e.total_grade, e.course_id, c.name, e.start_time, e.end_time,
	a.submitted_at, a.achieved_grade`

// ListAssigned retrieves every exam assigned to a student, with completion
// state, ordered by start time.
func (r *ExamRepository) ListAssigned(ctx context.Context, studentID int) ([]model.AssignedExam, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+assignedExamColumns+`
		 FROM exam_assignments a
		 JOIN exams e ON e.id = a.exam_id
		 JOIN courses c ON c.id = e.course_id
		 WHERE a.student_id = $1
		 ORDER BY e.start_time, e.id`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exams []model.AssignedExam
	for rows.Next() {
		var a model.AssignedExam
		if err := rows.Scan(&a.ID, &a.TotalGrade, &a.CourseID, &a.CourseName,
			&a.StartTime, &a.EndTime, &a.SubmittedAt, &a.AchievedGrade); err != nil {
			return nil, err
		}
		exams = append(exams, a)
	}
	return exams, rows.Err()
}

// GetAssigned retrieves the (student, exam) assignment row together with the
// exam window. No row means ErrNotFound, whether the exam is missing or
// merely not assigned to this student.
func (r *ExamRepository) GetAssigned(ctx context.Context, studentID, examID int) (*model.AssignedExam, error) {
	a := &model.AssignedExam{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+assignedExamColumns+`
		 FROM exam_assignments a
		 JOIN exams e ON e.id = a.exam_id
		 JOIN courses c ON c.id = e.course_id
		 WHERE a.student_id = $1 AND a.exam_id = $2`, studentID, examID,
	).Scan(&a.ID, &a.TotalGrade, &a.CourseID, &a.CourseName,
		&a.StartTime, &a.EndTime, &a.SubmittedAt, &a.AchievedGrade)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}
