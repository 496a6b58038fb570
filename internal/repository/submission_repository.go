package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/examsys/examination-backend/internal/model"
)

// SubmissionRepository relays submissions to the grading routine in the
// database. The routine owns the completion transition: it grades against
// question weights, stamps the assignment submitted exactly once, and
// returns the stored grade idempotently on any repeat call, so concurrent
// double submissions for the same assignment cannot be scored twice.
type SubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewSubmissionRepository creates a new SubmissionRepository.
func NewSubmissionRepository(pool *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{pool: pool}
}

// SubmitAnswers hands the normalized answer set to submit_exam_answers()
// and returns the resulting grade.
func (r *SubmissionRepository) SubmitAnswers(ctx context.Context, studentID, examID int, answers []model.StudentAnswer) (float64, error) {
	payload, err := json.Marshal(answers)
	if err != nil {
		return 0, fmt.Errorf("encode answers: %w", err)
	}

	var grade float64
	err = r.pool.QueryRow(ctx,
		`SELECT submit_exam_answers($1, $2, $3)`,
		studentID, examID, payload,
	).Scan(&grade)
	if err != nil {
		return 0, fmt.Errorf("submit exam answers: %w", err)
	}
	return grade, nil
}
