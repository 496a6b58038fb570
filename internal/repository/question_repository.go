package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/examsys/examination-backend/internal/model"
)

// QuestionRepository handles question and choice data access.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

// ListWithChoices fetches the flat question rows and flat choice rows for an
// exam in a single batched round trip (two result sets, one call). Questions
// come back in their declared order, choices in insertion order within each
// question. The correct-answer column is never selected.
func (r *QuestionRepository) ListWithChoices(ctx context.Context, examID int) ([]model.Question, []model.Choice, error) {
	batch := &pgx.Batch{}
	batch.Queue(
		`SELECT id, question_type, body, weight, position
		 FROM questions
		 WHERE exam_id = $1
		 ORDER BY position, id`, examID)
	batch.Queue(
		`SELECT ch.question_id, ch.label, ch.body
		 FROM choices ch
		 JOIN questions q ON q.id = ch.question_id
		 WHERE q.exam_id = $1
		 ORDER BY q.position, q.id, ch.id`, examID)

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	questions, err := scanQuestions(results)
	if err != nil {
		return nil, nil, err
	}
	choices, err := scanChoices(results)
	if err != nil {
		return nil, nil, err
	}
	return questions, choices, nil
}

func scanQuestions(results pgx.BatchResults) ([]model.Question, error) {
	rows, err := results.Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []model.Question
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.Type, &q.Body, &q.Weight, &q.Order); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func scanChoices(results pgx.BatchResults) ([]model.Choice, error) {
	rows, err := results.Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var choices []model.Choice
	for rows.Next() {
		var c model.Choice
		if err := rows.Scan(&c.QuestionID, &c.Label, &c.Body); err != nil {
			return nil, err
		}
		choices = append(choices, c)
	}
	return choices, rows.Err()
}
