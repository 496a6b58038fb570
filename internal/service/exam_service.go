package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/examsys/examination-backend/internal/config"
	"github.com/examsys/examination-backend/internal/model"
	"github.com/examsys/examination-backend/internal/repository"
)

// AssignmentStore resolves exam assignments for a student.
type AssignmentStore interface {
	ListAssigned(ctx context.Context, studentID int) ([]model.AssignedExam, error)
	GetAssigned(ctx context.Context, studentID, examID int) (*model.AssignedExam, error)
}

// QuestionStore fetches the flat question and choice rows of an exam.
type QuestionStore interface {
	ListWithChoices(ctx context.Context, examID int) ([]model.Question, []model.Choice, error)
}

// GradingStore is the grading collaborator. It must persist the completion
// transition atomically and behave idempotently for repeat submissions.
type GradingStore interface {
	SubmitAnswers(ctx context.Context, studentID, examID int, answers []model.StudentAnswer) (float64, error)
}

// ExamService implements the exam access guard, the content assembler and
// the submission aggregator. It holds no mutable state between requests;
// all completion state lives in the store.
type ExamService struct {
	assignments AssignmentStore
	questions   QuestionStore
	grading     GradingStore
	rdb         *redis.Client
	log         zerolog.Logger
}

// NewExamService creates a new ExamService. rdb may be nil, which disables
// the assembled-paper cache.
func NewExamService(
	assignments AssignmentStore,
	questions QuestionStore,
	grading GradingStore,
	rdb *redis.Client,
	log zerolog.Logger,
) *ExamService {
	return &ExamService{
		assignments: assignments,
		questions:   questions,
		grading:     grading,
		rdb:         rdb,
		log:         log.With().Str("component", "exam_service").Logger(),
	}
}

// ExamSummary is an exam list entry with the derived phase.
type ExamSummary struct {
	model.AssignedExam
	Phase model.Phase `json:"phase"`
}

// QuestionPaper is the assembled content of an open exam.
type QuestionPaper struct {
	Questions   []model.Question `json:"questions"`
	ExamEndTime time.Time        `json:"exam_end_time"`
}

// ExamStatus is the display-facing window state of an assigned exam.
type ExamStatus struct {
	Phase            model.Phase `json:"phase"`
	RemainingSeconds int64       `json:"remaining_seconds"`
	EndTime          time.Time   `json:"end_time"`
}

// ListExams returns every exam assigned to the student with its phase.
func (s *ExamService) ListExams(ctx context.Context, studentID int) ([]ExamSummary, error) {
	assigned, err := s.assignments.ListAssigned(ctx, studentID)
	if err != nil {
		s.log.Error().Err(err).Int("student_id", studentID).Msg("list assigned exams")
		return nil, fmt.Errorf("list exams: %w", ErrUnavailable)
	}

	now := time.Now()
	summaries := make([]ExamSummary, 0, len(assigned))
	for _, a := range assigned {
		summaries = append(summaries, ExamSummary{
			AssignedExam: a,
			Phase:        model.ComputePhase(now, a.StartTime, a.EndTime, a.SubmittedAt),
		})
	}
	return summaries, nil
}

// CheckAccess decides whether the student may enter the exam right now.
// Only an Open window passes; the returned row carries the end time the
// client needs for its countdown.
func (s *ExamService) CheckAccess(ctx context.Context, studentID, examID int) (*model.AssignedExam, error) {
	row, err := s.getAssigned(ctx, studentID, examID)
	if err != nil {
		return nil, err
	}

	switch model.ComputePhase(time.Now(), row.StartTime, row.EndTime, row.SubmittedAt) {
	case model.PhaseCompleted:
		return nil, ErrAlreadyCompleted
	case model.PhaseNotStarted:
		return nil, ErrNotYetOpen
	case model.PhaseExpired:
		return nil, ErrWindowExpired
	}
	return row, nil
}

// Status reports the current phase and remaining time of an assigned exam.
// Unlike CheckAccess it never rejects on phase; it exists for display.
func (s *ExamService) Status(ctx context.Context, studentID, examID int) (*ExamStatus, error) {
	row, err := s.getAssigned(ctx, studentID, examID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	status := &ExamStatus{
		Phase:   model.ComputePhase(now, row.StartTime, row.EndTime, row.SubmittedAt),
		EndTime: row.EndTime,
	}
	if status.Phase == model.PhaseOpen {
		status.RemainingSeconds = int64(model.Remaining(now, row.EndTime).Seconds())
	}
	return status, nil
}

// GetQuestions assembles the question paper for an open exam. The assembled
// paper is cached in Redis until the window closes; a cache miss or a Redis
// outage falls through to the store.
func (s *ExamService) GetQuestions(ctx context.Context, studentID, examID int) (*QuestionPaper, error) {
	row, err := s.CheckAccess(ctx, studentID, examID)
	if err != nil {
		return nil, err
	}

	if cached := s.cachedPaper(ctx, examID); cached != nil {
		return &QuestionPaper{Questions: cached, ExamEndTime: row.EndTime}, nil
	}

	questions, choices, err := s.questions.ListWithChoices(ctx, examID)
	if err != nil {
		s.log.Error().Err(err).Int("exam_id", examID).Msg("fetch questions")
		return nil, fmt.Errorf("fetch questions: %w", ErrUnavailable)
	}

	assembled := assembleQuestions(questions, choices)
	s.cachePaper(ctx, examID, assembled, row.EndTime)

	return &QuestionPaper{Questions: assembled, ExamEndTime: row.EndTime}, nil
}

// Submit validates the window, normalizes the answer set and relays it to
// the grading collaborator exactly once. Submissions arriving after the
// window close are rejected: the guard that gates question delivery gates
// grading too. A grading failure is an error, never a zero grade.
func (s *ExamService) Submit(ctx context.Context, studentID, examID int, answers []model.StudentAnswer) (float64, error) {
	if _, err := s.CheckAccess(ctx, studentID, examID); err != nil {
		return 0, err
	}

	questions, _, err := s.questions.ListWithChoices(ctx, examID)
	if err != nil {
		s.log.Error().Err(err).Int("exam_id", examID).Msg("fetch questions for submit")
		return 0, fmt.Errorf("fetch questions: %w", ErrUnavailable)
	}

	normalized := NormalizeAnswers(questions, answers)

	grade, err := s.grading.SubmitAnswers(ctx, studentID, examID, normalized)
	if err != nil {
		s.log.Error().Err(err).
			Int("student_id", studentID).
			Int("exam_id", examID).
			Msg("grading failed")
		return 0, fmt.Errorf("grade submission: %w", ErrUnavailable)
	}

	s.log.Info().
		Int("student_id", studentID).
		Int("exam_id", examID).
		Float64("grade", grade).
		Msg("exam submitted")

	return grade, nil
}

// NormalizeAnswers produces one entry per exam question, in the exam's
// question order. Unanswered questions get an empty string; answers for
// unknown question ids are dropped. The last answer wins on duplicates.
func NormalizeAnswers(questions []model.Question, answers []model.StudentAnswer) []model.StudentAnswer {
	byQuestion := make(map[int]string, len(answers))
	for _, a := range answers {
		byQuestion[a.QuestionID] = a.Value
	}

	normalized := make([]model.StudentAnswer, len(questions))
	for i, q := range questions {
		normalized[i] = model.StudentAnswer{
			QuestionID: q.ID,
			Value:      byQuestion[q.ID],
		}
	}
	return normalized
}

// assembleQuestions joins the flat choice rows onto their questions.
// Question order follows the stored position; choices keep the order they
// arrived in. A question without choices gets an empty slice, never nil.
func assembleQuestions(questions []model.Question, choices []model.Choice) []model.Question {
	byQuestion := make(map[int][]model.Choice, len(questions))
	for _, q := range questions {
		byQuestion[q.ID] = []model.Choice{}
	}
	for _, c := range choices {
		if _, ok := byQuestion[c.QuestionID]; !ok {
			continue // orphan choice row
		}
		byQuestion[c.QuestionID] = append(byQuestion[c.QuestionID], c)
	}

	assembled := make([]model.Question, len(questions))
	for i, q := range questions {
		q.Choices = byQuestion[q.ID]
		assembled[i] = q
	}
	return assembled
}

// getAssigned resolves the assignment row, mapping store errors to the
// service taxonomy.
func (s *ExamService) getAssigned(ctx context.Context, studentID, examID int) (*model.AssignedExam, error) {
	if examID <= 0 {
		return nil, ErrInvalidExamID
	}

	row, err := s.assignments.GetAssigned(ctx, studentID, examID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExamNotFound
		}
		s.log.Error().Err(err).
			Int("student_id", studentID).
			Int("exam_id", examID).
			Msg("fetch assignment")
		return nil, fmt.Errorf("fetch assignment: %w", ErrUnavailable)
	}
	return row, nil
}

func (s *ExamService) cachedPaper(ctx context.Context, examID int) []model.Question {
	if s.rdb == nil {
		return nil
	}
	data, err := s.rdb.Get(ctx, config.CacheKey.ExamPaperKey(examID)).Bytes()
	if err != nil {
		return nil
	}
	var questions []model.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil
	}
	return questions
}

func (s *ExamService) cachePaper(ctx context.Context, examID int, questions []model.Question, endTime time.Time) {
	if s.rdb == nil {
		return
	}
	ttl := time.Until(endTime)
	if ttl <= 0 {
		return
	}
	data, err := json.Marshal(questions)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, config.CacheKey.ExamPaperKey(examID), data, ttl).Err(); err != nil {
		s.log.Warn().Err(err).Int("exam_id", examID).Msg("cache paper")
	}
}
