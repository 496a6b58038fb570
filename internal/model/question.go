package model

// QuestionType distinguishes multiple-choice from true/false questions.
type QuestionType string

const (
	QuestionTypeMCQ       QuestionType = "MCQ"
	QuestionTypeTrueFalse QuestionType = "TRUE_FALSE"
)

// Question is a single exam question as delivered to a student.
//
// The struct deliberately has no correct-answer field: store rows are
// scanned into this shape, so grading data cannot reach a client payload.
type Question struct {
	ID      int          `json:"id"`
	Type    QuestionType `json:"type"`
	Body    string       `json:"body"`
	Weight  float64      `json:"weight"`
	Order   int          `json:"order"`
	Choices []Choice     `json:"choices"`
}

// Choice is one selectable option of an MCQ question.
type Choice struct {
	QuestionID int    `json:"question_id"`
	Label      string `json:"label"`
	Body       string `json:"body"`
}

// StudentAnswer is a single answered question. Ephemeral: constructed by
// the client, normalized once, handed to grading and discarded.
type StudentAnswer struct {
	QuestionID int    `json:"question_id"`
	Value      string `json:"answer"`
}

// SubmitExamRequest is the submission payload. The client may omit
// unanswered questions; the aggregator fills the gaps.
type SubmitExamRequest struct {
	Answers []StudentAnswer `json:"answers" binding:"dive"`
}
