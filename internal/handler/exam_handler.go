package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/examsys/examination-backend/internal/middleware"
	"github.com/examsys/examination-backend/internal/model"
	"github.com/examsys/examination-backend/internal/response"
	"github.com/examsys/examination-backend/internal/service"
	"github.com/examsys/examination-backend/internal/validator"
)

// ExamHandler handles student-facing exam endpoints.
type ExamHandler struct {
	examService *service.ExamService
}

// NewExamHandler creates a new ExamHandler.
func NewExamHandler(examService *service.ExamService) *ExamHandler {
	return &ExamHandler{examService: examService}
}

// ListExams godoc
// GET /api/v1/exams
// Returns every exam assigned to the student with its current phase.
func (h *ExamHandler) ListExams(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrUnauthorized)
		return
	}

	exams, err := h.examService.ListExams(c.Request.Context(), claims.StudentID)
	if err != nil {
		failExamError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"exams": exams})
}

// GetQuestions godoc
// GET /api/v1/exams/:exam_id/questions
// Returns the assembled question paper when the exam window is open.
func (h *ExamHandler) GetQuestions(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrUnauthorized)
		return
	}

	examID, ok := parseExamID(c)
	if !ok {
		return
	}

	paper, err := h.examService.GetQuestions(c.Request.Context(), claims.StudentID, examID)
	if err != nil {
		failExamError(c, err)
		return
	}

	response.Success(c, http.StatusOK, paper)
}

// Submit godoc
// POST /api/v1/exams/:exam_id/submit
// Accepts the student's answers and returns the grade.
func (h *ExamHandler) Submit(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrUnauthorized)
		return
	}

	examID, ok := parseExamID(c)
	if !ok {
		return
	}

	var req model.SubmitExamRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	grade, err := h.examService.Submit(c.Request.Context(), claims.StudentID, examID, req.Answers)
	if err != nil {
		failExamError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"grade": grade})
}

// GetStatus godoc
// GET /api/v1/exams/:exam_id/status
// Returns the current phase and remaining time for a countdown display.
func (h *ExamHandler) GetStatus(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrUnauthorized)
		return
	}

	examID, ok := parseExamID(c)
	if !ok {
		return
	}

	status, err := h.examService.Status(c.Request.Context(), claims.StudentID, examID)
	if err != nil {
		failExamError(c, err)
		return
	}

	response.Success(c, http.StatusOK, status)
}

// parseExamID reads the exam id from the route parameter, the only
// transport location it may arrive in. Non-numeric and non-positive values
// fail before any store call is made.
func parseExamID(c *gin.Context) (int, bool) {
	examID, err := strconv.Atoi(c.Param("exam_id"))
	if err != nil || examID <= 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidExamID)
		return 0, false
	}
	return examID, true
}

// failExamError maps service sentinels to HTTP responses.
func failExamError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidExamID):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidExamID)
	case errors.Is(err, service.ErrExamNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrExamNotFound)
	case errors.Is(err, service.ErrAlreadyCompleted):
		response.Fail(c, http.StatusBadRequest, response.ErrExamCompleted)
	case errors.Is(err, service.ErrNotYetOpen):
		response.Fail(c, http.StatusBadRequest, response.ErrExamNotStarted)
	case errors.Is(err, service.ErrWindowExpired):
		response.Fail(c, http.StatusBadRequest, response.ErrExamWindowExpired)
	case errors.Is(err, service.ErrUnavailable):
		response.Fail(c, http.StatusServiceUnavailable, response.ErrServiceUnavailable)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
