package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	// ErrUnauthorized covers every session-token failure: missing,
	// malformed, bad signature and expired are indistinguishable to the
	// client.
	ErrUnauthorized ErrCode = "UNAUTHORIZED"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation    ErrCode = "VALIDATION_ERROR"
	ErrInvalidExamID ErrCode = "INVALID_EXAM_ID"

	// ─── Exam state ────────────────────────────────────────────────────
	ErrExamNotFound      ErrCode = "EXAM_NOT_FOUND"
	ErrExamCompleted     ErrCode = "EXAM_ALREADY_COMPLETED"
	ErrExamNotStarted    ErrCode = "EXAM_NOT_STARTED"
	ErrExamWindowExpired ErrCode = "EXAM_WINDOW_EXPIRED"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrServiceUnavailable ErrCode = "SERVICE_UNAVAILABLE"
	ErrInternal           ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrInvalidCredentials:
		return "Email or password is incorrect."
	case ErrUnauthorized:
		return "Authentication required."
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidExamID:
		return "Invalid exam id."
	case ErrExamNotFound:
		return "Exam not found."
	case ErrExamCompleted:
		return "This exam has already been completed."
	case ErrExamNotStarted:
		return "This exam has not started yet."
	case ErrExamWindowExpired:
		return "The exam time window has expired."
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."
	case ErrServiceUnavailable:
		return "The service is temporarily unavailable. Please retry."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
