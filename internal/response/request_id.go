package response

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKeyRequestID is the Gin context key for the request ID.
const ContextKeyRequestID = "request_id"

// requestIDHeader carries the ID between client and server in both
// directions.
const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags every request with an ID and echoes it in the
// response header. A client-supplied ID is kept so a caller can correlate
// its own logs with the response metadata; otherwise a fresh UUID is
// assigned.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(ContextKeyRequestID, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
