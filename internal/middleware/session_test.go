package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/examsys/examination-backend/internal/config"
	"github.com/examsys/examination-backend/internal/model"
	"github.com/examsys/examination-backend/internal/service"
)

const testCookieName = "exam_session"

func newSessionRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWTSecret: "session-test-secret", JWTExpiry: time.Hour}
	authService := service.NewAuthService(cfg, nil)

	token, err := authService.IssueToken(&model.Student{ID: 9, Email: "iris@example.com"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	r := gin.New()
	r.GET("/http", RequireSession(authService, testCookieName), ok)
	r.GET("/ws", RequireWSSession(authService, testCookieName), ok)
	return r, token
}

func TestSessionTokenTransports(t *testing.T) {
	r, token := newSessionRouter(t)

	request := func(path string, cookie bool, query bool) int {
		target := path
		if query {
			target += "?token=" + token
		}
		req := httptest.NewRequest(http.MethodGet, target, nil)
		if cookie {
			req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("cookie accepted everywhere", func(t *testing.T) {
		if code := request("/http", true, false); code != http.StatusOK {
			t.Errorf("http route with cookie: status %d, want 200", code)
		}
		if code := request("/ws", true, false); code != http.StatusOK {
			t.Errorf("ws route with cookie: status %d, want 200", code)
		}
	})

	t.Run("query token only on the ws variant", func(t *testing.T) {
		if code := request("/ws", false, true); code != http.StatusOK {
			t.Errorf("ws route with query token: status %d, want 200", code)
		}
		if code := request("/http", false, true); code != http.StatusUnauthorized {
			t.Errorf("http route with query token: status %d, want 401", code)
		}
	})

	t.Run("no token is 401", func(t *testing.T) {
		if code := request("/http", false, false); code != http.StatusUnauthorized {
			t.Errorf("status %d, want 401", code)
		}
		if code := request("/ws", false, false); code != http.StatusUnauthorized {
			t.Errorf("status %d, want 401", code)
		}
	})
}
