package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/examsys/examination-backend/internal/config"
	"github.com/examsys/examination-backend/internal/handler"
	"github.com/examsys/examination-backend/internal/middleware"
	"github.com/examsys/examination-backend/internal/response"
	"github.com/examsys/examination-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth *handler.AuthHandler
	Exam *handler.ExamHandler
	WS   *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// Cookie auth needs credentials, which cannot be combined with a
	// wildcard origin; the allow-all branch is a dev convenience only.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for the login route (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── Auth Group ────────────────────────────────────────────────────
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/login", authLimiter.Middleware(), handlers.Auth.Login)
		auth.POST("/logout", middleware.RequireSession(authService, cfg.CookieName), handlers.Auth.Logout)
		auth.GET("/me", middleware.RequireSession(authService, cfg.CookieName), handlers.Auth.Me)
	}

	// ─── Exam Group (Session Required) ─────────────────────────────────
	exams := router.Group("/api/v1/exams")
	exams.Use(middleware.RequireSession(authService, cfg.CookieName))
	{
		exams.GET("", handlers.Exam.ListExams)
		exams.GET("/:exam_id/questions", handlers.Exam.GetQuestions)
		exams.POST("/:exam_id/submit", handlers.Exam.Submit)
		exams.GET("/:exam_id/status", handlers.Exam.GetStatus)
	}

	// ─── WebSocket Group ───────────────────────────────────────────────
	wsGroup := router.Group("/ws/v1")
	wsGroup.Use(middleware.RequireWSSession(authService, cfg.CookieName))
	{
		wsGroup.GET("/exams/:exam_id/countdown", handlers.WS.ExamCountdownStream)
	}

	return router
}
