package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/examsys/examination-backend/internal/config"
	"github.com/examsys/examination-backend/internal/middleware"
	"github.com/examsys/examination-backend/internal/model"
	"github.com/examsys/examination-backend/internal/response"
	"github.com/examsys/examination-backend/internal/service"
	"github.com/examsys/examination-backend/internal/validator"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService *service.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

// Login godoc
// POST /api/v1/auth/login
// Validates email + password and sets the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		case errors.Is(err, service.ErrUnavailable):
			response.Fail(c, http.StatusServiceUnavailable, response.ErrServiceUnavailable)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	h.setSessionCookie(c, token, int(h.cfg.JWTExpiry.Seconds()))

	response.Success(c, http.StatusOK, gin.H{
		"student": gin.H{
			"id":         student.ID,
			"first_name": student.FirstName,
			"last_name":  student.LastName,
			"email":      student.Email,
			"track_id":   student.TrackID,
		},
	})
}

// Logout godoc
// POST /api/v1/auth/logout
// Clears the session cookie. The token itself stays valid until expiry;
// there is no server-side session state to tear down.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	response.Success(c, http.StatusOK, gin.H{})
}

// Me godoc
// GET /api/v1/auth/me
// Returns the identity bound to the verified session token.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrUnauthorized)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"student": gin.H{
			"id":    claims.StudentID,
			"email": claims.Email,
		},
	})
}

// setSessionCookie writes the HTTP-only, same-site-strict session cookie.
// Never readable from client-side scripting.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cfg.CookieName, token, maxAge, "/", "", h.cfg.CookieSecure, true)
}
