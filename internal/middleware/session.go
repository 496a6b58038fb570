package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/examsys/examination-backend/internal/response"
	"github.com/examsys/examination-backend/internal/service"
)

// ContextKeyClaims is the Gin context key for session claims.
const ContextKeyClaims = "claims"

// RequireSession validates the session token from the HTTP-only auth
// cookie. The cookie is the only transport location inspected; query
// tokens would end up in access logs.
//
// Every failure (missing, malformed, bad signature, expired) produces the
// same 401 UNAUTHORIZED response.
func RequireSession(authService *service.AuthService, cookieName string) gin.HandlerFunc {
	return requireSession(authService, cookieName, false)
}

// RequireWSSession is RequireSession for the WebSocket group. Browser
// WebSocket clients cannot attach headers, and some cannot attach cookies
// cross-origin, so the token may arrive as the ?token= query parameter.
func RequireWSSession(authService *service.AuthService, cookieName string) gin.HandlerFunc {
	return requireSession(authService, cookieName, true)
}

func requireSession(authService *service.AuthService, cookieName string, allowQueryToken bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, _ := c.Cookie(cookieName)
		if tokenStr == "" && allowQueryToken {
			tokenStr = c.Query("token")
		}
		if tokenStr == "" {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrUnauthorized)
			return
		}

		claims, err := authService.ValidateToken(tokenStr)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrUnauthorized)
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// GetClaims retrieves the session claims from the Gin context.
func GetClaims(c *gin.Context) *service.Claims {
	val, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil
	}
	claims, ok := val.(*service.Claims)
	if !ok {
		return nil
	}
	return claims
}
