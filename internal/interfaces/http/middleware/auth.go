package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	infraauth "slotly/internal/infrastructure/auth"
	"slotly/internal/shared/auth"
	"slotly/internal/shared/logger"
	"slotly/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *infraauth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *infraauth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth rejects requests without a valid bearer token and attaches the
// principal to the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		attachPrincipal(c, claims)
		c.Next()
	}
}

// OptionalAuth attaches a principal when a valid token is present and lets
// anonymous requests through. Booking uses this: the widget allows guest
// bookings, which are recorded with an anonymous identity.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			m.logger.Debugw("ignoring invalid token on optional route", "error", err)
			c.Next()
			return
		}

		attachPrincipal(c, claims)
		c.Next()
	}
}

// RequirePermission gates staff operations. It must run after RequireAuth.
func RequirePermission(perm string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := auth.FromContext(c.Request.Context())
		if !ok || !p.HasPermission(perm) {
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func attachPrincipal(c *gin.Context, claims *infraauth.Claims) {
	p := &auth.Principal{
		SubjectID:   claims.Subject,
		Email:       claims.Email,
		Name:        claims.Name,
		Permissions: claims.Permissions,
	}
	c.Request = c.Request.WithContext(auth.NewContext(c.Request.Context(), p))
}
