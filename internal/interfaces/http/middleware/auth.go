package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stayops/internal/infrastructure/auth"
	"stayops/internal/shared/authorization"
	"stayops/internal/shared/logger"
	"stayops/internal/shared/utils"
)

const (
	// ContextKeyClaims is where RequireAuth stores the verified claims.
	ContextKeyClaims = "auth_claims"
	// ContextKeyActorID is the authenticated actor's numeric ID.
	ContextKeyActorID = "actor_id"
	// ContextKeyActorRole is the authenticated actor's role.
	ContextKeyActorRole = "actor_role"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, log logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     log,
	}
}

// RequireAuth verifies the Bearer token and attaches the claims to
// the gin context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warn("token verification failed", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if !claims.Role.IsValid() {
			m.logger.Warn("token carries unknown role", "role", string(claims.Role))
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Set(ContextKeyActorID, claims.ActorID)
		c.Set(ContextKeyActorRole, claims.Role)
		c.Next()
	}
}

// RequireRole aborts with 403 unless the authenticated actor holds
// one of the given roles. Must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...authorization.ActorRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(ContextKeyActorRole)
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		role, ok := value.(authorization.ActorRole)
		if !ok {
			utils.ErrorResponse(c, http.StatusForbidden, "access denied")
			c.Abort()
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		m.logger.Warn("role check failed", "role", string(role), "path", c.Request.URL.Path)
		utils.ErrorResponse(c, http.StatusForbidden, "access denied")
		c.Abort()
	}
}

// ActorIDFromContext returns the authenticated actor's ID, or zero
// when the request is unauthenticated.
func ActorIDFromContext(c *gin.Context) uint {
	if value, exists := c.Get(ContextKeyActorID); exists {
		if id, ok := value.(uint); ok {
			return id
		}
	}
	return 0
}

// ClaimsFromContext returns the verified claims set by RequireAuth.
func ClaimsFromContext(c *gin.Context) *auth.Claims {
	if value, exists := c.Get(ContextKeyClaims); exists {
		if claims, ok := value.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}
