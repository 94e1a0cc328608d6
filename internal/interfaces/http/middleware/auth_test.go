package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayops/internal/infrastructure/auth"
	"stayops/internal/shared/authorization"
	"stayops/internal/shared/logger"
)

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)   {}
func (noopLogger) Info(msg string, args ...any)    {}
func (noopLogger) Warn(msg string, args ...any)    {}
func (noopLogger) Error(msg string, args ...any)   {}
func (l noopLogger) With(args ...any) logger.Interface { return l }
func (l noopLogger) Named(name string) logger.Interface { return l }

const testSecret = "middleware-test-secret"

func newAuthTestRouter(t *testing.T, roles ...authorization.ActorRole) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := NewAuthMiddleware(auth.NewJWTService(testSecret, 1), noopLogger{})
	engine := gin.New()
	group := engine.Group("/", m.RequireAuth())
	if len(roles) > 0 {
		group.Use(m.RequireRole(roles...))
	}
	group.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"actor_id": ActorIDFromContext(c)})
	})
	return engine
}

func doRequest(engine *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	engine := newAuthTestRouter(t)
	w := doRequest(engine, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_BadScheme(t *testing.T) {
	engine := newAuthTestRouter(t)
	w := doRequest(engine, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	engine := newAuthTestRouter(t)
	token, err := auth.NewJWTService(testSecret, 1).
		Generate(7, "ravi@example.com", "Ravi Kumar", authorization.RoleAgent)
	require.NoError(t, err)

	w := doRequest(engine, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"actor_id":7`)
}

// A well-signed token whose role claim names no known actor table must
// not pass the gate.
func TestRequireAuth_UnknownRoleRejected(t *testing.T) {
	engine := newAuthTestRouter(t)

	now := time.Now().UTC()
	claims := &auth.Claims{
		ActorID: 7,
		Email:   "ravi@example.com",
		Name:    "Ravi Kumar",
		Role:    authorization.ActorRole("concierge"),
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	w := doRequest(engine, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	engine := newAuthTestRouter(t, authorization.RoleSuperadmin)
	jwtService := auth.NewJWTService(testSecret, 1)

	adminToken, err := jwtService.Generate(1, "root@example.com", "Root", authorization.RoleSuperadmin)
	require.NoError(t, err)
	agentToken, err := jwtService.Generate(2, "ravi@example.com", "Ravi Kumar", authorization.RoleAgent)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doRequest(engine, "Bearer "+adminToken).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(engine, "Bearer "+agentToken).Code)
}
