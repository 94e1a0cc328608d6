package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayops/internal/application/auth"
	"stayops/internal/interfaces/http/handlers/testutil"
	"stayops/internal/shared/errors"
)

type mockAuthService struct {
	superadminResult *auth.LoginResponse
	superadminErr    error
	agentResult      *auth.LoginResponse
	agentErr         error
	hotelResult      *auth.LoginResponse
	hotelErr         error
}

func (m *mockAuthService) LoginSuperadmin(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	return m.superadminResult, m.superadminErr
}

func (m *mockAuthService) LoginAgent(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	return m.agentResult, m.agentErr
}

func (m *mockAuthService) LoginHotel(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	return m.hotelResult, m.hotelErr
}

func testLoginResponse(role string) *auth.LoginResponse {
	return &auth.LoginResponse{
		Token:     "test-token",
		ExpiresIn: 86400,
		Actor: auth.Actor{
			ID:    1,
			Name:  "Test Actor",
			Email: "actor@example.com",
			Role:  role,
		},
	}
}

func TestAuthHandler_LoginSuperadmin_Success(t *testing.T) {
	handler := NewAuthHandler(&mockAuthService{superadminResult: testLoginResponse("superadmin")})

	reqBody := auth.LoginRequest{Email: "admin@example.com", Password: "secret123"}
	c, w := testutil.NewTestContext(http.MethodPost, "/auth/superadmin/login", reqBody)

	handler.LoginSuperadmin(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var login auth.LoginResponse
	require.NoError(t, json.Unmarshal(resp.Data, &login))
	assert.Equal(t, "test-token", login.Token)
	assert.Equal(t, 86400, login.ExpiresIn)
	assert.Equal(t, "superadmin", login.Actor.Role)
}

func TestAuthHandler_LoginSuperadmin_InvalidCredentials(t *testing.T) {
	handler := NewAuthHandler(&mockAuthService{
		superadminErr: errors.NewUnauthorizedError("invalid credentials"),
	})

	reqBody := auth.LoginRequest{Email: "admin@example.com", Password: "wrong"}
	c, w := testutil.NewTestContext(http.MethodPost, "/auth/superadmin/login", reqBody)

	handler.LoginSuperadmin(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "invalid credentials", resp.Error.Message)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	handler := NewAuthHandler(&mockAuthService{})

	reqBody := map[string]string{"email": "admin@example.com"}
	c, w := testutil.NewTestContext(http.MethodPost, "/auth/superadmin/login", reqBody)

	handler.LoginSuperadmin(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login_MalformedEmail(t *testing.T) {
	handler := NewAuthHandler(&mockAuthService{})

	reqBody := map[string]string{"email": "not-an-email", "password": "secret123"}
	c, w := testutil.NewTestContext(http.MethodPost, "/auth/superadmin/login", reqBody)

	handler.LoginSuperadmin(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_LoginAgent_Success(t *testing.T) {
	resp := testLoginResponse("agent")
	resp.Actor.Ref = "agt_abc123"
	handler := NewAuthHandler(&mockAuthService{agentResult: resp})

	reqBody := auth.LoginRequest{Email: "agent@example.com", Password: "secret123"}
	c, w := testutil.NewTestContext(http.MethodPost, "/auth/agent/login", reqBody)

	handler.LoginAgent(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &envelope))

	var login auth.LoginResponse
	require.NoError(t, json.Unmarshal(envelope.Data, &login))
	assert.Equal(t, "agt_abc123", login.Actor.Ref)
}

func TestAuthHandler_LoginHotel_Inactive(t *testing.T) {
	handler := NewAuthHandler(&mockAuthService{
		hotelErr: errors.NewUnauthorizedError("invalid credentials"),
	})

	reqBody := auth.LoginRequest{Email: "hotel@example.com", Password: "secret123"}
	c, w := testutil.NewTestContext(http.MethodPost, "/auth/hotel/login", reqBody)

	handler.LoginHotel(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
