package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"stayops/internal/application/auth"
	"stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
	"stayops/internal/shared/utils"
)

// AuthUseCase is the login surface the handler needs; tests swap in
// a mock.
type AuthUseCase interface {
	LoginSuperadmin(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error)
	LoginAgent(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error)
	LoginHotel(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error)
}

type AuthHandler struct {
	service AuthUseCase
	logger  logger.Interface
}

func NewAuthHandler(service AuthUseCase) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.NewLogger(),
	}
}

// LoginSuperadmin handles POST /api/auth/superadmin/login
func (h *AuthHandler) LoginSuperadmin(c *gin.Context) {
	h.login(c, h.service.LoginSuperadmin)
}

// LoginAgent handles POST /api/auth/agent/login
func (h *AuthHandler) LoginAgent(c *gin.Context) {
	h.login(c, h.service.LoginAgent)
}

// LoginHotel handles POST /api/auth/hotel/login
func (h *AuthHandler) LoginHotel(c *gin.Context) {
	h.login(c, h.service.LoginHotel)
}

func (h *AuthHandler) login(c *gin.Context, fn func(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error)) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid login request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("email and password are required"))
		return
	}

	result, err := fn(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", result)
}
