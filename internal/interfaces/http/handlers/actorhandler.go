package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayops/internal/application/actor"
	"stayops/internal/interfaces/http/middleware"
	"stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
	"stayops/internal/shared/utils"
)

// ActorHandler serves agent and hotel management. All routes behind
// it are superadmin-only.
type ActorHandler struct {
	agents *actor.AgentService
	hotels *actor.HotelService
	logger logger.Interface
}

func NewActorHandler(agents *actor.AgentService, hotels *actor.HotelService) *ActorHandler {
	return &ActorHandler{
		agents: agents,
		hotels: hotels,
		logger: logger.NewLogger(),
	}
}

// --- agents ---

func (h *ActorHandler) CreateAgent(c *gin.Context) {
	var req actor.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.agents.Create(c.Request.Context(), req, middleware.ActorIDFromContext(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "agent created successfully")
}

func (h *ActorHandler) UpdateAgent(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "agent")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req actor.UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.agents.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "agent updated successfully", result)
}

func (h *ActorHandler) GetAgent(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "agent")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.agents.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ActorHandler) ListAgents(c *gin.Context) {
	result, err := h.agents.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ActorHandler) DeleteAgent(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "agent")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.agents.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "agent deleted successfully", nil)
}

// --- hotels ---

func (h *ActorHandler) CreateHotel(c *gin.Context) {
	var req actor.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.hotels.Create(c.Request.Context(), req, middleware.ActorIDFromContext(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "hotel created successfully")
}

func (h *ActorHandler) UpdateHotel(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "hotel")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req actor.UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.hotels.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "hotel updated successfully", result)
}

func (h *ActorHandler) GetHotel(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "hotel")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.hotels.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListHotels optionally filters by ?agent_id=N.
func (h *ActorHandler) ListHotels(c *gin.Context) {
	if agentParam := c.Query("agent_id"); agentParam != "" {
		agentID, err := utils.ParseUintQuery(c, "agent_id", "agent")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		result, err := h.hotels.ListByAgent(c.Request.Context(), agentID)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "", result)
		return
	}

	result, err := h.hotels.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ActorHandler) DeleteHotel(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "hotel")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.hotels.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "hotel deleted successfully", nil)
}
