package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayops/internal/application/location"
	"stayops/internal/interfaces/http/middleware"
	"stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
	"stayops/internal/shared/utils"
)

// LocationHandler serves the country/state/district/zone hierarchy.
type LocationHandler struct {
	countries *location.CountryService
	states    *location.StateService
	districts *location.DistrictService
	zones     *location.ZoneService
	logger    logger.Interface
}

func NewLocationHandler(
	countries *location.CountryService,
	states *location.StateService,
	districts *location.DistrictService,
	zones *location.ZoneService,
) *LocationHandler {
	return &LocationHandler{
		countries: countries,
		states:    states,
		districts: districts,
		zones:     zones,
		logger:    logger.NewLogger(),
	}
}

// --- countries ---

func (h *LocationHandler) CreateCountry(c *gin.Context) {
	var req location.CreateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.countries.Create(c.Request.Context(), req, middleware.ActorIDFromContext(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "country created successfully")
}

func (h *LocationHandler) UpdateCountry(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "country")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req location.UpdateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.countries.Update(c.Request.Context(), id, req, middleware.ActorIDFromContext(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "country updated successfully", result)
}

func (h *LocationHandler) GetCountry(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "country")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.countries.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *LocationHandler) ListCountries(c *gin.Context) {
	result, err := h.countries.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *LocationHandler) DeleteCountry(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "country")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.countries.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "country deleted successfully", nil)
}

// --- states ---

func (h *LocationHandler) CreateState(c *gin.Context) {
	var req location.CreateStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.states.Create(c.Request.Context(), req, middleware.ActorIDFromContext(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "state created successfully")
}

func (h *LocationHandler) UpdateState(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "state")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req location.UpdateStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.states.Update(c.Request.Context(), id, req, middleware.ActorIDFromContext(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "state updated successfully", result)
}

func (h *LocationHandler) GetState(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "state")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.states.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *LocationHandler) ListStates(c *gin.Context) {
	result, err := h.states.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *LocationHandler) DeleteState(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "state")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.states.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "state deleted successfully", nil)
}

// --- districts ---

func (h *LocationHandler) CreateDistrict(c *gin.Context) {
	var req location.CreateDistrictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.districts.Create(c.Request.Context(), req, middleware.ActorIDFromContext(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "district created successfully")
}

func (h *LocationHandler) UpdateDistrict(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "district")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req location.UpdateDistrictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.districts.Update(c.Request.Context(), id, req, middleware.ActorIDFromContext(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "district updated successfully", result)
}

func (h *LocationHandler) GetDistrict(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "district")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.districts.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *LocationHandler) ListDistricts(c *gin.Context) {
	result, err := h.districts.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *LocationHandler) DeleteDistrict(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "district")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.districts.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "district deleted successfully", nil)
}

// --- zones ---

func (h *LocationHandler) CreateZone(c *gin.Context) {
	var req location.CreateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.zones.Create(c.Request.Context(), req, middleware.ActorIDFromContext(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "zone created successfully")
}

func (h *LocationHandler) UpdateZone(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "zone")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req location.UpdateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.zones.Update(c.Request.Context(), id, req, middleware.ActorIDFromContext(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "zone updated successfully", result)
}

func (h *LocationHandler) GetZone(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "zone")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.zones.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *LocationHandler) ListZones(c *gin.Context) {
	result, err := h.zones.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *LocationHandler) DeleteZone(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "zone")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.zones.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "zone deleted successfully", nil)
}
