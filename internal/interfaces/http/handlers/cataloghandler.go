package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayops/internal/application/catalog"
	"stayops/internal/interfaces/http/middleware"
	"stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
	"stayops/internal/shared/utils"
)

// CatalogHandler serves units, categories and addons.
type CatalogHandler struct {
	units      *catalog.UnitService
	categories *catalog.CategoryService
	addons     *catalog.AddonService
	logger     logger.Interface
}

func NewCatalogHandler(
	units *catalog.UnitService,
	categories *catalog.CategoryService,
	addons *catalog.AddonService,
) *CatalogHandler {
	return &CatalogHandler{
		units:      units,
		categories: categories,
		addons:     addons,
		logger:     logger.NewLogger(),
	}
}

// --- units ---

func (h *CatalogHandler) CreateUnit(c *gin.Context) {
	var req catalog.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.units.Create(c.Request.Context(), req, middleware.ActorIDFromContext(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "unit created successfully")
}

func (h *CatalogHandler) UpdateUnit(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "unit")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req catalog.UpdateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.units.Update(c.Request.Context(), id, req, middleware.ActorIDFromContext(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "unit updated successfully", result)
}

func (h *CatalogHandler) GetUnit(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "unit")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.units.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CatalogHandler) ListUnits(c *gin.Context) {
	result, err := h.units.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CatalogHandler) DeleteUnit(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "unit")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.units.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "unit deleted successfully", nil)
}

// --- categories ---

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req catalog.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.categories.Create(c.Request.Context(), req, middleware.ActorIDFromContext(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "category created successfully")
}

func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req catalog.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.categories.Update(c.Request.Context(), id, req, middleware.ActorIDFromContext(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "category updated successfully", result)
}

func (h *CatalogHandler) GetCategory(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.categories.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	result, err := h.categories.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "category deleted successfully", nil)
}

// --- addons ---

func (h *CatalogHandler) CreateAddon(c *gin.Context) {
	var req catalog.CreateAddonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.addons.Create(c.Request.Context(), req, middleware.ActorIDFromContext(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "addon created successfully")
}

func (h *CatalogHandler) UpdateAddon(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "addon")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req catalog.UpdateAddonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.addons.Update(c.Request.Context(), id, req, middleware.ActorIDFromContext(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "addon updated successfully", result)
}

func (h *CatalogHandler) GetAddon(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "addon")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addons.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CatalogHandler) ListAddons(c *gin.Context) {
	result, err := h.addons.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CatalogHandler) DeleteAddon(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "addon")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.addons.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "addon deleted successfully", nil)
}
