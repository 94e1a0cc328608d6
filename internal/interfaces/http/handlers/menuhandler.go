package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"stayops/internal/application/menu/dto"
	"stayops/internal/interfaces/http/middleware"
	"stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
	"stayops/internal/shared/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type MenuHandler struct {
	createUC        CreateMenuItemExecutor
	updateUC        UpdateMenuItemExecutor
	deleteUC        DeleteMenuItemExecutor
	getUC           GetMenuItemExecutor
	listUC          ListMenuItemsExecutor
	replaceAddonsUC ReplaceMenuAddonsExecutor
	exportUC        ExportMenuExecutor
	logger          logger.Interface
}

func NewMenuHandler(
	createUC CreateMenuItemExecutor,
	updateUC UpdateMenuItemExecutor,
	deleteUC DeleteMenuItemExecutor,
	getUC GetMenuItemExecutor,
	listUC ListMenuItemsExecutor,
	replaceAddonsUC ReplaceMenuAddonsExecutor,
	exportUC ExportMenuExecutor,
) *MenuHandler {
	return &MenuHandler{
		createUC:        createUC,
		updateUC:        updateUC,
		deleteUC:        deleteUC,
		getUC:           getUC,
		listUC:          listUC,
		replaceAddonsUC: replaceAddonsUC,
		exportUC:        exportUC,
		logger:          logger.NewLogger(),
	}
}

// Create handles POST /api/menu-items
func (h *MenuHandler) Create(c *gin.Context) {
	var req dto.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid menu item body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req, middleware.ActorIDFromContext(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "menu item created successfully")
}

// Update handles PUT /api/menu-items/:id
func (h *MenuHandler) Update(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "menu item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), id, req, middleware.ActorIDFromContext(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "menu item updated successfully", result)
}

// Delete handles DELETE /api/menu-items/:id
func (h *MenuHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "menu item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "menu item deleted successfully", nil)
}

// Get handles GET /api/menu-items/:id
func (h *MenuHandler) Get(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "menu item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /api/menu-items
func (h *MenuHandler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ReplaceAddons handles PUT /api/menu-items/:id/addons
func (h *MenuHandler) ReplaceAddons(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "menu item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.ReplaceMenuAddonsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.replaceAddonsUC.Execute(c.Request.Context(), id, req, middleware.ActorIDFromContext(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "menu addons replaced successfully", result)
}

// Export handles GET /api/menu-items/export
func (h *MenuHandler) Export(c *gin.Context) {
	data, filename, err := h.exportUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
