package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayops/internal/application/menu/dto"
	"stayops/internal/interfaces/http/handlers/testutil"
	"stayops/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateMenuItemUC struct {
	result *dto.MenuItemResponse
	err    error
}

func (m *mockCreateMenuItemUC) Execute(ctx context.Context, req dto.CreateMenuItemRequest, actorID uint) (*dto.MenuItemResponse, error) {
	return m.result, m.err
}

type mockUpdateMenuItemUC struct {
	result *dto.MenuItemResponse
	err    error
}

func (m *mockUpdateMenuItemUC) Execute(ctx context.Context, id uint, req dto.UpdateMenuItemRequest, actorID uint) (*dto.MenuItemResponse, error) {
	return m.result, m.err
}

type mockDeleteMenuItemUC struct {
	err error
}

func (m *mockDeleteMenuItemUC) Execute(ctx context.Context, id uint) error {
	return m.err
}

type mockGetMenuItemUC struct {
	result *dto.MenuItemResponse
	err    error
}

func (m *mockGetMenuItemUC) Execute(ctx context.Context, id uint) (*dto.MenuItemResponse, error) {
	return m.result, m.err
}

type mockListMenuItemsUC struct {
	result []*dto.MenuItemResponse
	err    error
}

func (m *mockListMenuItemsUC) Execute(ctx context.Context) ([]*dto.MenuItemResponse, error) {
	return m.result, m.err
}

type mockReplaceMenuAddonsUC struct {
	result *dto.MenuItemResponse
	err    error
}

func (m *mockReplaceMenuAddonsUC) Execute(ctx context.Context, id uint, req dto.ReplaceMenuAddonsRequest, actorID uint) (*dto.MenuItemResponse, error) {
	return m.result, m.err
}

type mockExportMenuUC struct {
	data     []byte
	filename string
	err      error
}

func (m *mockExportMenuUC) Execute(ctx context.Context) ([]byte, string, error) {
	return m.data, m.filename, m.err
}

// =====================================================================
// Test helpers
// =====================================================================

func testMenuItemResponse() *dto.MenuItemResponse {
	return &dto.MenuItemResponse{
		ID:           1,
		Ref:          "mnu_abc123",
		Name:         "Paneer Tikka",
		CategoryID:   2,
		CategoryName: "Starters",
		FoodType:     "veg",
		Status:       1,
		Variants: []dto.VariantResponse{
			{VariantType: "half", Rate: 120},
			{VariantType: "full", Rate: 220},
		},
		AddonIDs:  []uint{3},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func newTestMenuHandler(
	createUC CreateMenuItemExecutor,
	updateUC UpdateMenuItemExecutor,
	deleteUC DeleteMenuItemExecutor,
	getUC GetMenuItemExecutor,
	listUC ListMenuItemsExecutor,
	replaceUC ReplaceMenuAddonsExecutor,
	exportUC ExportMenuExecutor,
) *MenuHandler {
	return NewMenuHandler(createUC, updateUC, deleteUC, getUC, listUC, replaceUC, exportUC)
}

func rate(v float64) *float64 { return &v }

// =====================================================================
// Create
// =====================================================================

func TestMenuHandler_Create_Success(t *testing.T) {
	mockUC := &mockCreateMenuItemUC{result: testMenuItemResponse()}
	handler := newTestMenuHandler(mockUC, nil, nil, nil, nil, nil, nil)

	reqBody := dto.CreateMenuItemRequest{
		Name:       "Paneer Tikka",
		CategoryID: 2,
		FoodType:   "veg",
		Variants: []dto.VariantInput{
			{VariantType: "half", Rate: rate(120)},
			{VariantType: "full", Rate: rate(220)},
		},
		AddonIDs: []uint{3},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/menu-items", reqBody)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var item dto.MenuItemResponse
	require.NoError(t, json.Unmarshal(resp.Data, &item))
	assert.Equal(t, "mnu_abc123", item.Ref)
	assert.Len(t, item.Variants, 2)
}

func TestMenuHandler_Create_MissingVariants(t *testing.T) {
	handler := newTestMenuHandler(&mockCreateMenuItemUC{}, nil, nil, nil, nil, nil, nil)

	reqBody := map[string]interface{}{
		"menu_name":   "Paneer Tikka",
		"category_id": 2,
		"food_type":   "veg",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/menu-items", reqBody)

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestMenuHandler_Create_InvalidFoodType(t *testing.T) {
	handler := newTestMenuHandler(&mockCreateMenuItemUC{}, nil, nil, nil, nil, nil, nil)

	reqBody := map[string]interface{}{
		"menu_name":   "Paneer Tikka",
		"category_id": 2,
		"food_type":   "vegan",
		"variants":    []map[string]interface{}{{"variant_type": "full", "rate": 220}},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/menu-items", reqBody)

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMenuHandler_Create_UseCaseError(t *testing.T) {
	mockUC := &mockCreateMenuItemUC{err: errors.NewValidationError("category not found")}
	handler := newTestMenuHandler(mockUC, nil, nil, nil, nil, nil, nil)

	reqBody := dto.CreateMenuItemRequest{
		Name:       "Paneer Tikka",
		CategoryID: 99,
		FoodType:   "veg",
		Variants:   []dto.VariantInput{{VariantType: "full", Rate: rate(220)}},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/menu-items", reqBody)

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "category not found", resp.Error.Message)
}

// =====================================================================
// Update
// =====================================================================

func TestMenuHandler_Update_Success(t *testing.T) {
	mockUC := &mockUpdateMenuItemUC{result: testMenuItemResponse()}
	handler := newTestMenuHandler(nil, mockUC, nil, nil, nil, nil, nil)

	status := uint8(1)
	reqBody := dto.UpdateMenuItemRequest{
		Name:       "Paneer Tikka",
		CategoryID: 2,
		FoodType:   "veg",
		Status:     &status,
		Variants:   []dto.VariantInput{{VariantType: "full", Rate: rate(240)}},
	}
	c, w := testutil.NewTestContext(http.MethodPut, "/menu-items/1", reqBody)
	testutil.SetURLParam(c, "id", "1")

	handler.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMenuHandler_Update_NotFound(t *testing.T) {
	mockUC := &mockUpdateMenuItemUC{err: errors.NewNotFoundError("menu item not found")}
	handler := newTestMenuHandler(nil, mockUC, nil, nil, nil, nil, nil)

	status := uint8(1)
	reqBody := dto.UpdateMenuItemRequest{
		Name:       "Paneer Tikka",
		CategoryID: 2,
		FoodType:   "veg",
		Status:     &status,
		Variants:   []dto.VariantInput{{VariantType: "full", Rate: rate(240)}},
	}
	c, w := testutil.NewTestContext(http.MethodPut, "/menu-items/999", reqBody)
	testutil.SetURLParam(c, "id", "999")

	handler.Update(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMenuHandler_Update_InvalidID(t *testing.T) {
	handler := newTestMenuHandler(nil, &mockUpdateMenuItemUC{}, nil, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPut, "/menu-items/abc", nil)
	testutil.SetURLParam(c, "id", "abc")

	handler.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// Delete
// =====================================================================

func TestMenuHandler_Delete_Success(t *testing.T) {
	handler := newTestMenuHandler(nil, nil, &mockDeleteMenuItemUC{}, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodDelete, "/menu-items/1", nil)
	testutil.SetURLParam(c, "id", "1")

	handler.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMenuHandler_Delete_NotFound(t *testing.T) {
	mockUC := &mockDeleteMenuItemUC{err: errors.NewNotFoundError("menu item not found")}
	handler := newTestMenuHandler(nil, nil, mockUC, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodDelete, "/menu-items/999", nil)
	testutil.SetURLParam(c, "id", "999")

	handler.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// Get / List
// =====================================================================

func TestMenuHandler_Get_Success(t *testing.T) {
	mockUC := &mockGetMenuItemUC{result: testMenuItemResponse()}
	handler := newTestMenuHandler(nil, nil, nil, mockUC, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/menu-items/1", nil)
	testutil.SetURLParam(c, "id", "1")

	handler.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var item dto.MenuItemResponse
	require.NoError(t, json.Unmarshal(resp.Data, &item))
	assert.Equal(t, []uint{3}, item.AddonIDs)
}

func TestMenuHandler_List_Success(t *testing.T) {
	mockUC := &mockListMenuItemsUC{result: []*dto.MenuItemResponse{testMenuItemResponse()}}
	handler := newTestMenuHandler(nil, nil, nil, nil, mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/menu-items", nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var items []dto.MenuItemResponse
	require.NoError(t, json.Unmarshal(resp.Data, &items))
	assert.Len(t, items, 1)
}

// =====================================================================
// ReplaceAddons
// =====================================================================

func TestMenuHandler_ReplaceAddons_Success(t *testing.T) {
	mockUC := &mockReplaceMenuAddonsUC{result: testMenuItemResponse()}
	handler := newTestMenuHandler(nil, nil, nil, nil, nil, mockUC, nil)

	reqBody := dto.ReplaceMenuAddonsRequest{AddonIDs: []uint{3}}
	c, w := testutil.NewTestContext(http.MethodPut, "/menu-items/1/addons", reqBody)
	testutil.SetURLParam(c, "id", "1")

	handler.ReplaceAddons(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMenuHandler_ReplaceAddons_EmptySetAllowed(t *testing.T) {
	item := testMenuItemResponse()
	item.AddonIDs = []uint{}
	mockUC := &mockReplaceMenuAddonsUC{result: item}
	handler := newTestMenuHandler(nil, nil, nil, nil, nil, mockUC, nil)

	reqBody := dto.ReplaceMenuAddonsRequest{AddonIDs: []uint{}}
	c, w := testutil.NewTestContext(http.MethodPut, "/menu-items/1/addons", reqBody)
	testutil.SetURLParam(c, "id", "1")

	handler.ReplaceAddons(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMenuHandler_ReplaceAddons_InvalidAddon(t *testing.T) {
	mockUC := &mockReplaceMenuAddonsUC{err: errors.NewValidationError("addon 42 not found or inactive")}
	handler := newTestMenuHandler(nil, nil, nil, nil, nil, mockUC, nil)

	reqBody := dto.ReplaceMenuAddonsRequest{AddonIDs: []uint{42}}
	c, w := testutil.NewTestContext(http.MethodPut, "/menu-items/1/addons", reqBody)
	testutil.SetURLParam(c, "id", "1")

	handler.ReplaceAddons(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// Export
// =====================================================================

func TestMenuHandler_Export_Success(t *testing.T) {
	mockUC := &mockExportMenuUC{
		data:     []byte("spreadsheet-bytes"),
		filename: "menu-export-1-items.xlsx",
	}
	handler := newTestMenuHandler(nil, nil, nil, nil, nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/menu-items/export", nil)

	handler.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "menu-export-1-items.xlsx")
	assert.Equal(t, []byte("spreadsheet-bytes"), w.Body.Bytes())
}

func TestMenuHandler_Export_Error(t *testing.T) {
	mockUC := &mockExportMenuUC{err: errors.NewInternalError("failed to build export")}
	handler := newTestMenuHandler(nil, nil, nil, nil, nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/menu-items/export", nil)

	handler.Export(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
