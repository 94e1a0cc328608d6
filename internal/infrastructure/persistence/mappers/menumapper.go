package mappers

import (
	"stayops/internal/domain/menu"
	"stayops/internal/domain/shared"
	"stayops/internal/infrastructure/persistence/models"
)

// MenuItemMapper converts menu items together with their owned
// variant and addon-link rows.
type MenuItemMapper interface {
	ToEntity(model *models.MenuItemModel) *menu.MenuItem
	ToModel(entity *menu.MenuItem) *models.MenuItemModel
	ToEntities(models []*models.MenuItemModel) []*menu.MenuItem

	// ToVariantModels builds fresh variant rows for the given menu ID.
	ToVariantModels(menuID uint, variants []menu.Variant) []models.MenuVariantModel

	// ToAddonModels builds fresh addon-link rows for the given menu ID.
	ToAddonModels(menuID uint, addonIDs []uint) []models.MenuAddonModel
}

type menuItemMapper struct{}

func NewMenuItemMapper() MenuItemMapper {
	return &menuItemMapper{}
}

func (m *menuItemMapper) ToEntity(model *models.MenuItemModel) *menu.MenuItem {
	if model == nil {
		return nil
	}

	categoryName := ""
	if model.Category != nil {
		categoryName = model.Category.Name
	}

	variants := make([]menu.Variant, 0, len(model.Variants))
	for _, v := range model.Variants {
		variants = append(variants, menu.Variant{
			VariantType: v.VariantType,
			Rate:        v.Rate,
		})
	}

	addonIDs := make([]uint, 0, len(model.Addons))
	for _, a := range model.Addons {
		addonIDs = append(addonIDs, a.AddonID)
	}

	return menu.ReconstructMenuItem(
		model.ID,
		model.Ref,
		model.Name,
		model.Description,
		model.CategoryID,
		categoryName,
		model.FoodType,
		model.ImageURL,
		shared.Status(model.Status),
		model.CreatedBy,
		model.UpdatedBy,
		model.CreatedAt,
		model.UpdatedAt,
		variants,
		addonIDs,
	)
}

// ToModel maps only the parent row; variant and addon rows are built
// separately so the repository controls the delete-then-insert order.
func (m *menuItemMapper) ToModel(entity *menu.MenuItem) *models.MenuItemModel {
	if entity == nil {
		return nil
	}
	return &models.MenuItemModel{
		ID:          entity.ID(),
		Ref:         entity.Ref(),
		Name:        entity.Name(),
		Description: entity.Description(),
		CategoryID:  entity.CategoryID(),
		FoodType:    entity.FoodType(),
		ImageURL:    entity.ImageURL(),
		Status:      uint8(entity.Status()),
		CreatedBy:   entity.CreatedBy(),
		UpdatedBy:   entity.UpdatedBy(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

func (m *menuItemMapper) ToEntities(ms []*models.MenuItemModel) []*menu.MenuItem {
	entities := make([]*menu.MenuItem, 0, len(ms))
	for _, model := range ms {
		if e := m.ToEntity(model); e != nil {
			entities = append(entities, e)
		}
	}
	return entities
}

func (m *menuItemMapper) ToVariantModels(menuID uint, variants []menu.Variant) []models.MenuVariantModel {
	rows := make([]models.MenuVariantModel, 0, len(variants))
	for _, v := range variants {
		rows = append(rows, models.MenuVariantModel{
			MenuID:      menuID,
			VariantType: v.VariantType,
			Rate:        v.Rate,
		})
	}
	return rows
}

func (m *menuItemMapper) ToAddonModels(menuID uint, addonIDs []uint) []models.MenuAddonModel {
	rows := make([]models.MenuAddonModel, 0, len(addonIDs))
	for _, addonID := range addonIDs {
		rows = append(rows, models.MenuAddonModel{
			MenuID:  menuID,
			AddonID: addonID,
		})
	}
	return rows
}
