package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"stayops/internal/domain/menu"
	"stayops/internal/infrastructure/persistence/mappers"
	"stayops/internal/infrastructure/persistence/models"
	"stayops/internal/shared/db"
	"stayops/internal/shared/errors"
)

// MenuRepositoryImpl writes menu items together with their owned
// variant and addon-link rows. All write methods pick up the
// transaction carried in ctx, so the coordinator in the application
// layer controls atomicity across the three tables.
type MenuRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.MenuItemMapper
}

func NewMenuRepository(database *gorm.DB) menu.Repository {
	return &MenuRepositoryImpl{
		db:     database,
		mapper: mappers.NewMenuItemMapper(),
	}
}

func (r *MenuRepositoryImpl) Create(ctx context.Context, item *menu.MenuItem) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := r.mapper.ToModel(item)
	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("menu item already exists")
		}
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	item.SetID(model.ID)

	if variants := r.mapper.ToVariantModels(model.ID, item.Variants()); len(variants) > 0 {
		if err := tx.Create(&variants).Error; err != nil {
			return fmt.Errorf("failed to create menu variants: %w", err)
		}
	}
	if links := r.mapper.ToAddonModels(model.ID, item.AddonIDs()); len(links) > 0 {
		if err := tx.Create(&links).Error; err != nil {
			return fmt.Errorf("failed to create menu addon links: %w", err)
		}
	}
	return nil
}

// Update rewrites the parent scalars and replaces the full variant
// and addon-link sets. Child rows are deleted and re-inserted rather
// than merged.
func (r *MenuRepositoryImpl) Update(ctx context.Context, item *menu.MenuItem) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := r.mapper.ToModel(item)
	result := tx.Model(&models.MenuItemModel{}).
		Where("menu_id = ?", model.ID).
		Updates(map[string]interface{}{
			"menu_name":   model.Name,
			"description": model.Description,
			"category_id": model.CategoryID,
			"food_type":   model.FoodType,
			"image_url":   model.ImageURL,
			"status":      model.Status,
			"updated_by":  model.UpdatedBy,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update menu item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("menu item not found")
	}

	if err := tx.Where("menu_id = ?", model.ID).Delete(&models.MenuVariantModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear menu variants: %w", err)
	}
	if err := tx.Where("menu_id = ?", model.ID).Delete(&models.MenuAddonModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear menu addon links: %w", err)
	}

	if variants := r.mapper.ToVariantModels(model.ID, item.Variants()); len(variants) > 0 {
		if err := tx.Create(&variants).Error; err != nil {
			return fmt.Errorf("failed to create menu variants: %w", err)
		}
	}
	if links := r.mapper.ToAddonModels(model.ID, item.AddonIDs()); len(links) > 0 {
		if err := tx.Create(&links).Error; err != nil {
			return fmt.Errorf("failed to create menu addon links: %w", err)
		}
	}
	return nil
}

func (r *MenuRepositoryImpl) FindByID(ctx context.Context, id uint) (*menu.MenuItem, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.MenuItemModel
	if err := tx.
		Preload("Category").
		Preload("Variants").
		Preload("Addons").
		First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("menu item not found")
		}
		return nil, fmt.Errorf("failed to get menu item by ID: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *MenuRepositoryImpl) ListActive(ctx context.Context) ([]*menu.MenuItem, error) {
	var ms []*models.MenuItemModel
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Variants").
		Preload("Addons").
		Where("status = ?", 1).
		Order("menu_name asc").
		Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return r.mapper.ToEntities(ms), nil
}

// Delete removes the parent with its owned rows. Children go first so
// no orphan survives a mid-delete failure inside the transaction.
func (r *MenuRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var exists int64
	if err := tx.Model(&models.MenuItemModel{}).
		Where("menu_id = ?", id).
		Count(&exists).Error; err != nil {
		return fmt.Errorf("failed to check menu item: %w", err)
	}
	if exists == 0 {
		return errors.NewNotFoundError("menu item not found")
	}

	if err := tx.Where("menu_id = ?", id).Delete(&models.MenuVariantModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete menu variants: %w", err)
	}
	if err := tx.Where("menu_id = ?", id).Delete(&models.MenuAddonModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete menu addon links: %w", err)
	}
	if err := tx.Delete(&models.MenuItemModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	return nil
}

func (r *MenuRepositoryImpl) ReplaceAddonLinks(ctx context.Context, id uint, addonIDs []uint, updatedBy uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var exists int64
	if err := tx.Model(&models.MenuItemModel{}).
		Where("menu_id = ?", id).
		Count(&exists).Error; err != nil {
		return fmt.Errorf("failed to check menu item: %w", err)
	}
	if exists == 0 {
		return errors.NewNotFoundError("menu item not found")
	}

	if err := tx.Where("menu_id = ?", id).Delete(&models.MenuAddonModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear menu addon links: %w", err)
	}
	if links := r.mapper.ToAddonModels(id, addonIDs); len(links) > 0 {
		if err := tx.Create(&links).Error; err != nil {
			return fmt.Errorf("failed to create menu addon links: %w", err)
		}
	}

	if err := tx.Model(&models.MenuItemModel{}).
		Where("menu_id = ?", id).
		Update("updated_by", updatedBy).Error; err != nil {
		return fmt.Errorf("failed to stamp menu item: %w", err)
	}
	return nil
}

func (r *MenuRepositoryImpl) CountByCategoryID(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.MenuItemModel{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count menu items by category: %w", err)
	}
	return count, nil
}

func (r *MenuRepositoryImpl) CountByAddonID(ctx context.Context, addonID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.MenuAddonModel{}).
		Where("addon_id = ?", addonID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count menu links by addon: %w", err)
	}
	return count, nil
}

// ExistingAddonIDs returns the subset of addonIDs that exist and are
// active. The coordinator compares lengths to reject unknown addons
// before any row is written.
func (r *MenuRepositoryImpl) ExistingAddonIDs(ctx context.Context, addonIDs []uint) ([]uint, error) {
	if len(addonIDs) == 0 {
		return nil, nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	var found []uint
	if err := tx.Model(&models.AddonModel{}).
		Where("addon_id IN ? AND status = ?", addonIDs, 1).
		Pluck("addon_id", &found).Error; err != nil {
		return nil, fmt.Errorf("failed to look up addons: %w", err)
	}
	return found, nil
}
