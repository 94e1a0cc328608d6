package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"stayops/internal/domain/catalog"
	"stayops/internal/infrastructure/persistence/mappers"
	"stayops/internal/infrastructure/persistence/models"
	"stayops/internal/shared/errors"
)

type AddonRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AddonMapper
}

func NewAddonRepository(db *gorm.DB) catalog.AddonRepository {
	return &AddonRepositoryImpl{
		db:     db,
		mapper: mappers.NewAddonMapper(),
	}
}

func (r *AddonRepositoryImpl) Create(ctx context.Context, addon *catalog.Addon) error {
	var unitCount int64
	if err := r.db.WithContext(ctx).Model(&models.UnitModel{}).
		Where("unit_id = ?", addon.UnitID()).
		Count(&unitCount).Error; err != nil {
		return fmt.Errorf("failed to verify unit: %w", err)
	}
	if unitCount == 0 {
		return errors.NewValidationError("unit not found")
	}

	model := r.mapper.ToModel(addon)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("addon already exists")
		}
		return fmt.Errorf("failed to create addon: %w", err)
	}
	addon.SetID(model.ID)
	return nil
}

func (r *AddonRepositoryImpl) Update(ctx context.Context, addon *catalog.Addon) error {
	var unitCount int64
	if err := r.db.WithContext(ctx).Model(&models.UnitModel{}).
		Where("unit_id = ?", addon.UnitID()).
		Count(&unitCount).Error; err != nil {
		return fmt.Errorf("failed to verify unit: %w", err)
	}
	if unitCount == 0 {
		return errors.NewValidationError("unit not found")
	}

	model := r.mapper.ToModel(addon)
	result := r.db.WithContext(ctx).Model(&models.AddonModel{}).
		Where("addon_id = ?", model.ID).
		Updates(map[string]interface{}{
			"addon_name": model.Name,
			"rate":       model.Rate,
			"unit_id":    model.UnitID,
			"status":     model.Status,
			"updated_by": model.UpdatedBy,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update addon: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("addon not found")
	}
	return nil
}

func (r *AddonRepositoryImpl) FindByID(ctx context.Context, id uint) (*catalog.Addon, error) {
	var model models.AddonModel
	if err := r.db.WithContext(ctx).Preload("Unit").First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("addon not found")
		}
		return nil, fmt.Errorf("failed to get addon by ID: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *AddonRepositoryImpl) ListActive(ctx context.Context) ([]*catalog.Addon, error) {
	var ms []*models.AddonModel
	if err := r.db.WithContext(ctx).
		Preload("Unit").
		Where("status = ?", 1).
		Order("addon_name asc").
		Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list addons: %w", err)
	}
	return r.mapper.ToEntities(ms), nil
}

// Delete removes the addon after verifying no menu item links it.
func (r *AddonRepositoryImpl) Delete(ctx context.Context, id uint) error {
	var dependents int64
	if err := r.db.WithContext(ctx).Model(&models.MenuAddonModel{}).
		Where("addon_id = ?", id).
		Count(&dependents).Error; err != nil {
		return fmt.Errorf("failed to count menu links for addon: %w", err)
	}
	if dependents > 0 {
		return errors.NewDependencyError("addon has associated records")
	}

	result := r.db.WithContext(ctx).Delete(&models.AddonModel{}, id)
	if result.Error != nil {
		if errors.IsForeignKeyError(result.Error) {
			return errors.NewDependencyError("addon has associated records")
		}
		return fmt.Errorf("failed to delete addon: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("addon not found")
	}
	return nil
}
