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

type UnitRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.UnitMapper
}

func NewUnitRepository(db *gorm.DB) catalog.UnitRepository {
	return &UnitRepositoryImpl{
		db:     db,
		mapper: mappers.NewUnitMapper(),
	}
}

func (r *UnitRepositoryImpl) Create(ctx context.Context, unit *catalog.Unit) error {
	model := r.mapper.ToModel(unit)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("unit already exists")
		}
		return fmt.Errorf("failed to create unit: %w", err)
	}
	unit.SetID(model.ID)
	return nil
}

func (r *UnitRepositoryImpl) Update(ctx context.Context, unit *catalog.Unit) error {
	model := r.mapper.ToModel(unit)
	result := r.db.WithContext(ctx).Model(&models.UnitModel{}).
		Where("unit_id = ?", model.ID).
		Updates(map[string]interface{}{
			"unit_name":   model.Name,
			"unit_symbol": model.Symbol,
			"status":      model.Status,
			"updated_by":  model.UpdatedBy,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update unit: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("unit not found")
	}
	return nil
}

func (r *UnitRepositoryImpl) FindByID(ctx context.Context, id uint) (*catalog.Unit, error) {
	var model models.UnitModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("unit not found")
		}
		return nil, fmt.Errorf("failed to get unit by ID: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *UnitRepositoryImpl) ListActive(ctx context.Context) ([]*catalog.Unit, error) {
	var ms []*models.UnitModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", 1).
		Order("unit_name asc").
		Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	return r.mapper.ToEntities(ms), nil
}

// Delete removes the unit after verifying no addon references it.
func (r *UnitRepositoryImpl) Delete(ctx context.Context, id uint) error {
	var dependents int64
	if err := r.db.WithContext(ctx).Model(&models.AddonModel{}).
		Where("unit_id = ?", id).
		Count(&dependents).Error; err != nil {
		return fmt.Errorf("failed to count addons for unit: %w", err)
	}
	if dependents > 0 {
		return errors.NewDependencyError("unit has associated records")
	}

	result := r.db.WithContext(ctx).Delete(&models.UnitModel{}, id)
	if result.Error != nil {
		if errors.IsForeignKeyError(result.Error) {
			return errors.NewDependencyError("unit has associated records")
		}
		return fmt.Errorf("failed to delete unit: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("unit not found")
	}
	return nil
}
