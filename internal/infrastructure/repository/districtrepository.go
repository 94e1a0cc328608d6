package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"stayops/internal/domain/location"
	"stayops/internal/infrastructure/persistence/mappers"
	"stayops/internal/infrastructure/persistence/models"
	"stayops/internal/shared/errors"
)

type DistrictRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.DistrictMapper
}

func NewDistrictRepository(db *gorm.DB) location.DistrictRepository {
	return &DistrictRepositoryImpl{
		db:     db,
		mapper: mappers.NewDistrictMapper(),
	}
}

func (r *DistrictRepositoryImpl) Create(ctx context.Context, district *location.District) error {
	var parentCount int64
	if err := r.db.WithContext(ctx).Model(&models.StateModel{}).
		Where("state_id = ?", district.StateID()).
		Count(&parentCount).Error; err != nil {
		return fmt.Errorf("failed to verify state: %w", err)
	}
	if parentCount == 0 {
		return errors.NewValidationError("state not found")
	}

	model := r.mapper.ToModel(district)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("district already exists")
		}
		return fmt.Errorf("failed to create district: %w", err)
	}

	district.SetID(model.ID)
	return nil
}

func (r *DistrictRepositoryImpl) Update(ctx context.Context, district *location.District) error {
	var parentCount int64
	if err := r.db.WithContext(ctx).Model(&models.StateModel{}).
		Where("state_id = ?", district.StateID()).
		Count(&parentCount).Error; err != nil {
		return fmt.Errorf("failed to verify state: %w", err)
	}
	if parentCount == 0 {
		return errors.NewValidationError("state not found")
	}

	model := r.mapper.ToModel(district)
	result := r.db.WithContext(ctx).Model(&models.DistrictModel{}).
		Where("district_id = ?", model.ID).
		Updates(map[string]interface{}{
			"district_name": model.Name,
			"district_code": model.Code,
			"state_id":      model.StateID,
			"description":   model.Description,
			"status":        model.Status,
			"updated_by":    model.UpdatedBy,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update district: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("district not found")
	}
	return nil
}

func (r *DistrictRepositoryImpl) FindByID(ctx context.Context, id uint) (*location.District, error) {
	var model models.DistrictModel
	if err := r.db.WithContext(ctx).Preload("State").First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("district not found")
		}
		return nil, fmt.Errorf("failed to get district by ID: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *DistrictRepositoryImpl) ListActive(ctx context.Context) ([]*location.District, error) {
	var ms []*models.DistrictModel
	if err := r.db.WithContext(ctx).
		Preload("State").
		Where("status = ?", 1).
		Order("district_name asc").
		Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list districts: %w", err)
	}
	return r.mapper.ToEntities(ms), nil
}

// Delete removes the district after verifying no zone references it.
func (r *DistrictRepositoryImpl) Delete(ctx context.Context, id uint) error {
	var dependents int64
	if err := r.db.WithContext(ctx).Model(&models.ZoneModel{}).
		Where("district_id = ?", id).
		Count(&dependents).Error; err != nil {
		return fmt.Errorf("failed to count zones for district: %w", err)
	}
	if dependents > 0 {
		return errors.NewDependencyError("district has associated records")
	}

	result := r.db.WithContext(ctx).Delete(&models.DistrictModel{}, id)
	if result.Error != nil {
		if errors.IsForeignKeyError(result.Error) {
			return errors.NewDependencyError("district has associated records")
		}
		return fmt.Errorf("failed to delete district: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("district not found")
	}
	return nil
}
