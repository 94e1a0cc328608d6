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

type StateRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.StateMapper
}

func NewStateRepository(db *gorm.DB) location.StateRepository {
	return &StateRepositoryImpl{
		db:     db,
		mapper: mappers.NewStateMapper(),
	}
}

func (r *StateRepositoryImpl) Create(ctx context.Context, state *location.State) error {
	var parentCount int64
	if err := r.db.WithContext(ctx).Model(&models.CountryModel{}).
		Where("country_id = ?", state.CountryID()).
		Count(&parentCount).Error; err != nil {
		return fmt.Errorf("failed to verify country: %w", err)
	}
	if parentCount == 0 {
		return errors.NewValidationError("country not found")
	}

	model := r.mapper.ToModel(state)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("state already exists")
		}
		return fmt.Errorf("failed to create state: %w", err)
	}

	state.SetID(model.ID)
	return nil
}

func (r *StateRepositoryImpl) Update(ctx context.Context, state *location.State) error {
	var parentCount int64
	if err := r.db.WithContext(ctx).Model(&models.CountryModel{}).
		Where("country_id = ?", state.CountryID()).
		Count(&parentCount).Error; err != nil {
		return fmt.Errorf("failed to verify country: %w", err)
	}
	if parentCount == 0 {
		return errors.NewValidationError("country not found")
	}

	model := r.mapper.ToModel(state)
	result := r.db.WithContext(ctx).Model(&models.StateModel{}).
		Where("state_id = ?", model.ID).
		Updates(map[string]interface{}{
			"state_name":  model.Name,
			"state_code":  model.Code,
			"country_id":  model.CountryID,
			"description": model.Description,
			"status":      model.Status,
			"updated_by":  model.UpdatedBy,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update state: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("state not found")
	}
	return nil
}

func (r *StateRepositoryImpl) FindByID(ctx context.Context, id uint) (*location.State, error) {
	var model models.StateModel
	if err := r.db.WithContext(ctx).Preload("Country").First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("state not found")
		}
		return nil, fmt.Errorf("failed to get state by ID: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *StateRepositoryImpl) ListActive(ctx context.Context) ([]*location.State, error) {
	var ms []*models.StateModel
	if err := r.db.WithContext(ctx).
		Preload("Country").
		Where("status = ?", 1).
		Order("state_name asc").
		Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list states: %w", err)
	}
	return r.mapper.ToEntities(ms), nil
}

// Delete removes the state after verifying no district references it.
func (r *StateRepositoryImpl) Delete(ctx context.Context, id uint) error {
	var dependents int64
	if err := r.db.WithContext(ctx).Model(&models.DistrictModel{}).
		Where("state_id = ?", id).
		Count(&dependents).Error; err != nil {
		return fmt.Errorf("failed to count districts for state: %w", err)
	}
	if dependents > 0 {
		return errors.NewDependencyError("state has associated records")
	}

	result := r.db.WithContext(ctx).Delete(&models.StateModel{}, id)
	if result.Error != nil {
		if errors.IsForeignKeyError(result.Error) {
			return errors.NewDependencyError("state has associated records")
		}
		return fmt.Errorf("failed to delete state: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("state not found")
	}
	return nil
}
