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

type CountryRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CountryMapper
}

func NewCountryRepository(db *gorm.DB) location.CountryRepository {
	return &CountryRepositoryImpl{
		db:     db,
		mapper: mappers.NewCountryMapper(),
	}
}

func (r *CountryRepositoryImpl) Create(ctx context.Context, country *location.Country) error {
	model := r.mapper.ToModel(country)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("country code must be unique")
		}
		return fmt.Errorf("failed to create country: %w", err)
	}

	country.SetID(model.ID)
	return nil
}

func (r *CountryRepositoryImpl) Update(ctx context.Context, country *location.Country) error {
	model := r.mapper.ToModel(country)

	result := r.db.WithContext(ctx).Model(&models.CountryModel{}).
		Where("country_id = ?", model.ID).
		Updates(map[string]interface{}{
			"country_name": model.Name,
			"country_code": model.Code,
			"capital":      model.Capital,
			"status":       model.Status,
			"updated_by":   model.UpdatedBy,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return errors.NewConflictError("country code must be unique")
		}
		return fmt.Errorf("failed to update country: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("country not found")
	}
	return nil
}

func (r *CountryRepositoryImpl) FindByID(ctx context.Context, id uint) (*location.Country, error) {
	var model models.CountryModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("country not found")
		}
		return nil, fmt.Errorf("failed to get country by ID: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *CountryRepositoryImpl) ListActive(ctx context.Context) ([]*location.Country, error) {
	var ms []*models.CountryModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", 1).
		Order("country_name asc").
		Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	return r.mapper.ToEntities(ms), nil
}

// Delete removes the country after verifying no state references it.
func (r *CountryRepositoryImpl) Delete(ctx context.Context, id uint) error {
	var dependents int64
	if err := r.db.WithContext(ctx).Model(&models.StateModel{}).
		Where("country_id = ?", id).
		Count(&dependents).Error; err != nil {
		return fmt.Errorf("failed to count states for country: %w", err)
	}
	if dependents > 0 {
		return errors.NewDependencyError("country has associated records")
	}

	result := r.db.WithContext(ctx).Delete(&models.CountryModel{}, id)
	if result.Error != nil {
		if errors.IsForeignKeyError(result.Error) {
			return errors.NewDependencyError("country has associated records")
		}
		return fmt.Errorf("failed to delete country: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("country not found")
	}
	return nil
}
