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

type ZoneRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ZoneMapper
}

func NewZoneRepository(db *gorm.DB) location.ZoneRepository {
	return &ZoneRepositoryImpl{
		db:     db,
		mapper: mappers.NewZoneMapper(),
	}
}

func (r *ZoneRepositoryImpl) Create(ctx context.Context, zone *location.Zone) error {
	var parentCount int64
	if err := r.db.WithContext(ctx).Model(&models.DistrictModel{}).
		Where("district_id = ?", zone.DistrictID()).
		Count(&parentCount).Error; err != nil {
		return fmt.Errorf("failed to verify district: %w", err)
	}
	if parentCount == 0 {
		return errors.NewValidationError("district not found")
	}

	model := r.mapper.ToModel(zone)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("zone already exists")
		}
		return fmt.Errorf("failed to create zone: %w", err)
	}

	zone.SetID(model.ID)
	return nil
}

func (r *ZoneRepositoryImpl) Update(ctx context.Context, zone *location.Zone) error {
	var parentCount int64
	if err := r.db.WithContext(ctx).Model(&models.DistrictModel{}).
		Where("district_id = ?", zone.DistrictID()).
		Count(&parentCount).Error; err != nil {
		return fmt.Errorf("failed to verify district: %w", err)
	}
	if parentCount == 0 {
		return errors.NewValidationError("district not found")
	}

	model := r.mapper.ToModel(zone)
	result := r.db.WithContext(ctx).Model(&models.ZoneModel{}).
		Where("zone_id = ?", model.ID).
		Updates(map[string]interface{}{
			"zone_name":   model.Name,
			"zone_code":   model.Code,
			"district_id": model.DistrictID,
			"description": model.Description,
			"status":      model.Status,
			"updated_by":  model.UpdatedBy,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update zone: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("zone not found")
	}
	return nil
}

func (r *ZoneRepositoryImpl) FindByID(ctx context.Context, id uint) (*location.Zone, error) {
	var model models.ZoneModel
	if err := r.db.WithContext(ctx).Preload("District").First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("zone not found")
		}
		return nil, fmt.Errorf("failed to get zone by ID: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *ZoneRepositoryImpl) ListActive(ctx context.Context) ([]*location.Zone, error) {
	var ms []*models.ZoneModel
	if err := r.db.WithContext(ctx).
		Preload("District").
		Where("status = ?", 1).
		Order("zone_name asc").
		Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	return r.mapper.ToEntities(ms), nil
}

// Delete removes the zone after verifying no agent or hotel is
// registered in it.
func (r *ZoneRepositoryImpl) Delete(ctx context.Context, id uint) error {
	var agentCount int64
	if err := r.db.WithContext(ctx).Model(&models.AgentModel{}).
		Where("zone_id = ?", id).
		Count(&agentCount).Error; err != nil {
		return fmt.Errorf("failed to count agents for zone: %w", err)
	}
	var hotelCount int64
	if err := r.db.WithContext(ctx).Model(&models.HotelModel{}).
		Where("zone_id = ?", id).
		Count(&hotelCount).Error; err != nil {
		return fmt.Errorf("failed to count hotels for zone: %w", err)
	}
	if agentCount > 0 || hotelCount > 0 {
		return errors.NewDependencyError("zone has associated records")
	}

	result := r.db.WithContext(ctx).Delete(&models.ZoneModel{}, id)
	if result.Error != nil {
		if errors.IsForeignKeyError(result.Error) {
			return errors.NewDependencyError("zone has associated records")
		}
		return fmt.Errorf("failed to delete zone: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("zone not found")
	}
	return nil
}
