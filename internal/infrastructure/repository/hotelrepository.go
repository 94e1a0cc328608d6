package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"stayops/internal/domain/actor"
	"stayops/internal/infrastructure/persistence/mappers"
	"stayops/internal/infrastructure/persistence/models"
	"stayops/internal/shared/biztime"
	"stayops/internal/shared/errors"
)

type HotelRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.HotelMapper
}

func NewHotelRepository(db *gorm.DB) actor.HotelRepository {
	return &HotelRepositoryImpl{
		db:     db,
		mapper: mappers.NewHotelMapper(),
	}
}

func (r *HotelRepositoryImpl) Create(ctx context.Context, hotel *actor.Hotel) error {
	model, err := r.mapper.ToModel(hotel)
	if err != nil {
		return fmt.Errorf("failed to map hotel entity to model: %w", err)
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("email already registered")
		}
		return fmt.Errorf("failed to create hotel: %w", err)
	}
	hotel.SetID(model.ID)
	return nil
}

func (r *HotelRepositoryImpl) Update(ctx context.Context, hotel *actor.Hotel) error {
	model, err := r.mapper.ToModel(hotel)
	if err != nil {
		return fmt.Errorf("failed to map hotel entity to model: %w", err)
	}
	result := r.db.WithContext(ctx).Model(&models.HotelModel{}).
		Where("hotel_id = ?", model.ID).
		Updates(map[string]interface{}{
			"hotel_name":      model.Name,
			"phone":           model.Phone,
			"address":         model.Address,
			"country_id":      model.CountryID,
			"state_id":        model.StateID,
			"district_id":     model.DistrictID,
			"zone_id":         model.ZoneID,
			"opening_time":    model.OpeningTime,
			"closing_time":    model.ClosingTime,
			"operating_hours": model.OperatingHours,
			"gst_number":      model.GSTNumber,
			"pan_number":      model.PANNumber,
			"aadhar_number":   model.AadharNumber,
			"owner_name":      model.OwnerName,
			"agent_id":        model.AgentID,
			"status":          model.Status,
			"updated_at":      model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update hotel: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("hotel not found")
	}
	return nil
}

func (r *HotelRepositoryImpl) FindByID(ctx context.Context, id uint) (*actor.Hotel, error) {
	var model models.HotelModel
	if err := r.db.WithContext(ctx).
		Preload("Country").
		Preload("State").
		Preload("District").
		Preload("Zone").
		First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("hotel not found")
		}
		return nil, fmt.Errorf("failed to get hotel by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *HotelRepositoryImpl) FindByEmail(ctx context.Context, email string) (*actor.Hotel, error) {
	var model models.HotelModel
	if err := r.db.WithContext(ctx).
		Preload("Country").
		Preload("State").
		Preload("District").
		Preload("Zone").
		Where("email = ?", email).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("hotel not found")
		}
		return nil, fmt.Errorf("failed to get hotel by email: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *HotelRepositoryImpl) ListActive(ctx context.Context) ([]*actor.Hotel, error) {
	var ms []*models.HotelModel
	if err := r.db.WithContext(ctx).
		Preload("Country").
		Preload("State").
		Preload("District").
		Preload("Zone").
		Where("status = ?", 1).
		Order("hotel_name asc").
		Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	return r.mapper.ToEntities(ms)
}

func (r *HotelRepositoryImpl) ListByAgentID(ctx context.Context, agentID uint) ([]*actor.Hotel, error) {
	var ms []*models.HotelModel
	if err := r.db.WithContext(ctx).
		Preload("Country").
		Preload("State").
		Preload("District").
		Preload("Zone").
		Where("agent_id = ? AND status = ?", agentID, 1).
		Order("hotel_name asc").
		Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list hotels by agent: %w", err)
	}
	return r.mapper.ToEntities(ms)
}

// Delete is a soft delete; menu data and audit rows keep pointing at
// the hotel row.
func (r *HotelRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&models.HotelModel{}).
		Where("hotel_id = ? AND status = ?", id, 1).
		Updates(map[string]interface{}{
			"status":     0,
			"updated_at": biztime.NowUTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to delete hotel: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("hotel not found")
	}
	return nil
}
