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

type AgentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AgentMapper
}

func NewAgentRepository(db *gorm.DB) actor.AgentRepository {
	return &AgentRepositoryImpl{
		db:     db,
		mapper: mappers.NewAgentMapper(),
	}
}

func (r *AgentRepositoryImpl) Create(ctx context.Context, agent *actor.Agent) error {
	model := r.mapper.ToModel(agent)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("email already registered")
		}
		return fmt.Errorf("failed to create agent: %w", err)
	}
	agent.SetID(model.ID)
	return nil
}

func (r *AgentRepositoryImpl) Update(ctx context.Context, agent *actor.Agent) error {
	model := r.mapper.ToModel(agent)
	result := r.db.WithContext(ctx).Model(&models.AgentModel{}).
		Where("agent_id = ?", model.ID).
		Updates(map[string]interface{}{
			"agent_name":  model.Name,
			"phone":       model.Phone,
			"country_id":  model.CountryID,
			"state_id":    model.StateID,
			"district_id": model.DistrictID,
			"zone_id":     model.ZoneID,
			"status":      model.Status,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update agent: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("agent not found")
	}
	return nil
}

func (r *AgentRepositoryImpl) FindByID(ctx context.Context, id uint) (*actor.Agent, error) {
	var model models.AgentModel
	if err := r.db.WithContext(ctx).
		Preload("Country").
		Preload("State").
		Preload("District").
		Preload("Zone").
		First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("agent not found")
		}
		return nil, fmt.Errorf("failed to get agent by ID: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *AgentRepositoryImpl) FindByEmail(ctx context.Context, email string) (*actor.Agent, error) {
	var model models.AgentModel
	if err := r.db.WithContext(ctx).
		Preload("Country").
		Preload("State").
		Preload("District").
		Preload("Zone").
		Where("email = ?", email).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("agent not found")
		}
		return nil, fmt.Errorf("failed to get agent by email: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *AgentRepositoryImpl) ListActive(ctx context.Context) ([]*actor.Agent, error) {
	var ms []*models.AgentModel
	if err := r.db.WithContext(ctx).
		Preload("Country").
		Preload("State").
		Preload("District").
		Preload("Zone").
		Where("status = ?", 1).
		Order("agent_name asc").
		Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return r.mapper.ToEntities(ms), nil
}

// Delete is a soft delete; the row stays for audit and hotel
// references.
func (r *AgentRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&models.AgentModel{}).
		Where("agent_id = ? AND status = ?", id, 1).
		Updates(map[string]interface{}{
			"status":     0,
			"updated_at": biztime.NowUTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to delete agent: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("agent not found")
	}
	return nil
}
