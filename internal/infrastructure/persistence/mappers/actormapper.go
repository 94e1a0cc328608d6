package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"stayops/internal/domain/actor"
	"stayops/internal/domain/shared"
	"stayops/internal/infrastructure/persistence/models"
)

type SuperadminMapper interface {
	ToEntity(model *models.SuperadminModel) *actor.Superadmin
	ToModel(entity *actor.Superadmin) *models.SuperadminModel
}

type superadminMapper struct{}

func NewSuperadminMapper() SuperadminMapper {
	return &superadminMapper{}
}

func (m *superadminMapper) ToEntity(model *models.SuperadminModel) *actor.Superadmin {
	if model == nil {
		return nil
	}
	return actor.ReconstructSuperadmin(
		model.ID,
		model.Name,
		model.Email,
		model.Password,
		shared.Status(model.Status),
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *superadminMapper) ToModel(entity *actor.Superadmin) *models.SuperadminModel {
	if entity == nil {
		return nil
	}
	return &models.SuperadminModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		Email:     entity.Email(),
		Password:  entity.Password(),
		Status:    uint8(entity.Status()),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

// AgentMapper carries the territory names into the entity when the
// model was loaded with Preload.
type AgentMapper interface {
	ToEntity(model *models.AgentModel) *actor.Agent
	ToModel(entity *actor.Agent) *models.AgentModel
	ToEntities(models []*models.AgentModel) []*actor.Agent
}

type agentMapper struct{}

func NewAgentMapper() AgentMapper {
	return &agentMapper{}
}

func (m *agentMapper) ToEntity(model *models.AgentModel) *actor.Agent {
	if model == nil {
		return nil
	}
	var countryName, stateName, districtName, zoneName string
	if model.Country != nil {
		countryName = model.Country.Name
	}
	if model.State != nil {
		stateName = model.State.Name
	}
	if model.District != nil {
		districtName = model.District.Name
	}
	if model.Zone != nil {
		zoneName = model.Zone.Name
	}
	return actor.ReconstructAgent(
		model.ID,
		model.Ref,
		model.Name,
		model.Email,
		model.Password,
		model.Phone,
		model.CountryID,
		model.StateID,
		model.DistrictID,
		model.ZoneID,
		countryName,
		stateName,
		districtName,
		zoneName,
		shared.Status(model.Status),
		model.CreatedBy,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *agentMapper) ToModel(entity *actor.Agent) *models.AgentModel {
	if entity == nil {
		return nil
	}
	return &models.AgentModel{
		ID:         entity.ID(),
		Ref:        entity.Ref(),
		Name:       entity.Name(),
		Email:      entity.Email(),
		Password:   entity.Password(),
		Phone:      entity.Phone(),
		CountryID:  entity.CountryID(),
		StateID:    entity.StateID(),
		DistrictID: entity.DistrictID(),
		ZoneID:     entity.ZoneID(),
		Status:     uint8(entity.Status()),
		CreatedBy:  entity.CreatedByID(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}
}

func (m *agentMapper) ToEntities(ms []*models.AgentModel) []*actor.Agent {
	entities := make([]*actor.Agent, 0, len(ms))
	for _, model := range ms {
		if e := m.ToEntity(model); e != nil {
			entities = append(entities, e)
		}
	}
	return entities
}

// HotelMapper additionally marshals the operating hours JSON column.
type HotelMapper interface {
	ToEntity(model *models.HotelModel) (*actor.Hotel, error)
	ToModel(entity *actor.Hotel) (*models.HotelModel, error)
	ToEntities(models []*models.HotelModel) ([]*actor.Hotel, error)
}

type hotelMapper struct{}

func NewHotelMapper() HotelMapper {
	return &hotelMapper{}
}

func (m *hotelMapper) ToEntity(model *models.HotelModel) (*actor.Hotel, error) {
	if model == nil {
		return nil, nil
	}

	var hours actor.OperatingHours
	if len(model.OperatingHours) > 0 {
		if err := json.Unmarshal(model.OperatingHours, &hours); err != nil {
			return nil, fmt.Errorf("failed to unmarshal operating hours: %w", err)
		}
	}

	var countryName, stateName, districtName, zoneName string
	if model.Country != nil {
		countryName = model.Country.Name
	}
	if model.State != nil {
		stateName = model.State.Name
	}
	if model.District != nil {
		districtName = model.District.Name
	}
	if model.Zone != nil {
		zoneName = model.Zone.Name
	}

	var agentID uint
	if model.AgentID != nil {
		agentID = *model.AgentID
	}

	details := actor.HotelDetails{
		Phone:          model.Phone,
		Address:        model.Address,
		OpeningTime:    model.OpeningTime,
		ClosingTime:    model.ClosingTime,
		OperatingHours: hours,
		GSTNumber:      model.GSTNumber,
		PANNumber:      model.PANNumber,
		AadharNumber:   model.AadharNumber,
		OwnerName:      model.OwnerName,
		AgentID:        agentID,
	}

	return actor.ReconstructHotel(
		model.ID,
		model.Ref,
		model.Name,
		model.Email,
		model.Password,
		model.CountryID,
		model.StateID,
		model.DistrictID,
		model.ZoneID,
		countryName,
		stateName,
		districtName,
		zoneName,
		details,
		shared.Status(model.Status),
		model.CreatedBy,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *hotelMapper) ToModel(entity *actor.Hotel) (*models.HotelModel, error) {
	if entity == nil {
		return nil, nil
	}

	var hours datatypes.JSON
	if entity.OperatingHours() != nil {
		raw, err := json.Marshal(entity.OperatingHours())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal operating hours: %w", err)
		}
		hours = raw
	}

	var agentID *uint
	if id := entity.AgentID(); id != 0 {
		agentID = &id
	}

	return &models.HotelModel{
		ID:             entity.ID(),
		Ref:            entity.Ref(),
		Name:           entity.Name(),
		Email:          entity.Email(),
		Password:       entity.Password(),
		Phone:          entity.Phone(),
		Address:        entity.Address(),
		CountryID:      entity.CountryID(),
		StateID:        entity.StateID(),
		DistrictID:     entity.DistrictID(),
		ZoneID:         entity.ZoneID(),
		OpeningTime:    entity.OpeningTime(),
		ClosingTime:    entity.ClosingTime(),
		OperatingHours: hours,
		GSTNumber:      entity.GSTNumber(),
		PANNumber:      entity.PANNumber(),
		AadharNumber:   entity.AadharNumber(),
		OwnerName:      entity.OwnerName(),
		AgentID:        agentID,
		Status:         uint8(entity.Status()),
		CreatedBy:      entity.CreatedByID(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

func (m *hotelMapper) ToEntities(ms []*models.HotelModel) ([]*actor.Hotel, error) {
	entities := make([]*actor.Hotel, 0, len(ms))
	for _, model := range ms {
		e, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		if e != nil {
			entities = append(entities, e)
		}
	}
	return entities, nil
}
