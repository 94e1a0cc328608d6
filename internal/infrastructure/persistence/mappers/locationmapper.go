package mappers

import (
	"stayops/internal/domain/location"
	"stayops/internal/domain/shared"
	"stayops/internal/infrastructure/persistence/models"
)

// CountryMapper handles the conversion between domain entities and
// persistence models.
type CountryMapper interface {
	ToEntity(model *models.CountryModel) *location.Country
	ToModel(entity *location.Country) *models.CountryModel
	ToEntities(models []*models.CountryModel) []*location.Country
}

type countryMapper struct{}

func NewCountryMapper() CountryMapper {
	return &countryMapper{}
}

func (m *countryMapper) ToEntity(model *models.CountryModel) *location.Country {
	if model == nil {
		return nil
	}
	return location.ReconstructCountry(
		model.ID,
		model.Name,
		model.Code,
		model.Capital,
		shared.Status(model.Status),
		model.CreatedBy,
		model.UpdatedBy,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *countryMapper) ToModel(entity *location.Country) *models.CountryModel {
	if entity == nil {
		return nil
	}
	return &models.CountryModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		Code:      entity.Code(),
		Capital:   entity.Capital(),
		Status:    uint8(entity.Status()),
		CreatedBy: entity.CreatedBy(),
		UpdatedBy: entity.UpdatedBy(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *countryMapper) ToEntities(ms []*models.CountryModel) []*location.Country {
	entities := make([]*location.Country, 0, len(ms))
	for _, model := range ms {
		if e := m.ToEntity(model); e != nil {
			entities = append(entities, e)
		}
	}
	return entities
}

// StateMapper converts states; the parent country name is carried
// into the entity when the model was loaded with Preload.
type StateMapper interface {
	ToEntity(model *models.StateModel) *location.State
	ToModel(entity *location.State) *models.StateModel
	ToEntities(models []*models.StateModel) []*location.State
}

type stateMapper struct{}

func NewStateMapper() StateMapper {
	return &stateMapper{}
}

func (m *stateMapper) ToEntity(model *models.StateModel) *location.State {
	if model == nil {
		return nil
	}
	countryName := ""
	if model.Country != nil {
		countryName = model.Country.Name
	}
	return location.ReconstructState(
		model.ID,
		model.Name,
		model.Code,
		model.CountryID,
		countryName,
		model.Description,
		shared.Status(model.Status),
		model.CreatedBy,
		model.UpdatedBy,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *stateMapper) ToModel(entity *location.State) *models.StateModel {
	if entity == nil {
		return nil
	}
	return &models.StateModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Code:        entity.Code(),
		CountryID:   entity.CountryID(),
		Description: entity.Description(),
		Status:      uint8(entity.Status()),
		CreatedBy:   entity.CreatedBy(),
		UpdatedBy:   entity.UpdatedBy(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

func (m *stateMapper) ToEntities(ms []*models.StateModel) []*location.State {
	entities := make([]*location.State, 0, len(ms))
	for _, model := range ms {
		if e := m.ToEntity(model); e != nil {
			entities = append(entities, e)
		}
	}
	return entities
}

type DistrictMapper interface {
	ToEntity(model *models.DistrictModel) *location.District
	ToModel(entity *location.District) *models.DistrictModel
	ToEntities(models []*models.DistrictModel) []*location.District
}

type districtMapper struct{}

func NewDistrictMapper() DistrictMapper {
	return &districtMapper{}
}

func (m *districtMapper) ToEntity(model *models.DistrictModel) *location.District {
	if model == nil {
		return nil
	}
	stateName := ""
	if model.State != nil {
		stateName = model.State.Name
	}
	return location.ReconstructDistrict(
		model.ID,
		model.Name,
		model.Code,
		model.StateID,
		stateName,
		model.Description,
		shared.Status(model.Status),
		model.CreatedBy,
		model.UpdatedBy,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *districtMapper) ToModel(entity *location.District) *models.DistrictModel {
	if entity == nil {
		return nil
	}
	return &models.DistrictModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Code:        entity.Code(),
		StateID:     entity.StateID(),
		Description: entity.Description(),
		Status:      uint8(entity.Status()),
		CreatedBy:   entity.CreatedBy(),
		UpdatedBy:   entity.UpdatedBy(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

func (m *districtMapper) ToEntities(ms []*models.DistrictModel) []*location.District {
	entities := make([]*location.District, 0, len(ms))
	for _, model := range ms {
		if e := m.ToEntity(model); e != nil {
			entities = append(entities, e)
		}
	}
	return entities
}

type ZoneMapper interface {
	ToEntity(model *models.ZoneModel) *location.Zone
	ToModel(entity *location.Zone) *models.ZoneModel
	ToEntities(models []*models.ZoneModel) []*location.Zone
}

type zoneMapper struct{}

func NewZoneMapper() ZoneMapper {
	return &zoneMapper{}
}

func (m *zoneMapper) ToEntity(model *models.ZoneModel) *location.Zone {
	if model == nil {
		return nil
	}
	districtName := ""
	if model.District != nil {
		districtName = model.District.Name
	}
	return location.ReconstructZone(
		model.ID,
		model.Name,
		model.Code,
		model.DistrictID,
		districtName,
		model.Description,
		shared.Status(model.Status),
		model.CreatedBy,
		model.UpdatedBy,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *zoneMapper) ToModel(entity *location.Zone) *models.ZoneModel {
	if entity == nil {
		return nil
	}
	return &models.ZoneModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Code:        entity.Code(),
		DistrictID:  entity.DistrictID(),
		Description: entity.Description(),
		Status:      uint8(entity.Status()),
		CreatedBy:   entity.CreatedBy(),
		UpdatedBy:   entity.UpdatedBy(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

func (m *zoneMapper) ToEntities(ms []*models.ZoneModel) []*location.Zone {
	entities := make([]*location.Zone, 0, len(ms))
	for _, model := range ms {
		if e := m.ToEntity(model); e != nil {
			entities = append(entities, e)
		}
	}
	return entities
}
