package mappers

import (
	"stayops/internal/domain/catalog"
	"stayops/internal/domain/shared"
	"stayops/internal/infrastructure/persistence/models"
)

type UnitMapper interface {
	ToEntity(model *models.UnitModel) *catalog.Unit
	ToModel(entity *catalog.Unit) *models.UnitModel
	ToEntities(models []*models.UnitModel) []*catalog.Unit
}

type unitMapper struct{}

func NewUnitMapper() UnitMapper {
	return &unitMapper{}
}

func (m *unitMapper) ToEntity(model *models.UnitModel) *catalog.Unit {
	if model == nil {
		return nil
	}
	return catalog.ReconstructUnit(
		model.ID,
		model.Name,
		model.Symbol,
		shared.Status(model.Status),
		model.CreatedBy,
		model.UpdatedBy,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *unitMapper) ToModel(entity *catalog.Unit) *models.UnitModel {
	if entity == nil {
		return nil
	}
	return &models.UnitModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		Symbol:    entity.Symbol(),
		Status:    uint8(entity.Status()),
		CreatedBy: entity.CreatedBy(),
		UpdatedBy: entity.UpdatedBy(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *unitMapper) ToEntities(ms []*models.UnitModel) []*catalog.Unit {
	entities := make([]*catalog.Unit, 0, len(ms))
	for _, model := range ms {
		if e := m.ToEntity(model); e != nil {
			entities = append(entities, e)
		}
	}
	return entities
}

type CategoryMapper interface {
	ToEntity(model *models.CategoryModel) *catalog.Category
	ToModel(entity *catalog.Category) *models.CategoryModel
	ToEntities(models []*models.CategoryModel) []*catalog.Category
}

type categoryMapper struct{}

func NewCategoryMapper() CategoryMapper {
	return &categoryMapper{}
}

func (m *categoryMapper) ToEntity(model *models.CategoryModel) *catalog.Category {
	if model == nil {
		return nil
	}
	return catalog.ReconstructCategory(
		model.ID,
		model.Name,
		model.Description,
		shared.Status(model.Status),
		model.CreatedBy,
		model.UpdatedBy,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *categoryMapper) ToModel(entity *catalog.Category) *models.CategoryModel {
	if entity == nil {
		return nil
	}
	return &models.CategoryModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		Status:      uint8(entity.Status()),
		CreatedBy:   entity.CreatedBy(),
		UpdatedBy:   entity.UpdatedBy(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

func (m *categoryMapper) ToEntities(ms []*models.CategoryModel) []*catalog.Category {
	entities := make([]*catalog.Category, 0, len(ms))
	for _, model := range ms {
		if e := m.ToEntity(model); e != nil {
			entities = append(entities, e)
		}
	}
	return entities
}

// AddonMapper carries the unit name into the entity when the model
// was loaded with Preload.
type AddonMapper interface {
	ToEntity(model *models.AddonModel) *catalog.Addon
	ToModel(entity *catalog.Addon) *models.AddonModel
	ToEntities(models []*models.AddonModel) []*catalog.Addon
}

type addonMapper struct{}

func NewAddonMapper() AddonMapper {
	return &addonMapper{}
}

func (m *addonMapper) ToEntity(model *models.AddonModel) *catalog.Addon {
	if model == nil {
		return nil
	}
	unitName := ""
	if model.Unit != nil {
		unitName = model.Unit.Name
	}
	return catalog.ReconstructAddon(
		model.ID,
		model.Name,
		model.Rate,
		model.UnitID,
		unitName,
		shared.Status(model.Status),
		model.CreatedBy,
		model.UpdatedBy,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *addonMapper) ToModel(entity *catalog.Addon) *models.AddonModel {
	if entity == nil {
		return nil
	}
	return &models.AddonModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		Rate:      entity.Rate(),
		UnitID:    entity.UnitID(),
		Status:    uint8(entity.Status()),
		CreatedBy: entity.CreatedBy(),
		UpdatedBy: entity.UpdatedBy(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *addonMapper) ToEntities(ms []*models.AddonModel) []*catalog.Addon {
	entities := make([]*catalog.Addon, 0, len(ms))
	for _, model := range ms {
		if e := m.ToEntity(model); e != nil {
			entities = append(entities, e)
		}
	}
	return entities
}
