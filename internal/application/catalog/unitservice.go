package catalog

import (
	"context"

	"stayops/internal/domain/catalog"
	"stayops/internal/domain/shared"
	"stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

func statusFrom(p *uint8) shared.Status {
	if p == nil {
		return shared.StatusActive
	}
	return shared.Status(*p)
}

type UnitService struct {
	repo   catalog.UnitRepository
	logger logger.Interface
}

func NewUnitService(repo catalog.UnitRepository, log logger.Interface) *UnitService {
	return &UnitService{repo: repo, logger: log}
}

func (s *UnitService) Create(ctx context.Context, req CreateUnitRequest, actorID uint) (*UnitResponse, error) {
	unit, err := catalog.NewUnit(req.Name, req.Symbol, actorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, unit); err != nil {
		return nil, err
	}

	// re-read so the response reflects the stored row
	created, err := s.repo.FindByID(ctx, unit.ID())
	if err != nil {
		return nil, err
	}

	s.logger.Info("unit created", "unit_id", created.ID())
	return unitToResponse(created), nil
}

func (s *UnitService) Update(ctx context.Context, id uint, req UpdateUnitRequest, actorID uint) (*UnitResponse, error) {
	unit, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := unit.Update(req.Name, req.Symbol, statusFrom(req.Status), actorID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, unit); err != nil {
		return nil, err
	}
	return unitToResponse(unit), nil
}

func (s *UnitService) Get(ctx context.Context, id uint) (*UnitResponse, error) {
	unit, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return unitToResponse(unit), nil
}

func (s *UnitService) List(ctx context.Context) ([]*UnitResponse, error) {
	units, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*UnitResponse, 0, len(units))
	for _, u := range units {
		out = append(out, unitToResponse(u))
	}
	return out, nil
}

func (s *UnitService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("unit deleted", "unit_id", id)
	return nil
}

func unitToResponse(u *catalog.Unit) *UnitResponse {
	return &UnitResponse{
		ID:        u.ID(),
		Name:      u.Name(),
		Symbol:    u.Symbol(),
		Status:    uint8(u.Status()),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}
