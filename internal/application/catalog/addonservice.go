package catalog

import (
	"context"

	"stayops/internal/domain/catalog"
	"stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

type AddonService struct {
	repo   catalog.AddonRepository
	logger logger.Interface
}

func NewAddonService(repo catalog.AddonRepository, log logger.Interface) *AddonService {
	return &AddonService{repo: repo, logger: log}
}

func (s *AddonService) Create(ctx context.Context, req CreateAddonRequest, actorID uint) (*AddonResponse, error) {
	addon, err := catalog.NewAddon(req.Name, *req.Rate, req.UnitID, actorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, addon); err != nil {
		return nil, err
	}

	// re-read so the response carries the unit name
	created, err := s.repo.FindByID(ctx, addon.ID())
	if err != nil {
		return nil, err
	}

	s.logger.Info("addon created", "addon_id", created.ID(), "unit_id", created.UnitID())
	return addonToResponse(created), nil
}

func (s *AddonService) Update(ctx context.Context, id uint, req UpdateAddonRequest, actorID uint) (*AddonResponse, error) {
	addon, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := addon.Update(req.Name, *req.Rate, req.UnitID, statusFrom(req.Status), actorID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, addon); err != nil {
		return nil, err
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return addonToResponse(updated), nil
}

func (s *AddonService) Get(ctx context.Context, id uint) (*AddonResponse, error) {
	addon, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return addonToResponse(addon), nil
}

func (s *AddonService) List(ctx context.Context) ([]*AddonResponse, error) {
	addons, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*AddonResponse, 0, len(addons))
	for _, a := range addons {
		out = append(out, addonToResponse(a))
	}
	return out, nil
}

func (s *AddonService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("addon deleted", "addon_id", id)
	return nil
}

func addonToResponse(a *catalog.Addon) *AddonResponse {
	return &AddonResponse{
		ID:        a.ID(),
		Name:      a.Name(),
		Rate:      a.Rate(),
		UnitID:    a.UnitID(),
		UnitName:  a.UnitName(),
		Status:    uint8(a.Status()),
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
	}
}
