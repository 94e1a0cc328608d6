package location

import (
	"context"

	"stayops/internal/domain/location"
	"stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

type ZoneService struct {
	repo   location.ZoneRepository
	logger logger.Interface
}

func NewZoneService(repo location.ZoneRepository, log logger.Interface) *ZoneService {
	return &ZoneService{repo: repo, logger: log}
}

func (s *ZoneService) Create(ctx context.Context, req CreateZoneRequest, actorID uint) (*ZoneResponse, error) {
	zone, err := location.NewZone(req.Name, req.Code, req.DistrictID, req.Description, actorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, zone); err != nil {
		return nil, err
	}

	created, err := s.repo.FindByID(ctx, zone.ID())
	if err != nil {
		return nil, err
	}

	s.logger.Info("zone created", "zone_id", created.ID(), "district_id", created.DistrictID())
	return zoneToResponse(created), nil
}

func (s *ZoneService) Update(ctx context.Context, id uint, req UpdateZoneRequest, actorID uint) (*ZoneResponse, error) {
	zone, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := zone.Update(req.Name, req.Code, req.DistrictID, req.Description, statusFrom(req.Status), actorID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, zone); err != nil {
		return nil, err
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return zoneToResponse(updated), nil
}

func (s *ZoneService) Get(ctx context.Context, id uint) (*ZoneResponse, error) {
	zone, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return zoneToResponse(zone), nil
}

func (s *ZoneService) List(ctx context.Context) ([]*ZoneResponse, error) {
	zones, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*ZoneResponse, 0, len(zones))
	for _, z := range zones {
		out = append(out, zoneToResponse(z))
	}
	return out, nil
}

func (s *ZoneService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("zone deleted", "zone_id", id)
	return nil
}

func zoneToResponse(z *location.Zone) *ZoneResponse {
	return &ZoneResponse{
		ID:           z.ID(),
		Name:         z.Name(),
		Code:         z.Code(),
		DistrictID:   z.DistrictID(),
		DistrictName: z.DistrictName(),
		Description:  z.Description(),
		Status:       uint8(z.Status()),
		CreatedAt:    z.CreatedAt(),
		UpdatedAt:    z.UpdatedAt(),
	}
}
