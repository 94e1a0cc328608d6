package location

import (
	"context"

	"stayops/internal/domain/location"
	"stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

type DistrictService struct {
	repo   location.DistrictRepository
	logger logger.Interface
}

func NewDistrictService(repo location.DistrictRepository, log logger.Interface) *DistrictService {
	return &DistrictService{repo: repo, logger: log}
}

func (s *DistrictService) Create(ctx context.Context, req CreateDistrictRequest, actorID uint) (*DistrictResponse, error) {
	district, err := location.NewDistrict(req.Name, req.Code, req.StateID, req.Description, actorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, district); err != nil {
		return nil, err
	}

	created, err := s.repo.FindByID(ctx, district.ID())
	if err != nil {
		return nil, err
	}

	s.logger.Info("district created", "district_id", created.ID(), "state_id", created.StateID())
	return districtToResponse(created), nil
}

func (s *DistrictService) Update(ctx context.Context, id uint, req UpdateDistrictRequest, actorID uint) (*DistrictResponse, error) {
	district, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := district.Update(req.Name, req.Code, req.StateID, req.Description, statusFrom(req.Status), actorID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, district); err != nil {
		return nil, err
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return districtToResponse(updated), nil
}

func (s *DistrictService) Get(ctx context.Context, id uint) (*DistrictResponse, error) {
	district, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return districtToResponse(district), nil
}

func (s *DistrictService) List(ctx context.Context) ([]*DistrictResponse, error) {
	districts, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*DistrictResponse, 0, len(districts))
	for _, d := range districts {
		out = append(out, districtToResponse(d))
	}
	return out, nil
}

func (s *DistrictService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("district deleted", "district_id", id)
	return nil
}

func districtToResponse(d *location.District) *DistrictResponse {
	return &DistrictResponse{
		ID:          d.ID(),
		Name:        d.Name(),
		Code:        d.Code(),
		StateID:     d.StateID(),
		StateName:   d.StateName(),
		Description: d.Description(),
		Status:      uint8(d.Status()),
		CreatedAt:   d.CreatedAt(),
		UpdatedAt:   d.UpdatedAt(),
	}
}
