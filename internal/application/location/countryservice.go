package location

import (
	"context"

	"stayops/internal/domain/location"
	"stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

type CountryService struct {
	repo   location.CountryRepository
	logger logger.Interface
}

func NewCountryService(repo location.CountryRepository, log logger.Interface) *CountryService {
	return &CountryService{repo: repo, logger: log}
}

func (s *CountryService) Create(ctx context.Context, req CreateCountryRequest, actorID uint) (*CountryResponse, error) {
	country, err := location.NewCountry(req.Name, req.Code, req.Capital, actorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, country); err != nil {
		return nil, err
	}

	// re-read so the response reflects the stored row
	created, err := s.repo.FindByID(ctx, country.ID())
	if err != nil {
		return nil, err
	}

	s.logger.Info("country created", "country_id", created.ID(), "code", created.Code())
	return countryToResponse(created), nil
}

func (s *CountryService) Update(ctx context.Context, id uint, req UpdateCountryRequest, actorID uint) (*CountryResponse, error) {
	country, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := country.Update(req.Name, req.Code, req.Capital, statusFrom(req.Status), actorID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, country); err != nil {
		return nil, err
	}

	return countryToResponse(country), nil
}

func (s *CountryService) Get(ctx context.Context, id uint) (*CountryResponse, error) {
	country, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return countryToResponse(country), nil
}

func (s *CountryService) List(ctx context.Context) ([]*CountryResponse, error) {
	countries, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*CountryResponse, 0, len(countries))
	for _, c := range countries {
		out = append(out, countryToResponse(c))
	}
	return out, nil
}

func (s *CountryService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("country deleted", "country_id", id)
	return nil
}

func countryToResponse(c *location.Country) *CountryResponse {
	return &CountryResponse{
		ID:        c.ID(),
		Name:      c.Name(),
		Code:      c.Code(),
		Capital:   c.Capital(),
		Status:    uint8(c.Status()),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}
