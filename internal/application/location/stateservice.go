package location

import (
	"context"

	"stayops/internal/domain/location"
	"stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

type StateService struct {
	repo   location.StateRepository
	logger logger.Interface
}

func NewStateService(repo location.StateRepository, log logger.Interface) *StateService {
	return &StateService{repo: repo, logger: log}
}

func (s *StateService) Create(ctx context.Context, req CreateStateRequest, actorID uint) (*StateResponse, error) {
	state, err := location.NewState(req.Name, req.Code, req.CountryID, req.Description, actorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, state); err != nil {
		return nil, err
	}

	// re-read so the response carries the country name
	created, err := s.repo.FindByID(ctx, state.ID())
	if err != nil {
		return nil, err
	}

	s.logger.Info("state created", "state_id", created.ID(), "country_id", created.CountryID())
	return stateToResponse(created), nil
}

func (s *StateService) Update(ctx context.Context, id uint, req UpdateStateRequest, actorID uint) (*StateResponse, error) {
	state, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := state.Update(req.Name, req.Code, req.CountryID, req.Description, statusFrom(req.Status), actorID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, state); err != nil {
		return nil, err
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return stateToResponse(updated), nil
}

func (s *StateService) Get(ctx context.Context, id uint) (*StateResponse, error) {
	state, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return stateToResponse(state), nil
}

func (s *StateService) List(ctx context.Context) ([]*StateResponse, error) {
	states, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*StateResponse, 0, len(states))
	for _, st := range states {
		out = append(out, stateToResponse(st))
	}
	return out, nil
}

func (s *StateService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("state deleted", "state_id", id)
	return nil
}

func stateToResponse(st *location.State) *StateResponse {
	return &StateResponse{
		ID:          st.ID(),
		Name:        st.Name(),
		Code:        st.Code(),
		CountryID:   st.CountryID(),
		CountryName: st.CountryName(),
		Description: st.Description(),
		Status:      uint8(st.Status()),
		CreatedAt:   st.CreatedAt(),
		UpdatedAt:   st.UpdatedAt(),
	}
}
