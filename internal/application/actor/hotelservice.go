package actor

import (
	"context"

	"stayops/internal/domain/actor"
	"stayops/internal/domain/location"
	"stayops/internal/infrastructure/email"
	"stayops/internal/shared/authorization"
	"stayops/internal/shared/errors"
	"stayops/internal/shared/goroutine"
	"stayops/internal/shared/logger"
)

type HotelService struct {
	repo      actor.HotelRepository
	agents    actor.AgentRepository
	locations *locationChainValidator
	hasher    PasswordHasher
	mailer    email.Sender
	logger    logger.Interface
}

func NewHotelService(
	repo actor.HotelRepository,
	agents actor.AgentRepository,
	countries location.CountryRepository,
	states location.StateRepository,
	districts location.DistrictRepository,
	zones location.ZoneRepository,
	hasher PasswordHasher,
	mailer email.Sender,
	log logger.Interface,
) *HotelService {
	return &HotelService{
		repo:      repo,
		agents:    agents,
		locations: newLocationChainValidator(countries, states, districts, zones),
		hasher:    hasher,
		mailer:    mailer,
		logger:    log,
	}
}

func (s *HotelService) Create(ctx context.Context, req CreateHotelRequest, createdByID uint) (*HotelResponse, error) {
	if err := s.locations.Validate(ctx, req.CountryID, req.StateID, req.DistrictID, req.ZoneID); err != nil {
		return nil, err
	}
	if req.AgentID != 0 {
		agent, err := s.agents.FindByID(ctx, req.AgentID)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return nil, errors.NewValidationError("agent not found")
			}
			return nil, err
		}
		if !agent.Status().IsActive() {
			return nil, errors.NewValidationError("agent is inactive")
		}
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("password hashing failed", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	details := actor.HotelDetails{
		Phone:          req.Phone,
		Address:        req.Address,
		OpeningTime:    req.OpeningTime,
		ClosingTime:    req.ClosingTime,
		OperatingHours: actor.OperatingHours(req.OperatingHours),
		GSTNumber:      req.GSTNumber,
		PANNumber:      req.PANNumber,
		AadharNumber:   req.AadharNumber,
		OwnerName:      req.OwnerName,
		AgentID:        req.AgentID,
	}

	hotel, err := actor.NewHotel(req.Name, req.Email, hashed, req.CountryID, req.StateID, req.DistrictID, req.ZoneID, details, createdByID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, hotel); err != nil {
		return nil, err
	}

	s.logger.Info("hotel created", "hotel_id", hotel.ID(), "hotel_ref", hotel.Ref())

	to, name := hotel.Email(), hotel.Name()
	goroutine.SafeGo(s.logger, "hotel-welcome-email", func() {
		if err := s.mailer.SendWelcomeEmail(to, name, string(authorization.RoleHotel)); err != nil && err != email.ErrEmailServiceNotConfigured {
			s.logger.Warn("welcome email failed", "error", err, "email", to)
		}
	})

	created, err := s.repo.FindByID(ctx, hotel.ID())
	if err != nil {
		return nil, err
	}
	return hotelToResponse(created), nil
}

func (s *HotelService) Update(ctx context.Context, id uint, req UpdateHotelRequest) (*HotelResponse, error) {
	hotel, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.locations.Validate(ctx, req.CountryID, req.StateID, req.DistrictID, req.ZoneID); err != nil {
		return nil, err
	}
	if req.AgentID != 0 {
		if _, err := s.agents.FindByID(ctx, req.AgentID); err != nil {
			if errors.IsNotFoundError(err) {
				return nil, errors.NewValidationError("agent not found")
			}
			return nil, err
		}
	}

	details := actor.HotelDetails{
		Phone:          req.Phone,
		Address:        req.Address,
		OpeningTime:    req.OpeningTime,
		ClosingTime:    req.ClosingTime,
		OperatingHours: actor.OperatingHours(req.OperatingHours),
		GSTNumber:      req.GSTNumber,
		PANNumber:      req.PANNumber,
		AadharNumber:   req.AadharNumber,
		OwnerName:      req.OwnerName,
		AgentID:        req.AgentID,
	}

	status := hotel.Status()
	if req.Status != nil {
		status = statusFrom(req.Status)
	}
	if err := hotel.Update(req.Name, req.CountryID, req.StateID, req.DistrictID, req.ZoneID, details, status); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, hotel); err != nil {
		return nil, err
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return hotelToResponse(updated), nil
}

func (s *HotelService) Get(ctx context.Context, id uint) (*HotelResponse, error) {
	hotel, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return hotelToResponse(hotel), nil
}

func (s *HotelService) List(ctx context.Context) ([]*HotelResponse, error) {
	hotels, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*HotelResponse, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, hotelToResponse(h))
	}
	return out, nil
}

func (s *HotelService) ListByAgent(ctx context.Context, agentID uint) ([]*HotelResponse, error) {
	hotels, err := s.repo.ListByAgentID(ctx, agentID)
	if err != nil {
		return nil, err
	}
	out := make([]*HotelResponse, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, hotelToResponse(h))
	}
	return out, nil
}

func (s *HotelService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("hotel deactivated", "hotel_id", id)
	return nil
}

func hotelToResponse(h *actor.Hotel) *HotelResponse {
	return &HotelResponse{
		ID:             h.ID(),
		Ref:            h.Ref(),
		Name:           h.Name(),
		Email:          h.Email(),
		Phone:          h.Phone(),
		Address:        h.Address(),
		CountryID:      h.CountryID(),
		CountryName:    h.CountryName(),
		StateID:        h.StateID(),
		StateName:      h.StateName(),
		DistrictID:     h.DistrictID(),
		DistrictName:   h.DistrictName(),
		ZoneID:         h.ZoneID(),
		ZoneName:       h.ZoneName(),
		OpeningTime:    h.OpeningTime(),
		ClosingTime:    h.ClosingTime(),
		OperatingHours: h.OperatingHours(),
		GSTNumber:      h.GSTNumber(),
		PANNumber:      h.PANNumber(),
		AadharNumber:   h.AadharNumber(),
		OwnerName:      h.OwnerName(),
		AgentID:        h.AgentID(),
		Status:         uint8(h.Status()),
		CreatedAt:      h.CreatedAt(),
		UpdatedAt:      h.UpdatedAt(),
	}
}
