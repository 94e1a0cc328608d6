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

// PasswordHasher hashes plaintext passwords for storage.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type AgentService struct {
	repo      actor.AgentRepository
	locations *locationChainValidator
	hasher    PasswordHasher
	mailer    email.Sender
	logger    logger.Interface
}

func NewAgentService(
	repo actor.AgentRepository,
	countries location.CountryRepository,
	states location.StateRepository,
	districts location.DistrictRepository,
	zones location.ZoneRepository,
	hasher PasswordHasher,
	mailer email.Sender,
	log logger.Interface,
) *AgentService {
	return &AgentService{
		repo:      repo,
		locations: newLocationChainValidator(countries, states, districts, zones),
		hasher:    hasher,
		mailer:    mailer,
		logger:    log,
	}
}

func (s *AgentService) Create(ctx context.Context, req CreateAgentRequest, createdByID uint) (*AgentResponse, error) {
	if err := s.locations.Validate(ctx, req.CountryID, req.StateID, req.DistrictID, req.ZoneID); err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("password hashing failed", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	agent, err := actor.NewAgent(req.Name, req.Email, hashed, req.Phone, req.CountryID, req.StateID, req.DistrictID, req.ZoneID, createdByID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, agent); err != nil {
		return nil, err
	}

	s.logger.Info("agent created", "agent_id", agent.ID(), "agent_ref", agent.Ref())

	// credential email is fire and forget; a mail failure never
	// fails the registration
	to, name := agent.Email(), agent.Name()
	goroutine.SafeGo(s.logger, "agent-welcome-email", func() {
		if err := s.mailer.SendWelcomeEmail(to, name, string(authorization.RoleAgent)); err != nil && err != email.ErrEmailServiceNotConfigured {
			s.logger.Warn("welcome email failed", "error", err, "email", to)
		}
	})

	created, err := s.repo.FindByID(ctx, agent.ID())
	if err != nil {
		return nil, err
	}
	return agentToResponse(created), nil
}

func (s *AgentService) Update(ctx context.Context, id uint, req UpdateAgentRequest) (*AgentResponse, error) {
	agent, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.locations.Validate(ctx, req.CountryID, req.StateID, req.DistrictID, req.ZoneID); err != nil {
		return nil, err
	}

	status := agent.Status()
	if req.Status != nil {
		status = statusFrom(req.Status)
	}
	if err := agent.Update(req.Name, req.Phone, req.CountryID, req.StateID, req.DistrictID, req.ZoneID, status); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, agent); err != nil {
		return nil, err
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return agentToResponse(updated), nil
}

func (s *AgentService) Get(ctx context.Context, id uint) (*AgentResponse, error) {
	agent, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return agentToResponse(agent), nil
}

func (s *AgentService) List(ctx context.Context) ([]*AgentResponse, error) {
	agents, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*AgentResponse, 0, len(agents))
	for _, a := range agents {
		out = append(out, agentToResponse(a))
	}
	return out, nil
}

func (s *AgentService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("agent deactivated", "agent_id", id)
	return nil
}

func agentToResponse(a *actor.Agent) *AgentResponse {
	return &AgentResponse{
		ID:           a.ID(),
		Ref:          a.Ref(),
		Name:         a.Name(),
		Email:        a.Email(),
		Phone:        a.Phone(),
		CountryID:    a.CountryID(),
		CountryName:  a.CountryName(),
		StateID:      a.StateID(),
		StateName:    a.StateName(),
		DistrictID:   a.DistrictID(),
		DistrictName: a.DistrictName(),
		ZoneID:       a.ZoneID(),
		ZoneName:     a.ZoneName(),
		Status:       uint8(a.Status()),
		CreatedAt:    a.CreatedAt(),
		UpdatedAt:    a.UpdatedAt(),
	}
}
