package auth

import (
	"context"
	"strings"

	"stayops/internal/domain/actor"
	infraauth "stayops/internal/infrastructure/auth"
	"stayops/internal/shared/authorization"
	"stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

// PasswordVerifier compares a plaintext candidate against a stored
// hash.
type PasswordVerifier interface {
	Verify(hashedPassword, password string) error
}

// Service runs the three login flows. Unknown email and wrong
// password deliberately produce the identical error so the endpoint
// leaks nothing about which accounts exist.
type Service struct {
	superadmins actor.SuperadminRepository
	agents      actor.AgentRepository
	hotels      actor.HotelRepository
	jwt         *infraauth.JWTService
	hasher      PasswordVerifier
	logger      logger.Interface
}

func NewService(
	superadmins actor.SuperadminRepository,
	agents actor.AgentRepository,
	hotels actor.HotelRepository,
	jwt *infraauth.JWTService,
	hasher PasswordVerifier,
	log logger.Interface,
) *Service {
	return &Service{
		superadmins: superadmins,
		agents:      agents,
		hotels:      hotels,
		jwt:         jwt,
		hasher:      hasher,
		logger:      log,
	}
}

func invalidCredentials() error {
	return errors.NewUnauthorizedError("invalid credentials")
}

func (s *Service) LoginSuperadmin(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	sa, err := s.superadmins.FindByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, invalidCredentials()
		}
		s.logger.Error("superadmin lookup failed", "error", err)
		return nil, err
	}
	if !sa.CanLogin() {
		return nil, invalidCredentials()
	}
	if err := s.hasher.Verify(sa.Password(), req.Password); err != nil {
		return nil, invalidCredentials()
	}

	token, err := s.jwt.Generate(sa.ID(), sa.Email(), sa.Name(), authorization.RoleSuperadmin)
	if err != nil {
		s.logger.Error("token generation failed", "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	s.logger.Info("superadmin logged in", "superadmin_id", sa.ID())
	return &LoginResponse{
		Token:     token,
		ExpiresIn: s.jwt.ExpiryHours() * 3600,
		Actor: Actor{
			ID:    sa.ID(),
			Name:  sa.Name(),
			Email: sa.Email(),
			Role:  string(authorization.RoleSuperadmin),
		},
	}, nil
}

func (s *Service) LoginAgent(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	agent, err := s.agents.FindByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, invalidCredentials()
		}
		s.logger.Error("agent lookup failed", "error", err)
		return nil, err
	}
	if !agent.CanLogin() {
		return nil, invalidCredentials()
	}
	if err := s.hasher.Verify(agent.Password(), req.Password); err != nil {
		return nil, invalidCredentials()
	}

	token, err := s.jwt.Generate(agent.ID(), agent.Email(), agent.Name(), authorization.RoleAgent)
	if err != nil {
		s.logger.Error("token generation failed", "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	s.logger.Info("agent logged in", "agent_id", agent.ID(), "agent_ref", agent.Ref())
	return &LoginResponse{
		Token:     token,
		ExpiresIn: s.jwt.ExpiryHours() * 3600,
		Actor: Actor{
			ID:    agent.ID(),
			Ref:   agent.Ref(),
			Name:  agent.Name(),
			Email: agent.Email(),
			Role:  string(authorization.RoleAgent),
		},
	}, nil
}

func (s *Service) LoginHotel(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hotel, err := s.hotels.FindByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, invalidCredentials()
		}
		s.logger.Error("hotel lookup failed", "error", err)
		return nil, err
	}
	if !hotel.CanLogin() {
		return nil, invalidCredentials()
	}
	if err := s.hasher.Verify(hotel.Password(), req.Password); err != nil {
		return nil, invalidCredentials()
	}

	token, err := s.jwt.Generate(hotel.ID(), hotel.Email(), hotel.Name(), authorization.RoleHotel)
	if err != nil {
		s.logger.Error("token generation failed", "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	s.logger.Info("hotel logged in", "hotel_id", hotel.ID(), "hotel_ref", hotel.Ref())
	return &LoginResponse{
		Token:     token,
		ExpiresIn: s.jwt.ExpiryHours() * 3600,
		Actor: Actor{
			ID:    hotel.ID(),
			Ref:   hotel.Ref(),
			Name:  hotel.Name(),
			Email: hotel.Email(),
			Role:  string(authorization.RoleHotel),
		},
	}, nil
}
