package actor

import (
	"context"

	"stayops/internal/domain/actor"
	"stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

// SuperadminService creates platform operator accounts. There is no
// HTTP surface for this; it is driven from the CLI.
type SuperadminService struct {
	repo   actor.SuperadminRepository
	hasher PasswordHasher
	logger logger.Interface
}

func NewSuperadminService(repo actor.SuperadminRepository, hasher PasswordHasher, log logger.Interface) *SuperadminService {
	return &SuperadminService{repo: repo, hasher: hasher, logger: log}
}

func (s *SuperadminService) Create(ctx context.Context, name, email, password string) (uint, error) {
	hashed, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("password hashing failed", "error", err)
		return 0, errors.NewInternalError("failed to process password")
	}

	sa, err := actor.NewSuperadmin(name, email, hashed)
	if err != nil {
		return 0, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, sa); err != nil {
		return 0, err
	}

	s.logger.Info("superadmin created", "superadmin_id", sa.ID())
	return sa.ID(), nil
}
