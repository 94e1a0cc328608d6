package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"stayops/internal/domain/actor"
	"stayops/internal/infrastructure/persistence/mappers"
	"stayops/internal/infrastructure/persistence/models"
	"stayops/internal/shared/errors"
)

type SuperadminRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SuperadminMapper
}

func NewSuperadminRepository(db *gorm.DB) actor.SuperadminRepository {
	return &SuperadminRepositoryImpl{
		db:     db,
		mapper: mappers.NewSuperadminMapper(),
	}
}

func (r *SuperadminRepositoryImpl) Create(ctx context.Context, sa *actor.Superadmin) error {
	model := r.mapper.ToModel(sa)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("email already registered")
		}
		return fmt.Errorf("failed to create superadmin: %w", err)
	}
	sa.SetID(model.ID)
	return nil
}

func (r *SuperadminRepositoryImpl) FindByID(ctx context.Context, id uint) (*actor.Superadmin, error) {
	var model models.SuperadminModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("superadmin not found")
		}
		return nil, fmt.Errorf("failed to get superadmin by ID: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *SuperadminRepositoryImpl) FindByEmail(ctx context.Context, email string) (*actor.Superadmin, error) {
	var model models.SuperadminModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("superadmin not found")
		}
		return nil, fmt.Errorf("failed to get superadmin by email: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}
