package usecases

import (
	"context"
	"fmt"

	"stayops/internal/application/menu/dto"
	"stayops/internal/domain/catalog"
	"stayops/internal/domain/menu"
	"stayops/internal/shared/db"
	"stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

// CreateMenuItemUseCase writes a menu item with its variants and
// addon links in one transaction. Any failure rolls the whole write
// back; no partial menu ever becomes visible.
type CreateMenuItemUseCase struct {
	repo         menu.Repository
	categoryRepo catalog.CategoryRepository
	txManager    *db.TransactionManager
	logger       logger.Interface
}

func NewCreateMenuItemUseCase(
	repo menu.Repository,
	categoryRepo catalog.CategoryRepository,
	txManager *db.TransactionManager,
	log logger.Interface,
) *CreateMenuItemUseCase {
	return &CreateMenuItemUseCase{
		repo:         repo,
		categoryRepo: categoryRepo,
		txManager:    txManager,
		logger:       log,
	}
}

func (uc *CreateMenuItemUseCase) Execute(ctx context.Context, req dto.CreateMenuItemRequest, actorID uint) (*dto.MenuItemResponse, error) {
	item, err := menu.NewMenuItem(req.Name, req.Description, req.CategoryID, req.FoodType, req.ImageURL, actorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := item.SetVariants(toDomainVariants(req.Variants)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := item.SetAddonIDs(req.AddonIDs); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.categoryRepo.FindByID(txCtx, req.CategoryID); err != nil {
			if errors.IsNotFoundError(err) {
				return errors.NewValidationError("category not found")
			}
			return err
		}
		if err := validateAddonIDs(txCtx, uc.repo, req.AddonIDs); err != nil {
			return err
		}
		return uc.repo.Create(txCtx, item)
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Error("menu item creation failed", "error", err)
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	uc.logger.Info("menu item created",
		"menu_id", item.ID(),
		"menu_ref", item.Ref(),
		"variants", len(item.Variants()),
		"addons", len(item.AddonIDs()),
	)

	created, err := uc.repo.FindByID(ctx, item.ID())
	if err != nil {
		return nil, err
	}
	return toResponse(created), nil
}
