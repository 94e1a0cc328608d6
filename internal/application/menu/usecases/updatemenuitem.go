package usecases

import (
	"context"
	"fmt"

	"stayops/internal/application/menu/dto"
	"stayops/internal/domain/catalog"
	"stayops/internal/domain/menu"
	"stayops/internal/domain/shared"
	"stayops/internal/shared/db"
	"stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

// UpdateMenuItemUseCase rewrites the parent row and replaces the
// full variant and addon-link sets in one transaction.
type UpdateMenuItemUseCase struct {
	repo         menu.Repository
	categoryRepo catalog.CategoryRepository
	txManager    *db.TransactionManager
	logger       logger.Interface
}

func NewUpdateMenuItemUseCase(
	repo menu.Repository,
	categoryRepo catalog.CategoryRepository,
	txManager *db.TransactionManager,
	log logger.Interface,
) *UpdateMenuItemUseCase {
	return &UpdateMenuItemUseCase{
		repo:         repo,
		categoryRepo: categoryRepo,
		txManager:    txManager,
		logger:       log,
	}
}

func (uc *UpdateMenuItemUseCase) Execute(ctx context.Context, id uint, req dto.UpdateMenuItemRequest, actorID uint) (*dto.MenuItemResponse, error) {
	status := shared.StatusActive
	if req.Status != nil {
		status = shared.Status(*req.Status)
	}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		// existence check first so a 404 never deletes child rows
		item, err := uc.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}

		if _, err := uc.categoryRepo.FindByID(txCtx, req.CategoryID); err != nil {
			if errors.IsNotFoundError(err) {
				return errors.NewValidationError("category not found")
			}
			return err
		}
		if err := validateAddonIDs(txCtx, uc.repo, req.AddonIDs); err != nil {
			return err
		}

		if err := item.Update(req.Name, req.Description, req.CategoryID, req.FoodType, req.ImageURL, status, actorID); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := item.SetVariants(toDomainVariants(req.Variants)); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := item.SetAddonIDs(req.AddonIDs); err != nil {
			return errors.NewValidationError(err.Error())
		}

		return uc.repo.Update(txCtx, item)
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Error("menu item update failed", "error", err, "menu_id", id)
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}

	uc.logger.Info("menu item updated", "menu_id", id)

	updated, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(updated), nil
}
