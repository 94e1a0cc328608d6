package usecases

import (
	"context"
	"fmt"

	"stayops/internal/application/menu/dto"
	"stayops/internal/domain/menu"
	"stayops/internal/shared/db"
	"stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

// ReplaceMenuAddonsUseCase swaps the full addon-link set of a menu
// item in one transaction.
type ReplaceMenuAddonsUseCase struct {
	repo      menu.Repository
	txManager *db.TransactionManager
	logger    logger.Interface
}

func NewReplaceMenuAddonsUseCase(repo menu.Repository, txManager *db.TransactionManager, log logger.Interface) *ReplaceMenuAddonsUseCase {
	return &ReplaceMenuAddonsUseCase{
		repo:      repo,
		txManager: txManager,
		logger:    log,
	}
}

func (uc *ReplaceMenuAddonsUseCase) Execute(ctx context.Context, id uint, req dto.ReplaceMenuAddonsRequest, actorID uint) (*dto.MenuItemResponse, error) {
	seen := make(map[uint]struct{}, len(req.AddonIDs))
	for _, addonID := range req.AddonIDs {
		if addonID == 0 {
			return nil, errors.NewValidationError("addon ID must not be zero")
		}
		if _, dup := seen[addonID]; dup {
			return nil, errors.NewValidationError(fmt.Sprintf("duplicate addon ID: %d", addonID))
		}
		seen[addonID] = struct{}{}
	}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := validateAddonIDs(txCtx, uc.repo, req.AddonIDs); err != nil {
			return err
		}
		return uc.repo.ReplaceAddonLinks(txCtx, id, req.AddonIDs, actorID)
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Error("menu addon replace failed", "error", err, "menu_id", id)
		return nil, fmt.Errorf("failed to replace menu addons: %w", err)
	}

	uc.logger.Info("menu addons replaced", "menu_id", id, "addons", len(req.AddonIDs))

	item, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(item), nil
}
