package usecases

import (
	"context"
	"fmt"

	"stayops/internal/domain/menu"
	"stayops/internal/shared/db"
	"stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

// DeleteMenuItemUseCase removes a menu item with its owned rows in
// one transaction. The parent existence check runs first so a 404
// never deletes children.
type DeleteMenuItemUseCase struct {
	repo      menu.Repository
	txManager *db.TransactionManager
	logger    logger.Interface
}

func NewDeleteMenuItemUseCase(repo menu.Repository, txManager *db.TransactionManager, log logger.Interface) *DeleteMenuItemUseCase {
	return &DeleteMenuItemUseCase{
		repo:      repo,
		txManager: txManager,
		logger:    log,
	}
}

func (uc *DeleteMenuItemUseCase) Execute(ctx context.Context, id uint) error {
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.repo.Delete(txCtx, id)
	})
	if err != nil {
		if errors.IsAppError(err) {
			return err
		}
		uc.logger.Error("menu item deletion failed", "error", err, "menu_id", id)
		return fmt.Errorf("failed to delete menu item: %w", err)
	}

	uc.logger.Info("menu item deleted", "menu_id", id)
	return nil
}
