package usecases

import (
	"context"

	"stayops/internal/application/menu/dto"
	"stayops/internal/domain/menu"
	"stayops/internal/shared/logger"
)

type GetMenuItemUseCase struct {
	repo   menu.Repository
	logger logger.Interface
}

func NewGetMenuItemUseCase(repo menu.Repository, log logger.Interface) *GetMenuItemUseCase {
	return &GetMenuItemUseCase{repo: repo, logger: log}
}

func (uc *GetMenuItemUseCase) Execute(ctx context.Context, id uint) (*dto.MenuItemResponse, error) {
	item, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(item), nil
}
