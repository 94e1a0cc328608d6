package usecases

import (
	"context"

	"stayops/internal/application/menu/dto"
	"stayops/internal/domain/menu"
	"stayops/internal/shared/logger"
)

type ListMenuItemsUseCase struct {
	repo   menu.Repository
	logger logger.Interface
}

func NewListMenuItemsUseCase(repo menu.Repository, log logger.Interface) *ListMenuItemsUseCase {
	return &ListMenuItemsUseCase{repo: repo, logger: log}
}

func (uc *ListMenuItemsUseCase) Execute(ctx context.Context) ([]*dto.MenuItemResponse, error) {
	items, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MenuItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toResponse(item))
	}
	return out, nil
}
