package handlers

import (
	"context"

	"stayops/internal/application/menu/dto"
)

// Use case interfaces consumed by MenuHandler. Tests substitute
// mocks; wiring passes the concrete use cases.

type CreateMenuItemExecutor interface {
	Execute(ctx context.Context, req dto.CreateMenuItemRequest, actorID uint) (*dto.MenuItemResponse, error)
}

type UpdateMenuItemExecutor interface {
	Execute(ctx context.Context, id uint, req dto.UpdateMenuItemRequest, actorID uint) (*dto.MenuItemResponse, error)
}

type DeleteMenuItemExecutor interface {
	Execute(ctx context.Context, id uint) error
}

type GetMenuItemExecutor interface {
	Execute(ctx context.Context, id uint) (*dto.MenuItemResponse, error)
}

type ListMenuItemsExecutor interface {
	Execute(ctx context.Context) ([]*dto.MenuItemResponse, error)
}

type ReplaceMenuAddonsExecutor interface {
	Execute(ctx context.Context, id uint, req dto.ReplaceMenuAddonsRequest, actorID uint) (*dto.MenuItemResponse, error)
}

type ExportMenuExecutor interface {
	Execute(ctx context.Context) ([]byte, string, error)
}
