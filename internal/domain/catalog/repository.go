package catalog

import "context"

// UnitRepository persists measurement units.
type UnitRepository interface {
	Create(ctx context.Context, unit *Unit) error
	Update(ctx context.Context, unit *Unit) error
	FindByID(ctx context.Context, id uint) (*Unit, error)
	ListActive(ctx context.Context) ([]*Unit, error)
	Delete(ctx context.Context, id uint) error
}

// CategoryRepository persists menu categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	FindByID(ctx context.Context, id uint) (*Category, error)
	ListActive(ctx context.Context) ([]*Category, error)
	Delete(ctx context.Context, id uint) error
}

// AddonRepository persists addons.
type AddonRepository interface {
	Create(ctx context.Context, addon *Addon) error
	Update(ctx context.Context, addon *Addon) error
	FindByID(ctx context.Context, id uint) (*Addon, error)
	ListActive(ctx context.Context) ([]*Addon, error)
	Delete(ctx context.Context, id uint) error
}
