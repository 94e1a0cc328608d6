package menu

import "context"

// Repository persists menu items with their owned variants and addon
// links. Write methods participate in the transaction carried in ctx
// when one is present; the application layer opens the transaction.
type Repository interface {
	// Create inserts the parent row plus all variant and addon-link
	// rows and sets the generated ID on the aggregate.
	Create(ctx context.Context, item *MenuItem) error

	// Update rewrites the parent scalars and replaces the full
	// variant and addon-link sets.
	Update(ctx context.Context, item *MenuItem) error

	FindByID(ctx context.Context, id uint) (*MenuItem, error)
	ListActive(ctx context.Context) ([]*MenuItem, error)

	// Delete removes the parent together with its owned rows.
	Delete(ctx context.Context, id uint) error

	// ReplaceAddonLinks replaces only the addon-link set for an
	// existing item, leaving parent and variants untouched.
	ReplaceAddonLinks(ctx context.Context, id uint, addonIDs []uint, updatedBy uint) error

	// CountByCategoryID reports how many menu items reference a
	// category. Used as the dependency guard on category delete.
	CountByCategoryID(ctx context.Context, categoryID uint) (int64, error)

	// CountByAddonID reports how many menu items link an addon.
	// Used as the dependency guard on addon delete.
	CountByAddonID(ctx context.Context, addonID uint) (int64, error)

	// ExistingAddonIDs returns which of the given addon IDs exist
	// and are active, for validation before linking.
	ExistingAddonIDs(ctx context.Context, addonIDs []uint) ([]uint, error)
}
