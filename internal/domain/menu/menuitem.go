package menu

import (
	"fmt"
	"strings"
	"time"

	"stayops/internal/domain/shared"
	"stayops/internal/shared/biztime"
	"stayops/internal/shared/id"
)

// Food type classification for a menu item.
const (
	FoodTypeVeg    = "veg"
	FoodTypeNonVeg = "non-veg"
	FoodTypeEgg    = "egg"
)

// Variant is a serving-size level price row owned by a menu item.
// Variants have no identity outside their parent; updates replace
// the full set rather than merging.
type Variant struct {
	VariantType string
	Rate        float64
}

// MenuItem is the aggregate root for a menu entry together with its
// owned variants and addon links. All writes that touch the three
// tables go through a single transaction in the application layer.
type MenuItem struct {
	id           uint
	ref          string
	name         string
	description  string
	categoryID   uint
	categoryName string
	foodType     string
	imageURL     string
	status       shared.Status
	createdBy    uint
	updatedBy    uint
	createdAt    time.Time
	updatedAt    time.Time

	variants []Variant
	addonIDs []uint
}

func NewMenuItem(name, description string, categoryID uint, foodType, imageURL string, createdBy uint) (*MenuItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("menu item name is required")
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}
	if err := validateFoodType(foodType); err != nil {
		return nil, err
	}

	ref, err := id.NewMenuItemRef()
	if err != nil {
		return nil, fmt.Errorf("failed to generate menu item ref: %w", err)
	}

	now := biztime.NowUTC()
	return &MenuItem{
		ref:         ref,
		name:        name,
		description: strings.TrimSpace(description),
		categoryID:  categoryID,
		foodType:    foodType,
		imageURL:    strings.TrimSpace(imageURL),
		status:      shared.StatusActive,
		createdBy:   createdBy,
		updatedBy:   createdBy,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructMenuItem(
	itemID uint,
	ref string,
	name, description string,
	categoryID uint,
	categoryName string,
	foodType, imageURL string,
	status shared.Status,
	createdBy, updatedBy uint,
	createdAt, updatedAt time.Time,
	variants []Variant,
	addonIDs []uint,
) *MenuItem {
	return &MenuItem{
		id:           itemID,
		ref:          ref,
		name:         name,
		description:  description,
		categoryID:   categoryID,
		categoryName: categoryName,
		foodType:     foodType,
		imageURL:     imageURL,
		status:       status,
		createdBy:    createdBy,
		updatedBy:    updatedBy,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		variants:     variants,
		addonIDs:     addonIDs,
	}
}

func (m *MenuItem) ID() uint              { return m.id }
func (m *MenuItem) Ref() string           { return m.ref }
func (m *MenuItem) Name() string          { return m.name }
func (m *MenuItem) Description() string   { return m.description }
func (m *MenuItem) CategoryID() uint      { return m.categoryID }
func (m *MenuItem) CategoryName() string  { return m.categoryName }
func (m *MenuItem) FoodType() string      { return m.foodType }
func (m *MenuItem) ImageURL() string      { return m.imageURL }
func (m *MenuItem) Status() shared.Status { return m.status }
func (m *MenuItem) CreatedBy() uint       { return m.createdBy }
func (m *MenuItem) UpdatedBy() uint       { return m.updatedBy }
func (m *MenuItem) CreatedAt() time.Time  { return m.createdAt }
func (m *MenuItem) UpdatedAt() time.Time  { return m.updatedAt }

func (m *MenuItem) Variants() []Variant { return m.variants }
func (m *MenuItem) AddonIDs() []uint    { return m.addonIDs }

func (m *MenuItem) SetID(itemID uint) { m.id = itemID }

// SetVariants replaces the full variant set. At least one variant
// is required so every menu item always has a price.
func (m *MenuItem) SetVariants(variants []Variant) error {
	if len(variants) == 0 {
		return fmt.Errorf("at least one variant is required")
	}
	seen := make(map[string]struct{}, len(variants))
	for _, v := range variants {
		vt := strings.TrimSpace(v.VariantType)
		if vt == "" {
			return fmt.Errorf("variant type is required")
		}
		if v.Rate < 0 {
			return fmt.Errorf("variant rate must not be negative")
		}
		if _, dup := seen[vt]; dup {
			return fmt.Errorf("duplicate variant type: %s", vt)
		}
		seen[vt] = struct{}{}
	}
	m.variants = variants
	return nil
}

// SetAddonIDs replaces the full addon link set. An empty set is
// valid; duplicates are rejected.
func (m *MenuItem) SetAddonIDs(addonIDs []uint) error {
	seen := make(map[uint]struct{}, len(addonIDs))
	for _, addonID := range addonIDs {
		if addonID == 0 {
			return fmt.Errorf("addon ID must not be zero")
		}
		if _, dup := seen[addonID]; dup {
			return fmt.Errorf("duplicate addon ID: %d", addonID)
		}
		seen[addonID] = struct{}{}
	}
	m.addonIDs = addonIDs
	return nil
}

func (m *MenuItem) Update(name, description string, categoryID uint, foodType, imageURL string, status shared.Status, updatedBy uint) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("menu item name is required")
	}
	if categoryID == 0 {
		return fmt.Errorf("category ID is required")
	}
	if err := validateFoodType(foodType); err != nil {
		return err
	}

	m.name = name
	m.description = strings.TrimSpace(description)
	m.categoryID = categoryID
	m.foodType = foodType
	m.imageURL = strings.TrimSpace(imageURL)
	m.status = status
	m.updatedBy = updatedBy
	m.updatedAt = biztime.NowUTC()
	return nil
}

func validateFoodType(foodType string) error {
	switch foodType {
	case FoodTypeVeg, FoodTypeNonVeg, FoodTypeEgg:
		return nil
	default:
		return fmt.Errorf("invalid food type: %s", foodType)
	}
}
