package menu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayops/internal/domain/shared"
)

func TestNewMenuItem(t *testing.T) {
	item, err := NewMenuItem("  Paneer Tikka ", " smoky cottage cheese ", 3, FoodTypeVeg, "", 1)
	require.NoError(t, err)

	assert.Equal(t, "Paneer Tikka", item.Name())
	assert.Equal(t, "smoky cottage cheese", item.Description())
	assert.Equal(t, uint(3), item.CategoryID())
	assert.Equal(t, FoodTypeVeg, item.FoodType())
	assert.Equal(t, shared.StatusActive, item.Status())
	assert.True(t, strings.HasPrefix(item.Ref(), "mnu_"))
	assert.Equal(t, uint(1), item.CreatedBy())
	assert.Equal(t, uint(1), item.UpdatedBy())
}

func TestNewMenuItemValidation(t *testing.T) {
	tests := []struct {
		name       string
		itemName   string
		categoryID uint
		foodType   string
	}{
		{"empty name", "  ", 1, FoodTypeVeg},
		{"missing category", "Dosa", 0, FoodTypeVeg},
		{"bad food type", "Dosa", 1, "vegan"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMenuItem(tt.itemName, "", tt.categoryID, tt.foodType, "", 1)
			assert.Error(t, err)
		})
	}
}

func TestSetVariants(t *testing.T) {
	item, err := NewMenuItem("Dosa", "", 1, FoodTypeVeg, "", 1)
	require.NoError(t, err)

	err = item.SetVariants([]Variant{
		{VariantType: "half", Rate: 60},
		{VariantType: "full", Rate: 100},
	})
	require.NoError(t, err)
	assert.Len(t, item.Variants(), 2)

	assert.Error(t, item.SetVariants(nil), "empty set rejected")
	assert.Error(t, item.SetVariants([]Variant{{VariantType: "", Rate: 10}}))
	assert.Error(t, item.SetVariants([]Variant{{VariantType: "half", Rate: -5}}))
	assert.Error(t, item.SetVariants([]Variant{
		{VariantType: "half", Rate: 60},
		{VariantType: "half", Rate: 70},
	}), "duplicate variant type rejected")

	// failed call leaves the previous set in place
	assert.Len(t, item.Variants(), 2)
}

func TestSetAddonIDs(t *testing.T) {
	item, err := NewMenuItem("Dosa", "", 1, FoodTypeVeg, "", 1)
	require.NoError(t, err)

	require.NoError(t, item.SetAddonIDs([]uint{2, 5}))
	assert.Equal(t, []uint{2, 5}, item.AddonIDs())

	require.NoError(t, item.SetAddonIDs(nil), "empty addon set is valid")
	assert.Error(t, item.SetAddonIDs([]uint{0}))
	assert.Error(t, item.SetAddonIDs([]uint{2, 2}))
}

func TestMenuItemUpdate(t *testing.T) {
	item, err := NewMenuItem("Dosa", "", 1, FoodTypeVeg, "", 1)
	require.NoError(t, err)
	ref := item.Ref()

	err = item.Update("Masala Dosa", "with potato filling", 2, FoodTypeVeg, "http://img/dosa.png", shared.StatusActive, 9)
	require.NoError(t, err)

	assert.Equal(t, "Masala Dosa", item.Name())
	assert.Equal(t, uint(2), item.CategoryID())
	assert.Equal(t, uint(9), item.UpdatedBy())
	assert.Equal(t, ref, item.Ref(), "ref is immutable across updates")

	assert.Error(t, item.Update("", "", 2, FoodTypeVeg, "", shared.StatusActive, 9))
}
