package usecases

import (
	"context"
	"fmt"

	"stayops/internal/application/menu/dto"
	"stayops/internal/domain/menu"
	"stayops/internal/shared/errors"
)

func toDomainVariants(in []dto.VariantInput) []menu.Variant {
	variants := make([]menu.Variant, 0, len(in))
	for _, v := range in {
		variants = append(variants, menu.Variant{
			VariantType: v.VariantType,
			Rate:        *v.Rate,
		})
	}
	return variants
}

func toResponse(item *menu.MenuItem) *dto.MenuItemResponse {
	variants := make([]dto.VariantResponse, 0, len(item.Variants()))
	for _, v := range item.Variants() {
		variants = append(variants, dto.VariantResponse{
			VariantType: v.VariantType,
			Rate:        v.Rate,
		})
	}
	addonIDs := item.AddonIDs()
	if addonIDs == nil {
		addonIDs = []uint{}
	}
	return &dto.MenuItemResponse{
		ID:           item.ID(),
		Ref:          item.Ref(),
		Name:         item.Name(),
		Description:  item.Description(),
		CategoryID:   item.CategoryID(),
		CategoryName: item.CategoryName(),
		FoodType:     item.FoodType(),
		ImageURL:     item.ImageURL(),
		Status:       uint8(item.Status()),
		Variants:     variants,
		AddonIDs:     addonIDs,
		CreatedAt:    item.CreatedAt(),
		UpdatedAt:    item.UpdatedAt(),
	}
}

// validateAddonIDs rejects the whole write when any requested addon
// is missing or inactive, before a single row is touched.
func validateAddonIDs(ctx context.Context, repo menu.Repository, addonIDs []uint) error {
	if len(addonIDs) == 0 {
		return nil
	}
	found, err := repo.ExistingAddonIDs(ctx, addonIDs)
	if err != nil {
		return fmt.Errorf("failed to validate addons: %w", err)
	}
	if len(found) != len(addonIDs) {
		known := make(map[uint]struct{}, len(found))
		for _, id := range found {
			known[id] = struct{}{}
		}
		for _, id := range addonIDs {
			if _, ok := known[id]; !ok {
				return errors.NewValidationError(fmt.Sprintf("addon %d not found or inactive", id))
			}
		}
	}
	return nil
}
