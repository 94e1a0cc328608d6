package dto

import "time"

// VariantInput is one serving-size price row in a create or update
// request. The full set always replaces whatever is stored.
type VariantInput struct {
	VariantType string   `json:"variant_type" binding:"required"`
	Rate        *float64 `json:"rate" binding:"required"`
}

type CreateMenuItemRequest struct {
	Name        string         `json:"menu_name" binding:"required"`
	Description string         `json:"description"`
	CategoryID  uint           `json:"category_id" binding:"required"`
	FoodType    string         `json:"food_type" binding:"required,oneof=veg non-veg egg"`
	ImageURL    string         `json:"image_url"`
	Variants    []VariantInput `json:"variants" binding:"required,min=1,dive"`
	AddonIDs    []uint         `json:"addon_ids"`
}

type UpdateMenuItemRequest struct {
	Name        string         `json:"menu_name" binding:"required"`
	Description string         `json:"description"`
	CategoryID  uint           `json:"category_id" binding:"required"`
	FoodType    string         `json:"food_type" binding:"required,oneof=veg non-veg egg"`
	ImageURL    string         `json:"image_url"`
	Status      *uint8         `json:"status" binding:"required"`
	Variants    []VariantInput `json:"variants" binding:"required,min=1,dive"`
	AddonIDs    []uint         `json:"addon_ids"`
}

type ReplaceMenuAddonsRequest struct {
	AddonIDs []uint `json:"addon_ids"`
}

type VariantResponse struct {
	VariantType string  `json:"variant_type"`
	Rate        float64 `json:"rate"`
}

type MenuItemResponse struct {
	ID           uint              `json:"menu_id"`
	Ref          string            `json:"menu_ref"`
	Name         string            `json:"menu_name"`
	Description  string            `json:"description,omitempty"`
	CategoryID   uint              `json:"category_id"`
	CategoryName string            `json:"category_name,omitempty"`
	FoodType     string            `json:"food_type"`
	ImageURL     string            `json:"image_url,omitempty"`
	Status       uint8             `json:"status"`
	Variants     []VariantResponse `json:"variants"`
	AddonIDs     []uint            `json:"addon_ids"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
