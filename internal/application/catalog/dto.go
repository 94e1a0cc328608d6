package catalog

import "time"

type CreateUnitRequest struct {
	Name   string `json:"unit_name" binding:"required"`
	Symbol string `json:"unit_symbol"`
}

type UpdateUnitRequest struct {
	Name   string `json:"unit_name" binding:"required"`
	Symbol string `json:"unit_symbol"`
	Status *uint8 `json:"status" binding:"required"`
}

type UnitResponse struct {
	ID        uint      `json:"unit_id"`
	Name      string    `json:"unit_name"`
	Symbol    string    `json:"unit_symbol,omitempty"`
	Status    uint8     `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateCategoryRequest struct {
	Name        string `json:"category_name" binding:"required"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        string `json:"category_name" binding:"required"`
	Description string `json:"description"`
	Status      *uint8 `json:"status" binding:"required"`
}

type CategoryResponse struct {
	ID          uint      `json:"category_id"`
	Name        string    `json:"category_name"`
	Description string    `json:"description,omitempty"`
	Status      uint8     `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateAddonRequest struct {
	Name   string   `json:"addon_name" binding:"required"`
	Rate   *float64 `json:"rate" binding:"required"`
	UnitID uint     `json:"unit_id" binding:"required"`
}

type UpdateAddonRequest struct {
	Name   string   `json:"addon_name" binding:"required"`
	Rate   *float64 `json:"rate" binding:"required"`
	UnitID uint     `json:"unit_id" binding:"required"`
	Status *uint8   `json:"status" binding:"required"`
}

type AddonResponse struct {
	ID        uint      `json:"addon_id"`
	Name      string    `json:"addon_name"`
	Rate      float64   `json:"rate"`
	UnitID    uint      `json:"unit_id"`
	UnitName  string    `json:"unit_name,omitempty"`
	Status    uint8     `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
