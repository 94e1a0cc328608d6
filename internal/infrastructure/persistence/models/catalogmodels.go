package models

import "time"

// UnitModel is the persistence model for measurement units.
type UnitModel struct {
	ID        uint   `gorm:"column:unit_id;primaryKey"`
	Name      string `gorm:"column:unit_name;not null;size:50"`
	Symbol    string `gorm:"column:unit_symbol;size:10"`
	Status    uint8  `gorm:"column:status;not null;default:1"`
	CreatedBy uint   `gorm:"column:created_by"`
	UpdatedBy uint   `gorm:"column:updated_by"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UnitModel) TableName() string {
	return "units"
}

// CategoryModel is the persistence model for menu categories.
type CategoryModel struct {
	ID          uint   `gorm:"column:category_id;primaryKey"`
	Name        string `gorm:"column:category_name;not null;size:100"`
	Description string `gorm:"column:description;size:500"`
	Status      uint8  `gorm:"column:status;not null;default:1"`
	CreatedBy   uint   `gorm:"column:created_by"`
	UpdatedBy   uint   `gorm:"column:updated_by"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CategoryModel) TableName() string {
	return "categories"
}

// AddonModel is the persistence model for addons.
type AddonModel struct {
	ID        uint    `gorm:"column:addon_id;primaryKey"`
	Name      string  `gorm:"column:addon_name;not null;size:100"`
	Rate      float64 `gorm:"column:rate;not null"`
	UnitID    uint    `gorm:"column:unit_id;not null;index"`
	Status    uint8   `gorm:"column:status;not null;default:1"`
	CreatedBy uint    `gorm:"column:created_by"`
	UpdatedBy uint    `gorm:"column:updated_by"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Unit *UnitModel `gorm:"foreignKey:UnitID;references:ID"`
}

func (AddonModel) TableName() string {
	return "addons"
}
