package models

import "time"

// MenuItemModel is the persistence model for menu items.
type MenuItemModel struct {
	ID          uint   `gorm:"column:menu_id;primaryKey"`
	Ref         string `gorm:"column:menu_ref;uniqueIndex;not null;size:32"`
	Name        string `gorm:"column:menu_name;not null;size:150"`
	Description string `gorm:"column:description;size:500"`
	CategoryID  uint   `gorm:"column:category_id;not null;index"`
	FoodType    string `gorm:"column:food_type;not null;size:20"`
	ImageURL    string `gorm:"column:image_url;size:500"`
	Status      uint8  `gorm:"column:status;not null;default:1"`
	CreatedBy   uint   `gorm:"column:created_by"`
	UpdatedBy   uint   `gorm:"column:updated_by"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category *CategoryModel     `gorm:"foreignKey:CategoryID;references:ID"`
	Variants []MenuVariantModel `gorm:"foreignKey:MenuID;references:ID"`
	Addons   []MenuAddonModel   `gorm:"foreignKey:MenuID;references:ID"`
}

func (MenuItemModel) TableName() string {
	return "menu_items"
}

// MenuVariantModel is an owned price row; it has no lifecycle of its
// own and is always rewritten together with the parent.
type MenuVariantModel struct {
	ID          uint    `gorm:"column:variant_id;primaryKey"`
	MenuID      uint    `gorm:"column:menu_id;not null;index"`
	VariantType string  `gorm:"column:variant_type;not null;size:50"`
	Rate        float64 `gorm:"column:rate;not null"`
}

func (MenuVariantModel) TableName() string {
	return "menu_variants"
}

// MenuAddonModel is the owned junction row linking a menu item to an
// addon.
type MenuAddonModel struct {
	ID      uint `gorm:"column:menu_addon_id;primaryKey"`
	MenuID  uint `gorm:"column:menu_id;not null;index"`
	AddonID uint `gorm:"column:addon_id;not null;index"`
}

func (MenuAddonModel) TableName() string {
	return "menu_addons"
}
