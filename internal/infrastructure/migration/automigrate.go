package migration

import (
	"stayops/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persisted model in dependency order so
// AutoMigrate creates parent tables before their children.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.CountryModel{},
		&models.StateModel{},
		&models.DistrictModel{},
		&models.ZoneModel{},
		&models.UnitModel{},
		&models.CategoryModel{},
		&models.AddonModel{},
		&models.SuperadminModel{},
		&models.AgentModel{},
		&models.HotelModel{},
		&models.MenuItemModel{},
		&models.MenuVariantModel{},
		&models.MenuAddonModel{},
	}
}
