package models

import "time"

// CountryModel is the persistence model for countries.
// This is the anti-corruption layer between domain and database.
type CountryModel struct {
	ID        uint   `gorm:"column:country_id;primaryKey"`
	Name      string `gorm:"column:country_name;not null;size:100"`
	Code      string `gorm:"column:country_code;uniqueIndex;not null;size:10"`
	Capital   string `gorm:"column:capital;size:100"`
	Status    uint8  `gorm:"column:status;not null;default:1"`
	CreatedBy uint   `gorm:"column:created_by"`
	UpdatedBy uint   `gorm:"column:updated_by"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CountryModel) TableName() string {
	return "countries"
}

// StateModel is the persistence model for states.
type StateModel struct {
	ID          uint   `gorm:"column:state_id;primaryKey"`
	Name        string `gorm:"column:state_name;not null;size:100"`
	Code        string `gorm:"column:state_code;not null;size:10"`
	CountryID   uint   `gorm:"column:country_id;not null;index"`
	Description string `gorm:"column:description;size:500"`
	Status      uint8  `gorm:"column:status;not null;default:1"`
	CreatedBy   uint   `gorm:"column:created_by"`
	UpdatedBy   uint   `gorm:"column:updated_by"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Country *CountryModel `gorm:"foreignKey:CountryID;references:ID"`
}

func (StateModel) TableName() string {
	return "states"
}

// DistrictModel is the persistence model for districts.
type DistrictModel struct {
	ID          uint   `gorm:"column:district_id;primaryKey"`
	Name        string `gorm:"column:district_name;not null;size:100"`
	Code        string `gorm:"column:district_code;not null;size:10"`
	StateID     uint   `gorm:"column:state_id;not null;index"`
	Description string `gorm:"column:description;size:500"`
	Status      uint8  `gorm:"column:status;not null;default:1"`
	CreatedBy   uint   `gorm:"column:created_by"`
	UpdatedBy   uint   `gorm:"column:updated_by"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	State *StateModel `gorm:"foreignKey:StateID;references:ID"`
}

func (DistrictModel) TableName() string {
	return "districts"
}

// ZoneModel is the persistence model for zones.
type ZoneModel struct {
	ID          uint   `gorm:"column:zone_id;primaryKey"`
	Name        string `gorm:"column:zone_name;not null;size:100"`
	Code        string `gorm:"column:zone_code;not null;size:10"`
	DistrictID  uint   `gorm:"column:district_id;not null;index"`
	Description string `gorm:"column:description;size:500"`
	Status      uint8  `gorm:"column:status;not null;default:1"`
	CreatedBy   uint   `gorm:"column:created_by"`
	UpdatedBy   uint   `gorm:"column:updated_by"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	District *DistrictModel `gorm:"foreignKey:DistrictID;references:ID"`
}

func (ZoneModel) TableName() string {
	return "zones"
}
