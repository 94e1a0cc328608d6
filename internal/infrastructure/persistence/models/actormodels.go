package models

import (
	"time"

	"gorm.io/datatypes"
)

// SuperadminModel is the persistence model for platform operators.
type SuperadminModel struct {
	ID        uint   `gorm:"column:superadmin_id;primaryKey"`
	Name      string `gorm:"column:name;not null;size:100"`
	Email     string `gorm:"column:email;uniqueIndex;not null;size:255"`
	Password  string `gorm:"column:password;not null;size:255"`
	Status    uint8  `gorm:"column:status;not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SuperadminModel) TableName() string {
	return "superadmins"
}

// AgentModel is the persistence model for agent accounts.
type AgentModel struct {
	ID         uint   `gorm:"column:agent_id;primaryKey"`
	Ref        string `gorm:"column:agent_ref;uniqueIndex;not null;size:32"`
	Name       string `gorm:"column:agent_name;not null;size:100"`
	Email      string `gorm:"column:email;uniqueIndex;not null;size:255"`
	Password   string `gorm:"column:password;not null;size:255"`
	Phone      string `gorm:"column:phone;size:20"`
	CountryID  uint   `gorm:"column:country_id;not null;index"`
	StateID    uint   `gorm:"column:state_id;not null;index"`
	DistrictID uint   `gorm:"column:district_id;not null;index"`
	ZoneID     uint   `gorm:"column:zone_id;not null;index"`
	Status     uint8  `gorm:"column:status;not null;default:1"`
	CreatedBy  uint   `gorm:"column:created_by_id"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Country  *CountryModel  `gorm:"foreignKey:CountryID;references:ID"`
	State    *StateModel    `gorm:"foreignKey:StateID;references:ID"`
	District *DistrictModel `gorm:"foreignKey:DistrictID;references:ID"`
	Zone     *ZoneModel     `gorm:"foreignKey:ZoneID;references:ID"`
}

func (AgentModel) TableName() string {
	return "agents"
}

// HotelModel is the persistence model for hotel accounts.
// OperatingHours holds the per-weekday windows as JSON.
type HotelModel struct {
	ID             uint           `gorm:"column:hotel_id;primaryKey"`
	Ref            string         `gorm:"column:hotel_ref;uniqueIndex;not null;size:32"`
	Name           string         `gorm:"column:hotel_name;not null;size:150"`
	Email          string         `gorm:"column:email;uniqueIndex;not null;size:255"`
	Password       string         `gorm:"column:password;not null;size:255"`
	Phone          string         `gorm:"column:phone;size:20"`
	Address        string         `gorm:"column:address;size:500"`
	CountryID      uint           `gorm:"column:country_id;not null;index"`
	StateID        uint           `gorm:"column:state_id;not null;index"`
	DistrictID     uint           `gorm:"column:district_id;not null;index"`
	ZoneID         uint           `gorm:"column:zone_id;not null;index"`
	OpeningTime    string         `gorm:"column:opening_time;size:5"`
	ClosingTime    string         `gorm:"column:closing_time;size:5"`
	OperatingHours datatypes.JSON `gorm:"column:operating_hours"`
	GSTNumber      string         `gorm:"column:gst_number;size:20"`
	PANNumber      string         `gorm:"column:pan_number;size:15"`
	AadharNumber   string         `gorm:"column:aadhar_number;size:15"`
	OwnerName      string         `gorm:"column:owner_name;size:100"`
	AgentID        *uint          `gorm:"column:agent_id;index"`
	Status         uint8          `gorm:"column:status;not null;default:1"`
	CreatedBy      uint           `gorm:"column:created_by_id"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Country  *CountryModel  `gorm:"foreignKey:CountryID;references:ID"`
	State    *StateModel    `gorm:"foreignKey:StateID;references:ID"`
	District *DistrictModel `gorm:"foreignKey:DistrictID;references:ID"`
	Zone     *ZoneModel     `gorm:"foreignKey:ZoneID;references:ID"`
}

func (HotelModel) TableName() string {
	return "hotels"
}
