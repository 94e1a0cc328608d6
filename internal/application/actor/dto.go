package actor

import (
	"time"

	"stayops/internal/domain/actor"
)

type CreateAgentRequest struct {
	Name       string `json:"agent_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	Phone      string `json:"phone"`
	CountryID  uint   `json:"country_id" binding:"required"`
	StateID    uint   `json:"state_id" binding:"required"`
	DistrictID uint   `json:"district_id" binding:"required"`
	ZoneID     uint   `json:"zone_id" binding:"required"`
}

type UpdateAgentRequest struct {
	Name       string `json:"agent_name" binding:"required"`
	Phone      string `json:"phone"`
	CountryID  uint   `json:"country_id" binding:"required"`
	StateID    uint   `json:"state_id" binding:"required"`
	DistrictID uint   `json:"district_id" binding:"required"`
	ZoneID     uint   `json:"zone_id" binding:"required"`
	Status     *uint8 `json:"status" binding:"required"`
}

type AgentResponse struct {
	ID           uint      `json:"agent_id"`
	Ref          string    `json:"agent_ref"`
	Name         string    `json:"agent_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	CountryID    uint      `json:"country_id"`
	CountryName  string    `json:"country_name,omitempty"`
	StateID      uint      `json:"state_id"`
	StateName    string    `json:"state_name,omitempty"`
	DistrictID   uint      `json:"district_id"`
	DistrictName string    `json:"district_name,omitempty"`
	ZoneID       uint      `json:"zone_id"`
	ZoneName     string    `json:"zone_name,omitempty"`
	Status       uint8     `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type OperatingHoursInput map[string]actor.DayHours

type CreateHotelRequest struct {
	Name           string              `json:"hotel_name" binding:"required"`
	Email          string              `json:"email" binding:"required,email"`
	Password       string              `json:"password" binding:"required,min=8"`
	Phone          string              `json:"phone"`
	Address        string              `json:"address"`
	CountryID      uint                `json:"country_id" binding:"required"`
	StateID        uint                `json:"state_id" binding:"required"`
	DistrictID     uint                `json:"district_id" binding:"required"`
	ZoneID         uint                `json:"zone_id" binding:"required"`
	OpeningTime    string              `json:"opening_time"`
	ClosingTime    string              `json:"closing_time"`
	OperatingHours OperatingHoursInput `json:"operating_hours"`
	GSTNumber      string              `json:"gst_number"`
	PANNumber      string              `json:"pan_number"`
	AadharNumber   string              `json:"aadhar_number"`
	OwnerName      string              `json:"owner_name"`
	AgentID        uint                `json:"agent_id"`
}

type UpdateHotelRequest struct {
	Name           string              `json:"hotel_name" binding:"required"`
	Phone          string              `json:"phone"`
	Address        string              `json:"address"`
	CountryID      uint                `json:"country_id" binding:"required"`
	StateID        uint                `json:"state_id" binding:"required"`
	DistrictID     uint                `json:"district_id" binding:"required"`
	ZoneID         uint                `json:"zone_id" binding:"required"`
	OpeningTime    string              `json:"opening_time"`
	ClosingTime    string              `json:"closing_time"`
	OperatingHours OperatingHoursInput `json:"operating_hours"`
	GSTNumber      string              `json:"gst_number"`
	PANNumber      string              `json:"pan_number"`
	AadharNumber   string              `json:"aadhar_number"`
	OwnerName      string              `json:"owner_name"`
	AgentID        uint                `json:"agent_id"`
	Status         *uint8              `json:"status" binding:"required"`
}

type HotelResponse struct {
	ID             uint                 `json:"hotel_id"`
	Ref            string               `json:"hotel_ref"`
	Name           string               `json:"hotel_name"`
	Email          string               `json:"email"`
	Phone          string               `json:"phone,omitempty"`
	Address        string               `json:"address,omitempty"`
	CountryID      uint                 `json:"country_id"`
	CountryName    string               `json:"country_name,omitempty"`
	StateID        uint                 `json:"state_id"`
	StateName      string               `json:"state_name,omitempty"`
	DistrictID     uint                 `json:"district_id"`
	DistrictName   string               `json:"district_name,omitempty"`
	ZoneID         uint                 `json:"zone_id"`
	ZoneName       string               `json:"zone_name,omitempty"`
	OpeningTime    string               `json:"opening_time,omitempty"`
	ClosingTime    string               `json:"closing_time,omitempty"`
	OperatingHours actor.OperatingHours `json:"operating_hours,omitempty"`
	GSTNumber      string               `json:"gst_number,omitempty"`
	PANNumber      string               `json:"pan_number,omitempty"`
	AadharNumber   string               `json:"aadhar_number,omitempty"`
	OwnerName      string               `json:"owner_name,omitempty"`
	AgentID        uint                 `json:"agent_id,omitempty"`
	Status         uint8                `json:"status"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}
