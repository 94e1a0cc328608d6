package location

import "time"

type CreateCountryRequest struct {
	Name    string `json:"country_name" binding:"required"`
	Code    string `json:"country_code" binding:"required"`
	Capital string `json:"capital"`
}

type UpdateCountryRequest struct {
	Name    string `json:"country_name" binding:"required"`
	Code    string `json:"country_code" binding:"required"`
	Capital string `json:"capital"`
	Status  *uint8 `json:"status" binding:"required"`
}

type CountryResponse struct {
	ID        uint      `json:"country_id"`
	Name      string    `json:"country_name"`
	Code      string    `json:"country_code"`
	Capital   string    `json:"capital,omitempty"`
	Status    uint8     `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateStateRequest struct {
	Name        string `json:"state_name" binding:"required"`
	Code        string `json:"state_code" binding:"required"`
	CountryID   uint   `json:"country_id" binding:"required"`
	Description string `json:"description"`
}

type UpdateStateRequest struct {
	Name        string `json:"state_name" binding:"required"`
	Code        string `json:"state_code" binding:"required"`
	CountryID   uint   `json:"country_id" binding:"required"`
	Description string `json:"description"`
	Status      *uint8 `json:"status" binding:"required"`
}

type StateResponse struct {
	ID          uint      `json:"state_id"`
	Name        string    `json:"state_name"`
	Code        string    `json:"state_code"`
	CountryID   uint      `json:"country_id"`
	CountryName string    `json:"country_name,omitempty"`
	Description string    `json:"description,omitempty"`
	Status      uint8     `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateDistrictRequest struct {
	Name        string `json:"district_name" binding:"required"`
	Code        string `json:"district_code" binding:"required"`
	StateID     uint   `json:"state_id" binding:"required"`
	Description string `json:"description"`
}

type UpdateDistrictRequest struct {
	Name        string `json:"district_name" binding:"required"`
	Code        string `json:"district_code" binding:"required"`
	StateID     uint   `json:"state_id" binding:"required"`
	Description string `json:"description"`
	Status      *uint8 `json:"status" binding:"required"`
}

type DistrictResponse struct {
	ID          uint      `json:"district_id"`
	Name        string    `json:"district_name"`
	Code        string    `json:"district_code"`
	StateID     uint      `json:"state_id"`
	StateName   string    `json:"state_name,omitempty"`
	Description string    `json:"description,omitempty"`
	Status      uint8     `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateZoneRequest struct {
	Name        string `json:"zone_name" binding:"required"`
	Code        string `json:"zone_code" binding:"required"`
	DistrictID  uint   `json:"district_id" binding:"required"`
	Description string `json:"description"`
}

type UpdateZoneRequest struct {
	Name        string `json:"zone_name" binding:"required"`
	Code        string `json:"zone_code" binding:"required"`
	DistrictID  uint   `json:"district_id" binding:"required"`
	Description string `json:"description"`
	Status      *uint8 `json:"status" binding:"required"`
}

type ZoneResponse struct {
	ID           uint      `json:"zone_id"`
	Name         string    `json:"zone_name"`
	Code         string    `json:"zone_code"`
	DistrictID   uint      `json:"district_id"`
	DistrictName string    `json:"district_name,omitempty"`
	Description  string    `json:"description,omitempty"`
	Status       uint8     `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
