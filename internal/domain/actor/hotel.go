package actor

import (
	"fmt"
	"strings"
	"time"

	"stayops/internal/domain/shared"
	"stayops/internal/shared/biztime"
	"stayops/internal/shared/id"
)

// DayHours is the open/close window for one weekday, "HH:MM" 24h.
type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// OperatingHours maps lowercase weekday names to their windows.
// Days absent from the map are closed.
type OperatingHours map[string]DayHours

// Hotel is a property account. Hotels authenticate with their own
// credentials and own their menu data. agentID is the onboarding
// agent and may be zero when a superadmin created the hotel directly.
type Hotel struct {
	id         uint
	ref        string
	name       string
	email      string
	password   string
	phone      string
	address    string
	countryID  uint
	stateID    uint
	districtID uint
	zoneID     uint

	countryName  string
	stateName    string
	districtName string
	zoneName     string

	openingTime    string
	closingTime    string
	operatingHours OperatingHours
	gstNumber      string
	panNumber      string
	aadharNumber   string
	ownerName      string
	agentID        uint

	status      shared.Status
	createdByID uint
	createdAt   time.Time
	updatedAt   time.Time
}

// HotelDetails carries the optional registration fields so the
// constructor signature stays manageable.
type HotelDetails struct {
	Phone          string
	Address        string
	OpeningTime    string
	ClosingTime    string
	OperatingHours OperatingHours
	GSTNumber      string
	PANNumber      string
	AadharNumber   string
	OwnerName      string
	AgentID        uint
}

func NewHotel(name, email, hashedPassword string, countryID, stateID, districtID, zoneID uint, details HotelDetails, createdByID uint) (*Hotel, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" {
		return nil, fmt.Errorf("hotel name is required")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if hashedPassword == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if countryID == 0 || stateID == 0 || districtID == 0 || zoneID == 0 {
		return nil, fmt.Errorf("country, state, district and zone are required")
	}
	if err := validateClock(details.OpeningTime); err != nil {
		return nil, err
	}
	if err := validateClock(details.ClosingTime); err != nil {
		return nil, err
	}

	ref, err := id.NewHotelRef()
	if err != nil {
		return nil, fmt.Errorf("failed to generate hotel ref: %w", err)
	}

	now := biztime.NowUTC()
	return &Hotel{
		ref:            ref,
		name:           name,
		email:          email,
		password:       hashedPassword,
		phone:          strings.TrimSpace(details.Phone),
		address:        strings.TrimSpace(details.Address),
		countryID:      countryID,
		stateID:        stateID,
		districtID:     districtID,
		zoneID:         zoneID,
		openingTime:    details.OpeningTime,
		closingTime:    details.ClosingTime,
		operatingHours: details.OperatingHours,
		gstNumber:      strings.TrimSpace(details.GSTNumber),
		panNumber:      strings.TrimSpace(details.PANNumber),
		aadharNumber:   strings.TrimSpace(details.AadharNumber),
		ownerName:      strings.TrimSpace(details.OwnerName),
		agentID:        details.AgentID,
		status:         shared.StatusActive,
		createdByID:    createdByID,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructHotel(
	hotelID uint,
	ref string,
	name, email, password string,
	countryID, stateID, districtID, zoneID uint,
	countryName, stateName, districtName, zoneName string,
	details HotelDetails,
	status shared.Status,
	createdByID uint,
	createdAt, updatedAt time.Time,
) *Hotel {
	return &Hotel{
		id:             hotelID,
		ref:            ref,
		name:           name,
		email:          email,
		password:       password,
		phone:          details.Phone,
		address:        details.Address,
		countryID:      countryID,
		stateID:        stateID,
		districtID:     districtID,
		zoneID:         zoneID,
		countryName:    countryName,
		stateName:      stateName,
		districtName:   districtName,
		zoneName:       zoneName,
		openingTime:    details.OpeningTime,
		closingTime:    details.ClosingTime,
		operatingHours: details.OperatingHours,
		gstNumber:      details.GSTNumber,
		panNumber:      details.PANNumber,
		aadharNumber:   details.AadharNumber,
		ownerName:      details.OwnerName,
		agentID:        details.AgentID,
		status:         status,
		createdByID:    createdByID,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (h *Hotel) ID() uint                       { return h.id }
func (h *Hotel) Ref() string                    { return h.ref }
func (h *Hotel) Name() string                   { return h.name }
func (h *Hotel) Email() string                  { return h.email }
func (h *Hotel) Password() string               { return h.password }
func (h *Hotel) Phone() string                  { return h.phone }
func (h *Hotel) Address() string                { return h.address }
func (h *Hotel) CountryID() uint                { return h.countryID }
func (h *Hotel) StateID() uint                  { return h.stateID }
func (h *Hotel) DistrictID() uint               { return h.districtID }
func (h *Hotel) ZoneID() uint                   { return h.zoneID }
func (h *Hotel) CountryName() string            { return h.countryName }
func (h *Hotel) StateName() string              { return h.stateName }
func (h *Hotel) DistrictName() string           { return h.districtName }
func (h *Hotel) ZoneName() string               { return h.zoneName }
func (h *Hotel) OpeningTime() string            { return h.openingTime }
func (h *Hotel) ClosingTime() string            { return h.closingTime }
func (h *Hotel) OperatingHours() OperatingHours { return h.operatingHours }
func (h *Hotel) GSTNumber() string              { return h.gstNumber }
func (h *Hotel) PANNumber() string              { return h.panNumber }
func (h *Hotel) AadharNumber() string           { return h.aadharNumber }
func (h *Hotel) OwnerName() string              { return h.ownerName }
func (h *Hotel) AgentID() uint                  { return h.agentID }
func (h *Hotel) Status() shared.Status          { return h.status }
func (h *Hotel) CreatedByID() uint              { return h.createdByID }
func (h *Hotel) CreatedAt() time.Time           { return h.createdAt }
func (h *Hotel) UpdatedAt() time.Time           { return h.updatedAt }

func (h *Hotel) SetID(hotelID uint) { h.id = hotelID }

func (h *Hotel) CanLogin() bool { return h.status.IsActive() }

func (h *Hotel) Update(name string, countryID, stateID, districtID, zoneID uint, details HotelDetails, status shared.Status) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("hotel name is required")
	}
	if countryID == 0 || stateID == 0 || districtID == 0 || zoneID == 0 {
		return fmt.Errorf("country, state, district and zone are required")
	}
	if err := validateClock(details.OpeningTime); err != nil {
		return err
	}
	if err := validateClock(details.ClosingTime); err != nil {
		return err
	}

	h.name = name
	h.phone = strings.TrimSpace(details.Phone)
	h.address = strings.TrimSpace(details.Address)
	h.countryID = countryID
	h.stateID = stateID
	h.districtID = districtID
	h.zoneID = zoneID
	h.openingTime = details.OpeningTime
	h.closingTime = details.ClosingTime
	h.operatingHours = details.OperatingHours
	h.gstNumber = strings.TrimSpace(details.GSTNumber)
	h.panNumber = strings.TrimSpace(details.PANNumber)
	h.aadharNumber = strings.TrimSpace(details.AadharNumber)
	h.ownerName = strings.TrimSpace(details.OwnerName)
	h.agentID = details.AgentID
	h.status = status
	h.updatedAt = biztime.NowUTC()
	return nil
}

// Deactivate marks the hotel as soft deleted.
func (h *Hotel) Deactivate() {
	h.status = shared.StatusInactive
	h.updatedAt = biztime.NowUTC()
}

// validateClock accepts an empty value or "HH:MM" 24h.
func validateClock(v string) error {
	if v == "" {
		return nil
	}
	if _, err := time.Parse("15:04", v); err != nil {
		return fmt.Errorf("invalid time %q, expected HH:MM", v)
	}
	return nil
}
