package location

import (
	"fmt"
	"strings"
	"time"

	"stayops/internal/domain/shared"
	"stayops/internal/shared/biztime"
)

// State belongs to a Country. countryName is denormalized on read for the
// dashboard and is never written back.
type State struct {
	id          uint
	name        string
	code        string
	countryID   uint
	countryName string
	description string
	status      shared.Status
	createdBy   uint
	updatedBy   uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewState(name, code string, countryID uint, description string, createdBy uint) (*State, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("state name is required")
	}
	if countryID == 0 {
		return nil, fmt.Errorf("country ID is required")
	}

	now := biztime.NowUTC()
	return &State{
		name:        name,
		code:        strings.TrimSpace(strings.ToUpper(code)),
		countryID:   countryID,
		description: strings.TrimSpace(description),
		status:      shared.StatusActive,
		createdBy:   createdBy,
		updatedBy:   createdBy,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructState rebuilds a State from the persistence layer.
func ReconstructState(
	id uint,
	name, code string,
	countryID uint,
	countryName, description string,
	status shared.Status,
	createdBy, updatedBy uint,
	createdAt, updatedAt time.Time,
) *State {
	return &State{
		id:          id,
		name:        name,
		code:        code,
		countryID:   countryID,
		countryName: countryName,
		description: description,
		status:      status,
		createdBy:   createdBy,
		updatedBy:   updatedBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *State) ID() uint              { return s.id }
func (s *State) Name() string          { return s.name }
func (s *State) Code() string          { return s.code }
func (s *State) CountryID() uint       { return s.countryID }
func (s *State) CountryName() string   { return s.countryName }
func (s *State) Description() string   { return s.description }
func (s *State) Status() shared.Status { return s.status }
func (s *State) CreatedBy() uint       { return s.createdBy }
func (s *State) UpdatedBy() uint       { return s.updatedBy }
func (s *State) CreatedAt() time.Time  { return s.createdAt }
func (s *State) UpdatedAt() time.Time  { return s.updatedAt }

func (s *State) SetID(id uint) { s.id = id }

func (s *State) Update(name, code string, countryID uint, description string, status shared.Status, updatedBy uint) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("state name is required")
	}
	if countryID == 0 {
		return fmt.Errorf("country ID is required")
	}

	s.name = name
	s.code = strings.TrimSpace(strings.ToUpper(code))
	s.countryID = countryID
	s.description = strings.TrimSpace(description)
	s.status = status
	s.updatedBy = updatedBy
	s.updatedAt = biztime.NowUTC()
	return nil
}
