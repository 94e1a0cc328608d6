package location

import (
	"fmt"
	"strings"
	"time"

	"stayops/internal/domain/shared"
	"stayops/internal/shared/biztime"
)

// District belongs to a State.
type District struct {
	id          uint
	name        string
	code        string
	stateID     uint
	stateName   string
	description string
	status      shared.Status
	createdBy   uint
	updatedBy   uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewDistrict(name, code string, stateID uint, description string, createdBy uint) (*District, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("district name is required")
	}
	if stateID == 0 {
		return nil, fmt.Errorf("state ID is required")
	}

	now := biztime.NowUTC()
	return &District{
		name:        name,
		code:        strings.TrimSpace(strings.ToUpper(code)),
		stateID:     stateID,
		description: strings.TrimSpace(description),
		status:      shared.StatusActive,
		createdBy:   createdBy,
		updatedBy:   createdBy,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructDistrict rebuilds a District from the persistence layer.
func ReconstructDistrict(
	id uint,
	name, code string,
	stateID uint,
	stateName, description string,
	status shared.Status,
	createdBy, updatedBy uint,
	createdAt, updatedAt time.Time,
) *District {
	return &District{
		id:          id,
		name:        name,
		code:        code,
		stateID:     stateID,
		stateName:   stateName,
		description: description,
		status:      status,
		createdBy:   createdBy,
		updatedBy:   updatedBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (d *District) ID() uint              { return d.id }
func (d *District) Name() string          { return d.name }
func (d *District) Code() string          { return d.code }
func (d *District) StateID() uint         { return d.stateID }
func (d *District) StateName() string     { return d.stateName }
func (d *District) Description() string   { return d.description }
func (d *District) Status() shared.Status { return d.status }
func (d *District) CreatedBy() uint       { return d.createdBy }
func (d *District) UpdatedBy() uint       { return d.updatedBy }
func (d *District) CreatedAt() time.Time  { return d.createdAt }
func (d *District) UpdatedAt() time.Time  { return d.updatedAt }

func (d *District) SetID(id uint) { d.id = id }

func (d *District) Update(name, code string, stateID uint, description string, status shared.Status, updatedBy uint) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("district name is required")
	}
	if stateID == 0 {
		return fmt.Errorf("state ID is required")
	}

	d.name = name
	d.code = strings.TrimSpace(strings.ToUpper(code))
	d.stateID = stateID
	d.description = strings.TrimSpace(description)
	d.status = status
	d.updatedBy = updatedBy
	d.updatedAt = biztime.NowUTC()
	return nil
}
