package catalog

import (
	"fmt"
	"strings"
	"time"

	"stayops/internal/domain/shared"
	"stayops/internal/shared/biztime"
)

// Addon is an extra that menu items can link to (e.g. extra cheese).
// unitName is denormalized on read.
type Addon struct {
	id        uint
	name      string
	rate      float64
	unitID    uint
	unitName  string
	status    shared.Status
	createdBy uint
	updatedBy uint
	createdAt time.Time
	updatedAt time.Time
}

func NewAddon(name string, rate float64, unitID uint, createdBy uint) (*Addon, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("addon name is required")
	}
	if rate < 0 {
		return nil, fmt.Errorf("addon rate must not be negative")
	}
	if unitID == 0 {
		return nil, fmt.Errorf("unit ID is required")
	}

	now := biztime.NowUTC()
	return &Addon{
		name:      name,
		rate:      rate,
		unitID:    unitID,
		status:    shared.StatusActive,
		createdBy: createdBy,
		updatedBy: createdBy,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructAddon(
	id uint,
	name string,
	rate float64,
	unitID uint,
	unitName string,
	status shared.Status,
	createdBy, updatedBy uint,
	createdAt, updatedAt time.Time,
) *Addon {
	return &Addon{
		id:        id,
		name:      name,
		rate:      rate,
		unitID:    unitID,
		unitName:  unitName,
		status:    status,
		createdBy: createdBy,
		updatedBy: updatedBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (a *Addon) ID() uint              { return a.id }
func (a *Addon) Name() string          { return a.name }
func (a *Addon) Rate() float64         { return a.rate }
func (a *Addon) UnitID() uint          { return a.unitID }
func (a *Addon) UnitName() string      { return a.unitName }
func (a *Addon) Status() shared.Status { return a.status }
func (a *Addon) CreatedBy() uint       { return a.createdBy }
func (a *Addon) UpdatedBy() uint       { return a.updatedBy }
func (a *Addon) CreatedAt() time.Time  { return a.createdAt }
func (a *Addon) UpdatedAt() time.Time  { return a.updatedAt }

func (a *Addon) SetID(id uint) { a.id = id }

func (a *Addon) Update(name string, rate float64, unitID uint, status shared.Status, updatedBy uint) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("addon name is required")
	}
	if rate < 0 {
		return fmt.Errorf("addon rate must not be negative")
	}
	if unitID == 0 {
		return fmt.Errorf("unit ID is required")
	}

	a.name = name
	a.rate = rate
	a.unitID = unitID
	a.status = status
	a.updatedBy = updatedBy
	a.updatedAt = biztime.NowUTC()
	return nil
}
