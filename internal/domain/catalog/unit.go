// Package catalog models the menu master data that is not the menu item
// aggregate itself: units, categories and addons.
package catalog

import (
	"fmt"
	"strings"
	"time"

	"stayops/internal/domain/shared"
	"stayops/internal/shared/biztime"
)

// Unit is a measurement unit referenced by addons (e.g. piece, plate, ml).
type Unit struct {
	id        uint
	name      string
	symbol    string
	status    shared.Status
	createdBy uint
	updatedBy uint
	createdAt time.Time
	updatedAt time.Time
}

func NewUnit(name, symbol string, createdBy uint) (*Unit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("unit name is required")
	}

	now := biztime.NowUTC()
	return &Unit{
		name:      name,
		symbol:    strings.TrimSpace(symbol),
		status:    shared.StatusActive,
		createdBy: createdBy,
		updatedBy: createdBy,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructUnit(
	id uint,
	name, symbol string,
	status shared.Status,
	createdBy, updatedBy uint,
	createdAt, updatedAt time.Time,
) *Unit {
	return &Unit{
		id:        id,
		name:      name,
		symbol:    symbol,
		status:    status,
		createdBy: createdBy,
		updatedBy: updatedBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (u *Unit) ID() uint              { return u.id }
func (u *Unit) Name() string          { return u.name }
func (u *Unit) Symbol() string        { return u.symbol }
func (u *Unit) Status() shared.Status { return u.status }
func (u *Unit) CreatedBy() uint       { return u.createdBy }
func (u *Unit) UpdatedBy() uint       { return u.updatedBy }
func (u *Unit) CreatedAt() time.Time  { return u.createdAt }
func (u *Unit) UpdatedAt() time.Time  { return u.updatedAt }

func (u *Unit) SetID(id uint) { u.id = id }

func (u *Unit) Update(name, symbol string, status shared.Status, updatedBy uint) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("unit name is required")
	}

	u.name = name
	u.symbol = strings.TrimSpace(symbol)
	u.status = status
	u.updatedBy = updatedBy
	u.updatedAt = biztime.NowUTC()
	return nil
}
