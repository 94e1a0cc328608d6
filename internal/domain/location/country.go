// Package location models the geographic hierarchy master data:
// Country -> State -> District -> Zone.
package location

import (
	"fmt"
	"strings"
	"time"

	"stayops/internal/domain/shared"
	"stayops/internal/shared/biztime"
)

// Country is the root of the location hierarchy. The country code is unique
// across the table.
type Country struct {
	id        uint
	name      string
	code      string
	capital   string
	status    shared.Status
	createdBy uint
	updatedBy uint
	createdAt time.Time
	updatedAt time.Time
}

// NewCountry creates a country for insertion.
func NewCountry(name, code, capital string, createdBy uint) (*Country, error) {
	name = strings.TrimSpace(name)
	code = strings.TrimSpace(strings.ToUpper(code))
	if name == "" {
		return nil, fmt.Errorf("country name is required")
	}
	if code == "" {
		return nil, fmt.Errorf("country code is required")
	}

	now := biztime.NowUTC()
	return &Country{
		name:      name,
		code:      code,
		capital:   strings.TrimSpace(capital),
		status:    shared.StatusActive,
		createdBy: createdBy,
		updatedBy: createdBy,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructCountry rebuilds a Country from the persistence layer.
func ReconstructCountry(
	id uint,
	name, code, capital string,
	status shared.Status,
	createdBy, updatedBy uint,
	createdAt, updatedAt time.Time,
) *Country {
	return &Country{
		id:        id,
		name:      name,
		code:      code,
		capital:   capital,
		status:    status,
		createdBy: createdBy,
		updatedBy: updatedBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Country) ID() uint              { return c.id }
func (c *Country) Name() string          { return c.name }
func (c *Country) Code() string          { return c.code }
func (c *Country) Capital() string       { return c.capital }
func (c *Country) Status() shared.Status { return c.status }
func (c *Country) CreatedBy() uint       { return c.createdBy }
func (c *Country) UpdatedBy() uint       { return c.updatedBy }
func (c *Country) CreatedAt() time.Time  { return c.createdAt }
func (c *Country) UpdatedAt() time.Time  { return c.updatedAt }

// SetID sets the country ID (persistence layer use only).
func (c *Country) SetID(id uint) { c.id = id }

// Update replaces every mutable column. PUT carries the full document, so
// omitted optional fields are written back as empty.
func (c *Country) Update(name, code, capital string, status shared.Status, updatedBy uint) error {
	name = strings.TrimSpace(name)
	code = strings.TrimSpace(strings.ToUpper(code))
	if name == "" {
		return fmt.Errorf("country name is required")
	}
	if code == "" {
		return fmt.Errorf("country code is required")
	}

	c.name = name
	c.code = code
	c.capital = strings.TrimSpace(capital)
	c.status = status
	c.updatedBy = updatedBy
	c.updatedAt = biztime.NowUTC()
	return nil
}
