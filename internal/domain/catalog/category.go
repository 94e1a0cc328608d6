package catalog

import (
	"fmt"
	"strings"
	"time"

	"stayops/internal/domain/shared"
	"stayops/internal/shared/biztime"
)

// Category groups menu items (e.g. Starters, Mains, Beverages).
type Category struct {
	id          uint
	name        string
	description string
	status      shared.Status
	createdBy   uint
	updatedBy   uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCategory(name, description string, createdBy uint) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}

	now := biztime.NowUTC()
	return &Category{
		name:        name,
		description: strings.TrimSpace(description),
		status:      shared.StatusActive,
		createdBy:   createdBy,
		updatedBy:   createdBy,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructCategory(
	id uint,
	name, description string,
	status shared.Status,
	createdBy, updatedBy uint,
	createdAt, updatedAt time.Time,
) *Category {
	return &Category{
		id:          id,
		name:        name,
		description: description,
		status:      status,
		createdBy:   createdBy,
		updatedBy:   updatedBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (c *Category) ID() uint              { return c.id }
func (c *Category) Name() string          { return c.name }
func (c *Category) Description() string   { return c.description }
func (c *Category) Status() shared.Status { return c.status }
func (c *Category) CreatedBy() uint       { return c.createdBy }
func (c *Category) UpdatedBy() uint       { return c.updatedBy }
func (c *Category) CreatedAt() time.Time  { return c.createdAt }
func (c *Category) UpdatedAt() time.Time  { return c.updatedAt }

func (c *Category) SetID(id uint) { c.id = id }

func (c *Category) Update(name, description string, status shared.Status, updatedBy uint) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("category name is required")
	}

	c.name = name
	c.description = strings.TrimSpace(description)
	c.status = status
	c.updatedBy = updatedBy
	c.updatedAt = biztime.NowUTC()
	return nil
}
