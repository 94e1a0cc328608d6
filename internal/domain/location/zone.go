package location

import (
	"fmt"
	"strings"
	"time"

	"stayops/internal/domain/shared"
	"stayops/internal/shared/biztime"
)

// Zone is the leaf of the location hierarchy and belongs to a District.
type Zone struct {
	id           uint
	name         string
	code         string
	districtID   uint
	districtName string
	description  string
	status       shared.Status
	createdBy    uint
	updatedBy    uint
	createdAt    time.Time
	updatedAt    time.Time
}

func NewZone(name, code string, districtID uint, description string, createdBy uint) (*Zone, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("zone name is required")
	}
	if districtID == 0 {
		return nil, fmt.Errorf("district ID is required")
	}

	now := biztime.NowUTC()
	return &Zone{
		name:        name,
		code:        strings.TrimSpace(strings.ToUpper(code)),
		districtID:  districtID,
		description: strings.TrimSpace(description),
		status:      shared.StatusActive,
		createdBy:   createdBy,
		updatedBy:   createdBy,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructZone rebuilds a Zone from the persistence layer.
func ReconstructZone(
	id uint,
	name, code string,
	districtID uint,
	districtName, description string,
	status shared.Status,
	createdBy, updatedBy uint,
	createdAt, updatedAt time.Time,
) *Zone {
	return &Zone{
		id:           id,
		name:         name,
		code:         code,
		districtID:   districtID,
		districtName: districtName,
		description:  description,
		status:       status,
		createdBy:    createdBy,
		updatedBy:    updatedBy,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (z *Zone) ID() uint              { return z.id }
func (z *Zone) Name() string          { return z.name }
func (z *Zone) Code() string          { return z.code }
func (z *Zone) DistrictID() uint      { return z.districtID }
func (z *Zone) DistrictName() string  { return z.districtName }
func (z *Zone) Description() string   { return z.description }
func (z *Zone) Status() shared.Status { return z.status }
func (z *Zone) CreatedBy() uint       { return z.createdBy }
func (z *Zone) UpdatedBy() uint       { return z.updatedBy }
func (z *Zone) CreatedAt() time.Time  { return z.createdAt }
func (z *Zone) UpdatedAt() time.Time  { return z.updatedAt }

func (z *Zone) SetID(id uint) { z.id = id }

func (z *Zone) Update(name, code string, districtID uint, description string, status shared.Status, updatedBy uint) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("zone name is required")
	}
	if districtID == 0 {
		return fmt.Errorf("district ID is required")
	}

	z.name = name
	z.code = strings.TrimSpace(strings.ToUpper(code))
	z.districtID = districtID
	z.description = strings.TrimSpace(description)
	z.status = status
	z.updatedBy = updatedBy
	z.updatedAt = biztime.NowUTC()
	return nil
}
