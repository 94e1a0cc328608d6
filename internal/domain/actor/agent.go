package actor

import (
	"fmt"
	"strings"
	"time"

	"stayops/internal/domain/shared"
	"stayops/internal/shared/biztime"
	"stayops/internal/shared/id"
)

// Agent is a field sales account that onboards hotels inside its
// assigned territory. The four location FKs pin the territory; the
// denormalized names are filled on read.
type Agent struct {
	id         uint
	ref        string
	name       string
	email      string
	password   string
	phone      string
	countryID  uint
	stateID    uint
	districtID uint
	zoneID     uint

	countryName  string
	stateName    string
	districtName string
	zoneName     string

	status      shared.Status
	createdByID uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewAgent(name, email, hashedPassword, phone string, countryID, stateID, districtID, zoneID, createdByID uint) (*Agent, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return nil, fmt.Errorf("agent name is required")
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

	ref, err := id.NewAgentRef()
	if err != nil {
		return nil, fmt.Errorf("failed to generate agent ref: %w", err)
	}

	now := biztime.NowUTC()
	return &Agent{
		ref:         ref,
		name:        name,
		email:       email,
		password:    hashedPassword,
		phone:       phone,
		countryID:   countryID,
		stateID:     stateID,
		districtID:  districtID,
		zoneID:      zoneID,
		status:      shared.StatusActive,
		createdByID: createdByID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructAgent(
	agentID uint,
	ref string,
	name, email, password, phone string,
	countryID, stateID, districtID, zoneID uint,
	countryName, stateName, districtName, zoneName string,
	status shared.Status,
	createdByID uint,
	createdAt, updatedAt time.Time,
) *Agent {
	return &Agent{
		id:           agentID,
		ref:          ref,
		name:         name,
		email:        email,
		password:     password,
		phone:        phone,
		countryID:    countryID,
		stateID:      stateID,
		districtID:   districtID,
		zoneID:       zoneID,
		countryName:  countryName,
		stateName:    stateName,
		districtName: districtName,
		zoneName:     zoneName,
		status:       status,
		createdByID:  createdByID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (a *Agent) ID() uint              { return a.id }
func (a *Agent) Ref() string           { return a.ref }
func (a *Agent) Name() string          { return a.name }
func (a *Agent) Email() string         { return a.email }
func (a *Agent) Password() string      { return a.password }
func (a *Agent) Phone() string         { return a.phone }
func (a *Agent) CountryID() uint       { return a.countryID }
func (a *Agent) StateID() uint         { return a.stateID }
func (a *Agent) DistrictID() uint      { return a.districtID }
func (a *Agent) ZoneID() uint          { return a.zoneID }
func (a *Agent) CountryName() string   { return a.countryName }
func (a *Agent) StateName() string     { return a.stateName }
func (a *Agent) DistrictName() string  { return a.districtName }
func (a *Agent) ZoneName() string      { return a.zoneName }
func (a *Agent) Status() shared.Status { return a.status }
func (a *Agent) CreatedByID() uint     { return a.createdByID }
func (a *Agent) CreatedAt() time.Time  { return a.createdAt }
func (a *Agent) UpdatedAt() time.Time  { return a.updatedAt }

func (a *Agent) SetID(agentID uint) { a.id = agentID }

func (a *Agent) CanLogin() bool { return a.status.IsActive() }

func (a *Agent) Update(name, phone string, countryID, stateID, districtID, zoneID uint, status shared.Status) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("agent name is required")
	}
	if countryID == 0 || stateID == 0 || districtID == 0 || zoneID == 0 {
		return fmt.Errorf("country, state, district and zone are required")
	}

	a.name = name
	a.phone = strings.TrimSpace(phone)
	a.countryID = countryID
	a.stateID = stateID
	a.districtID = districtID
	a.zoneID = zoneID
	a.status = status
	a.updatedAt = biztime.NowUTC()
	return nil
}

// Deactivate marks the agent as soft deleted. The row stays for
// audit and any hotels created by the agent keep their reference.
func (a *Agent) Deactivate() {
	a.status = shared.StatusInactive
	a.updatedAt = biztime.NowUTC()
}
