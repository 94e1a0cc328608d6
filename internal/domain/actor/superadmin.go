package actor

import (
	"fmt"
	"strings"
	"time"

	"stayops/internal/domain/shared"
	"stayops/internal/shared/biztime"
)

// Superadmin is the platform operator account. There is no public
// signup; superadmins are created from the CLI or by another
// superadmin.
type Superadmin struct {
	id        uint
	name      string
	email     string
	password  string
	status    shared.Status
	createdAt time.Time
	updatedAt time.Time
}

func NewSuperadmin(name, email, hashedPassword string) (*Superadmin, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if hashedPassword == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := biztime.NowUTC()
	return &Superadmin{
		name:      name,
		email:     email,
		password:  hashedPassword,
		status:    shared.StatusActive,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructSuperadmin(
	id uint,
	name, email, password string,
	status shared.Status,
	createdAt, updatedAt time.Time,
) *Superadmin {
	return &Superadmin{
		id:        id,
		name:      name,
		email:     email,
		password:  password,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (s *Superadmin) ID() uint              { return s.id }
func (s *Superadmin) Name() string          { return s.name }
func (s *Superadmin) Email() string         { return s.email }
func (s *Superadmin) Password() string      { return s.password }
func (s *Superadmin) Status() shared.Status { return s.status }
func (s *Superadmin) CreatedAt() time.Time  { return s.createdAt }
func (s *Superadmin) UpdatedAt() time.Time  { return s.updatedAt }

func (s *Superadmin) SetID(id uint) { s.id = id }

func (s *Superadmin) CanLogin() bool { return s.status.IsActive() }

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || !strings.Contains(email[at:], ".") {
		return fmt.Errorf("invalid email format: %s", email)
	}
	return nil
}
