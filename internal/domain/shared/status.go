// Package shared holds small types used across domain packages.
package shared

// Status marks a row active or inactive. Inactive rows are hidden from
// listings and, for actor tables, represent a soft delete.
type Status uint8

const (
	StatusInactive Status = 0
	StatusActive   Status = 1
)

func (s Status) IsActive() bool {
	return s == StatusActive
}
