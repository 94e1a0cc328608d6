package actor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayops/internal/domain/shared"
)

func TestNewAgent(t *testing.T) {
	agent, err := NewAgent(" Ravi Kumar ", " Ravi@Example.COM ", "hashed-pw", "9876543210", 1, 2, 3, 4, 1)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(agent.Ref(), "agt_"))
	assert.Equal(t, "Ravi Kumar", agent.Name())
	assert.Equal(t, "ravi@example.com", agent.Email())
	assert.Equal(t, shared.StatusActive, agent.Status())
	assert.Equal(t, uint(4), agent.ZoneID())
}

func TestNewAgentValidation(t *testing.T) {
	tests := []struct {
		name   string
		build  func() (*Agent, error)
	}{
		{"empty name", func() (*Agent, error) {
			return NewAgent("  ", "ravi@example.com", "hash", "", 1, 2, 3, 4, 1)
		}},
		{"bad email", func() (*Agent, error) {
			return NewAgent("Ravi", "not-an-email", "hash", "", 1, 2, 3, 4, 1)
		}},
		{"missing password hash", func() (*Agent, error) {
			return NewAgent("Ravi", "ravi@example.com", "", "", 1, 2, 3, 4, 1)
		}},
		{"missing zone", func() (*Agent, error) {
			return NewAgent("Ravi", "ravi@example.com", "hash", "", 1, 2, 3, 0, 1)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			assert.Error(t, err)
		})
	}
}

func TestNewHotel(t *testing.T) {
	hotel, err := NewHotel("Hotel Dakshin", "dakshin@example.com", "hashed-pw", 1, 2, 3, 4, HotelDetails{
		OpeningTime: "09:00",
		ClosingTime: "23:00",
		OperatingHours: OperatingHours{
			"monday": {Open: "09:00", Close: "23:00"},
		},
		OwnerName: " Suresh Pai ",
	}, 1)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hotel.Ref(), "htl_"))
	assert.Equal(t, "Suresh Pai", hotel.OwnerName())
	assert.Equal(t, "09:00", hotel.OpeningTime())
	assert.Equal(t, shared.StatusActive, hotel.Status())
}

func TestNewHotelRejectsBadClock(t *testing.T) {
	_, err := NewHotel("Hotel Dakshin", "dakshin@example.com", "hash", 1, 2, 3, 4, HotelDetails{
		OpeningTime: "9am",
		ClosingTime: "23:00",
	}, 1)
	assert.Error(t, err)
}

func TestAgentRefsAreUnique(t *testing.T) {
	a, err := NewAgent("Ravi", "ravi@example.com", "hash", "", 1, 2, 3, 4, 1)
	require.NoError(t, err)
	b, err := NewAgent("Anita", "anita@example.com", "hash", "", 1, 2, 3, 4, 1)
	require.NoError(t, err)
	assert.NotEqual(t, a.Ref(), b.Ref())
}
