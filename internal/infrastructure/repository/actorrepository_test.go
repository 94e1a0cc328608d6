package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stayops/internal/domain/actor"
	"stayops/internal/domain/location"
	"stayops/internal/infrastructure/persistence/models"
	"stayops/internal/shared/errors"
)

type locationChain struct {
	countryID  uint
	stateID    uint
	districtID uint
	zoneID     uint
}

func setupActorTestDB(t *testing.T) (*gorm.DB, locationChain) {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = database.AutoMigrate(
		&models.CountryModel{},
		&models.StateModel{},
		&models.DistrictModel{},
		&models.ZoneModel{},
		&models.SuperadminModel{},
		&models.AgentModel{},
		&models.HotelModel{},
	)
	require.NoError(t, err)

	ctx := context.Background()
	countryRepo := NewCountryRepository(database)
	stateRepo := NewStateRepository(database)
	districtRepo := NewDistrictRepository(database)
	zoneRepo := NewZoneRepository(database)

	country, err := location.NewCountry("India", "IN", "New Delhi", 1)
	require.NoError(t, err)
	require.NoError(t, countryRepo.Create(ctx, country))

	state, err := location.NewState("Karnataka", "KA", country.ID(), "", 1)
	require.NoError(t, err)
	require.NoError(t, stateRepo.Create(ctx, state))

	district, err := location.NewDistrict("Bengaluru Urban", "BU", state.ID(), "", 1)
	require.NoError(t, err)
	require.NoError(t, districtRepo.Create(ctx, district))

	zone, err := location.NewZone("Koramangala", "KOR", district.ID(), "", 1)
	require.NoError(t, err)
	require.NoError(t, zoneRepo.Create(ctx, zone))

	return database, locationChain{
		countryID:  country.ID(),
		stateID:    state.ID(),
		districtID: district.ID(),
		zoneID:     zone.ID(),
	}
}

func newTestAgent(t *testing.T, chain locationChain, email string) *actor.Agent {
	agent, err := actor.NewAgent("Ravi Kumar", email, "$2a$12$hash", "9876543210",
		chain.countryID, chain.stateID, chain.districtID, chain.zoneID, 1)
	require.NoError(t, err)
	return agent
}

func newTestHotel(t *testing.T, chain locationChain, email string) *actor.Hotel {
	details := actor.HotelDetails{
		Phone:       "080-12345678",
		Address:     "80 Feet Road, Koramangala",
		OpeningTime: "09:00",
		ClosingTime: "23:00",
		OperatingHours: actor.OperatingHours{
			"monday": {Open: "09:00", Close: "23:00"},
			"sunday": {Open: "10:00", Close: "22:00"},
		},
		GSTNumber: "29ABCDE1234F1Z5",
		OwnerName: "Anita Rao",
	}
	hotel, err := actor.NewHotel("Hotel Dakshin", email, "$2a$12$hash",
		chain.countryID, chain.stateID, chain.districtID, chain.zoneID, details, 1)
	require.NoError(t, err)
	return hotel
}

func TestAgentRepository_CreateAndFindByEmail(t *testing.T) {
	database, chain := setupActorTestDB(t)
	repo := NewAgentRepository(database)
	ctx := context.Background()

	agent := newTestAgent(t, chain, "ravi@example.com")
	require.NoError(t, repo.Create(ctx, agent))
	require.NotZero(t, agent.ID())

	found, err := repo.FindByEmail(ctx, "ravi@example.com")
	require.NoError(t, err)
	assert.Equal(t, agent.Ref(), found.Ref())
	assert.Equal(t, "Karnataka", found.StateName())
	assert.Equal(t, "Koramangala", found.ZoneName())
}

func TestAgentRepository_SoftDelete(t *testing.T) {
	database, chain := setupActorTestDB(t)
	repo := NewAgentRepository(database)
	ctx := context.Background()

	agent := newTestAgent(t, chain, "ravi@example.com")
	require.NoError(t, repo.Create(ctx, agent))

	require.NoError(t, repo.Delete(ctx, agent.ID()))

	// The row itself stays, flipped inactive.
	var model models.AgentModel
	require.NoError(t, database.First(&model, agent.ID()).Error)
	assert.EqualValues(t, 0, model.Status)

	// Deleting an already inactive agent reports not found.
	err := repo.Delete(ctx, agent.ID())
	assert.True(t, errors.IsNotFoundError(err))

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestHotelRepository_RoundTripOperatingHours(t *testing.T) {
	database, chain := setupActorTestDB(t)
	repo := NewHotelRepository(database)
	ctx := context.Background()

	hotel := newTestHotel(t, chain, "dakshin@example.com")
	require.NoError(t, repo.Create(ctx, hotel))
	require.NotZero(t, hotel.ID())

	found, err := repo.FindByID(ctx, hotel.ID())
	require.NoError(t, err)
	assert.Equal(t, hotel.Ref(), found.Ref())
	assert.Equal(t, "09:00", found.OpeningTime())
	require.Contains(t, found.OperatingHours(), "monday")
	assert.Equal(t, "23:00", found.OperatingHours()["monday"].Close)
	assert.Equal(t, "Koramangala", found.ZoneName())

	// The login lookup path carries the same denormalized names.
	byEmail, err := repo.FindByEmail(ctx, "dakshin@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Karnataka", byEmail.StateName())
	assert.Equal(t, "Koramangala", byEmail.ZoneName())
}

func TestHotelRepository_SoftDelete(t *testing.T) {
	database, chain := setupActorTestDB(t)
	repo := NewHotelRepository(database)
	ctx := context.Background()

	hotel := newTestHotel(t, chain, "dakshin@example.com")
	require.NoError(t, repo.Create(ctx, hotel))

	require.NoError(t, repo.Delete(ctx, hotel.ID()))

	var model models.HotelModel
	require.NoError(t, database.First(&model, hotel.ID()).Error)
	assert.EqualValues(t, 0, model.Status)

	err := repo.Delete(ctx, hotel.ID())
	assert.True(t, errors.IsNotFoundError(err))
}

func TestHotelRepository_ListByAgentID(t *testing.T) {
	database, chain := setupActorTestDB(t)
	agentRepo := NewAgentRepository(database)
	hotelRepo := NewHotelRepository(database)
	ctx := context.Background()

	agent := newTestAgent(t, chain, "ravi@example.com")
	require.NoError(t, agentRepo.Create(ctx, agent))

	unassigned := newTestHotel(t, chain, "dakshin@example.com")

	linked, err := actor.NewHotel("Hotel Coastal", "linked@example.com", "$2a$12$hash",
		chain.countryID, chain.stateID, chain.districtID, chain.zoneID,
		actor.HotelDetails{OwnerName: "Suresh Pai", AgentID: agent.ID()}, 1)
	require.NoError(t, err)

	require.NoError(t, hotelRepo.Create(ctx, unassigned))
	require.NoError(t, hotelRepo.Create(ctx, linked))

	hotels, err := hotelRepo.ListByAgentID(ctx, agent.ID())
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, linked.ID(), hotels[0].ID())
}

func TestSuperadminRepository_FindByEmail(t *testing.T) {
	database, _ := setupActorTestDB(t)
	repo := NewSuperadminRepository(database)
	ctx := context.Background()

	sa, err := actor.NewSuperadmin("Root Admin", "root@example.com", "$2a$12$hash")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, sa))

	found, err := repo.FindByEmail(ctx, "root@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Root Admin", found.Name())

	_, err = repo.FindByEmail(ctx, "missing@example.com")
	assert.True(t, errors.IsNotFoundError(err))
}
