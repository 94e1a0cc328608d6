package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stayops/internal/domain/location"
	domainshared "stayops/internal/domain/shared"
	"stayops/internal/infrastructure/persistence/models"
	"stayops/internal/shared/errors"
)

func setupLocationTestDB(t *testing.T) *gorm.DB {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = database.AutoMigrate(
		&models.CountryModel{},
		&models.StateModel{},
		&models.DistrictModel{},
		&models.ZoneModel{},
		&models.AgentModel{},
		&models.HotelModel{},
	)
	require.NoError(t, err)

	return database
}

func seedCountryEntity(t *testing.T, repo location.CountryRepository, code string) *location.Country {
	country, err := location.NewCountry("India", code, "New Delhi", 1)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), country))
	return country
}

func TestCountryRepository_CreateAndFind(t *testing.T) {
	database := setupLocationTestDB(t)
	repo := NewCountryRepository(database)
	ctx := context.Background()

	country := seedCountryEntity(t, repo, "IN")
	require.NotZero(t, country.ID())

	found, err := repo.FindByID(ctx, country.ID())
	require.NoError(t, err)
	assert.Equal(t, "India", found.Name())
	assert.Equal(t, "IN", found.Code())
	assert.Equal(t, "New Delhi", found.Capital())
	assert.True(t, found.Status().IsActive())
}

func TestCountryRepository_DuplicateCode(t *testing.T) {
	database := setupLocationTestDB(t)
	repo := NewCountryRepository(database)
	ctx := context.Background()

	first := seedCountryEntity(t, repo, "IN")

	second, err := location.NewCountry("India Again", "IN", "New Delhi", 1)
	require.NoError(t, err)
	err = repo.Create(ctx, second)
	assert.True(t, errors.IsConflictError(err))

	// The first row survives unchanged.
	found, err := repo.FindByID(ctx, first.ID())
	require.NoError(t, err)
	assert.Equal(t, "India", found.Name())
}

func TestCountryRepository_Update(t *testing.T) {
	database := setupLocationTestDB(t)
	repo := NewCountryRepository(database)
	ctx := context.Background()

	country := seedCountryEntity(t, repo, "IN")
	require.NoError(t, country.Update("Bharat", "IN", "New Delhi", domainshared.StatusActive, 2))
	require.NoError(t, repo.Update(ctx, country))

	found, err := repo.FindByID(ctx, country.ID())
	require.NoError(t, err)
	assert.Equal(t, "Bharat", found.Name())
	assert.EqualValues(t, 2, found.UpdatedBy())
}

func TestCountryRepository_Update_NotFound(t *testing.T) {
	database := setupLocationTestDB(t)
	repo := NewCountryRepository(database)

	country, err := location.NewCountry("Nowhere", "NW", "", 1)
	require.NoError(t, err)
	country.SetID(999)

	err = repo.Update(context.Background(), country)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCountryRepository_ListActive(t *testing.T) {
	database := setupLocationTestDB(t)
	repo := NewCountryRepository(database)
	ctx := context.Background()

	active := seedCountryEntity(t, repo, "IN")
	inactive := seedCountryEntity(t, repo, "XX")
	require.NoError(t, inactive.Update(inactive.Name(), inactive.Code(), inactive.Capital(), domainshared.StatusInactive, 1))
	require.NoError(t, repo.Update(ctx, inactive))

	countries, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, countries, 1)
	assert.Equal(t, active.ID(), countries[0].ID())
}

func TestCountryRepository_DeleteGuard(t *testing.T) {
	database := setupLocationTestDB(t)
	countryRepo := NewCountryRepository(database)
	stateRepo := NewStateRepository(database)
	ctx := context.Background()

	country := seedCountryEntity(t, countryRepo, "IN")

	state, err := location.NewState("Karnataka", "KA", country.ID(), "", 1)
	require.NoError(t, err)
	require.NoError(t, stateRepo.Create(ctx, state))

	err = countryRepo.Delete(ctx, country.ID())
	assert.True(t, errors.IsDependencyError(err))

	// Removing the dependent state unblocks the delete.
	require.NoError(t, stateRepo.Delete(ctx, state.ID()))
	require.NoError(t, countryRepo.Delete(ctx, country.ID()))

	_, err = countryRepo.FindByID(ctx, country.ID())
	assert.True(t, errors.IsNotFoundError(err))

	err = countryRepo.Delete(ctx, country.ID())
	assert.True(t, errors.IsNotFoundError(err))
}

func TestStateRepository_ParentMustExist(t *testing.T) {
	database := setupLocationTestDB(t)
	stateRepo := NewStateRepository(database)
	ctx := context.Background()

	state, err := location.NewState("Karnataka", "KA", 999, "", 1)
	require.NoError(t, err)

	err = stateRepo.Create(ctx, state)
	assert.True(t, errors.IsValidationError(err))
}

func TestStateRepository_FindPreloadsCountryName(t *testing.T) {
	database := setupLocationTestDB(t)
	countryRepo := NewCountryRepository(database)
	stateRepo := NewStateRepository(database)
	ctx := context.Background()

	country := seedCountryEntity(t, countryRepo, "IN")

	state, err := location.NewState("Karnataka", "KA", country.ID(), "", 1)
	require.NoError(t, err)
	require.NoError(t, stateRepo.Create(ctx, state))

	found, err := stateRepo.FindByID(ctx, state.ID())
	require.NoError(t, err)
	assert.Equal(t, "India", found.CountryName())
}

func TestZoneRepository_DeleteGuardedByActors(t *testing.T) {
	database := setupLocationTestDB(t)
	countryRepo := NewCountryRepository(database)
	stateRepo := NewStateRepository(database)
	districtRepo := NewDistrictRepository(database)
	zoneRepo := NewZoneRepository(database)
	ctx := context.Background()

	country := seedCountryEntity(t, countryRepo, "IN")

	state, err := location.NewState("Karnataka", "KA", country.ID(), "", 1)
	require.NoError(t, err)
	require.NoError(t, stateRepo.Create(ctx, state))

	district, err := location.NewDistrict("Bengaluru Urban", "BU", state.ID(), "", 1)
	require.NoError(t, err)
	require.NoError(t, districtRepo.Create(ctx, district))

	zone, err := location.NewZone("Koramangala", "KOR", district.ID(), "", 1)
	require.NoError(t, err)
	require.NoError(t, zoneRepo.Create(ctx, zone))

	// An agent assigned to the zone blocks deletion.
	agent := &models.AgentModel{
		Ref: "agt_test1", Name: "Agent", Email: "agent@example.com", Password: "x",
		CountryID: country.ID(), StateID: state.ID(), DistrictID: district.ID(), ZoneID: zone.ID(),
		Status: 1,
	}
	require.NoError(t, database.Create(agent).Error)

	err = zoneRepo.Delete(ctx, zone.ID())
	assert.True(t, errors.IsDependencyError(err))

	require.NoError(t, database.Delete(agent).Error)
	require.NoError(t, zoneRepo.Delete(ctx, zone.ID()))
}
