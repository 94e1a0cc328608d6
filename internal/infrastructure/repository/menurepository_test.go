package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stayops/internal/domain/menu"
	domainshared "stayops/internal/domain/shared"
	"stayops/internal/infrastructure/persistence/models"
	"stayops/internal/shared/db"
	"stayops/internal/shared/errors"
)

func setupMenuTestDB(t *testing.T) *gorm.DB {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = database.AutoMigrate(
		&models.UnitModel{},
		&models.CategoryModel{},
		&models.AddonModel{},
		&models.MenuItemModel{},
		&models.MenuVariantModel{},
		&models.MenuAddonModel{},
	)
	require.NoError(t, err)

	return database
}

func seedCategory(t *testing.T, database *gorm.DB, name string) uint {
	m := &models.CategoryModel{Name: name, Status: 1}
	require.NoError(t, database.Create(m).Error)
	return m.ID
}

func seedAddon(t *testing.T, database *gorm.DB, name string, status uint8) uint {
	unit := &models.UnitModel{Name: "piece", Symbol: "pc", Status: 1}
	require.NoError(t, database.Create(unit).Error)
	m := &models.AddonModel{Name: name, Rate: 20, UnitID: unit.ID, Status: status}
	require.NoError(t, database.Create(m).Error)
	// gorm skips zero values on insert when the column carries a default
	// tag, so an inactive seed needs an explicit follow-up write.
	if status == 0 {
		require.NoError(t, database.Model(&models.AddonModel{}).
			Where("addon_id = ?", m.ID).
			Update("status", 0).Error)
	}
	return m.ID
}

func buildMenuItem(t *testing.T, categoryID uint, addonIDs []uint) *menu.MenuItem {
	item, err := menu.NewMenuItem("Paneer Tikka", "Char-grilled paneer", categoryID, menu.FoodTypeVeg, "", 1)
	require.NoError(t, err)
	require.NoError(t, item.SetVariants([]menu.Variant{
		{VariantType: "half", Rate: 120},
		{VariantType: "full", Rate: 220},
	}))
	require.NoError(t, item.SetAddonIDs(addonIDs))
	return item
}

func countRows(t *testing.T, database *gorm.DB, model interface{}) int64 {
	var n int64
	require.NoError(t, database.Model(model).Count(&n).Error)
	return n
}

func TestMenuRepository_CreateAndFind(t *testing.T) {
	database := setupMenuTestDB(t)
	repo := NewMenuRepository(database)
	ctx := context.Background()

	categoryID := seedCategory(t, database, "Starters")
	addonID := seedAddon(t, database, "Extra Chutney", 1)

	item := buildMenuItem(t, categoryID, []uint{addonID})
	require.NoError(t, repo.Create(ctx, item))
	require.NotZero(t, item.ID())

	found, err := repo.FindByID(ctx, item.ID())
	require.NoError(t, err)
	assert.Equal(t, "Paneer Tikka", found.Name())
	assert.Equal(t, "Starters", found.CategoryName())
	assert.Equal(t, item.Ref(), found.Ref())
	assert.Len(t, found.Variants(), 2)
	assert.Equal(t, []uint{addonID}, found.AddonIDs())
}

func TestMenuRepository_FindByID_NotFound(t *testing.T) {
	database := setupMenuTestDB(t)
	repo := NewMenuRepository(database)

	_, err := repo.FindByID(context.Background(), 999)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestMenuRepository_TransactionRollback(t *testing.T) {
	database := setupMenuTestDB(t)
	repo := NewMenuRepository(database)
	txManager := db.NewTransactionManager(database)
	ctx := context.Background()

	categoryID := seedCategory(t, database, "Starters")
	addonID := seedAddon(t, database, "Extra Chutney", 1)

	item := buildMenuItem(t, categoryID, []uint{addonID})

	err := txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := repo.Create(txCtx, item); err != nil {
			return err
		}
		return fmt.Errorf("simulated downstream failure")
	})
	require.Error(t, err)

	assert.Zero(t, countRows(t, database, &models.MenuItemModel{}))
	assert.Zero(t, countRows(t, database, &models.MenuVariantModel{}))
	assert.Zero(t, countRows(t, database, &models.MenuAddonModel{}))
}

func TestMenuRepository_UpdateReplacesChildren(t *testing.T) {
	database := setupMenuTestDB(t)
	repo := NewMenuRepository(database)
	ctx := context.Background()

	categoryID := seedCategory(t, database, "Starters")
	addonID := seedAddon(t, database, "Extra Chutney", 1)

	item := buildMenuItem(t, categoryID, []uint{addonID})
	require.NoError(t, repo.Create(ctx, item))

	require.NoError(t, item.Update("Paneer Tikka", "Char-grilled paneer", categoryID, menu.FoodTypeVeg, "", domainshared.StatusActive, 2))
	require.NoError(t, item.SetVariants([]menu.Variant{{VariantType: "full", Rate: 240}}))
	require.NoError(t, item.SetAddonIDs(nil))

	require.NoError(t, repo.Update(ctx, item))

	assert.EqualValues(t, 1, countRows(t, database, &models.MenuVariantModel{}))
	assert.Zero(t, countRows(t, database, &models.MenuAddonModel{}))

	found, err := repo.FindByID(ctx, item.ID())
	require.NoError(t, err)
	require.Len(t, found.Variants(), 1)
	assert.Equal(t, "full", found.Variants()[0].VariantType)
	assert.Equal(t, float64(240), found.Variants()[0].Rate)
	assert.Empty(t, found.AddonIDs())
}

func TestMenuRepository_Update_NotFound(t *testing.T) {
	database := setupMenuTestDB(t)
	repo := NewMenuRepository(database)
	ctx := context.Background()

	categoryID := seedCategory(t, database, "Starters")
	item := buildMenuItem(t, categoryID, nil)
	item.SetID(999)

	err := repo.Update(ctx, item)
	assert.True(t, errors.IsNotFoundError(err))

	// A missing parent must never leave freshly inserted children behind.
	assert.Zero(t, countRows(t, database, &models.MenuVariantModel{}))
}

func TestMenuRepository_Delete(t *testing.T) {
	database := setupMenuTestDB(t)
	repo := NewMenuRepository(database)
	ctx := context.Background()

	categoryID := seedCategory(t, database, "Starters")
	addonID := seedAddon(t, database, "Extra Chutney", 1)

	item := buildMenuItem(t, categoryID, []uint{addonID})
	require.NoError(t, repo.Create(ctx, item))

	require.NoError(t, repo.Delete(ctx, item.ID()))

	assert.Zero(t, countRows(t, database, &models.MenuItemModel{}))
	assert.Zero(t, countRows(t, database, &models.MenuVariantModel{}))
	assert.Zero(t, countRows(t, database, &models.MenuAddonModel{}))

	err := repo.Delete(ctx, item.ID())
	assert.True(t, errors.IsNotFoundError(err))
}

func TestMenuRepository_ReplaceAddonLinks(t *testing.T) {
	database := setupMenuTestDB(t)
	repo := NewMenuRepository(database)
	ctx := context.Background()

	categoryID := seedCategory(t, database, "Starters")
	firstAddon := seedAddon(t, database, "Extra Chutney", 1)
	secondAddon := seedAddon(t, database, "Cheese", 1)

	item := buildMenuItem(t, categoryID, []uint{firstAddon})
	require.NoError(t, repo.Create(ctx, item))

	require.NoError(t, repo.ReplaceAddonLinks(ctx, item.ID(), []uint{secondAddon}, 7))

	found, err := repo.FindByID(ctx, item.ID())
	require.NoError(t, err)
	assert.Equal(t, []uint{secondAddon}, found.AddonIDs())
	assert.EqualValues(t, 7, found.UpdatedBy())

	// Empty set clears all links.
	require.NoError(t, repo.ReplaceAddonLinks(ctx, item.ID(), nil, 7))
	assert.Zero(t, countRows(t, database, &models.MenuAddonModel{}))
}

func TestMenuRepository_ReplaceAddonLinks_NotFound(t *testing.T) {
	database := setupMenuTestDB(t)
	repo := NewMenuRepository(database)

	err := repo.ReplaceAddonLinks(context.Background(), 999, []uint{1}, 1)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestMenuRepository_Counts(t *testing.T) {
	database := setupMenuTestDB(t)
	repo := NewMenuRepository(database)
	ctx := context.Background()

	categoryID := seedCategory(t, database, "Starters")
	addonID := seedAddon(t, database, "Extra Chutney", 1)

	item := buildMenuItem(t, categoryID, []uint{addonID})
	require.NoError(t, repo.Create(ctx, item))

	byCategory, err := repo.CountByCategoryID(ctx, categoryID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, byCategory)

	byAddon, err := repo.CountByAddonID(ctx, addonID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, byAddon)
}

func TestMenuRepository_ExistingAddonIDs(t *testing.T) {
	database := setupMenuTestDB(t)
	repo := NewMenuRepository(database)
	ctx := context.Background()

	active := seedAddon(t, database, "Extra Chutney", 1)
	inactive := seedAddon(t, database, "Discontinued", 0)

	found, err := repo.ExistingAddonIDs(ctx, []uint{active, inactive, 999})
	require.NoError(t, err)
	assert.Equal(t, []uint{active}, found)

	found, err = repo.ExistingAddonIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, found)
}
