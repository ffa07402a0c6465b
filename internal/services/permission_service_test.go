package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ShakeelGadafi/crediflow-sub000/internal/database"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/models"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/services"
)

func setupTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	tables := []interface{}{
		&models.User{}, &models.Module{}, &models.Permission{},
		&models.CreditCustomer{}, &models.CreditBill{},
		&models.UtilityBill{},
		&models.ExpenditureSection{}, &models.ExpenditureCategory{}, &models.Expenditure{},
		&models.SupplierInvoice{},
	}
	db.Migrator().DropTable(tables...)
	if err := db.AutoMigrate(tables...); err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
}

func seedStaff(t *testing.T, email string) models.User {
	t.Helper()

	user, err := services.CreateUser("Test Staff", email, "Password123", models.RoleStaff)
	assert.NoError(t, err)
	return *user
}

func seedModules(t *testing.T) map[string]models.Module {
	t.Helper()

	out := make(map[string]models.Module)
	for _, key := range []string{models.ModuleCredit, models.ModuleUtilities, models.ModuleExpenditure, models.ModuleSuppliers} {
		m := models.Module{Key: key, Name: key}
		assert.NoError(t, database.DB.Create(&m).Error)
		out[key] = m
	}
	return out
}

func TestHasPermissionDefaultDeny(t *testing.T) {
	setupTestDB()
	seedModules(t)
	staff := seedStaff(t, "staff@example.com")

	allowed, err := services.HasPermission(staff.ID, models.ModuleCredit, models.ActionView)
	assert.NoError(t, err)
	assert.False(t, allowed)

	// An unknown module key is a deny, not an error.
	allowed, err = services.HasPermission(staff.ID, "NO_SUCH_MODULE", models.ActionView)
	assert.NoError(t, err)
	assert.False(t, allowed)
}

func TestUpsertGrantsLeavesOtherModulesUntouched(t *testing.T) {
	setupTestDB()
	modules := seedModules(t)
	staff := seedStaff(t, "staff@example.com")

	_, err := services.UpsertGrants(staff.ID, []services.GrantInput{
		{ModuleID: modules[models.ModuleCredit].ID, CanView: true, CanCreate: true},
	})
	assert.NoError(t, err)

	// A later batch for a different module must not disturb the first.
	_, err = services.UpsertGrants(staff.ID, []services.GrantInput{
		{ModuleID: modules[models.ModuleUtilities].ID, CanView: true},
	})
	assert.NoError(t, err)

	allowed, err := services.HasPermission(staff.ID, models.ModuleCredit, models.ActionCreate)
	assert.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = services.HasPermission(staff.ID, models.ModuleUtilities, models.ActionView)
	assert.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = services.HasPermission(staff.ID, models.ModuleUtilities, models.ActionCreate)
	assert.NoError(t, err)
	assert.False(t, allowed)
}

func TestUpsertGrantsFullRevokeKeepsRow(t *testing.T) {
	setupTestDB()
	modules := seedModules(t)
	staff := seedStaff(t, "staff@example.com")

	_, err := services.UpsertGrants(staff.ID, []services.GrantInput{
		{ModuleID: modules[models.ModuleSuppliers].ID, CanView: true, CanCreate: true, CanUpdate: true, CanDelete: true},
	})
	assert.NoError(t, err)

	_, err = services.UpsertGrants(staff.ID, []services.GrantInput{
		{ModuleID: modules[models.ModuleSuppliers].ID},
	})
	assert.NoError(t, err)

	var count int64
	assert.NoError(t, database.DB.Model(&models.Permission{}).
		Where("user_id = ? AND module_id = ?", staff.ID, modules[models.ModuleSuppliers].ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)

	for _, action := range []models.Action{models.ActionView, models.ActionCreate, models.ActionUpdate, models.ActionDelete} {
		allowed, err := services.HasPermission(staff.ID, models.ModuleSuppliers, action)
		assert.NoError(t, err)
		assert.False(t, allowed, "action %s should be revoked", action)
	}
}

func TestUpsertGrantsUnknownTargets(t *testing.T) {
	setupTestDB()
	modules := seedModules(t)
	staff := seedStaff(t, "staff@example.com")

	_, err := services.UpsertGrants(99999, []services.GrantInput{
		{ModuleID: modules[models.ModuleCredit].ID, CanView: true},
	})
	assert.ErrorIs(t, err, services.ErrUserNotFound)

	_, err = services.UpsertGrants(staff.ID, []services.GrantInput{
		{ModuleID: 99999, CanView: true},
	})
	assert.ErrorIs(t, err, services.ErrModuleNotFound)
}

func TestGetUserGrantsCoversEveryModule(t *testing.T) {
	setupTestDB()
	modules := seedModules(t)
	staff := seedStaff(t, "staff@example.com")

	_, err := services.UpsertGrants(staff.ID, []services.GrantInput{
		{ModuleID: modules[models.ModuleExpenditure].ID, CanView: true, CanUpdate: true},
	})
	assert.NoError(t, err)

	grants, err := services.GetUserGrants(staff.ID)
	assert.NoError(t, err)
	assert.Len(t, grants, 4)

	byKey := make(map[string]services.UserGrant, len(grants))
	for _, g := range grants {
		byKey[g.Key] = g
	}

	assert.True(t, byKey[models.ModuleExpenditure].CanView)
	assert.True(t, byKey[models.ModuleExpenditure].CanUpdate)
	assert.False(t, byKey[models.ModuleExpenditure].CanCreate)

	// Modules without a grant row appear with all-false defaults.
	assert.False(t, byKey[models.ModuleCredit].CanView)
	assert.False(t, byKey[models.ModuleSuppliers].CanDelete)
}
