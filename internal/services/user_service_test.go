package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/ShakeelGadafi/crediflow-sub000/internal/models"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/services"
)

func TestCreateUser(t *testing.T) {
	setupTestDB()

	user, err := services.CreateUser("Jane Doe", "jane@example.com", "Password123", models.RoleStaff)
	assert.NoError(t, err)
	assert.True(t, user.Active)
	assert.Equal(t, models.RoleStaff, user.Role)

	// Password is stored hashed, never verbatim.
	assert.NotEqual(t, "Password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Password123")))

	_, err = services.CreateUser("Other", "jane@example.com", "Password456", models.RoleStaff)
	assert.ErrorIs(t, err, services.ErrEmailTaken)

	_, err = services.CreateUser("Odd Role", "odd@example.com", "Password123", "MANAGER")
	assert.ErrorIs(t, err, services.ErrInvalidUserRole)
}

func TestUpdateUserOptimisticLock(t *testing.T) {
	setupTestDB()
	staff := seedStaff(t, "staff@example.com")

	updated, err := services.UpdateUser(staff.ID, map[string]interface{}{"active": false})
	assert.NoError(t, err)
	assert.False(t, updated.Active)
	assert.Equal(t, staff.Version+1, updated.Version)

	// Every successful write bumps the version, so stale readers can
	// be detected on their next update.
	updated, err = services.UpdateUser(staff.ID, map[string]interface{}{"active": true})
	assert.NoError(t, err)
	assert.Equal(t, staff.Version+2, updated.Version)

	_, err = services.UpdateUser(99999, map[string]interface{}{"active": true})
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestUpdateUserRoleValidation(t *testing.T) {
	setupTestDB()
	staff := seedStaff(t, "staff@example.com")

	_, err := services.UpdateUser(staff.ID, map[string]interface{}{"role": "SUPERUSER"})
	assert.ErrorIs(t, err, services.ErrInvalidUserRole)

	updated, err := services.UpdateUser(staff.ID, map[string]interface{}{"role": models.RoleAdmin})
	assert.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)
}
