package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ShakeelGadafi/crediflow-sub000/internal/database"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/middleware"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/models"
)

func seedModule(t *testing.T, key string) models.Module {
	t.Helper()

	module := models.Module{Key: key, Name: key}
	assert.NoError(t, database.DB.Create(&module).Error)
	return module
}

// gatedRouter injects the given user as the resolved identity, then
// applies the permission gate, mirroring the auth-then-gate chain.
func gatedRouter(user models.User, moduleKey string, action models.Action) *gin.Engine {
	router := gin.New()
	inject := func(c *gin.Context) {
		c.Set(middleware.ContextUserKey, user)
		c.Next()
	}
	router.GET("/resource", inject, middleware.RequirePermission(moduleKey, action), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func get(router *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequirePermissionDefaultDeny(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	seedModule(t, models.ModuleCredit)
	staff := createUser(t, "staff@example.com", models.RoleStaff, true)

	// No grant row at all: deny.
	w := get(gatedRouter(staff, models.ModuleCredit, models.ActionView))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequirePermissionActionsAreIndependent(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	module := seedModule(t, models.ModuleCredit)
	staff := createUser(t, "staff@example.com", models.RoleStaff, true)

	assert.NoError(t, database.DB.Create(&models.Permission{
		UserID:   staff.ID,
		ModuleID: module.ID,
		CanView:  true,
	}).Error)

	w := get(gatedRouter(staff, models.ModuleCredit, models.ActionView))
	assert.Equal(t, http.StatusOK, w.Code)

	// View does not imply create.
	w = get(gatedRouter(staff, models.ModuleCredit, models.ActionCreate))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequirePermissionScopedToModule(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	credit := seedModule(t, models.ModuleCredit)
	seedModule(t, models.ModuleUtilities)
	staff := createUser(t, "staff@example.com", models.RoleStaff, true)

	assert.NoError(t, database.DB.Create(&models.Permission{
		UserID:   staff.ID,
		ModuleID: credit.ID,
		CanView:  true,
	}).Error)

	w := get(gatedRouter(staff, models.ModuleCredit, models.ActionView))
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(gatedRouter(staff, models.ModuleUtilities, models.ActionView))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequirePermissionAdminBypass(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	module := seedModule(t, models.ModuleSuppliers)
	admin := createUser(t, "admin@example.com", models.RoleAdmin, true)

	// Admin with no grant rows passes.
	w := get(gatedRouter(admin, models.ModuleSuppliers, models.ActionDelete))
	assert.Equal(t, http.StatusOK, w.Code)

	// Even an explicit all-false row does not restrict an admin.
	assert.NoError(t, database.DB.Create(&models.Permission{
		UserID:   admin.ID,
		ModuleID: module.ID,
	}).Error)

	w = get(gatedRouter(admin, models.ModuleSuppliers, models.ActionDelete))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequirePermissionUnknownAction(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	seedModule(t, models.ModuleCredit)
	staff := createUser(t, "staff@example.com", models.RoleStaff, true)

	w := get(gatedRouter(staff, models.ModuleCredit, models.Action("approve")))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequirePermissionMissingIdentity(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/resource", middleware.RequirePermission(models.ModuleCredit, models.ActionView), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := get(router)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnly(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	staff := createUser(t, "staff@example.com", models.RoleStaff, true)
	admin := createUser(t, "admin@example.com", models.RoleAdmin, true)

	buildRouter := func(user models.User) *gin.Engine {
		router := gin.New()
		inject := func(c *gin.Context) {
			c.Set(middleware.ContextUserKey, user)
			c.Next()
		}
		router.GET("/resource", inject, middleware.AdminOnly(), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
		return router
	}

	w := get(buildRouter(staff))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = get(buildRouter(admin))
	assert.Equal(t, http.StatusOK, w.Code)
}
