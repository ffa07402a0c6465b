package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ShakeelGadafi/crediflow-sub000/config"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/database"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/middleware"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/models"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/services"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/utils"
)

const testSecret = "test_secret"

func setupTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(&models.User{}, &models.Module{}, &models.Permission{})
	if err := db.AutoMigrate(&models.User{}, &models.Module{}, &models.Permission{}); err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
}

func setupMockRedis() *miniredis.Miniredis {
	mr, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	database.RedisClient = redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	return mr
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: testSecret, TokenTTL: time.Hour}
}

func createUser(t *testing.T, email, role string, active bool) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	user := models.User{
		FullName: "Test User",
		Email:    email,
		Password: string(hashed),
		Role:     role,
		Active:   active,
	}
	assert.NoError(t, database.DB.Create(&user).Error)
	return user
}

func protectedRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.GET("/protected", middleware.AuthMiddleware(cfg), func(c *gin.Context) {
		user := c.MustGet(middleware.ContextUserKey).(models.User)
		c.JSON(http.StatusOK, gin.H{"user_id": user.ID})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	setupTestDB()
	mr := setupMockRedis()
	defer mr.Close()

	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	router := protectedRouter(cfg)

	activeUser := createUser(t, "active@example.com", models.RoleStaff, true)
	disabledUser := createUser(t, "disabled@example.com", models.RoleStaff, false)

	validToken, err := utils.GenerateToken(activeUser.ID, activeUser.Role, testSecret, time.Hour)
	assert.NoError(t, err)
	disabledToken, err := utils.GenerateToken(disabledUser.ID, disabledUser.Role, testSecret, time.Hour)
	assert.NoError(t, err)
	forgedToken, err := utils.GenerateToken(activeUser.ID, activeUser.Role, "wrong_secret", time.Hour)
	assert.NoError(t, err)
	expiredToken, err := utils.GenerateToken(activeUser.ID, activeUser.Role, testSecret, -time.Hour)
	assert.NoError(t, err)
	ghostToken, err := utils.GenerateToken(99999, models.RoleStaff, testSecret, time.Hour)
	assert.NoError(t, err)
	revokedToken, err := utils.GenerateToken(activeUser.ID, activeUser.Role, testSecret, time.Hour)
	assert.NoError(t, err)
	assert.NoError(t, services.AddToDenylist(revokedToken, time.Hour))

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{
			name:           "missing authorization header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed header without bearer prefix",
			authHeader:     validToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "forged signature",
			authHeader:     "Bearer " + forgedToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			authHeader:     "Bearer " + expiredToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "token for deleted user",
			authHeader:     "Bearer " + ghostToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "revoked token",
			authHeader:     "Bearer " + revokedToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "disabled account",
			authHeader:     "Bearer " + disabledToken,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "valid token",
			authHeader:     "Bearer " + validToken,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAuthMiddlewareDeactivationIsImmediate(t *testing.T) {
	setupTestDB()
	mr := setupMockRedis()
	defer mr.Close()

	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	router := protectedRouter(cfg)

	user := createUser(t, "soon-disabled@example.com", models.RoleStaff, true)
	token, err := utils.GenerateToken(user.ID, user.Role, testSecret, time.Hour)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Disable the account; the same still-valid token must now fail.
	assert.NoError(t, database.DB.Model(&user).Update("active", false).Error)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
