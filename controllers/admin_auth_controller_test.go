package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/cornbelt-mill/cornbelt-site-api/config"
	"github.com/cornbelt-mill/cornbelt-site-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAdminTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&models.AdminUser{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func adminRouter() *gin.Engine {
	router := gin.New()
	router.POST("/api/admin/login", AdminLogin)
	router.POST("/api/admin/setup", AdminSetup)
	return router
}

func postAdminJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func seedAdmin(t *testing.T, db *gorm.DB, email, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Head Miller",
	}).Error)
}

func TestAdminLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupAdminTestDB(t)
	config.SetDB(db)
	config.SetConfig(&config.Config{JWTSecret: "test-secret", DatabaseURL: "test"})
	router := adminRouter()

	seedAdmin(t, db, "miller@cornbelt.example", "grainelevator9")

	t.Run("valid credentials", func(t *testing.T) {
		w := postAdminJSON(router, "/api/admin/login", map[string]string{
			"email":    "miller@cornbelt.example",
			"password": "grainelevator9",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotEmpty(t, response["token"])

		user := response["user"].(map[string]interface{})
		assert.Equal(t, "miller@cornbelt.example", user["email"])
		assert.Equal(t, "Head Miller", user["full_name"])
		_, leaked := user["password_hash"]
		assert.False(t, leaked)
	})

	t.Run("email is case insensitive", func(t *testing.T) {
		w := postAdminJSON(router, "/api/admin/login", map[string]string{
			"email":    "Miller@Cornbelt.Example",
			"password": "grainelevator9",
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := postAdminJSON(router, "/api/admin/login", map[string]string{
			"email":    "miller@cornbelt.example",
			"password": "wheat",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		w := postAdminJSON(router, "/api/admin/login", map[string]string{
			"email":    "bran@cornbelt.example",
			"password": "grainelevator9",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		w := postAdminJSON(router, "/api/admin/login", map[string]string{
			"email": "miller@cornbelt.example",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminSetup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupAdminTestDB(t)
	config.SetDB(db)
	config.SetConfig(&config.Config{JWTSecret: "test-secret", DatabaseURL: "test"})
	router := adminRouter()

	t.Run("first setup creates admin and issues token", func(t *testing.T) {
		w := postAdminJSON(router, "/api/admin/setup", map[string]string{
			"email":     "Miller@Cornbelt.Example",
			"password":  "grainelevator9",
			"full_name": "Head Miller",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotEmpty(t, response["token"])

		var admin models.AdminUser
		require.NoError(t, db.First(&admin).Error)
		assert.Equal(t, "miller@cornbelt.example", admin.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("grainelevator9")))
	})

	t.Run("second setup is rejected", func(t *testing.T) {
		w := postAdminJSON(router, "/api/admin/setup", map[string]string{
			"email":     "second@cornbelt.example",
			"password":  "anotherpass1",
			"full_name": "Second Admin",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("short password rejected", func(t *testing.T) {
		config.SetDB(setupAdminTestDB(t))
		w := postAdminJSON(router, "/api/admin/setup", map[string]string{
			"email":     "miller@cornbelt.example",
			"password":  "short",
			"full_name": "Head Miller",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
