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

func setupCRUDTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func crudRouter() *gin.Engine {
	router := gin.New()
	router.Any("/api.php", GenericCRUD)
	return router
}

func crudRequest(router *gin.Engine, method, uri string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, uri, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGenericCRUDLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.SetDB(setupCRUDTestDB(t))
	router := crudRouter()

	// Insert
	w := crudRequest(router, "POST", "/api.php?table=testimonials", map[string]interface{}{
		"name":   "Mabel Hart",
		"text":   "Best cornmeal in the county.",
		"rating": 5,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var created models.Testimonial
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)

	// Read all: bare JSON array
	w = crudRequest(router, "GET", "/api.php?table=testimonials", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Testimonial
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)

	// Read one
	w = crudRequest(router, "GET", "/api.php?table=testimonials&id=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var one models.Testimonial
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &one))
	assert.Equal(t, "Mabel Hart", one.Name)

	// Partial update keeps unmentioned fields
	w = crudRequest(router, "PUT", "/api.php?table=testimonials&id=1", map[string]interface{}{
		"rating": 4,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Testimonial
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 4, updated.Rating)
	assert.Equal(t, "Mabel Hart", updated.Name)

	// Delete
	w = crudRequest(router, "DELETE", "/api.php?table=testimonials&id=1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = crudRequest(router, "GET", "/api.php?table=testimonials&id=1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGenericCRUDUnknownTable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.SetDB(setupCRUDTestDB(t))
	router := crudRouter()

	w := crudRequest(router, "GET", "/api.php?table=secrets", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "unknown table", response["error"])
}

func TestGenericCRUDMissingTable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.SetDB(setupCRUDTestDB(t))
	router := crudRouter()

	w := crudRequest(router, "GET", "/api.php", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenericCRUDPingAction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := crudRouter()

	w := crudRequest(router, "GET", "/api.php?action=ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response["message"])
}

func TestGenericCRUDCreateTableIsIdempotent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.SetDB(setupCRUDTestDB(t))
	router := crudRouter()

	body := map[string]interface{}{
		"create_table": true,
		"table":        "orders",
		"columns":      map[string]string{"customer_name": "VARCHAR(255)"},
	}

	for i := 0; i < 2; i++ {
		w := crudRequest(router, "POST", "/api.php?table=orders", body)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestGenericCRUDAdminLoginAction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupCRUDTestDB(t)
	config.SetDB(db)
	config.SetConfig(&config.Config{JWTSecret: "test-secret", DatabaseURL: "test"})
	router := crudRouter()

	hash, err := bcrypt.GenerateFromPassword([]byte("grainelevator9"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.AdminUser{
		Email:        "miller@cornbelt.example",
		PasswordHash: string(hash),
		FullName:     "Head Miller",
	}).Error)

	t.Run("valid credentials return token and user", func(t *testing.T) {
		w := crudRequest(router, "POST", "/api.php?action=admin_login", map[string]interface{}{
			"email":    "miller@cornbelt.example",
			"password": "grainelevator9",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotEmpty(t, response["token"])
		user := response["user"].(map[string]interface{})
		assert.Equal(t, "miller@cornbelt.example", user["email"])
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		w := crudRequest(router, "POST", "/api.php?action=admin_login", map[string]interface{}{
			"email":    "miller@cornbelt.example",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "invalid credentials", response["error"])
	})

	t.Run("login action rejects GET", func(t *testing.T) {
		w := crudRequest(router, "GET", "/api.php?action=admin_login", nil)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestGenericCRUDVisitorInsert(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupCRUDTestDB(t)
	config.SetDB(db)
	router := crudRouter()

	w := crudRequest(router, "POST", "/api.php?table=visitor_tracking", map[string]interface{}{
		"session_id":  "visit_abc",
		"page":        "/products",
		"device_type": "Desktop",
		"latitude":    nil,
		"ip_address":  nil,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.VisitorRecord{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
