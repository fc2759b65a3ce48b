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
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupImageTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&models.HeroImage{}, &models.ProductImage{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func imageRouter() *gin.Engine {
	router := gin.New()
	router.GET("/api/hero-images", ListActiveHeroImages)
	router.GET("/api/admin/hero-images", ListHeroImages)
	router.POST("/api/admin/hero-images", CreateHeroImage)
	router.PUT("/api/admin/hero-images/:id", UpdateHeroImage)
	router.DELETE("/api/admin/hero-images/:id", DeleteHeroImage)
	router.GET("/api/product-images", ListProductImages)
	router.POST("/api/admin/product-images", CreateProductImage)
	router.PUT("/api/admin/product-images/:id", UpdateProductImage)
	router.DELETE("/api/admin/product-images/:id", DeleteProductImage)
	return router
}

func imageRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHeroImageArchiveFilter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupImageTestDB(t)
	config.SetDB(db)
	router := imageRouter()

	rows := []models.HeroImage{
		{ImageURL: "/uploads/slide2.png", DisplayOrder: 2},
		{ImageURL: "/uploads/slide1.png", DisplayOrder: 1},
		{ImageURL: "/uploads/retired.png", DisplayOrder: 0, Archived: true},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	// Storefront sees only active slides, ordered
	w := imageRequest(router, "GET", "/api/hero-images", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success bool               `json:"success"`
		Data    []models.HeroImage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Data, 2)
	assert.Equal(t, "/uploads/slide1.png", response.Data[0].ImageURL)

	// Admin sees the archived slide too
	w = imageRequest(router, "GET", "/api/admin/hero-images", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Data, 3)
}

func TestHeroImageCRUD(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupImageTestDB(t)
	config.SetDB(db)
	router := imageRouter()

	t.Run("create requires image_url", func(t *testing.T) {
		w := imageRequest(router, "POST", "/api/admin/hero-images", map[string]interface{}{
			"alt_text": "missing url",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("create then archive", func(t *testing.T) {
		w := imageRequest(router, "POST", "/api/admin/hero-images", map[string]interface{}{
			"image_url": "/uploads/new.png",
			"alt_text":  "Fresh-milled flour bags",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var response struct {
			Data models.HeroImage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.False(t, response.Data.Archived)

		w = imageRequest(router, "PUT", "/api/admin/hero-images/1", map[string]interface{}{
			"image_url": "/uploads/new.png",
			"archived":  true,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var stored models.HeroImage
		require.NoError(t, db.First(&stored, response.Data.ID).Error)
		assert.True(t, stored.Archived)
	})

	t.Run("delete missing slide returns 404", func(t *testing.T) {
		w := imageRequest(router, "DELETE", "/api/admin/hero-images/999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProductImageCRUD(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupImageTestDB(t)
	config.SetDB(db)
	router := imageRouter()

	w := imageRequest(router, "POST", "/api/admin/product-images", map[string]interface{}{
		"image_url": "/uploads/cornmeal.png",
		"caption":   "Stone-ground cornmeal, 5lb bag",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = imageRequest(router, "PUT", "/api/admin/product-images/1", map[string]interface{}{
		"image_url": "/uploads/cornmeal.png",
		"caption":   "Stone-ground cornmeal",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.ProductImage
	require.NoError(t, db.First(&stored, 1).Error)
	assert.Equal(t, "Stone-ground cornmeal", stored.Caption)

	w = imageRequest(router, "DELETE", "/api/admin/product-images/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.ProductImage{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
