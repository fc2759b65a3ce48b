package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/cornbelt-mill/cornbelt-site-api/config"
	"github.com/cornbelt-mill/cornbelt-site-api/models"
)

// HeroImageRequest represents the request body for hero slide writes
type HeroImageRequest struct {
	ImageURL     string `json:"image_url" binding:"required"`
	AltText      string `json:"alt_text"`
	DisplayOrder int    `json:"display_order"`
	Archived     *bool  `json:"archived"`
}

// ProductImageRequest represents the request body for product photo writes
type ProductImageRequest struct {
	ImageURL     string `json:"image_url" binding:"required"`
	Caption      string `json:"caption"`
	DisplayOrder int    `json:"display_order"`
}

// ListActiveHeroImages handles GET /api/hero-images - storefront view,
// non-archived slides in display order
func ListActiveHeroImages(c *gin.Context) {
	db := config.GetDB()
	var images []models.HeroImage
	if err := db.Where("archived = ?", false).
		Order("display_order ASC, id ASC").
		Find(&images).Error; err != nil {
		dbError(c, "Failed to fetch hero images")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    images,
	})
}

// ListHeroImages handles GET /api/admin/hero-images - all slides
func ListHeroImages(c *gin.Context) {
	db := config.GetDB()
	var images []models.HeroImage
	if err := db.Order("display_order ASC, id ASC").Find(&images).Error; err != nil {
		dbError(c, "Failed to fetch hero images")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    images,
	})
}

// CreateHeroImage handles POST /api/admin/hero-images
func CreateHeroImage(c *gin.Context) {
	var req HeroImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	image := models.HeroImage{
		ImageURL:     req.ImageURL,
		AltText:      req.AltText,
		DisplayOrder: req.DisplayOrder,
	}
	if req.Archived != nil {
		image.Archived = *req.Archived
	}

	db := config.GetDB()
	if err := db.Create(&image).Error; err != nil {
		dbError(c, "Failed to create hero image")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    image,
	})
}

// UpdateHeroImage handles PUT /api/admin/hero-images/:id
func UpdateHeroImage(c *gin.Context) {
	db := config.GetDB()
	var image models.HeroImage
	if err := db.First(&image, c.Param("id")).Error; err != nil {
		notFound(c, "HERO_IMAGE_NOT_FOUND", "Hero image not found")
		return
	}

	var req HeroImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	image.ImageURL = req.ImageURL
	image.AltText = req.AltText
	image.DisplayOrder = req.DisplayOrder
	if req.Archived != nil {
		image.Archived = *req.Archived
	}

	if err := db.Save(&image).Error; err != nil {
		dbError(c, "Failed to update hero image")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    image,
	})
}

// DeleteHeroImage handles DELETE /api/admin/hero-images/:id
func DeleteHeroImage(c *gin.Context) {
	db := config.GetDB()
	var image models.HeroImage
	if err := db.First(&image, c.Param("id")).Error; err != nil {
		notFound(c, "HERO_IMAGE_NOT_FOUND", "Hero image not found")
		return
	}

	if err := db.Delete(&image).Error; err != nil {
		dbError(c, "Failed to delete hero image")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}

// ListProductImages handles GET /api/admin/product-images (also serves the
// public product gallery)
func ListProductImages(c *gin.Context) {
	db := config.GetDB()
	var images []models.ProductImage
	if err := db.Order("display_order ASC, id ASC").Find(&images).Error; err != nil {
		dbError(c, "Failed to fetch product images")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    images,
	})
}

// CreateProductImage handles POST /api/admin/product-images
func CreateProductImage(c *gin.Context) {
	var req ProductImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	image := models.ProductImage{
		ImageURL:     req.ImageURL,
		Caption:      req.Caption,
		DisplayOrder: req.DisplayOrder,
	}

	db := config.GetDB()
	if err := db.Create(&image).Error; err != nil {
		dbError(c, "Failed to create product image")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    image,
	})
}

// UpdateProductImage handles PUT /api/admin/product-images/:id
func UpdateProductImage(c *gin.Context) {
	db := config.GetDB()
	var image models.ProductImage
	if err := db.First(&image, c.Param("id")).Error; err != nil {
		notFound(c, "PRODUCT_IMAGE_NOT_FOUND", "Product image not found")
		return
	}

	var req ProductImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	image.ImageURL = req.ImageURL
	image.Caption = req.Caption
	image.DisplayOrder = req.DisplayOrder

	if err := db.Save(&image).Error; err != nil {
		dbError(c, "Failed to update product image")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    image,
	})
}

// DeleteProductImage handles DELETE /api/admin/product-images/:id
func DeleteProductImage(c *gin.Context) {
	db := config.GetDB()
	var image models.ProductImage
	if err := db.First(&image, c.Param("id")).Error; err != nil {
		notFound(c, "PRODUCT_IMAGE_NOT_FOUND", "Product image not found")
		return
	}

	if err := db.Delete(&image).Error; err != nil {
		dbError(c, "Failed to delete product image")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}
