package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/cornbelt-mill/cornbelt-site-api/config"
	"github.com/cornbelt-mill/cornbelt-site-api/models"
)

// TestimonialRequest represents the request body for creating or updating
// a testimonial
type TestimonialRequest struct {
	Name         string `json:"name" binding:"required"`
	Location     string `json:"location"`
	Text         string `json:"text" binding:"required"`
	ImageURL     string `json:"image_url"`
	Rating       int    `json:"rating" binding:"required,gte=1,lte=5"`
	DisplayOrder int    `json:"display_order"`
	Published    *bool  `json:"published"`
}

// ListPublishedTestimonials handles GET /api/testimonials - the storefront
// view, published rows only, in display order
func ListPublishedTestimonials(c *gin.Context) {
	db := config.GetDB()
	var testimonials []models.Testimonial
	if err := db.Where("published = ?", true).
		Order("display_order ASC, id ASC").
		Find(&testimonials).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch testimonials",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    testimonials,
	})
}

// ListTestimonials handles GET /api/admin/testimonials - all rows
func ListTestimonials(c *gin.Context) {
	db := config.GetDB()
	var testimonials []models.Testimonial
	if err := db.Order("display_order ASC, id ASC").Find(&testimonials).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch testimonials",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    testimonials,
	})
}

// CreateTestimonial handles POST /api/admin/testimonials
func CreateTestimonial(c *gin.Context) {
	var req TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	testimonial := models.Testimonial{
		Name:         req.Name,
		Location:     req.Location,
		Text:         req.Text,
		ImageURL:     req.ImageURL,
		Rating:       req.Rating,
		DisplayOrder: req.DisplayOrder,
		Published:    published,
	}

	db := config.GetDB()
	if err := db.Create(&testimonial).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create testimonial",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    testimonial,
	})
}

// UpdateTestimonial handles PUT /api/admin/testimonials/:id
func UpdateTestimonial(c *gin.Context) {
	db := config.GetDB()
	var testimonial models.Testimonial
	if err := db.First(&testimonial, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "TESTIMONIAL_NOT_FOUND",
				"message": "Testimonial not found",
			},
		})
		return
	}

	var req TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	testimonial.Name = req.Name
	testimonial.Location = req.Location
	testimonial.Text = req.Text
	testimonial.ImageURL = req.ImageURL
	testimonial.Rating = req.Rating
	testimonial.DisplayOrder = req.DisplayOrder
	if req.Published != nil {
		testimonial.Published = *req.Published
	}

	if err := db.Save(&testimonial).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update testimonial",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    testimonial,
	})
}

// DeleteTestimonial handles DELETE /api/admin/testimonials/:id
func DeleteTestimonial(c *gin.Context) {
	db := config.GetDB()
	var testimonial models.Testimonial
	if err := db.First(&testimonial, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "TESTIMONIAL_NOT_FOUND",
				"message": "Testimonial not found",
			},
		})
		return
	}

	if err := db.Delete(&testimonial).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete testimonial",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}
