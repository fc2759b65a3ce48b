package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/cornbelt-mill/cornbelt-site-api/config"
	"github.com/cornbelt-mill/cornbelt-site-api/models"
	"gorm.io/gorm"
)

// FooterSettingsRequest represents the request body for footer updates
type FooterSettingsRequest struct {
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Location  string `json:"location"`
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
}

// GetFooterSettings handles GET /api/footer-settings - returns the
// singleton footer record, or the zero value when none exists yet
func GetFooterSettings(c *gin.Context) {
	db := config.GetDB()
	var settings models.FooterSettings
	err := db.First(&settings).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		dbError(c, "Failed to fetch footer settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    settings,
	})
}

// UpdateFooterSettings handles PUT /api/admin/footer-settings - creates the
// singleton record on first save, updates it in place afterwards
func UpdateFooterSettings(c *gin.Context) {
	var req FooterSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	db := config.GetDB()
	var settings models.FooterSettings
	err := db.First(&settings).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		dbError(c, "Failed to fetch footer settings")
		return
	}

	settings.Phone = req.Phone
	settings.Email = req.Email
	settings.Location = req.Location
	settings.Facebook = req.Facebook
	settings.Instagram = req.Instagram

	if err := db.Save(&settings).Error; err != nil {
		dbError(c, "Failed to save footer settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    settings,
	})
}
