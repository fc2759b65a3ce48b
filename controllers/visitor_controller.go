package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/cornbelt-mill/cornbelt-site-api/config"
	"github.com/cornbelt-mill/cornbelt-site-api/models"
)

// TrackVisitRequest mirrors the fingerprint the browser assembles per page
// navigation. Geolocation and IP are optional; everything else is
// best-effort strings the client fills with "Unknown" when unsupported.
type TrackVisitRequest struct {
	SessionID      string   `json:"session_id" binding:"required"`
	Page           string   `json:"page" binding:"required"`
	PreviousPage   string   `json:"previous_page"`
	DeviceType     string   `json:"device_type"`
	ScreenWidth    int      `json:"screen_width"`
	ScreenHeight   int      `json:"screen_height"`
	ViewportWidth  int      `json:"viewport_width"`
	ViewportHeight int      `json:"viewport_height"`
	Language       string   `json:"language"`
	Timezone       string   `json:"timezone"`
	TimezoneOffset int      `json:"timezone_offset"`
	Referrer       string   `json:"referrer"`
	ConnectionType string   `json:"connection_type"`
	DeviceMemory   string   `json:"device_memory"`
	CPUCores       string   `json:"cpu_cores"`
	Platform       string   `json:"platform"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	IPAddress      *string  `json:"ip_address"`
}

// TrackVisit handles POST /api/visitor-tracking - appends one analytics row
// per page navigation. The client fires and forgets; failures here never
// affect the page being viewed.
func TrackVisit(c *gin.Context) {
	var req TrackVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	record := models.VisitorRecord{
		SessionID:      req.SessionID,
		Page:           req.Page,
		PreviousPage:   req.PreviousPage,
		DeviceType:     req.DeviceType,
		ScreenWidth:    req.ScreenWidth,
		ScreenHeight:   req.ScreenHeight,
		ViewportWidth:  req.ViewportWidth,
		ViewportHeight: req.ViewportHeight,
		Language:       req.Language,
		Timezone:       req.Timezone,
		TimezoneOffset: req.TimezoneOffset,
		Referrer:       req.Referrer,
		ConnectionType: req.ConnectionType,
		DeviceMemory:   req.DeviceMemory,
		CPUCores:       req.CPUCores,
		Platform:       req.Platform,
		UserAgent:      c.Request.UserAgent(),
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		IPAddress:      req.IPAddress,
	}
	if record.IPAddress == nil {
		if ip := c.ClientIP(); ip != "" {
			record.IPAddress = &ip
		}
	}

	db := config.GetDB()
	if err := db.Create(&record).Error; err != nil {
		dbError(c, "Failed to save visitor record")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
	})
}

// ListVisitorRecords handles GET /api/admin/visitor-tracking - the
// analytics screen's data source, newest first
func ListVisitorRecords(c *gin.Context) {
	db := config.GetDB()
	var records []models.VisitorRecord
	if err := db.Order("created_at DESC").Limit(1000).Find(&records).Error; err != nil {
		dbError(c, "Failed to fetch visitor records")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    records,
	})
}
