package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/cornbelt-mill/cornbelt-site-api/config"
	"github.com/cornbelt-mill/cornbelt-site-api/models"
)

// NewsletterRequestBody represents the newsletter signup payload
type NewsletterRequestBody struct {
	Email string `json:"email" binding:"required"`
}

// SubscribeNewsletter handles POST /api/newsletter - the storefront footer
// signup form
func SubscribeNewsletter(c *gin.Context) {
	var req NewsletterRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Email is required",
		})
		return
	}

	email := strings.TrimSpace(req.Email)
	if !emailPattern.MatchString(email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid email address",
		})
		return
	}

	db := config.GetDB()
	if err := db.Create(&models.NewsletterRequest{Email: email}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to save subscription",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thanks for subscribing!",
	})
}

// ListNewsletterRequests handles GET /api/admin/newsletter
func ListNewsletterRequests(c *gin.Context) {
	db := config.GetDB()
	var requests []models.NewsletterRequest
	if err := db.Order("created_at DESC").Find(&requests).Error; err != nil {
		dbError(c, "Failed to fetch newsletter signups")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    requests,
	})
}

// DeleteNewsletterRequest handles DELETE /api/admin/newsletter/:id
func DeleteNewsletterRequest(c *gin.Context) {
	db := config.GetDB()
	var request models.NewsletterRequest
	if err := db.First(&request, c.Param("id")).Error; err != nil {
		notFound(c, "SIGNUP_NOT_FOUND", "Newsletter signup not found")
		return
	}

	if err := db.Delete(&request).Error; err != nil {
		dbError(c, "Failed to delete newsletter signup")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}

// ListContactSubmissions handles GET /api/admin/contact-submissions
func ListContactSubmissions(c *gin.Context) {
	db := config.GetDB()
	var submissions []models.ContactSubmission
	if err := db.Order("submitted_at DESC").Find(&submissions).Error; err != nil {
		dbError(c, "Failed to fetch contact submissions")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    submissions,
	})
}

// DeleteContactSubmission handles DELETE /api/admin/contact-submissions/:id
func DeleteContactSubmission(c *gin.Context) {
	db := config.GetDB()
	var submission models.ContactSubmission
	if err := db.First(&submission, c.Param("id")).Error; err != nil {
		notFound(c, "SUBMISSION_NOT_FOUND", "Contact submission not found")
		return
	}

	if err := db.Delete(&submission).Error; err != nil {
		dbError(c, "Failed to delete contact submission")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}
