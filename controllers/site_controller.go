package controllers

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/cornbelt-mill/cornbelt-site-api/config"
	"github.com/cornbelt-mill/cornbelt-site-api/models"
)

var (
	emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^[+]?[(]?[0-9]{3}[)]?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4,6}$`)
)

// Ping handles GET /api/ping - the liveness probe the frontend uses to
// decide whether a dynamic backend is present
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Cornbelt Flour Mill API is running",
	})
}

// Demo handles GET /api/demo
func Demo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Hello from the Cornbelt Flour Mill server",
	})
}

// ContactRequest represents the contact form payload
type ContactRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

// SubmitContact handles POST /api/contact - validates and stores a contact
// form submission. Validation failures return 400 with the first failed
// rule's message.
func SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	fields := []struct {
		label string
		value string
	}{
		{"Full name", req.FullName},
		{"Email", req.Email},
		{"Phone", req.Phone},
		{"Subject", req.Subject},
		{"Message", req.Message},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   f.label + " is required",
			})
			return
		}
	}

	if !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid email address",
		})
		return
	}

	if !phonePattern.MatchString(strings.TrimSpace(req.Phone)) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid phone number",
		})
		return
	}

	submission := models.ContactSubmission{
		FullName:    strings.TrimSpace(req.FullName),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		Subject:     strings.TrimSpace(req.Subject),
		Message:     strings.TrimSpace(req.Message),
		SubmittedAt: time.Now().UTC(),
	}

	db := config.GetDB()
	if err := db.Create(&submission).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to save submission",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thank you for contacting Cornbelt Flour Mill. We'll be in touch soon.",
		"data": gin.H{
			"submittedAt": submission.SubmittedAt.Format(time.RFC3339),
		},
	})
}
