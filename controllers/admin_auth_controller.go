package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/cornbelt-mill/cornbelt-site-api/config"
	"github.com/cornbelt-mill/cornbelt-site-api/middleware"
	"github.com/cornbelt-mill/cornbelt-site-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminLoginRequest represents the admin login payload
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminSetupRequest represents the one-time first-admin setup payload
type AdminSetupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
}

// AdminLogin handles POST /api/admin/login - checks credentials and issues
// a session token
func AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "email and password are required",
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	db := config.GetDB()
	var admin models.AdminUser
	if err := db.Where("email = ?", email).First(&admin).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "invalid credentials",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "invalid credentials",
		})
		return
	}

	token, err := middleware.IssueToken(config.GetConfig().JWTSecret, &admin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to create session",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":        admin.ID,
			"email":     admin.Email,
			"full_name": admin.FullName,
		},
	})
}

// AdminSetup handles POST /api/admin/setup - creates the first admin user.
// Once any admin exists, the endpoint is closed.
func AdminSetup(c *gin.Context) {
	db := config.GetDB()

	var existing models.AdminUser
	err := db.First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": "admin account already configured",
		})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to check existing admins",
		})
		return
	}

	var req AdminSetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "email, password (min 8 chars) and full_name are required",
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to hash password",
		})
		return
	}

	admin := models.AdminUser{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(req.FullName),
	}
	if err := db.Create(&admin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to create admin",
		})
		return
	}

	token, err := middleware.IssueToken(config.GetConfig().JWTSecret, &admin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to create session",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user": gin.H{
			"id":        admin.ID,
			"email":     admin.Email,
			"full_name": admin.FullName,
		},
	})
}

// ListAdminUsers handles GET /api/admin/admin-users. Password hashes are
// never serialized.
func ListAdminUsers(c *gin.Context) {
	db := config.GetDB()
	var admins []models.AdminUser
	if err := db.Order("id ASC").Find(&admins).Error; err != nil {
		dbError(c, "Failed to fetch admin users")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    admins,
	})
}
