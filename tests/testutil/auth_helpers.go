package testutil

import (
	"testing"

	"github.com/cornbelt-mill/cornbelt-site-api/middleware"
	"github.com/cornbelt-mill/cornbelt-site-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates an admin user with the given credentials and returns it.
func SeedAdmin(t *testing.T, db *gorm.DB, email, password string) *models.AdminUser {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	admin := models.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Test Admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("Failed to seed admin user: %v", err)
	}
	return &admin
}

// BearerToken signs a session token for the given admin, for use in an
// Authorization header.
func BearerToken(t *testing.T, secret string, admin *models.AdminUser) string {
	t.Helper()

	token, err := middleware.IssueToken(secret, admin)
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}
	return "Bearer " + token
}
