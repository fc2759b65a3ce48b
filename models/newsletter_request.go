package models

import "time"

// NewsletterRequest is an append-only newsletter signup created by the
// storefront footer form.
type NewsletterRequest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"not null;index" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for the NewsletterRequest model
func (NewsletterRequest) TableName() string {
	return "newsletter_requests"
}
