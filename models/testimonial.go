package models

import (
	"time"

	"gorm.io/gorm"
)

// Testimonial represents a customer quote shown on the storefront.
// Only published testimonials are visible to the public site.
type Testimonial struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"not null" json:"name"`
	Location     string         `json:"location"`
	Text         string         `gorm:"type:text;not null" json:"text"`
	ImageURL     string         `json:"image_url"`
	Rating       int            `gorm:"not null;default:5;check:rating >= 1 AND rating <= 5" json:"rating"`
	DisplayOrder int            `gorm:"not null;default:0;index" json:"display_order"`
	Published    bool           `gorm:"not null;default:true" json:"published"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Testimonial model
func (Testimonial) TableName() string {
	return "testimonials"
}
