package models

import (
	"time"

	"gorm.io/gorm"
)

// HeroImage represents a slide in the storefront hero carousel.
// Archived slides stay in the table but are hidden from the public site.
type HeroImage struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	ImageURL     string         `gorm:"not null" json:"image_url"`
	AltText      string         `json:"alt_text"`
	DisplayOrder int            `gorm:"not null;default:0;index" json:"display_order"`
	Archived     bool           `gorm:"not null;default:false" json:"archived"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the HeroImage model
func (HeroImage) TableName() string {
	return "hero_images"
}

// ProductImage represents a photo in a product page gallery.
type ProductImage struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	ImageURL     string         `gorm:"not null" json:"image_url"`
	Caption      string         `json:"caption"`
	DisplayOrder int            `gorm:"not null;default:0;index" json:"display_order"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the ProductImage model
func (ProductImage) TableName() string {
	return "product_images"
}
