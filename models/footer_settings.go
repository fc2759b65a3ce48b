package models

import "time"

// FooterSettings holds the contact details and social links rendered in the
// site footer. The table is expected to contain a single row; the admin UI
// creates it once and updates it in place.
type FooterSettings struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Location  string    `json:"location"`
	Facebook  string    `json:"facebook"`
	Instagram string    `json:"instagram"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the FooterSettings model
func (FooterSettings) TableName() string {
	return "footer_settings"
}
