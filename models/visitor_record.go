package models

import "time"

// VisitorRecord is one row of visitor analytics: a fingerprint of a single
// page navigation within a browser session. Rows are append-only and only
// ever read by the admin analytics screen.
type VisitorRecord struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	SessionID      string    `gorm:"not null;index" json:"session_id"`
	Page           string    `gorm:"not null" json:"page"`
	PreviousPage   string    `json:"previous_page"`
	DeviceType     string    `json:"device_type"` // Mobile, Tablet or Desktop
	ScreenWidth    int       `json:"screen_width"`
	ScreenHeight   int       `json:"screen_height"`
	ViewportWidth  int       `json:"viewport_width"`
	ViewportHeight int       `json:"viewport_height"`
	Language       string    `json:"language"`
	Timezone       string    `json:"timezone"`
	TimezoneOffset int       `json:"timezone_offset"`
	Referrer       string    `json:"referrer"`
	ConnectionType string    `json:"connection_type"`
	DeviceMemory   string    `json:"device_memory"`
	CPUCores       string    `json:"cpu_cores"`
	Platform       string    `json:"platform"`
	UserAgent      string    `gorm:"size:400" json:"user_agent"`
	Latitude       *float64  `json:"latitude"`
	Longitude      *float64  `json:"longitude"`
	IPAddress      *string   `json:"ip_address"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName specifies the table name for the VisitorRecord model
func (VisitorRecord) TableName() string {
	return "visitor_tracking"
}
