package models

import "time"

// ContactSubmission is an append-only record of a contact form submission.
// Admins can read and delete submissions but never edit them.
type ContactSubmission struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FullName    string    `gorm:"not null" json:"full_name"`
	Email       string    `gorm:"not null;index" json:"email"`
	Phone       string    `json:"phone"`
	Subject     string    `gorm:"not null" json:"subject"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	SubmittedAt time.Time `gorm:"not null" json:"submitted_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for the ContactSubmission model
func (ContactSubmission) TableName() string {
	return "contact_submissions"
}
