package models

import (
	"time"

	"gorm.io/gorm"
)

// BotResponse is a keyword-to-answer row used by the chat widget's
// automated replies. Rows are matched in display order, then by id; the
// first keyword found in the visitor's message wins.
type BotResponse struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Keyword      string         `gorm:"not null" json:"keyword"`
	Answer       string         `gorm:"type:text;not null" json:"answer"`
	DisplayOrder int            `gorm:"not null;default:0;index" json:"display_order"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the BotResponse model
func (BotResponse) TableName() string {
	return "bot_responses"
}
