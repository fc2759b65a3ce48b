package models

import (
	"time"

	"gorm.io/gorm"
)

// Order statuses an order moves through after checkout.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order represents a flour order placed through the storefront order form
// or created by an admin on a customer's behalf.
type Order struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CustomerName string         `gorm:"not null" json:"customer_name"`
	Email        string         `gorm:"not null;index" json:"email"`
	Phone        string         `json:"phone"`
	Product      string         `gorm:"not null" json:"product"`
	Size         string         `gorm:"not null" json:"size"` // bag size, e.g. "2lb", "5lb", "10lb"
	Quantity     int            `gorm:"not null;check:quantity > 0" json:"quantity"`
	DeliveryDate *time.Time     `json:"delivery_date"`
	Notes        string         `gorm:"type:text" json:"notes"`
	Status       string         `gorm:"not null;default:'pending'" json:"status"`
	TotalPrice   float64        `json:"total_price"` // computed from size and quantity at create/update time
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// ValidOrderStatus reports whether s is one of the recognized order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
