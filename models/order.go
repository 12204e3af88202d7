package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order statuses. Transitions between them are enforced by the order service.
const (
	StatusPending    = "Pending"
	StatusConfirmed  = "Confirmed"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusCancelled  = "Cancelled"
)

// Order types
const (
	OrderTypeQuick    = "quick"
	OrderTypeDetailed = "detailed"
)

// Order represents a customer laundry order.
// TotalAmount is computed once at creation time and never recomputed, so
// historical orders keep their original total even if prices change.
type Order struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	OrderID          string          `gorm:"uniqueIndex;not null" json:"order_id"` // public identifier, ORD-####
	CustomerName     string          `gorm:"not null" json:"customer_name"`
	CustomerPhone    string          `gorm:"not null" json:"customer_phone"`
	CustomerEmail    string          `gorm:"not null" json:"customer_email"`
	CustomerLocation string          `gorm:"not null" json:"customer_location"`
	ServiceType      string          `gorm:"not null" json:"service_type"` // washing or washing+ironing
	OrderType        string          `gorm:"not null" json:"order_type"`   // quick or detailed
	QuickOrder       int             `gorm:"default:0" json:"quick_order"`
	Tshirts          int             `gorm:"default:0" json:"tshirts"`
	Dresses          int             `gorm:"default:0" json:"dresses"`
	Jeans            int             `gorm:"default:0" json:"jeans"`
	Curtains         int             `gorm:"default:0" json:"curtains"`
	Baskets          int             `gorm:"default:0" json:"baskets"`
	PickupDay        string          `gorm:"not null" json:"pickup_day"` // friday or saturday
	TimeSlot         string          `gorm:"not null" json:"time_slot"`
	Notes            string          `gorm:"type:text" json:"notes"`
	Status           string          `gorm:"not null;default:'Pending'" json:"status"`
	TotalAmount      decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_amount"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	DeletedAt        gorm.DeletedAt  `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
