package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItem is a single billed line on an invoice. Prices and subtotals
// are in whole shillings.
type InvoiceItem struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Subtotal int64  `json:"subtotal"`
}

// InvoiceItems is stored as a JSON column.
type InvoiceItems []InvoiceItem

// Value implements driver.Valuer so GORM can persist the items as JSON
func (items InvoiceItems) Value() (driver.Value, error) {
	return json.Marshal(items)
}

// Scan implements sql.Scanner so GORM can read the JSON column back
func (items *InvoiceItems) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*items = nil
		return nil
	case []byte:
		return json.Unmarshal(v, items)
	case string:
		return json.Unmarshal([]byte(v), items)
	}
	return fmt.Errorf("unsupported type for invoice items: %T", value)
}

// Invoice is a billing document derived from a single order. Customer
// fields are snapshotted at creation time. The two sent flags are
// monotonic: once true they are never reset.
type Invoice struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	OrderID         string          `gorm:"not null;index" json:"order_id"`
	Order           Order           `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:CASCADE" json:"-"`
	CustomerName    string          `gorm:"not null" json:"customer_name"`
	CustomerPhone   string          `gorm:"not null" json:"customer_phone"`
	CustomerEmail   string          `gorm:"not null" json:"customer_email"`
	Items           InvoiceItems    `gorm:"type:json" json:"items"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	SentViaEmail    bool            `gorm:"default:false" json:"sent_via_email"`
	SentViaWhatsapp bool            `gorm:"default:false" json:"sent_via_whatsapp"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// TableName specifies the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}
