package services

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/cleaningmadeasy/laundry-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBuildWhatsAppLinkStripsNonDigits(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{"International format", "+255123456789", "255123456789"},
		{"Spaces and dashes", "+255 712-345-678", "255712345678"},
		{"Parentheses", "(255) 712 345 678", "255712345678"},
		{"Already digits", "255712345678", "255712345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link := BuildWhatsAppLink(tt.phone, "hello")
			assert.True(t, strings.HasPrefix(link, "https://wa.me/"+tt.want+"?text="),
				"unexpected link %q", link)
		})
	}
}

func TestBuildWhatsAppLinkEncodesMessage(t *testing.T) {
	message := "Hello! This is a test message from Cleaning Made Easy."
	link := BuildWhatsAppLink("+255123456789", message)

	parsed, err := url.Parse(link)
	assert.NoError(t, err)
	assert.Equal(t, "wa.me", parsed.Host)
	assert.Equal(t, "/255123456789", parsed.Path)
	assert.Equal(t, message, parsed.Query().Get("text"),
		"message must round-trip through the url encoding")
}

func TestInvoiceMessageContainsAllFields(t *testing.T) {
	invoice := &models.Invoice{
		OrderID:      "ORD-4321",
		CustomerName: "Asha Mwinyi",
		Items: models.InvoiceItems{
			{Name: "T-shirts", Price: 300, Quantity: 2, Subtotal: 600},
			{Name: "Jeans", Price: 500, Quantity: 1, Subtotal: 500},
		},
		TotalAmount: decimal.NewFromInt(1100),
		CreatedAt:   time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC),
	}

	message := InvoiceMessage(invoice)

	assert.Contains(t, message, "Cleaning Made Easy")
	assert.Contains(t, message, "Order ID: ORD-4321")
	assert.Contains(t, message, "Customer: Asha Mwinyi")
	assert.Contains(t, message, "T-shirts: 2 x 300 = 600")
	assert.Contains(t, message, "Jeans: 1 x 500 = 500")
	assert.Contains(t, message, "Total: TZS 1100.00")
}
