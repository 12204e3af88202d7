// Package pricing computes order totals from the fixed price table and
// assembles the billed line items for invoices.
package pricing

import (
	"fmt"

	"github.com/cleaningmadeasy/laundry-api/models"
	"github.com/shopspring/decimal"
)

// Unit prices in Tanzanian shillings.
const (
	TshirtPrice  = 300
	DressPrice   = 300
	JeansPrice   = 500
	CurtainPrice = 1000
	BasketPrice  = 9000
	QuickRate    = 300 // flat per-garment rate for quick orders
)

// ItemCounts holds the per-category garment counts of a detailed order.
type ItemCounts struct {
	Tshirt  int `json:"tshirt"`
	Dress   int `json:"dress"`
	Jeans   int `json:"jeans"`
	Curtain int `json:"curtain"`
	Basket  int `json:"basket"`
}

// ComputeTotal calculates the total amount for an order. Quick orders are
// priced as quickCount times the flat rate; detailed orders sum the
// per-category counts against the price table. Negative quantities are
// rejected rather than coerced to zero.
func ComputeTotal(orderType string, quickCount int, counts ItemCounts) (decimal.Decimal, error) {
	switch orderType {
	case models.OrderTypeQuick:
		if quickCount < 0 {
			return decimal.Zero, fmt.Errorf("quick order quantity must not be negative")
		}
		return decimal.NewFromInt(int64(quickCount) * QuickRate), nil
	case models.OrderTypeDetailed:
		for _, c := range []struct {
			name  string
			count int
		}{
			{"tshirt", counts.Tshirt},
			{"dress", counts.Dress},
			{"jeans", counts.Jeans},
			{"curtain", counts.Curtain},
			{"basket", counts.Basket},
		} {
			if c.count < 0 {
				return decimal.Zero, fmt.Errorf("quantity for %s must not be negative", c.name)
			}
		}
		total := int64(counts.Tshirt)*TshirtPrice +
			int64(counts.Dress)*DressPrice +
			int64(counts.Jeans)*JeansPrice +
			int64(counts.Curtain)*CurtainPrice +
			int64(counts.Basket)*BasketPrice
		return decimal.NewFromInt(total), nil
	}
	return decimal.Zero, fmt.Errorf("unknown order type: %q", orderType)
}

// BuildItems assembles the billed line items for an order. Quick orders
// produce a single "Garments" line. Detailed orders produce one line per
// category in display order, with zero-quantity lines filtered out; the
// filter affects display only since zero-quantity lines contribute nothing
// to the total.
func BuildItems(order *models.Order) models.InvoiceItems {
	if order.OrderType == models.OrderTypeQuick {
		return models.InvoiceItems{
			{
				Name:     "Garments",
				Price:    QuickRate,
				Quantity: order.QuickOrder,
				Subtotal: int64(order.QuickOrder) * QuickRate,
			},
		}
	}

	all := models.InvoiceItems{
		{Name: "T-shirts", Price: TshirtPrice, Quantity: order.Tshirts, Subtotal: int64(order.Tshirts) * TshirtPrice},
		{Name: "Dresses", Price: DressPrice, Quantity: order.Dresses, Subtotal: int64(order.Dresses) * DressPrice},
		{Name: "Jeans", Price: JeansPrice, Quantity: order.Jeans, Subtotal: int64(order.Jeans) * JeansPrice},
		{Name: "Curtains", Price: CurtainPrice, Quantity: order.Curtains, Subtotal: int64(order.Curtains) * CurtainPrice},
		{Name: "Baskets", Price: BasketPrice, Quantity: order.Baskets, Subtotal: int64(order.Baskets) * BasketPrice},
	}

	items := make(models.InvoiceItems, 0, len(all))
	for _, item := range all {
		if item.Quantity > 0 {
			items = append(items, item)
		}
	}
	return items
}

// ItemsTotal sums the subtotals of a set of invoice items.
func ItemsTotal(items models.InvoiceItems) decimal.Decimal {
	var total int64
	for _, item := range items {
		total += item.Subtotal
	}
	return decimal.NewFromInt(total)
}
