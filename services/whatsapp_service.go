package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/cleaningmadeasy/laundry-api/models"
)

// BuildWhatsAppLink returns a wa.me deep link that pre-fills a chat with
// the given message. The link is opened by the client; nothing is sent
// server-side. The phone number is reduced to its digits, with no
// country-code validation.
func BuildWhatsAppLink(phone, message string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	query := url.Values{"text": {message}}
	return "https://wa.me/" + digits.String() + "?" + query.Encode()
}

// InvoiceMessage renders the WhatsApp text for an invoice: business
// identity, order id, one line per item and the total.
func InvoiceMessage(invoice *models.Invoice) string {
	var b strings.Builder
	b.WriteString("*Invoice from Cleaning Made Easy*\n\n")
	fmt.Fprintf(&b, "Order ID: %s\n", invoice.OrderID)
	fmt.Fprintf(&b, "Customer: %s\n", invoice.CustomerName)
	fmt.Fprintf(&b, "Date: %s\n\n", invoice.CreatedAt.Format("02/01/2006"))
	b.WriteString("*Items:*\n")
	for _, item := range invoice.Items {
		fmt.Fprintf(&b, "%s: %d x %d = %d\n", item.Name, item.Quantity, item.Price, item.Subtotal)
	}
	fmt.Fprintf(&b, "\n*Total: TZS %s*\n\n", invoice.TotalAmount.StringFixed(2))
	b.WriteString("Thank you for choosing Cleaning Made Easy!")
	return b.String()
}
