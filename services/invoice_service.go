package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/cleaningmadeasy/laundry-api/config"
	"github.com/cleaningmadeasy/laundry-api/models"
	"github.com/cleaningmadeasy/laundry-api/pricing"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Invoice dispatch channels
const (
	ChannelEmail    = "email"
	ChannelWhatsapp = "whatsapp"
)

// CreateInvoiceInput describes an invoice to create. Items may be omitted
// to derive them from the order; Total may be omitted to use the item sum.
type CreateInvoiceInput struct {
	OrderID string
	Items   models.InvoiceItems
	Total   *decimal.Decimal
}

// InvoiceService owns invoice creation and dispatch bookkeeping.
type InvoiceService struct {
	db     *gorm.DB
	mailer Mailer
	cfg    *config.Config
}

// NewInvoiceService creates an invoice service with its collaborators injected
func NewInvoiceService(db *gorm.DB, mailer Mailer, cfg *config.Config) *InvoiceService {
	return &InvoiceService{db: db, mailer: mailer, cfg: cfg}
}

// Create persists an invoice for an existing order and dispatches it by
// email to the invoice inbox and the customer. A supplied total must equal
// the sum of the item subtotals; it is not compared against the order's
// total, which may legitimately differ when items are supplied by hand.
// The email is best-effort: on transport failure the invoice is kept and
// the sent flag is simply left unset.
func (s *InvoiceService) Create(input CreateInvoiceInput) (*models.Invoice, error) {
	var order models.Order
	if err := s.db.Where("order_id = ?", input.OrderID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	items := input.Items
	if len(items) == 0 {
		items = pricing.BuildItems(&order)
	}
	total := pricing.ItemsTotal(items)
	if input.Total != nil && !input.Total.Equal(total) {
		return nil, ErrTotalMismatch
	}

	invoice := models.Invoice{
		OrderID:       order.OrderID,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		CustomerEmail: order.CustomerEmail,
		Items:         items,
		TotalAmount:   total,
	}

	if err := s.db.Create(&invoice).Error; err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	if err := s.sendInvoiceEmail(&invoice); err != nil {
		log.Printf("Invoice email for order %s failed: %v", invoice.OrderID, err)
		return &invoice, nil
	}
	if err := s.db.Model(&invoice).Update("sent_via_email", true).Error; err != nil {
		log.Printf("Failed to record email sent flag for invoice %d: %v", invoice.ID, err)
		return &invoice, nil
	}
	invoice.SentViaEmail = true

	return &invoice, nil
}

// Get fetches an invoice by its numeric identifier
func (s *InvoiceService) Get(id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := s.db.First(&invoice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// List returns invoices sorted by creation time, newest first
func (s *InvoiceService) List() ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := s.db.Order("created_at DESC").Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// MarkSent records a successful dispatch on one channel. The flags are
// monotonic: marking an already-sent channel is a no-op that stays true.
func (s *InvoiceService) MarkSent(id uint, channel string) (*models.Invoice, error) {
	var column string
	switch channel {
	case ChannelEmail:
		column = "sent_via_email"
	case ChannelWhatsapp:
		column = "sent_via_whatsapp"
	default:
		return nil, &ValidationError{Message: fmt.Sprintf("unknown dispatch channel: %q", channel)}
	}

	invoice, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(invoice).Update(column, true).Error; err != nil {
		return nil, fmt.Errorf("failed to update invoice sent flag: %w", err)
	}
	switch channel {
	case ChannelEmail:
		invoice.SentViaEmail = true
	case ChannelWhatsapp:
		invoice.SentViaWhatsapp = true
	}
	return invoice, nil
}

// WhatsAppLink builds the wa.me deep link carrying the rendered invoice
// message for the invoice's customer.
func (s *InvoiceService) WhatsAppLink(id uint) (string, error) {
	invoice, err := s.Get(id)
	if err != nil {
		return "", err
	}
	return BuildWhatsAppLink(invoice.CustomerPhone, InvoiceMessage(invoice)), nil
}

// sendInvoiceEmail delivers the invoice to the registered-order inbox and
// the customer.
func (s *InvoiceService) sendInvoiceEmail(invoice *models.Invoice) error {
	subject := fmt.Sprintf("Invoice for Order %s", invoice.OrderID)

	text := fmt.Sprintf(`Invoice details:

Order ID: %s
Customer: %s
Phone: %s
Email: %s
`, invoice.OrderID, invoice.CustomerName, invoice.CustomerPhone, invoice.CustomerEmail)
	for _, item := range invoice.Items {
		text += fmt.Sprintf("%s: %d x %d = %d\n", item.Name, item.Quantity, item.Price, item.Subtotal)
	}
	text += fmt.Sprintf("Total: %s", invoice.TotalAmount.StringFixed(2))

	itemList := ""
	for _, item := range invoice.Items {
		itemList += fmt.Sprintf("<li>%s: %d x %d = %d</li>", item.Name, item.Quantity, item.Price, item.Subtotal)
	}
	html := fmt.Sprintf(`
		<h2>Invoice - Cleaning Made Easy</h2>
		<p><strong>Order ID:</strong> %s</p>
		<p><strong>Customer:</strong> %s</p>
		<p><strong>Phone:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<h3>Items:</h3>
		<ul>%s</ul>
		<p><strong>Total:</strong> %s</p>`,
		invoice.OrderID, invoice.CustomerName, invoice.CustomerPhone,
		invoice.CustomerEmail, itemList, invoice.TotalAmount.StringFixed(2))

	return s.mailer.Send([]string{s.cfg.InvoiceEmail, invoice.CustomerEmail}, subject, text, html)
}
