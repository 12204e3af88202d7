package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/cleaningmadeasy/laundry-api/config"
	"github.com/cleaningmadeasy/laundry-api/models"
	"github.com/cleaningmadeasy/laundry-api/pricing"
	"gorm.io/gorm"
)

// statusTransitions enumerates the legal edges of the order lifecycle.
// Completed and Cancelled are terminal.
var statusTransitions = map[string][]string{
	models.StatusPending:    {models.StatusConfirmed, models.StatusInProgress, models.StatusCancelled},
	models.StatusConfirmed:  {models.StatusInProgress, models.StatusCompleted, models.StatusCancelled},
	models.StatusInProgress: {models.StatusCompleted, models.StatusCancelled},
	models.StatusCompleted:  {},
	models.StatusCancelled:  {},
}

// SubmitOrderInput is a raw public order submission.
type SubmitOrderInput struct {
	FullName      string
	Phone         string
	Email         string
	Location      string
	ServiceType   string
	OrderType     string
	QuickOrder    int
	DetailedOrder pricing.ItemCounts
	PickupDay     string
	TimeSlot      string
	Notes         string
}

// OrderService owns order creation and lifecycle management.
type OrderService struct {
	db     *gorm.DB
	idGen  IDGenerator
	mailer Mailer
	cfg    *config.Config
}

// NewOrderService creates an order service with its collaborators injected
func NewOrderService(db *gorm.DB, idGen IDGenerator, mailer Mailer, cfg *config.Config) *OrderService {
	return &OrderService{db: db, idGen: idGen, mailer: mailer, cfg: cfg}
}

// Submit prices the order, assigns its public identifier, persists it and
// sends the booking notification email. The email is best-effort: a
// transport failure is logged and never surfaces to the caller.
func (s *OrderService) Submit(input SubmitOrderInput) (*models.Order, error) {
	total, err := pricing.ComputeTotal(input.OrderType, input.QuickOrder, input.DetailedOrder)
	if err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	orderID, err := s.idGen.Generate()
	if err != nil {
		return nil, err
	}

	order := models.Order{
		OrderID:          orderID,
		CustomerName:     input.FullName,
		CustomerPhone:    input.Phone,
		CustomerEmail:    input.Email,
		CustomerLocation: input.Location,
		ServiceType:      input.ServiceType,
		OrderType:        input.OrderType,
		QuickOrder:       input.QuickOrder,
		Tshirts:          input.DetailedOrder.Tshirt,
		Dresses:          input.DetailedOrder.Dress,
		Jeans:            input.DetailedOrder.Jeans,
		Curtains:         input.DetailedOrder.Curtain,
		Baskets:          input.DetailedOrder.Basket,
		PickupDay:        input.PickupDay,
		TimeSlot:         input.TimeSlot,
		Notes:            input.Notes,
		Status:           models.StatusPending,
		TotalAmount:      total,
	}

	if err := s.db.Create(&order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.sendBookingEmail(&order); err != nil {
		log.Printf("Booking email for order %s failed: %v", order.OrderID, err)
	}

	return &order, nil
}

// Get fetches an order by its public identifier
func (s *OrderService) Get(orderID string) (*models.Order, error) {
	var order models.Order
	if err := s.db.Where("order_id = ?", orderID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// List returns orders sorted by creation time, newest first. A non-empty
// status narrows the result.
func (s *OrderService) List(status string) ([]models.Order, error) {
	query := s.db.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// SetStatus moves an order to a new lifecycle status. Unknown statuses are
// a validation error; known statuses that are not reachable from the
// current one are a transition error. No notification is emitted.
func (s *OrderService) SetStatus(orderID, status string) (*models.Order, error) {
	if _, known := statusTransitions[status]; !known {
		return nil, &ValidationError{Message: fmt.Sprintf("unknown order status: %q", status)}
	}

	order, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, next := range statusTransitions[order.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, &TransitionError{From: order.Status, To: status}
	}

	if err := s.db.Model(order).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	order.Status = status
	return order, nil
}

// sendBookingEmail notifies the booking inbox about a new submission.
func (s *OrderService) sendBookingEmail(order *models.Order) error {
	subject := fmt.Sprintf("New Order from %s", order.CustomerName)
	text := fmt.Sprintf(`New order details:

Order ID: %s
Full Name: %s
Phone: %s
Email: %s
Location: %s
Service Type: %s
Order Type: %s
Quick Order: %d
T-shirts: %d
Dresses: %d
Jeans: %d
Curtains: %d
Baskets: %d
Pickup Day: %s
Time Slot: %s
Notes: %s
Total Amount: %s`,
		order.OrderID, order.CustomerName, order.CustomerPhone, order.CustomerEmail,
		order.CustomerLocation, order.ServiceType, order.OrderType, order.QuickOrder,
		order.Tshirts, order.Dresses, order.Jeans, order.Curtains, order.Baskets,
		order.PickupDay, order.TimeSlot, order.Notes, order.TotalAmount.StringFixed(2))

	notes := order.Notes
	if notes == "" {
		notes = "None"
	}
	html := fmt.Sprintf(`
		<h2>New Order</h2>
		<p><strong>Order ID:</strong> %s</p>
		<p><strong>Full Name:</strong> %s</p>
		<p><strong>Phone:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Location:</strong> %s</p>
		<p><strong>Service Type:</strong> %s</p>
		<p><strong>Order Type:</strong> %s</p>
		<p><strong>Quick Order:</strong> %d</p>
		<ul>
			<li>T-shirts: %d</li>
			<li>Dresses: %d</li>
			<li>Jeans: %d</li>
			<li>Curtains: %d</li>
			<li>Baskets: %d</li>
		</ul>
		<p><strong>Pickup Day:</strong> %s</p>
		<p><strong>Time Slot:</strong> %s</p>
		<p><strong>Notes:</strong> %s</p>
		<p><strong>Total Amount:</strong> %s</p>`,
		order.OrderID, order.CustomerName, order.CustomerPhone, order.CustomerEmail,
		order.CustomerLocation, order.ServiceType, order.OrderType, order.QuickOrder,
		order.Tshirts, order.Dresses, order.Jeans, order.Curtains, order.Baskets,
		order.PickupDay, order.TimeSlot, notes, order.TotalAmount.StringFixed(2))

	return s.mailer.Send([]string{s.cfg.BookingEmail}, subject, text, html)
}
