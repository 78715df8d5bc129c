package services

import (
	"fmt"

	"bazar/internal/models"
	"bazar/internal/notification"
	"bazar/internal/repositories"
)

// Order numbers are the human-facing sequential identifiers printed on
// confirmations, distinct from the internal record ID.
const (
	orderNumberPrefix = "BSB"
	orderNumberWidth  = 5
)

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	notifier  notification.Notifier
}

// NewOrderService creates a new OrderService. The notifier may be nil, in
// which case completed orders trigger no confirmation.
func NewOrderService(orderRepo repositories.OrderRepository, notifier notification.Notifier) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		notifier:  notifier,
	}
}

// CreateOrder stores a new checkout submission. The line items and total are
// a client-side snapshot of the cart and are trusted verbatim; the server
// assigns the order number, the initial status and the payment placeholder.
func (s *OrderService) CreateOrder(order models.Order) (*models.Order, error) {
	count, err := s.orderRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	order.ID = ""
	order.OrderNumber = fmt.Sprintf("%s%0*d", orderNumberPrefix, orderNumberWidth, count+1)
	order.Status = models.StatusPending
	order.PaymentMethod = models.PaymentPending

	if err := s.orderRepo.Create(&order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return &order, nil
}

// GetAllOrders retrieves all orders, newest first.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID. Customers use this for
// order-confirmation lookups, so it is not gated by role.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// UpdateStatus moves an order to a new status. Reaching "completed" sends
// the customer confirmation; delivery failure never fails the update.
func (s *OrderService) UpdateStatus(id string, status string) (*models.Order, error) {
	order, err := s.orderRepo.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}
	if status == models.StatusCompleted && s.notifier != nil {
		s.notifier.Notify(order)
	}
	return order, nil
}

// UpdatePayment records how the customer paid.
func (s *OrderService) UpdatePayment(id string, method string) (*models.Order, error) {
	return s.orderRepo.UpdatePayment(id, method)
}

// DeleteOrder removes an order by its ID.
func (s *OrderService) DeleteOrder(id string) error {
	return s.orderRepo.Delete(id)
}

// Summary aggregates order counts and revenue for the dashboard. Revenue
// counts orders that are completed or still processing.
func (s *OrderService) Summary() (*models.OrderSummary, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get orders for summary: %w", err)
	}

	summary := &models.OrderSummary{TotalOrders: len(orders)}
	for _, o := range orders {
		switch o.Status {
		case models.StatusPending:
			summary.PendingOrders++
		case models.StatusCompleted:
			summary.CompletedOrders++
		}
		if o.Status == models.StatusCompleted || o.Status == models.StatusProcessing {
			summary.TotalRevenue += o.TotalAmount
		}
	}
	return summary, nil
}
