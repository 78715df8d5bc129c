package repositories

import "bazar/internal/models"

// OrderRepository defines the interface for order data access. Count feeds
// the sequential order-number generator.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id string, status string) (*models.Order, error)
	UpdatePayment(id string, method string) (*models.Order, error)
	Delete(id string) error
	Count() (int64, error)
}
