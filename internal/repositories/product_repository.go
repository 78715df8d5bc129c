package repositories

import "bazar/internal/models"

// ProductRepository defines the interface for catalog data access. There is
// no update operation: the storefront replaces products by delete + create.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Delete(id string) error
}
