// Dual-backend routing. Each repository call re-evaluates a health predicate
// and goes to the persistent backend when it reports live, to the in-memory
// backend otherwise. The decision is never cached, so a backend flip
// mid-session is tolerated. Records never migrate between backends: an order
// placed while the database was down stays invisible once it comes back.
package repositories

import "bazar/internal/models"

// HealthCheck reports whether the persistent backend is currently reachable.
type HealthCheck func() bool

// FallbackUserRepository routes between a persistent and an in-memory
// UserRepository per call.
type FallbackUserRepository struct {
	persistent UserRepository
	memory     UserRepository
	healthy    HealthCheck
}

// NewFallbackUserRepository creates a new instance of FallbackUserRepository.
func NewFallbackUserRepository(persistent, memory UserRepository, healthy HealthCheck) *FallbackUserRepository {
	return &FallbackUserRepository{persistent: persistent, memory: memory, healthy: healthy}
}

func (r *FallbackUserRepository) pick() UserRepository {
	if r.healthy() {
		return r.persistent
	}
	return r.memory
}

func (r *FallbackUserRepository) GetAll() ([]models.User, error)        { return r.pick().GetAll() }
func (r *FallbackUserRepository) GetByID(id string) (*models.User, error) {
	return r.pick().GetByID(id)
}
func (r *FallbackUserRepository) GetByEmail(email string) (*models.User, error) {
	return r.pick().GetByEmail(email)
}
func (r *FallbackUserRepository) Create(user *models.User) error { return r.pick().Create(user) }
func (r *FallbackUserRepository) UpdateRole(id, role string) (*models.User, error) {
	return r.pick().UpdateRole(id, role)
}
func (r *FallbackUserRepository) Count() (int64, error) { return r.pick().Count() }

// FallbackProductRepository routes between a persistent and an in-memory
// ProductRepository per call.
type FallbackProductRepository struct {
	persistent ProductRepository
	memory     ProductRepository
	healthy    HealthCheck
}

// NewFallbackProductRepository creates a new instance of FallbackProductRepository.
func NewFallbackProductRepository(persistent, memory ProductRepository, healthy HealthCheck) *FallbackProductRepository {
	return &FallbackProductRepository{persistent: persistent, memory: memory, healthy: healthy}
}

func (r *FallbackProductRepository) pick() ProductRepository {
	if r.healthy() {
		return r.persistent
	}
	return r.memory
}

func (r *FallbackProductRepository) GetAll() ([]models.Product, error) { return r.pick().GetAll() }
func (r *FallbackProductRepository) GetByID(id string) (*models.Product, error) {
	return r.pick().GetByID(id)
}
func (r *FallbackProductRepository) Create(product *models.Product) error {
	return r.pick().Create(product)
}
func (r *FallbackProductRepository) Delete(id string) error { return r.pick().Delete(id) }

// FallbackOrderRepository routes between a persistent and an in-memory
// OrderRepository per call.
type FallbackOrderRepository struct {
	persistent OrderRepository
	memory     OrderRepository
	healthy    HealthCheck
}

// NewFallbackOrderRepository creates a new instance of FallbackOrderRepository.
func NewFallbackOrderRepository(persistent, memory OrderRepository, healthy HealthCheck) *FallbackOrderRepository {
	return &FallbackOrderRepository{persistent: persistent, memory: memory, healthy: healthy}
}

func (r *FallbackOrderRepository) pick() OrderRepository {
	if r.healthy() {
		return r.persistent
	}
	return r.memory
}

func (r *FallbackOrderRepository) GetAll() ([]models.Order, error) { return r.pick().GetAll() }
func (r *FallbackOrderRepository) GetByID(id string) (*models.Order, error) {
	return r.pick().GetByID(id)
}
func (r *FallbackOrderRepository) Create(order *models.Order) error { return r.pick().Create(order) }
func (r *FallbackOrderRepository) UpdateStatus(id, status string) (*models.Order, error) {
	return r.pick().UpdateStatus(id, status)
}
func (r *FallbackOrderRepository) UpdatePayment(id, method string) (*models.Order, error) {
	return r.pick().UpdatePayment(id, method)
}
func (r *FallbackOrderRepository) Delete(id string) error { return r.pick().Delete(id) }
func (r *FallbackOrderRepository) Count() (int64, error)  { return r.pick().Count() }
