package repositories_test

import (
	"fmt"
	"testing"

	"bazar/internal/models"
	"bazar/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB opens a named in-memory SQLite database. Each test gets its own
// name so state never leaks between tests through the shared cache.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}))
	return db
}

func TestGORMUserRepository_CreateAndLookup(t *testing.T) {
	repo := repositories.NewGORMUserRepository(openTestDB(t))

	user := &models.User{Name: "Asha", Email: "asha@example.com", Password: "hash", Role: models.RoleOwner}
	require.NoError(t, repo.Create(user))
	assert.NotEmpty(t, user.ID)

	byEmail, err := repo.GetByEmail("asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha", byID.Name)

	_, err = repo.GetByEmail("nobody@example.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGORMUserRepository_UpdateRole(t *testing.T) {
	repo := repositories.NewGORMUserRepository(openTestDB(t))

	user := &models.User{Name: "Ravi", Email: "ravi@example.com", Password: "hash", Role: models.RoleUser}
	require.NoError(t, repo.Create(user))

	updated, err := repo.UpdateRole(user.ID, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)

	_, err = repo.UpdateRole("missing", models.RoleAdmin)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMProductRepository_RoundTrip(t *testing.T) {
	repo := repositories.NewGORMProductRepository(openTestDB(t))

	product := &models.Product{Name: "Test Shirt", Price: 500, Category: "garments", InStock: true}
	require.NoError(t, repo.Create(product))

	products, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Test Shirt", products[0].Name)

	require.NoError(t, repo.Delete(product.ID))
	assert.ErrorIs(t, repo.Delete(product.ID), repositories.ErrNotFound)

	products, err = repo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestGORMOrderRepository_ItemsSurviveStorage(t *testing.T) {
	repo := repositories.NewGORMOrderRepository(openTestDB(t))

	order := &models.Order{
		OrderNumber:   "BSB00001",
		CustomerName:  "Rajesh Kumar",
		CustomerEmail: "rajesh.kumar@example.com",
		CustomerPhone: "+91-9876543210",
		Items: models.OrderItems{
			{ProductID: "1", Name: "Designer Kurta Set", Price: 899, Quantity: 1},
			{ProductID: "2", Name: "Men's Cotton Shirt", Price: 599, Quantity: 2},
		},
		TotalAmount:   2097,
		Status:        models.StatusPending,
		PaymentMethod: models.PaymentPending,
	}
	require.NoError(t, repo.Create(order))

	stored, err := repo.GetByID(order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 2)
	assert.Equal(t, "Designer Kurta Set", stored.Items[0].Name)
	assert.Equal(t, 2, stored.Items[1].Quantity)
}

func TestGORMOrderRepository_StatusAndPayment(t *testing.T) {
	repo := repositories.NewGORMOrderRepository(openTestDB(t))

	order := &models.Order{OrderNumber: "BSB00001", Status: models.StatusPending, PaymentMethod: models.PaymentPending}
	require.NoError(t, repo.Create(order))

	updated, err := repo.UpdateStatus(order.ID, models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)

	updated, err = repo.UpdatePayment(order.ID, models.PaymentCard)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCard, updated.PaymentMethod)

	_, err = repo.UpdateStatus("missing", models.StatusCompleted)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	require.NoError(t, repo.Delete(order.ID))
	_, err = repo.GetByID(order.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
