package services_test

import (
	"fmt"
	"testing"

	"bazar/internal/models"
	"bazar/internal/repositories"
	"bazar/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestProductService_RoundTrip(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	service := services.NewProductService(repo)

	product := &models.Product{Name: "Test Shirt", Price: 500, Category: "garments"}
	require.NoError(t, service.CreateProduct(product))
	assert.NotEmpty(t, product.ID)
	assert.False(t, product.CreatedAt.IsZero())

	products, err := service.GetAllProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Test Shirt", products[0].Name)
	assert.Equal(t, 500.0, products[0].Price)
	assert.Equal(t, "garments", products[0].Category)

	require.NoError(t, service.DeleteProduct(product.ID))
	products, err = service.GetAllProducts()
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expected := &models.Product{ID: "1", Name: "Traditional Saree", Price: 1499}
	mockRepo.On("GetByID", "1").Return(expected, nil).Once()

	product, err := service.GetProductByID("1")
	assert.NoError(t, err)
	assert.Equal(t, expected, product)
	mockRepo.AssertExpectations(t)

	mockRepo.On("GetByID", "99").Return(nil, repositories.ErrNotFound).Once()
	product, err = service.GetProductByID("99")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProductError(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	product := &models.Product{Name: "New Product", Price: 50}
	mockRepo.On("Create", product).Return(fmt.Errorf("database error")).Once()

	err := service.CreateProduct(product)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProductNotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("Delete", "99").Return(repositories.ErrNotFound).Once()
	assert.ErrorIs(t, service.DeleteProduct("99"), repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
