package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"catalog/internal/apperrors"
	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteByCode(code string) error {
	args := m.Called(code)
	return args.Error(0)
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByCode(code string) (*models.Product, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByOriginCountry(country string) ([]models.Product, error) {
	args := m.Called(country)
	return args.Get(0).([]models.Product), args.Error(1)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishProductEvent(action, productCode string) error {
	args := m.Called(action, productCode)
	return args.Error(0)
}

func validProduct() *models.Product {
	return &models.Product{
		Code:          "CHA-001",
		Name:          "Green Tea",
		Description:   "Loose leaf green tea",
		Price:         12.50,
		Quantity:      40,
		OriginCountry: "Japan",
	}
}

func TestProductsManager_Add(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockEventPublisher)
	manager := services.NewProductsManager(mockRepo, mockPublisher)

	product := validProduct()
	mockRepo.On("Create", product).Return(nil).Once()
	mockPublisher.On("PublishProductEvent", "product.created", "CHA-001").Return(nil).Once()

	err := manager.Add(product)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestProductsManager_Add_NegativePrice(t *testing.T) {
	mockRepo := new(MockProductRepository)
	manager := services.NewProductsManager(mockRepo, nil)

	product := validProduct()
	product.Price = -1.0

	err := manager.Add(product)

	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Invalid product!", err.Error())
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestProductsManager_Add_BlankCode(t *testing.T) {
	mockRepo := new(MockProductRepository)
	manager := services.NewProductsManager(mockRepo, nil)

	product := validProduct()
	product.Code = "   "

	err := manager.Add(product)

	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Invalid product!", err.Error())
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

// An invalid product must never reach storage; verified against real
// in-memory storage rather than a call-recording mock.
func TestProductsManager_Add_InvalidLeavesStorageUnmodified(t *testing.T) {
	repo := repositories.NewInMemoryProductRepository()
	manager := services.NewProductsManager(repo, nil)

	product := validProduct()
	product.Price = -9.99

	err := manager.Add(product)
	assert.Error(t, err)

	stored, repoErr := repo.GetAll()
	assert.NoError(t, repoErr)
	assert.Empty(t, stored)
}

func TestProductsManager_Delete(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockEventPublisher)
	manager := services.NewProductsManager(mockRepo, mockPublisher)

	mockRepo.On("DeleteByCode", "CHA-001").Return(nil).Once()
	mockPublisher.On("PublishProductEvent", "product.deleted", "CHA-001").Return(nil).Once()

	err := manager.Delete("CHA-001")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

// Event publishing is best-effort: a broker failure must not undo or fail
// the mutation.
func TestProductsManager_Add_PublishFailureIgnored(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockEventPublisher)
	manager := services.NewProductsManager(mockRepo, mockPublisher)

	product := validProduct()
	mockRepo.On("Create", product).Return(nil).Once()
	mockPublisher.On("PublishProductEvent", "product.created", "CHA-001").
		Return(fmt.Errorf("broker unavailable")).Once()

	err := manager.Add(product)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestProductsManager_Delete_BlankCode(t *testing.T) {
	mockRepo := new(MockProductRepository)
	manager := services.NewProductsManager(mockRepo, nil)

	for _, code := range []string{"", "   ", "\t\n"} {
		err := manager.Delete(code)

		var argumentErr *apperrors.ArgumentError
		assert.ErrorAs(t, err, &argumentErr, "code %q", code)
		assert.Equal(t, "Product code cannot be empty.", err.Error())
	}
	mockRepo.AssertNotCalled(t, "DeleteByCode", mock.Anything)
}

func TestProductsManager_GetAll(t *testing.T) {
	mockRepo := new(MockProductRepository)
	manager := services.NewProductsManager(mockRepo, nil)

	expected := []models.Product{
		{ID: 1, Code: "CHA-001", Name: "Green Tea", Price: 12.50, Quantity: 40, OriginCountry: "Japan"},
		{ID: 2, Code: "CAF-002", Name: "Arabica Coffee", Price: 18.00, Quantity: 25, OriginCountry: "Brazil"},
	}
	mockRepo.On("GetAll").Return(expected, nil).Once()

	products, err := manager.GetAll()

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestProductsManager_GetAll_Empty(t *testing.T) {
	mockRepo := new(MockProductRepository)
	manager := services.NewProductsManager(mockRepo, nil)

	mockRepo.On("GetAll").Return([]models.Product{}, nil).Once()

	products, err := manager.GetAll()

	var notFoundErr *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "No product found.", err.Error())
	assert.Nil(t, products)
	mockRepo.AssertExpectations(t)
}

func TestProductsManager_SearchByOriginCountry(t *testing.T) {
	mockRepo := new(MockProductRepository)
	manager := services.NewProductsManager(mockRepo, nil)

	expected := []models.Product{
		{ID: 1, Code: "CHA-001", Name: "Green Tea", OriginCountry: "Japan"},
	}
	mockRepo.On("GetByOriginCountry", "Japan").Return(expected, nil).Once()

	products, err := manager.SearchByOriginCountry("Japan")

	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestProductsManager_SearchByOriginCountry_NoMatch(t *testing.T) {
	mockRepo := new(MockProductRepository)
	manager := services.NewProductsManager(mockRepo, nil)

	mockRepo.On("GetByOriginCountry", "Atlantis").Return([]models.Product{}, nil).Once()

	products, err := manager.SearchByOriginCountry("Atlantis")

	var notFoundErr *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "No product found with the given first name.", err.Error())
	assert.Nil(t, products)
	mockRepo.AssertExpectations(t)
}

func TestProductsManager_GetSpecific(t *testing.T) {
	mockRepo := new(MockProductRepository)
	manager := services.NewProductsManager(mockRepo, nil)

	expected := validProduct()
	expected.ID = 1
	mockRepo.On("GetByCode", "CHA-001").Return(expected, nil).Once()

	product, err := manager.GetSpecific("CHA-001")

	assert.NoError(t, err)
	assert.Equal(t, expected, product)
	mockRepo.AssertExpectations(t)
}

func TestProductsManager_GetSpecific_UnknownCode(t *testing.T) {
	mockRepo := new(MockProductRepository)
	manager := services.NewProductsManager(mockRepo, nil)

	notFound := fmt.Errorf("product with code GONE-42: %w", repositories.ErrProductNotFound)
	mockRepo.On("GetByCode", "GONE-42").Return(nil, notFound).Once()

	product, err := manager.GetSpecific("GONE-42")

	var notFoundErr *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "No product found with product code: GONE-42", err.Error())
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductsManager_Update(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockEventPublisher)
	manager := services.NewProductsManager(mockRepo, mockPublisher)

	product := validProduct()
	product.ID = 1
	product.Price = 14.00
	mockRepo.On("Update", product).Return(nil).Once()
	mockPublisher.On("PublishProductEvent", "product.updated", "CHA-001").Return(nil).Once()

	err := manager.Update(product)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestProductsManager_Update_InvalidProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	manager := services.NewProductsManager(mockRepo, nil)

	err := manager.Update(&models.Product{})

	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Invalid prduct!", err.Error())
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
}
