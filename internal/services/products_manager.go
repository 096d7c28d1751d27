package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"catalog/internal/apperrors"
	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/pkg/rabbitmq"
)

// Fixed messages of the manager contract. Callers match on these strings,
// including the historical typo in the update message, so they must not
// change.
const (
	msgInvalidProduct       = "Invalid product!"
	msgInvalidProductUpdate = "Invalid prduct!"
	msgEmptyProductCode     = "Product code cannot be empty."
	msgNoProductFound       = "No product found."
	msgNoProductForCountry  = "No product found with the given first name."
)

// EventPublisher announces catalog changes to interested consumers.
// A nil publisher disables events.
type EventPublisher interface {
	PublishProductEvent(action, productCode string) error
}

// ProductsManager validates catalog input, applies business rules, and
// delegates persistence to a ProductRepository.
type ProductsManager struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
	validate  *validator.Validate
}

// NewProductsManager creates a ProductsManager on top of the given
// repository. publisher may be nil, in which case change events are
// skipped.
func NewProductsManager(repo repositories.ProductRepository, publisher EventPublisher) *ProductsManager {
	validate := validator.New()
	// notblank rejects strings that are empty or whitespace-only.
	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		// Registration only fails for an empty tag name.
		panic(fmt.Sprintf("failed to register notblank validation: %v", err))
	}
	return &ProductsManager{
		repo:      repo,
		publisher: publisher,
		validate:  validate,
	}
}

// Add validates a product and persists it. An invalid product never
// reaches storage.
func (m *ProductsManager) Add(product *models.Product) error {
	if err := m.validate.Struct(product); err != nil {
		return apperrors.NewValidation(msgInvalidProduct)
	}
	if err := m.repo.Create(product); err != nil {
		return fmt.Errorf("failed to add product %s: %w", product.Code, err)
	}
	m.publish(rabbitmq.ActionProductCreated, product.Code)
	return nil
}

// Delete removes the product with the given code. Deleting a code that is
// not present is a no-op.
func (m *ProductsManager) Delete(code string) error {
	if strings.TrimSpace(code) == "" {
		return apperrors.NewArgument(msgEmptyProductCode)
	}
	if err := m.repo.DeleteByCode(code); err != nil {
		return fmt.Errorf("failed to delete product %s: %w", code, err)
	}
	m.publish(rabbitmq.ActionProductDeleted, code)
	return nil
}

// GetAll returns every product in the catalog.
func (m *ProductsManager) GetAll() ([]models.Product, error) {
	products, err := m.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	if len(products) == 0 {
		return nil, apperrors.NewNotFound(msgNoProductFound)
	}
	return products, nil
}

// SearchByOriginCountry returns every product whose origin country matches
// exactly (case-sensitive).
func (m *ProductsManager) SearchByOriginCountry(country string) ([]models.Product, error) {
	products, err := m.repo.GetByOriginCountry(country)
	if err != nil {
		return nil, fmt.Errorf("failed to search products by origin country %s: %w", country, err)
	}
	if len(products) == 0 {
		return nil, apperrors.NewNotFound(msgNoProductForCountry)
	}
	return products, nil
}

// GetSpecific returns the product with the given code.
func (m *ProductsManager) GetSpecific(code string) (*models.Product, error) {
	product, err := m.repo.GetByCode(code)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, apperrors.NewNotFound(fmt.Sprintf("No product found with product code: %s", code))
		}
		return nil, fmt.Errorf("failed to get product %s: %w", code, err)
	}
	return product, nil
}

// Update validates a product and persists its new field values to the
// record matched by code or id.
func (m *ProductsManager) Update(product *models.Product) error {
	if err := m.validate.Struct(product); err != nil {
		return apperrors.NewValidation(msgInvalidProductUpdate)
	}
	if err := m.repo.Update(product); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return apperrors.NewNotFound(fmt.Sprintf("No product found with product code: %s", product.Code))
		}
		return fmt.Errorf("failed to update product %s: %w", product.Code, err)
	}
	m.publish(rabbitmq.ActionProductUpdated, product.Code)
	return nil
}

// publish sends a catalog change event. Publishing is best-effort: the
// mutation has already been persisted, so failures are logged and not
// surfaced to the caller.
func (m *ProductsManager) publish(action, code string) {
	if m.publisher == nil {
		return
	}
	if err := m.publisher.PublishProductEvent(action, code); err != nil {
		log.Printf("Warning: failed to publish %s event for product %s: %v", action, code, err)
	}
}
