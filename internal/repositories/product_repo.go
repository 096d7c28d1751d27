package repositories

import (
	"errors"

	"catalog/internal/models"
)

// ErrProductNotFound is returned by lookups and updates that match no product.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
// Implementations perform no validation; that is the manager's job.
type ProductRepository interface {
	Create(product *models.Product) error
	Update(product *models.Product) error
	DeleteByCode(code string) error
	GetAll() ([]models.Product, error)
	GetByCode(code string) (*models.Product, error)
	GetByOriginCountry(country string) ([]models.Product, error)
}
