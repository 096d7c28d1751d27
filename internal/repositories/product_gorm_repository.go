package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"catalog/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Create inserts a new product. The storage backend assigns the ID.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update persists changes to an existing product. The row is matched by ID
// when set, otherwise by product code. The existing row is resolved first:
// Save would otherwise insert when the update matches nothing.
func (r *GORMProductRepository) Update(product *models.Product) error {
	var existing models.Product
	var err error
	if product.ID != 0 {
		err = r.db.First(&existing, product.ID).Error
	} else {
		err = r.db.First(&existing, "code = ?", product.Code).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("product with code %s: %w", product.Code, ErrProductNotFound)
		}
		return fmt.Errorf("failed to look up product %s for update: %w", product.Code, err)
	}

	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt
	if err := r.db.Save(product).Error; err != nil { // Save writes all fields, including zero values
		return fmt.Errorf("failed to update product %s: %w", product.Code, err)
	}
	return nil
}

// DeleteByCode removes the product with the given code. Deleting a code
// that does not exist is a no-op.
func (r *GORMProductRepository) DeleteByCode(code string) error {
	if err := r.db.Delete(&models.Product{}, "code = ?", code).Error; err != nil {
		return fmt.Errorf("failed to delete product %s: %w", code, err)
	}
	return nil
}

// GetAll retrieves all products from the database.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByCode retrieves a single product by its product code.
func (r *GORMProductRepository) GetByCode(code string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with code %s: %w", code, ErrProductNotFound)
		}
		return nil, fmt.Errorf("failed to get product by code %s: %w", code, err)
	}
	return &product, nil
}

// GetByOriginCountry retrieves all products whose origin country matches
// exactly (case-sensitive).
func (r *GORMProductRepository) GetByOriginCountry(country string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("origin_country = ?", country).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products by origin country %s: %w", country, err)
	}
	return products, nil
}
