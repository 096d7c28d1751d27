package repositories

import (
	"fmt"
	"sync"

	"catalog/internal/models"
)

// InMemoryProductRepository is a mutex-guarded in-memory implementation of
// ProductRepository, keyed by product code. It backs dev mode when no
// database is configured and lightweight tests that need real storage
// behavior without a database.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]models.Product
	nextID   uint
}

// NewInMemoryProductRepository creates an empty InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: make(map[string]models.Product),
		nextID:   1,
	}
}

// Create adds a new product, assigning it the next free ID.
func (r *InMemoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.Code]; ok {
		return fmt.Errorf("product with code %s already exists", product.Code)
	}
	product.ID = r.nextID
	r.nextID++
	r.products[product.Code] = *product
	return nil
}

// Update replaces the stored product matching by code.
func (r *InMemoryProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[product.Code]
	if !ok {
		return fmt.Errorf("product with code %s: %w", product.Code, ErrProductNotFound)
	}
	product.ID = existing.ID
	r.products[product.Code] = *product
	return nil
}

// DeleteByCode removes a product by its code. Absent codes are a no-op.
func (r *InMemoryProductRepository) DeleteByCode(code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.products, code)
	return nil
}

// GetAll returns all products.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	return productList, nil
}

// GetByCode returns the product with the given code.
func (r *InMemoryProductRepository) GetByCode(code string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[code]
	if !ok {
		return nil, fmt.Errorf("product with code %s: %w", code, ErrProductNotFound)
	}
	return &product, nil
}

// GetByOriginCountry returns every product whose origin country matches
// exactly.
func (r *InMemoryProductRepository) GetByOriginCountry(country string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []models.Product
	for _, p := range r.products {
		if p.OriginCountry == country {
			matches = append(matches, p)
		}
	}
	return matches, nil
}
