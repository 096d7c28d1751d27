package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"catalog/internal/apperrors"
	"catalog/internal/models"
	"catalog/internal/services"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	manager *services.ProductsManager
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(manager *services.ProductsManager) *ProductHandler {
	return &ProductHandler{
		manager: manager,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetAll)
	productRoutes.Get("/origin/:country", h.HandleSearchByOriginCountry)
	productRoutes.Get("/:code", h.HandleGetSpecific)
	productRoutes.Post("/", h.HandleAdd)
	productRoutes.Put("/:code", h.HandleUpdate)
	productRoutes.Delete("/:code", h.HandleDelete)
}

// HandleGetAll returns the whole catalog.
func (h *ProductHandler) HandleGetAll(c *fiber.Ctx) error {
	products, err := h.manager.GetAll()
	if err != nil {
		return respondError(c, err, "Could not retrieve products")
	}
	return c.JSON(products)
}

// HandleSearchByOriginCountry returns the products originating from the
// given country.
func (h *ProductHandler) HandleSearchByOriginCountry(c *fiber.Ctx) error {
	country := c.Params("country")
	products, err := h.manager.SearchByOriginCountry(country)
	if err != nil {
		return respondError(c, err, "Could not search products")
	}
	return c.JSON(products)
}

// HandleGetSpecific returns a single product by its code.
func (h *ProductHandler) HandleGetSpecific(c *fiber.Ctx) error {
	code := c.Params("code")
	product, err := h.manager.GetSpecific(code)
	if err != nil {
		return respondError(c, err, "Could not retrieve product")
	}
	return c.JSON(product)
}

// HandleAdd creates a new product.
func (h *ProductHandler) HandleAdd(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.manager.Add(&product); err != nil {
		return respondError(c, err, "Could not create product")
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdate persists new field values to the product addressed by the
// code in the path.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	// The path owns the identity; the body carries the new values.
	product.Code = c.Params("code")

	if err := h.manager.Update(&product); err != nil {
		return respondError(c, err, "Could not update product")
	}
	return c.JSON(product)
}

// HandleDelete removes a product by its code.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	code := c.Params("code")
	if err := h.manager.Delete(code); err != nil {
		return respondError(c, err, "Could not delete product")
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}

// respondError maps a manager error onto an HTTP status: validation and
// argument errors are the client's fault, not-found is 404, anything else
// is a server error.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": validationErr.Message,
		})
	}
	var argumentErr *apperrors.ArgumentError
	if errors.As(err, &argumentErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": argumentErr.Message,
		})
	}
	var notFoundErr *apperrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": notFoundErr.Message,
		})
	}
	log.Printf("Unexpected catalog error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": fallback,
		"error":   err.Error(),
	})
}
