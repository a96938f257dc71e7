package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"dimec-inventory/internal/core/domain"
	"dimec-inventory/internal/core/services"
	"dimec-inventory/internal/pkg/response"
)

// ProductHandler handles product endpoints
type ProductHandler struct {
	productService *services.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles GET /api/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.productService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch products")
	}
	return response.JSON(c, products)
}

// Get handles GET /api/products/:id
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid product id")
	}
	product, err := h.productService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Product not found")
		}
		return response.InternalServerError(c, "Failed to fetch product")
	}
	return response.JSON(c, product)
}

// LowStock handles GET /api/products/low-stock
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	products, err := h.productService.ListLowStock(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch low stock products")
	}
	return response.JSON(c, products)
}

// Search handles GET /api/products/search?term=
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	term := c.Query("term")
	products, err := h.productService.Search(c.Context(), term)
	if err != nil {
		return response.InternalServerError(c, "Failed to search products")
	}
	return response.JSON(c, products)
}

// Create handles POST /api/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	input, errs := h.parseInput(c)
	if errs != nil {
		return response.ValidationFailed(c, errs)
	}
	if input == nil {
		return response.BadRequest(c, "Invalid request body")
	}

	product, err := h.productService.Create(c.Context(), *input)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.BadRequest(c, err.Error())
		}
		return response.InternalServerError(c, "Failed to create product")
	}
	return response.Created(c, product)
}

// Update handles PUT /api/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid product id")
	}
	input, errs := h.parseInput(c)
	if errs != nil {
		return response.ValidationFailed(c, errs)
	}
	if input == nil {
		return response.BadRequest(c, "Invalid request body")
	}

	product, err := h.productService.Update(c.Context(), id, *input)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Product not found")
		}
		return response.InternalServerError(c, "Failed to update product")
	}
	return response.JSON(c, product)
}

// Delete handles DELETE /api/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid product id")
	}
	if err := h.productService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Product not found")
		}
		return response.InternalServerError(c, "Failed to delete product")
	}
	return response.Message(c, fiber.StatusOK, "Product deleted")
}

// parseInput parses and validates the product body. Returns a non-nil
// error map for validation failures, nil input for unparseable bodies.
func (h *ProductHandler) parseInput(c *fiber.Ctx) (*domain.ProductInput, map[string]string) {
	var input domain.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return nil, nil
	}

	errs := map[string]string{}
	if strings.TrimSpace(input.Name) == "" {
		errs["name"] = "Product name is required"
	}
	if input.CategoryID <= 0 {
		errs["categoryId"] = "Category is required"
	}
	if input.SupplierID <= 0 {
		errs["supplierId"] = "Supplier is required"
	}
	if input.Quantity < 0 {
		errs["quantity"] = "Quantity cannot be negative"
	}
	if input.UnitPrice.IsNegative() {
		errs["unitPrice"] = "Unit price cannot be negative"
	}
	if input.ReorderLevel < 0 {
		errs["reorderLevel"] = "Reorder level cannot be negative"
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return &input, nil
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
