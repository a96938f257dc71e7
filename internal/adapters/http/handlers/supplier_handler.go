package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"dimec-inventory/internal/core/domain"
	"dimec-inventory/internal/core/services"
	"dimec-inventory/internal/pkg/response"
)

// SupplierHandler handles supplier endpoints
type SupplierHandler struct {
	supplierService *services.SupplierService
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(supplierService *services.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

// List handles GET /api/suppliers
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	suppliers, err := h.supplierService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch suppliers")
	}
	return response.JSON(c, suppliers)
}

// Get handles GET /api/suppliers/:id
func (h *SupplierHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid supplier id")
	}
	supplier, err := h.supplierService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Supplier not found")
		}
		return response.InternalServerError(c, "Failed to fetch supplier")
	}
	return response.JSON(c, supplier)
}

// Create handles POST /api/suppliers
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var input domain.SupplierInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(input.Name) == "" {
		return response.ValidationFailed(c, map[string]string{"name": "Supplier name is required"})
	}

	supplier, err := h.supplierService.Create(c.Context(), input)
	if err != nil {
		return response.InternalServerError(c, "Failed to create supplier")
	}
	return response.Created(c, supplier)
}

// Update handles PUT /api/suppliers/:id
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid supplier id")
	}
	var input domain.SupplierInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(input.Name) == "" {
		return response.ValidationFailed(c, map[string]string{"name": "Supplier name is required"})
	}

	supplier, err := h.supplierService.Update(c.Context(), id, input)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Supplier not found")
		}
		return response.InternalServerError(c, "Failed to update supplier")
	}
	return response.JSON(c, supplier)
}

// Delete handles DELETE /api/suppliers/:id
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid supplier id")
	}
	if err := h.supplierService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Supplier not found")
		}
		return response.InternalServerError(c, "Failed to delete supplier")
	}
	return response.Message(c, fiber.StatusOK, "Supplier deleted")
}
