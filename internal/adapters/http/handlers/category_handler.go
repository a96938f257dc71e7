package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"dimec-inventory/internal/core/domain"
	"dimec-inventory/internal/core/services"
	"dimec-inventory/internal/pkg/response"
)

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	categoryService *services.CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List handles GET /api/categories
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.categoryService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch categories")
	}
	return response.JSON(c, categories)
}

// Get handles GET /api/categories/:id
func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid category id")
	}
	category, err := h.categoryService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Category not found")
		}
		return response.InternalServerError(c, "Failed to fetch category")
	}
	return response.JSON(c, category)
}

// Create handles POST /api/categories
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var input domain.CategoryInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(input.Name) == "" {
		return response.ValidationFailed(c, map[string]string{"name": "Category name is required"})
	}

	category, err := h.categoryService.Create(c.Context(), input)
	if err != nil {
		return response.InternalServerError(c, "Failed to create category")
	}
	return response.Created(c, category)
}

// Update handles PUT /api/categories/:id
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid category id")
	}
	var input domain.CategoryInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(input.Name) == "" {
		return response.ValidationFailed(c, map[string]string{"name": "Category name is required"})
	}

	category, err := h.categoryService.Update(c.Context(), id, input)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Category not found")
		}
		return response.InternalServerError(c, "Failed to update category")
	}
	return response.JSON(c, category)
}

// Delete handles DELETE /api/categories/:id
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid category id")
	}
	if err := h.categoryService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Category not found")
		}
		return response.InternalServerError(c, "Failed to delete category")
	}
	return response.Message(c, fiber.StatusOK, "Category deleted")
}
