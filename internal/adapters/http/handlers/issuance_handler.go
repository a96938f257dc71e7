package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"dimec-inventory/internal/core/domain"
	"dimec-inventory/internal/core/services"
	"dimec-inventory/internal/pkg/response"
)

// IssuanceHandler handles issuance endpoints
type IssuanceHandler struct {
	issuanceService *services.IssuanceService
}

// NewIssuanceHandler creates a new issuance handler
func NewIssuanceHandler(issuanceService *services.IssuanceService) *IssuanceHandler {
	return &IssuanceHandler{issuanceService: issuanceService}
}

// List handles GET /api/issuances
func (h *IssuanceHandler) List(c *fiber.Ctx) error {
	records, err := h.issuanceService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch issuances")
	}
	return response.JSON(c, records)
}

// Get handles GET /api/issuances/:id
func (h *IssuanceHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid issuance id")
	}
	record, err := h.issuanceService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Issuance record not found")
		}
		return response.InternalServerError(c, "Failed to fetch issuance")
	}
	return response.JSON(c, record)
}

// ByDateRange handles GET /api/issuances/date-range?startDate=&endDate=
func (h *IssuanceHandler) ByDateRange(c *fiber.Ctx) error {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	if startDate == "" || endDate == "" {
		return response.BadRequest(c, "startDate and endDate are required")
	}

	records, err := h.issuanceService.ListByDateRange(c.Context(), startDate, endDate)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "Dates must use the YYYY-MM-DD format")
		}
		return response.InternalServerError(c, "Failed to fetch issuances")
	}
	return response.JSON(c, records)
}

// Create handles POST /api/issuances. The issuing user comes from the
// authenticated token, and the stock check here is authoritative.
func (h *IssuanceHandler) Create(c *fiber.Ctx) error {
	var input domain.IssuanceInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	errs := map[string]string{}
	if input.ProductID <= 0 {
		errs["productId"] = "Product is required"
	}
	if input.QuantityIssued < 1 {
		errs["quantityIssued"] = "Quantity issued must be at least 1"
	}
	if strings.TrimSpace(input.IssuedTo) == "" {
		errs["issuedTo"] = "Issued to is required"
	}
	if len(errs) > 0 {
		return response.ValidationFailed(c, errs)
	}

	issuerID, ok := c.Locals("userID").(int64)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	record, err := h.issuanceService.Create(c.Context(), input, issuerID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientStock):
			return response.BadRequest(c, "Insufficient stock")
		case errors.Is(err, domain.ErrNotFound):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, domain.ErrUnauthorized):
			return response.Unauthorized(c, "Unauthorized")
		default:
			return response.InternalServerError(c, "Failed to create issuance")
		}
	}
	return response.Created(c, record)
}

// Delete handles DELETE /api/issuances/:id
func (h *IssuanceHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid issuance id")
	}
	if err := h.issuanceService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Issuance record not found")
		}
		return response.InternalServerError(c, "Failed to delete issuance")
	}
	return response.Message(c, fiber.StatusOK, "Issuance deleted")
}
