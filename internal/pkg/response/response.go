package response

import "github.com/gofiber/fiber/v2"

// MessageResponse is the wire shape for non-validation failures and
// informational replies: {"message": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationResponse is the wire shape for 400 validation failures:
// {"errors": {"field": "message"}}. Clients join the messages into a
// single string, so values must stand alone as readable sentences.
type ValidationResponse struct {
	Errors map[string]string `json:"errors"`
}

// JSON sends data as-is with a 200 status
func JSON(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

// Created sends data with a 201 status
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// Message sends a message with the given status
func Message(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(MessageResponse{Message: message})
}

// ValidationFailed sends a 400 with a field->message map
func ValidationFailed(c *fiber.Ctx, errs map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ValidationResponse{Errors: errs})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusUnauthorized, message)
}

// Forbidden sends a 403 forbidden response
func Forbidden(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusForbidden, message)
}

// NotFound sends a 404 not found response
func NotFound(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusNotFound, message)
}

// Conflict sends a 409 conflict response
func Conflict(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusConflict, message)
}

// InternalServerError sends a 500 internal server error response
func InternalServerError(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusInternalServerError, message)
}
