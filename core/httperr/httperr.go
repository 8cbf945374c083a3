package httperr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var (
	// ErrNotFound indicates no record matches the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrUnauthorized indicates a missing, invalid, or expired session token.
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError lists the required fields missing from a request.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// Validation builds a ValidationError for the given field names.
func Validation(fields ...string) error {
	return &ValidationError{Missing: fields}
}

// Respond writes err to the client as a structured JSON body with the status
// that matches the error taxonomy. Anything outside the taxonomy is treated
// as an upstream failure.
func Respond(c *fiber.Ctx, err error) error {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  verr.Error(),
			"fields": verr.Missing,
		})
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
