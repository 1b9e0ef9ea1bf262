package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/heliotrack/solar-installations/internal/httperr"
)

// fieldError is one entry of an itemized 400 response.
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func validationFailed(c *fiber.Ctx, errs []fieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
}

// checkStruct validates a bound request struct and converts each failure into
// a human-readable field error.
func checkStruct(v interface{}) []fieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []fieldError{{Field: "request", Message: "invalid request"}}
	}

	out := make([]fieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	field := fe.Field()

	if fe.Tag() == "required" {
		return field + " is required"
	}

	switch field {
	case "panelCapacity_kW":
		return "panelCapacity_kW must be a number >= 0.1"
	case "efficiency":
		return "efficiency must be a number between 0 and 1"
	case "electricityRate":
		return "electricityRate must be a non-negative number"
	default:
		return field + " is invalid"
	}
}

// ErrorHandler is the centralized Fiber error handler: status-carrying errors
// respond with their status and message, everything else is a 500 with a
// generic body and the detail logged server-side only.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if status, ok := httperr.StatusOf(err); ok {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
}
