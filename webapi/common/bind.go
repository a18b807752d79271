package common

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// MalformedInputError wraps a body that could not be decoded.
type MalformedInputError struct {
	Err error
}

func (e *MalformedInputError) Error() string {
	return "malformed request body: " + e.Err.Error()
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// BindAndValidate parses the request body into T and validates it.
// Nothing is written to the response; the returned error is left to the
// app's ErrorHandler.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return nil, fe
		}
		return nil, &MalformedInputError{Err: err}
	}
	if err := Validate(&input); err != nil {
		return nil, err
	}
	return &input, nil
}
