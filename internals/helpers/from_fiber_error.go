package helper

import "github.com/gofiber/fiber/v2"

// FromFiberError converts an error bubbling out of a transaction (usually a
// *fiber.Error) into the consistent JSON envelope. Anything else becomes 500.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return Error(c, fe.Code, fe.Message)
	}
	return Error(c, fiber.StatusInternalServerError, err.Error())
}
