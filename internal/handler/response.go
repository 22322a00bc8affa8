package handler

import (
	"errors"
	"strconv"

	"go-stock-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps service failure kinds onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrInventoryNotFound),
		errors.Is(err, service.ErrOrderNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrDuplicateOrderNo):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrInvalidTransactionType),
		errors.Is(err, service.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUserInactive),
		errors.Is(err, service.ErrInvalidToken):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

func fail(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		msg = "Internal Server Error"
	}
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// pageParams reads page/size query params with the API defaults (0, 10).
func pageParams(c *fiber.Ctx) (int, int) {
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 10)
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}
	if size > 100 {
		size = 100
	}
	return page, size
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
