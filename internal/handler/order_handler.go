package handler

import (
	"go-stock-api/internal/model"
	"go-stock-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	service service.StockService
}

func NewOrderHandler(s service.StockService) *OrderHandler {
	return &OrderHandler{service: s}
}

func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	page, size := pageParams(c)
	orders, total, err := h.service.ListOrders(page, size)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(model.NewPage(orders, page, size, total))
}

func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	order, err := h.service.GetOrder(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(order)
}

func (h *OrderHandler) PlaceOrder(c *fiber.Ctx) error {
	var order model.Order
	if err := c.BodyParser(&order); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.PlaceOrder(&order); err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Order placed", "data": order})
}

func (h *OrderHandler) UpdateOrder(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	var order model.Order
	if err := c.BodyParser(&order); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateOrder(id, &order)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Order updated", "data": updated})
}

func (h *OrderHandler) DeleteOrder(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	if err := h.service.DeleteOrder(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Order deleted"})
}
