package handler

import (
	"go-stock-api/internal/model"
	"go-stock-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ItemHandler struct {
	service service.StockService
}

func NewItemHandler(s service.StockService) *ItemHandler {
	return &ItemHandler{service: s}
}

func (h *ItemHandler) GetItems(c *fiber.Ctx) error {
	page, size := pageParams(c)
	items, total, err := h.service.ListItems(page, size)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(model.NewPage(items, page, size, total))
}

func (h *ItemHandler) GetItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	item, err := h.service.GetItem(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(item)
}

func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	var item model.Item
	if err := c.BodyParser(&item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateItem(&item); err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Item created", "data": item})
}

func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	var item model.Item
	if err := c.BodyParser(&item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateItem(id, &item)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item updated", "data": updated})
}

func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	if err := h.service.DeleteItem(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item deleted"})
}
