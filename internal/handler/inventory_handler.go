package handler

import (
	"go-stock-api/internal/model"
	"go-stock-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.StockService
}

func NewInventoryHandler(s service.StockService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

func (h *InventoryHandler) GetTransactions(c *fiber.Ctx) error {
	page, size := pageParams(c)
	transactions, total, err := h.service.ListInventory(page, size)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(model.NewPage(transactions, page, size, total))
}

func (h *InventoryHandler) GetTransaction(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	tx, err := h.service.GetInventory(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(tx)
}

func (h *InventoryHandler) AddInventory(c *fiber.Ctx) error {
	var tx model.Inventory
	if err := c.BodyParser(&tx); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.AddInventory(&tx); err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Transaction recorded", "data": tx})
}

func (h *InventoryHandler) UpdateInventory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	var tx model.Inventory
	if err := c.BodyParser(&tx); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateInventory(id, &tx)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Transaction updated", "data": updated})
}

func (h *InventoryHandler) DeleteInventory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	if err := h.service.DeleteInventory(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Transaction deleted"})
}
