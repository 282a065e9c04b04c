package handler

import (
	"errors"

	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type WarehouseHandler struct {
	warehouseService service.WarehouseService
}

func NewWarehouseHandler(warehouseService service.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{warehouseService: warehouseService}
}

// GetWarehouses returns all warehouses
// GET /api/v1/warehouse
func (h *WarehouseHandler) GetWarehouses(c *fiber.Ctx) error {
	warehouses, err := h.warehouseService.GetAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch warehouses"})
	}
	return c.JSON(warehouses)
}

// CreateWarehouse handles warehouse creation
// POST /api/v1/warehouse
func (h *WarehouseHandler) CreateWarehouse(c *fiber.Ctx) error {
	var req service.WarehouseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	warehouse, err := h.warehouseService.Create(&req, getUserID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Warehouse created", "data": warehouse})
}

// UpdateWarehouse handles warehouse update
// PUT /api/v1/warehouse/:id
func (h *WarehouseHandler) UpdateWarehouse(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid warehouse ID"})
	}

	var req service.WarehouseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	warehouse, err := h.warehouseService.Update(id, &req, getUserID(c))
	if err != nil {
		status := 400
		if errors.Is(err, service.ErrWarehouseNotFound) {
			status = 404
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Warehouse updated", "data": warehouse})
}
