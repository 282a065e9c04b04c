package handler

import (
	"errors"

	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type UnitHandler struct {
	unitService service.UnitService
}

func NewUnitHandler(unitService service.UnitService) *UnitHandler {
	return &UnitHandler{unitService: unitService}
}

// GetUnits returns all measurement units
// GET /api/v1/unit
func (h *UnitHandler) GetUnits(c *fiber.Ctx) error {
	units, err := h.unitService.GetAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch units"})
	}
	return c.JSON(units)
}

// CreateUnit handles unit creation
// POST /api/v1/unit
func (h *UnitHandler) CreateUnit(c *fiber.Ctx) error {
	var req service.UnitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	unit, err := h.unitService.Create(&req, getUserID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Unit created", "data": unit})
}

// UpdateUnit handles unit update
// PUT /api/v1/unit/:id
func (h *UnitHandler) UpdateUnit(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid unit ID"})
	}

	var req service.UnitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	unit, err := h.unitService.Update(id, &req, getUserID(c))
	if err != nil {
		status := 400
		if errors.Is(err, service.ErrUnitNotFound) {
			status = 404
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Unit updated", "data": unit})
}

// DeleteUnit hard-deletes a unit unless a product still references it
// DELETE /api/v1/unit/:id
func (h *UnitHandler) DeleteUnit(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid unit ID"})
	}

	if err := h.unitService.Delete(id); err != nil {
		status := 400
		if errors.Is(err, service.ErrUnitNotFound) {
			status = 404
		} else if errors.Is(err, service.ErrUnitInUse) {
			status = 409
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Unit deleted"})
}
