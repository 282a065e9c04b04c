package handler

import (
	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type OutboundHandler struct {
	outboundService service.OutboundService
}

func NewOutboundHandler(outboundService service.OutboundService) *OutboundHandler {
	return &OutboundHandler{outboundService: outboundService}
}

// GetOutboundRequests returns all outbound requests, optionally narrowed by
// ?requestNo= substring and ?status= exact match
// GET /api/v1/outbound
func (h *OutboundHandler) GetOutboundRequests(c *fiber.Ctx) error {
	requests, err := h.outboundService.GetAll(requestFilterFromQuery(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch outbound requests"})
	}
	return c.JSON(requests)
}

// GetMyOutboundRequests returns the caller's own outbound requests
// GET /api/v1/outbound/mine
func (h *OutboundHandler) GetMyOutboundRequests(c *fiber.Ctx) error {
	requests, err := h.outboundService.GetMine(getActorID(c), requestFilterFromQuery(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch outbound requests"})
	}
	return c.JSON(requests)
}

// GetOutboundRequest returns one outbound request with its items
// GET /api/v1/outbound/:id
func (h *OutboundHandler) GetOutboundRequest(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request ID"})
	}

	request, err := h.outboundService.GetByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Request not found"})
	}
	return c.JSON(request)
}

// CreateOutboundRequest creates a new Pending outbound request
// POST /api/v1/outbound
func (h *OutboundHandler) CreateOutboundRequest(c *fiber.Ctx) error {
	var req service.OutboundRequestInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	request, err := h.outboundService.Create(&req, getActorID(c), getUsername(c))
	if err != nil {
		return c.Status(requestErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Outbound request created", "data": request})
}

// UpdateOutboundRequest replaces header fields and items while still Pending
// PUT /api/v1/outbound/:id
func (h *OutboundHandler) UpdateOutboundRequest(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request ID"})
	}

	var req service.OutboundRequestInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	request, err := h.outboundService.Update(id, &req, getActorID(c))
	if err != nil {
		return c.Status(requestErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Outbound request updated", "data": request})
}

// DeleteOutboundRequest soft-deletes a Pending outbound request
// DELETE /api/v1/outbound/:id
func (h *OutboundHandler) DeleteOutboundRequest(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request ID"})
	}

	if err := h.outboundService.Delete(id, getActorID(c)); err != nil {
		return c.Status(requestErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Outbound request deleted"})
}

// DecideOutboundRequest approves or rejects a Pending outbound request
// POST /api/v1/outbound/:id/approval
func (h *OutboundHandler) DecideOutboundRequest(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request ID"})
	}

	var req service.ApprovalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	request, err := h.outboundService.Decide(id, &req, getActorID(c), getUsername(c))
	if err != nil {
		return c.Status(requestErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Decision recorded", "data": request})
}
