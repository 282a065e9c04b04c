package handler

import (
	"errors"

	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InboundHandler struct {
	inboundService service.InboundService
}

func NewInboundHandler(inboundService service.InboundService) *InboundHandler {
	return &InboundHandler{inboundService: inboundService}
}

func requestFilterFromQuery(c *fiber.Ctx) service.RequestFilter {
	return service.RequestFilter{
		RequestNo: c.Query("requestNo"),
		Status:    model.RequestStatus(c.Query("status")),
	}
}

func requestErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrRequestNotFound):
		return 404
	case errors.Is(err, service.ErrRequestNotEditable),
		errors.Is(err, service.ErrRequestNotDeletable),
		errors.Is(err, service.ErrRequestNotPending):
		return 409
	default:
		return 400
	}
}

// GetInboundRequests returns all inbound requests, optionally narrowed by
// ?requestNo= substring and ?status= exact match
// GET /api/v1/inbound
func (h *InboundHandler) GetInboundRequests(c *fiber.Ctx) error {
	requests, err := h.inboundService.GetAll(requestFilterFromQuery(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch inbound requests"})
	}
	return c.JSON(requests)
}

// GetMyInboundRequests returns the caller's own inbound requests
// GET /api/v1/inbound/mine
func (h *InboundHandler) GetMyInboundRequests(c *fiber.Ctx) error {
	requests, err := h.inboundService.GetMine(getActorID(c), requestFilterFromQuery(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch inbound requests"})
	}
	return c.JSON(requests)
}

// GetInboundRequest returns one inbound request with its items
// GET /api/v1/inbound/:id
func (h *InboundHandler) GetInboundRequest(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request ID"})
	}

	request, err := h.inboundService.GetByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Request not found"})
	}
	return c.JSON(request)
}

// CreateInboundRequest creates a new Pending inbound request
// POST /api/v1/inbound
func (h *InboundHandler) CreateInboundRequest(c *fiber.Ctx) error {
	var req service.InboundRequestInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	request, err := h.inboundService.Create(&req, getActorID(c), getUsername(c))
	if err != nil {
		return c.Status(requestErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Inbound request created", "data": request})
}

// UpdateInboundRequest replaces header fields and items while still Pending
// PUT /api/v1/inbound/:id
func (h *InboundHandler) UpdateInboundRequest(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request ID"})
	}

	var req service.InboundRequestInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	request, err := h.inboundService.Update(id, &req, getActorID(c))
	if err != nil {
		return c.Status(requestErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Inbound request updated", "data": request})
}

// DeleteInboundRequest soft-deletes a Pending inbound request
// DELETE /api/v1/inbound/:id
func (h *InboundHandler) DeleteInboundRequest(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request ID"})
	}

	if err := h.inboundService.Delete(id, getActorID(c)); err != nil {
		return c.Status(requestErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Inbound request deleted"})
}

// DecideInboundRequest approves or rejects a Pending inbound request
// POST /api/v1/inbound/:id/approval
func (h *InboundHandler) DecideInboundRequest(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request ID"})
	}

	var req service.ApprovalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	request, err := h.inboundService.Decide(id, &req, getActorID(c), getUsername(c))
	if err != nil {
		return c.Status(requestErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Decision recorded", "data": request})
}
