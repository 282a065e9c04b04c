package handler

import (
	"time"

	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetOverview returns the headline counters for the dashboard
// GET /api/v1/dashboard/overview
func (h *DashboardHandler) GetOverview(c *fiber.Ctx) error {
	overview, err := h.dashboardService.GetOverview()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch overview"})
	}
	return c.JSON(overview)
}

// GetRequestVolume returns per-day inbound/outbound request counts.
// Defaults to the last 7 days when no range is given.
// GET /api/v1/dashboard/request-volume?start_date=2025-08-01&end_date=2025-08-31
func (h *DashboardHandler) GetRequestVolume(c *fiber.Ctx) error {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -7)

	if startStr := c.Query("start_date"); startStr != "" {
		parsed, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid start_date format, use YYYY-MM-DD"})
		}
		startDate = parsed
	}
	if endStr := c.Query("end_date"); endStr != "" {
		parsed, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid end_date format, use YYYY-MM-DD"})
		}
		endDate = parsed.Add(24*time.Hour - time.Second)
	}

	volume, err := h.dashboardService.GetRequestVolume(startDate, endDate)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch request volume"})
	}
	return c.JSON(volume)
}
