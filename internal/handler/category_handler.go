package handler

import (
	"errors"

	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	categoryService service.CategoryService
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// GetCategories returns the category forest (roots with nested children)
// GET /api/v1/category
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	tree, err := h.categoryService.GetTree()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch categories"})
	}
	return c.JSON(tree)
}

// GetFlattenedCategories returns the depth-annotated flat list for tables
// GET /api/v1/category/flat
func (h *CategoryHandler) GetFlattenedCategories(c *fiber.Ctx) error {
	flat, err := h.categoryService.GetFlattened()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch categories"})
	}
	return c.JSON(flat)
}

// GetParentOptions returns the "choose parent" list for an edit form, with
// the edited node and its descendants disabled
// GET /api/v1/category/:id/parent-options
func (h *CategoryHandler) GetParentOptions(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	options, err := h.categoryService.GetParentOptions(id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch parent options"})
	}
	return c.JSON(options)
}

// CreateCategory handles category creation
// POST /api/v1/category
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req service.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	category, err := h.categoryService.Create(&req, getUserID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Category created", "data": category})
}

// UpdateCategory handles name/parent changes; a cyclic parent is refused
// PUT /api/v1/category/:id
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	var req service.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	category, err := h.categoryService.Update(id, &req, getUserID(c))
	if err != nil {
		status := 400
		if errors.Is(err, service.ErrCategoryNotFound) {
			status = 404
		} else if errors.Is(err, service.ErrCategoryCycle) {
			status = 409
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Category updated", "data": category})
}

// DeleteCategory hard-deletes a category; its children move up one level
// DELETE /api/v1/category/:id
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	if err := h.categoryService.Delete(id); err != nil {
		status := 400
		if errors.Is(err, service.ErrCategoryNotFound) {
			status = 404
		} else if errors.Is(err, service.ErrCategoryInUse) {
			status = 409
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Category deleted"})
}
