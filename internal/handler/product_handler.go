package handler

import (
	"errors"

	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GetProducts returns all products with category and base unit resolved
// GET /api/v1/product
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.productService.GetAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch products"})
	}
	return c.JSON(products)
}

// GetProduct returns a single product by ID
// GET /api/v1/product/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, err := h.productService.GetByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Product not found"})
	}
	return c.JSON(product)
}

// CreateProduct handles product creation
// POST /api/v1/product
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.productService.Create(&req, getUserID(c))
	if err != nil {
		status := 400
		if errors.Is(err, service.ErrSKUExists) {
			status = 409
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product.ToResponse()})
}

// UpdateProduct handles product update; the SKU cannot be changed
// PUT /api/v1/product/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req service.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.productService.Update(id, &req, getUserID(c))
	if err != nil {
		status := 400
		if errors.Is(err, service.ErrProductNotFound) {
			status = 404
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Product updated", "data": product.ToResponse()})
}

// DeactivateProduct marks a product INACTIVE instead of removing the row
// DELETE /api/v1/product/:id
func (h *ProductHandler) DeactivateProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, err := h.productService.Deactivate(id, getUserID(c))
	if err != nil {
		status := 400
		if errors.Is(err, service.ErrProductNotFound) {
			status = 404
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Product deactivated", "data": product.ToResponse()})
}
