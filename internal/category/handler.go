package category

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/ishop-backend/internal/catalog"
)

const storeTimeout = 5 * time.Second

// Handler serves the category list and the products-in-category view. The
// latter is a catalog read, so the handler takes the catalog service too.
type Handler struct {
	service *Service
	catalog catalog.ServiceInterface
}

func NewHandler(s *Service, cs catalog.ServiceInterface) *Handler {
	return &Handler{service: s, catalog: cs}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/categories", h.getCategories)
	app.Get("/categories/:category", h.getProductsByCategory)
}

func (h *Handler) getCategories(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), storeTimeout)
	defer cancel()

	categories, err := h.service.List(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Categories error"})
	}
	return c.JSON(categories)
}

func (h *Handler) getProductsByCategory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), storeTimeout)
	defer cancel()

	products, err := h.catalog.ListByCategory(ctx, c.Params("category"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Category error"})
	}
	return c.JSON(products)
}
