package catalog

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

const storeTimeout = 5 * time.Second

// Handler exposes the read-only catalog endpoints.
type Handler struct {
	service ServiceInterface
}

func NewHandler(s ServiceInterface) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/getproducts", h.getProducts)
	app.Get("/products/:id", h.getProduct)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), storeTimeout)
	defer cancel()

	products, err := h.service.List(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Products error"})
	}
	return c.JSON(products)
}

// getProduct accepts any identifier form a client may hold: the store oid,
// a legacy numeric id or an external string id.
func (h *Handler) getProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), storeTimeout)
	defer cancel()

	product, err := h.service.GetByRef(ctx, c.Params("id"))
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Product error"})
		}
	}
	return c.JSON(product)
}
