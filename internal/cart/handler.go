package cart

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

const storeTimeout = 5 * time.Second

// Handler delegates cart operations to the cart service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/addtocart", h.addToCart)
	app.Get("/getcart/:userId", h.getCart)
}

type addToCartRequest struct {
	UserID string `json:"userId"`
	// ProductID may arrive as a string or number, like order submissions
	ProductID any     `json:"productId"`
	Qty       float64 `json:"qty"`
}

func (h *Handler) addToCart(c *fiber.Ctx) error {
	payload := new(addToCartRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	productID := ""
	switch t := payload.ProductID.(type) {
	case string:
		productID = t
	case float64:
		productID = strconv.FormatFloat(t, 'f', -1, 64)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), storeTimeout)
	defer cancel()

	if err := h.service.AddItem(ctx, payload.UserID, productID, int(payload.Qty)); err != nil {
		if errors.Is(err, ErrMissingField) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false})
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), storeTimeout)
	defer cancel()

	lines, err := h.service.ListByUser(ctx, c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false})
	}
	return c.JSON(lines)
}
