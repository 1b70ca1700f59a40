package order

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

const storeTimeout = 5 * time.Second

// Handler exposes the order endpoints. Order creation is open to guests, so
// these routes are public; the user reference, when present, is taken from
// the submission itself as the legacy clients send it.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/createorder", h.createOrder)
	app.Get("/orders/:userId", h.listOrders)
	app.Patch("/orders/:orderId/status", h.setStatus)
}

type orderLineRequest struct {
	// ProductID may arrive as a JSON string or number; clients are not
	// consistent about which identifier form they hold.
	ProductID any     `json:"productId"`
	Qty       float64 `json:"qty"`
}

type createOrderRequest struct {
	UserID   *string            `json:"userId"`
	Items    []orderLineRequest `json:"items"`
	Shipping float64            `json:"shipping"`
	Tax      float64            `json:"tax"`
	Subtotal *float64           `json:"subtotal"`
	// Total is parsed for compatibility but never trusted: the server
	// always recomputes it from resolved catalog prices.
	Total *float64 `json:"total"`
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	payload := new(createOrderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	if len(payload.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "No items"})
	}

	lines := make([]Line, 0, len(payload.Items))
	for i, item := range payload.Items {
		ref, ok := refString(item.ProductID)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "items[" + strconv.Itoa(i) + "] is missing productId",
			})
		}
		lines = append(lines, Line{Ref: ref, Qty: int(item.Qty)})
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), storeTimeout)
	defer cancel()

	created, err := h.service.Create(ctx, Submission{
		UserID:   payload.UserID,
		Lines:    lines,
		Shipping: payload.Shipping,
		Tax:      payload.Tax,
		Subtotal: payload.Subtotal,
	})
	if err != nil {
		var notFound *ProductNotFoundError
		var priceErr *PriceDataError
		switch {
		case errors.Is(err, ErrEmptyOrder):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "No items"})
		case errors.As(err, &notFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Product not found while creating order: " + notFound.Ref,
			})
		case errors.As(err, &priceErr):
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "catalog price error for product " + priceErr.OID,
			})
		case errors.Is(err, ErrSubtotalMismatch):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "message": "subtotal mismatch"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false})
		}
	}

	return c.Status(fiber.StatusOK).JSON(created)
}

func (h *Handler) listOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), storeTimeout)
	defer cancel()

	orders, err := h.service.ListByUser(ctx, c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false})
	}
	return c.JSON(orders)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) setStatus(c *fiber.Ctx) error {
	payload := new(statusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), storeTimeout)
	defer cancel()

	updated, err := h.service.UpdateStatus(ctx, c.Params("orderId"), payload.Status)
	if err != nil {
		var invalid *InvalidStatusError
		switch {
		case errors.As(err, &invalid):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": invalid.Error()})
		case errors.Is(err, ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "order not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false})
		}
	}
	return c.JSON(updated)
}

// refString normalizes a raw productId value to its string reference form.
func refString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, t != ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	default:
		return "", false
	}
}
