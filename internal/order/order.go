package order

import (
	"errors"
	"fmt"
)

// Status is the closed order-status vocabulary. Values outside it are
// rejected at the boundary by ParseStatus, so lifecycle code only ever sees
// legal statuses.
type Status string

const (
	StatusCreated    Status = "Created"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
)

// ParseStatus validates a raw status string against the fixed vocabulary.
func ParseStatus(raw string) (Status, error) {
	switch s := Status(raw); s {
	case StatusCreated, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return s, nil
	default:
		return "", &InvalidStatusError{Value: raw}
	}
}

// Item is one order line, an immutable snapshot taken at assembly time.
// It is never re-derived from live catalog state: the order records what the
// customer was charged, not what the catalog later becomes.
type Item struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
}

// Order is a persisted purchase. UserID is nil for guest orders. Orders are
// created once by the assembly pipeline and afterwards change only through
// status transitions; they are never deleted.
type Order struct {
	OrderID   string  `json:"orderId"`
	UserID    *string `json:"userId,omitempty"`
	Items     []Item  `json:"items"`
	Subtotal  float64 `json:"subtotal"`
	Shipping  float64 `json:"shipping"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
	Status    Status  `json:"status"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt *string `json:"updatedAt,omitempty"`
}

var (
	// ErrNotFound means the order reference resolved to no existing order.
	ErrNotFound = errors.New("order not found")
	// ErrEmptyOrder rejects submissions with no items, before any lookup.
	ErrEmptyOrder = errors.New("order has no items")
	// ErrSubtotalMismatch rejects a client subtotal that disagrees with the
	// server-computed value beyond the allowed tolerance.
	ErrSubtotalMismatch = errors.New("subtotal mismatch")
)

// ProductNotFoundError names the client reference that resolved to nothing.
// One unresolvable line fails the whole submission.
type ProductNotFoundError struct {
	Ref string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product not found for reference %q", e.Ref)
}

// PriceDataError reports a catalog record whose stored price is not numeric.
// This is a server-side data fault, distinct from a bad client reference.
type PriceDataError struct {
	Ref string
	OID string
}

func (e *PriceDataError) Error() string {
	return fmt.Sprintf("product %s (ref %q) has a non-numeric catalog price", e.OID, e.Ref)
}

// InvalidStatusError reports a status value outside the fixed vocabulary.
type InvalidStatusError struct {
	Value string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid order status %q", e.Value)
}
