package order

import (
	"math"

	"github.com/wichananm65/ishop-backend/internal/catalog"
	"github.com/wichananm65/ishop-backend/internal/storeid"
)

// subtotalTolerance is the largest absolute difference allowed between a
// client-supplied subtotal and the server-computed one.
const subtotalTolerance = 0.5

// Line is one raw cart line as submitted by the client: an identifier of any
// form plus a requested quantity.
type Line struct {
	Ref string
	Qty int
}

// BuildItems validates every submitted line against the resolved catalog
// index and produces the snapshot items. It fails closed: the first line
// whose reference is absent, or whose catalog price is unreadable, rejects
// the whole submission and no items are produced.
func BuildItems(lines []Line, resolved map[string]catalog.Product) ([]Item, error) {
	items := make([]Item, 0, len(lines))
	for _, line := range lines {
		p, ok := resolved[catalog.LookupKey(line.Ref)]
		if !ok {
			return nil, &ProductNotFoundError{Ref: line.Ref}
		}

		price, err := p.UnitPrice()
		if err != nil {
			return nil, &PriceDataError{Ref: line.Ref, OID: p.OID}
		}

		qty := line.Qty
		if qty <= 0 {
			qty = 1
		}

		items = append(items, Item{
			ProductID: storeid.Normalize(p.OID),
			Title:     p.DisplayTitle(),
			Qty:       qty,
			UnitPrice: price,
			LineTotal: price * float64(qty),
		})
	}
	return items, nil
}

// Totals is the server-computed money breakdown of an order.
type Totals struct {
	Subtotal float64
	Shipping float64
	Tax      float64
	Total    float64
}

// ComputeTotals sums validated line totals in submission order, cross-checks
// an optional client subtotal, and derives the grand total. The total is
// always computed server-side; a client can never override a successfully
// computed value.
func ComputeTotals(items []Item, shipping, tax float64, clientSubtotal *float64) (Totals, error) {
	var subtotal float64
	for _, it := range items {
		subtotal += it.LineTotal
	}

	if clientSubtotal != nil && math.Abs(*clientSubtotal-subtotal) > subtotalTolerance {
		return Totals{}, ErrSubtotalMismatch
	}

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}, nil
}
