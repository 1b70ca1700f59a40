package order

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wichananm65/ishop-backend/internal/catalog"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func resolvedIndex(products ...catalog.Product) map[string]catalog.Product {
	index := map[string]catalog.Product{}
	for _, p := range products {
		for _, k := range p.RefKeys() {
			index[k] = p
		}
	}
	return index
}

func TestBuildItems_SnapshotFields(t *testing.T) {
	resolved := resolvedIndex(catalog.Product{
		OID:      "A1B2C3D4E5F6A7B8C9D0E1F2",
		LegacyID: floatPtr(7),
		Title:    strPtr("Dog Bowl"),
		Price:    strPtr("19.99"),
	})

	items, err := BuildItems([]Line{{Ref: "7", Qty: 3}}, resolved)
	require.NoError(t, err)
	require.Len(t, items, 1)

	it := items[0]
	// canonical id is the store identifier, not the ref the client used
	assert.Equal(t, "a1b2c3d4e5f6a7b8c9d0e1f2", it.ProductID)
	assert.Equal(t, "Dog Bowl", it.Title)
	assert.Equal(t, 3, it.Qty)
	assert.Equal(t, 19.99, it.UnitPrice)
	assert.InDelta(t, 59.97, it.LineTotal, 1e-9)
}

func TestBuildItems_QuantityDefaultsToOne(t *testing.T) {
	resolved := resolvedIndex(catalog.Product{OID: "a1b2c3d4e5f6a7b8c9d0e1f2", Price: strPtr("2")})

	for _, qty := range []int{0, -4} {
		items, err := BuildItems([]Line{{Ref: "a1b2c3d4e5f6a7b8c9d0e1f2", Qty: qty}}, resolved)
		require.NoError(t, err)
		assert.Equal(t, 1, items[0].Qty, "qty %d should default to 1", qty)
		assert.Equal(t, 2.0, items[0].LineTotal)
	}
}

func TestBuildItems_TitleFallback(t *testing.T) {
	resolved := resolvedIndex(catalog.Product{OID: "a1b2c3d4e5f6a7b8c9d0e1f2", Name: strPtr("Plain Name"), Price: strPtr("1")})

	items, err := BuildItems([]Line{{Ref: "a1b2c3d4e5f6a7b8c9d0e1f2", Qty: 1}}, resolved)
	require.NoError(t, err)
	assert.Equal(t, "Plain Name", items[0].Title)
}

func TestBuildItems_FailsClosedOnUnresolvedRef(t *testing.T) {
	resolved := resolvedIndex(catalog.Product{OID: "a1b2c3d4e5f6a7b8c9d0e1f2", Price: strPtr("1")})

	items, err := BuildItems([]Line{
		{Ref: "a1b2c3d4e5f6a7b8c9d0e1f2", Qty: 1},
		{Ref: "ghost-sku", Qty: 1},
	}, resolved)

	require.Error(t, err)
	assert.Nil(t, items, "no partial item set on failure")
	var notFound *ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "ghost-sku", notFound.Ref)
}

func TestBuildItems_NonNumericPriceIsDataFault(t *testing.T) {
	resolved := resolvedIndex(catalog.Product{OID: "a1b2c3d4e5f6a7b8c9d0e1f2", Price: strPtr("call us")})

	_, err := BuildItems([]Line{{Ref: "a1b2c3d4e5f6a7b8c9d0e1f2", Qty: 1}}, resolved)
	var priceErr *PriceDataError
	require.ErrorAs(t, err, &priceErr)
	assert.Equal(t, "a1b2c3d4e5f6a7b8c9d0e1f2", priceErr.OID)
}

func TestBuildItems_MissingPriceIsZeroNotError(t *testing.T) {
	resolved := resolvedIndex(catalog.Product{OID: "a1b2c3d4e5f6a7b8c9d0e1f2", Title: strPtr("Freebie")})

	items, err := BuildItems([]Line{{Ref: "a1b2c3d4e5f6a7b8c9d0e1f2", Qty: 2}}, resolved)
	require.NoError(t, err)
	assert.Equal(t, 0.0, items[0].UnitPrice)
	assert.Equal(t, 0.0, items[0].LineTotal)
}

func TestComputeTotals(t *testing.T) {
	items := []Item{{Qty: 3, UnitPrice: 19.99, LineTotal: 59.97}}

	totals, err := ComputeTotals(items, 5, 2, nil)
	require.NoError(t, err)
	assert.InDelta(t, 59.97, totals.Subtotal, 1e-9)
	assert.InDelta(t, 66.97, totals.Total, 1e-9)
}

func TestComputeTotals_SubtotalInvariant(t *testing.T) {
	items := []Item{
		{LineTotal: 10.10},
		{LineTotal: 0.2},
		{LineTotal: 33.33},
	}
	totals, err := ComputeTotals(items, 1.5, 0.75, nil)
	require.NoError(t, err)

	var sum float64
	for _, it := range items {
		sum += it.LineTotal
	}
	assert.InDelta(t, sum, totals.Subtotal, 1e-9)
	assert.InDelta(t, totals.Subtotal+1.5+0.75, totals.Total, 1e-9)
}

func TestComputeTotals_ClientSubtotalTolerance(t *testing.T) {
	items := []Item{{LineTotal: 59.97}}

	// off by 0.4: accepted, server value still wins
	totals, err := ComputeTotals(items, 0, 0, floatPtr(59.97+0.4))
	require.NoError(t, err)
	assert.InDelta(t, 59.97, totals.Subtotal, 1e-9)

	// off by more than 0.5: hard rejection
	_, err = ComputeTotals(items, 0, 0, floatPtr(59.97+0.6))
	require.ErrorIs(t, err, ErrSubtotalMismatch)

	_, err = ComputeTotals(items, 0, 0, floatPtr(59.97-0.6))
	require.ErrorIs(t, err, ErrSubtotalMismatch)
}

func TestComputeTotals_DeterministicOrder(t *testing.T) {
	// accumulation follows submission order, so repeated runs agree exactly
	items := []Item{{LineTotal: 0.1}, {LineTotal: 0.2}, {LineTotal: 0.3}}
	a, err := ComputeTotals(items, 0, 0, nil)
	require.NoError(t, err)
	b, err := ComputeTotals(items, 0, 0, nil)
	require.NoError(t, err)
	assert.True(t, a.Subtotal == b.Subtotal)
	assert.True(t, math.Abs(a.Subtotal-0.6) < 1e-9)
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"Created", "Processing", "Shipped", "Delivered", "Cancelled"} {
		got, err := ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, Status(s), got)
	}

	for _, s := range []string{"Refunded", "created", "", "SHIPPED"} {
		_, err := ParseStatus(s)
		var invalid *InvalidStatusError
		require.ErrorAs(t, err, &invalid, "status %q must be rejected", s)
		assert.Equal(t, s, invalid.Value)
	}
}
