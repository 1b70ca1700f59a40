package catalog

import (
	"strconv"
	"strings"

	"github.com/wichananm65/ishop-backend/internal/storeid"
)

// Product represents a catalog record. The catalog was imported from a
// document store whose records do not share one identifier scheme: besides
// the store-generated oid every record may also carry a legacy numeric id
// and/or an external string id, and the display name lives under either
// `title` or `name`. Pointer fields model that partial presence.
type Product struct {
	OID       string   `json:"_id"`
	LegacyID  *float64 `json:"id,omitempty"`
	ProductID *string  `json:"product_id,omitempty"`
	SKU       *string  `json:"sku,omitempty"`
	Title     *string  `json:"title,omitempty"`
	Name      *string  `json:"name,omitempty"`
	Category  *string  `json:"category,omitempty"`
	Price     *string  `json:"price,omitempty"`
	Image     *string  `json:"image,omitempty"`
}

// DisplayTitle returns the product's display name: title, then name, then a
// placeholder. A missing title never fails a lookup.
func (p Product) DisplayTitle() string {
	if p.Title != nil && *p.Title != "" {
		return *p.Title
	}
	if p.Name != nil && *p.Name != "" {
		return *p.Name
	}
	return "Item"
}

// UnitPrice parses the stored price. A missing price is zero; a present but
// non-numeric value is reported as an error so callers can treat it as a
// catalog data fault rather than a free product.
func (p Product) UnitPrice() (float64, error) {
	if p.Price == nil || strings.TrimSpace(*p.Price) == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(*p.Price), 64)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// RefKeys returns every string form this product can be addressed by: its
// oid, its legacy numeric id and its external string ids. The resolver
// indexes a product under all of them.
func (p Product) RefKeys() []string {
	keys := []string{storeid.Normalize(p.OID)}
	if p.LegacyID != nil {
		keys = append(keys, formatNumericRef(*p.LegacyID))
	}
	if p.ProductID != nil && *p.ProductID != "" {
		keys = append(keys, *p.ProductID)
	}
	if p.SKU != nil && *p.SKU != "" {
		keys = append(keys, *p.SKU)
	}
	return keys
}
