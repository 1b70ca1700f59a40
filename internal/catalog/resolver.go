package catalog

import (
	"context"
	"math"
	"strconv"

	"github.com/wichananm65/ishop-backend/internal/storeid"
)

// RefClass is the identifier class a raw client reference falls into.
type RefClass int

const (
	// RefStoreID is a 24-hex store identifier.
	RefStoreID RefClass = iota
	// RefNumeric is a value that converts losslessly to a finite number.
	RefNumeric
	// RefString is any other external string identifier.
	RefString
)

// ClassifyRef classifies a raw product reference. First match wins:
// 24-hex store id, then finite number, then plain string.
func ClassifyRef(ref string) RefClass {
	if storeid.Valid(ref) {
		return RefStoreID
	}
	if v, err := strconv.ParseFloat(ref, 64); err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
		return RefNumeric
	}
	return RefString
}

// LookupKey normalizes a raw reference to the key it is indexed under in a
// resolved product map: store ids are lowercased, numeric refs are rendered
// in canonical form ("7.0" and "7" address the same record), strings pass
// through unchanged.
func LookupKey(ref string) string {
	switch ClassifyRef(ref) {
	case RefStoreID:
		return storeid.Normalize(ref)
	case RefNumeric:
		v, _ := strconv.ParseFloat(ref, 64)
		return formatNumericRef(v)
	default:
		return ref
	}
}

func formatNumericRef(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Resolver turns a heterogeneous set of client product references into a
// multi-key product index with one batched store read per identifier class.
type Resolver struct {
	repo Repository
}

func NewResolver(repo Repository) *Resolver {
	return &Resolver{repo: repo}
}

// Resolve partitions refs by class, fetches all matching products in one
// batched query per non-empty class, and returns an index keyed by every
// addressable form of each product. Unresolved refs are simply absent from
// the index; it is the caller's job to decide whether that is an error.
func (r *Resolver) Resolve(ctx context.Context, refs []string) (map[string]Product, error) {
	var (
		oids    []string
		numeric []float64
		strs    []string
	)
	for _, ref := range refs {
		switch ClassifyRef(ref) {
		case RefStoreID:
			oids = append(oids, storeid.Normalize(ref))
		case RefNumeric:
			v, _ := strconv.ParseFloat(ref, 64)
			numeric = append(numeric, v)
		default:
			strs = append(strs, ref)
		}
	}

	products, err := r.repo.FindByRefs(ctx, oids, numeric, strs)
	if err != nil {
		return nil, err
	}

	index := make(map[string]Product, len(products))
	for _, p := range products {
		for _, key := range p.RefKeys() {
			index[key] = p
		}
	}
	return index, nil
}
