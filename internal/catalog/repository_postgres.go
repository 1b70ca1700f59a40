package catalog

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	selectProductColumns = `SELECT oid, id, product_id, sku, title, name, category, price, image FROM products`

	listProductsQuery = selectProductColumns + ` ORDER BY oid`

	productsByOIDQuery = selectProductColumns + ` WHERE lower(oid) = ANY($1)`

	productsByNumericIDQuery = selectProductColumns + ` WHERE id = ANY($1::float8[])`

	// external string identifiers are stored under inconsistent field
	// names, so a string ref is tried against both columns
	productsByStringIDQuery = selectProductColumns + ` WHERE product_id = ANY($1) OR sku = ANY($1)`

	productsByCategoryQuery = selectProductColumns + ` WHERE lower(category) = lower($1)`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Product, error) {
	return r.queryProducts(ctx, listProductsQuery)
}

func (r *PostgresRepository) FindByRefs(ctx context.Context, oids []string, numericIDs []float64, stringIDs []string) ([]Product, error) {
	seen := map[string]bool{}
	out := make([]Product, 0)
	collect := func(products []Product) {
		for _, p := range products {
			if !seen[p.OID] {
				seen[p.OID] = true
				out = append(out, p)
			}
		}
	}

	if len(oids) > 0 {
		products, err := r.queryProducts(ctx, productsByOIDQuery, pq.Array(oids))
		if err != nil {
			return nil, err
		}
		collect(products)
	}
	if len(numericIDs) > 0 {
		products, err := r.queryProducts(ctx, productsByNumericIDQuery, pq.Array(numericIDs))
		if err != nil {
			return nil, err
		}
		collect(products)
	}
	if len(stringIDs) > 0 {
		products, err := r.queryProducts(ctx, productsByStringIDQuery, pq.Array(stringIDs))
		if err != nil {
			return nil, err
		}
		collect(products)
	}
	return out, nil
}

func (r *PostgresRepository) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	return r.queryProducts(ctx, productsByCategoryQuery, category)
}

func (r *PostgresRepository) queryProducts(ctx context.Context, query string, args ...any) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanProduct(rows *sql.Rows) (Product, error) {
	var (
		p                                              Product
		legacyID                                       sql.NullFloat64
		productID, sku, title, name, cat, price, image sql.NullString
	)
	if err := rows.Scan(&p.OID, &legacyID, &productID, &sku, &title, &name, &cat, &price, &image); err != nil {
		return Product{}, err
	}
	if legacyID.Valid {
		p.LegacyID = &legacyID.Float64
	}
	p.ProductID = nullableString(productID)
	p.SKU = nullableString(sku)
	p.Title = nullableString(title)
	p.Name = nullableString(name)
	p.Category = nullableString(cat)
	p.Price = nullableString(price)
	p.Image = nullableString(image)
	return p, nil
}

func nullableString(col sql.NullString) *string {
	if !col.Valid {
		return nil
	}
	v := col.String
	return &v
}
