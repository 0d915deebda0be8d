package postgres

import (
	"context"
	"fmt"

	"tailwagg-analytics/internal/domain"
	"tailwagg-analytics/internal/storage"
)

// ProductBrandStore implements storage.ProductBrandStore using PostgreSQL.
type ProductBrandStore struct {
	pool *Pool
}

// NewProductBrandStore creates a new ProductBrandStore.
func NewProductBrandStore(pool *Pool) *ProductBrandStore {
	return &ProductBrandStore{pool: pool}
}

// Compile-time interface check.
var _ storage.ProductBrandStore = (*ProductBrandStore)(nil)

// GetProductBrands retrieves the product to brand lookup ordered by
// product_id ASC.
func (s *ProductBrandStore) GetProductBrands(ctx context.Context) ([]*domain.ProductBrand, error) {
	query := `
		SELECT p.product_id, p.name, b.brand_name
		FROM dim_product p
		JOIN dim_brand b ON p.brand_id = b.brand_id
		ORDER BY p.product_id ASC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query product brands: %w", err)
	}
	defer rows.Close()

	var brands []*domain.ProductBrand
	for rows.Next() {
		var b domain.ProductBrand
		if err := rows.Scan(&b.ProductID, &b.ProductName, &b.BrandName); err != nil {
			return nil, fmt.Errorf("scan product brand row: %w", err)
		}
		brands = append(brands, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product brand rows: %w", err)
	}

	return brands, nil
}
