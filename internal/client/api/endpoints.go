package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"dimec-inventory/internal/core/domain"
)

// Login exchanges credentials for a token and identity snapshot.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (domain.LoginResult, error) {
	var result domain.LoginResult
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, creds, &result)
	return result, err
}

// Register creates a new account. It does not log the account in.
func (c *Client) Register(ctx context.Context, input domain.RegisterInput) error {
	return c.do(ctx, http.MethodPost, "/auth/register", nil, input, nil)
}

// Products fetches all products.
func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := c.do(ctx, http.MethodGet, "/products", nil, nil, &products)
	return products, err
}

// Product fetches one product by id.
func (c *Client) Product(ctx context.Context, id int64) (domain.Product, error) {
	var product domain.Product
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, nil, &product)
	return product, err
}

// LowStockProducts fetches products at or below their reorder level.
func (c *Client) LowStockProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := c.do(ctx, http.MethodGet, "/products/low-stock", nil, nil, &products)
	return products, err
}

// SearchProducts runs a server-side name/category/supplier search.
func (c *Client) SearchProducts(ctx context.Context, term string) ([]domain.Product, error) {
	var products []domain.Product
	q := url.Values{"term": {term}}
	err := c.do(ctx, http.MethodGet, "/products/search", q, nil, &products)
	return products, err
}

// CreateProduct creates a product and returns the stored projection.
func (c *Client) CreateProduct(ctx context.Context, input domain.ProductInput) (domain.Product, error) {
	var product domain.Product
	err := c.do(ctx, http.MethodPost, "/products", nil, input, &product)
	return product, err
}

// UpdateProduct replaces a product's fields.
func (c *Client) UpdateProduct(ctx context.Context, id int64, input domain.ProductInput) (domain.Product, error) {
	var product domain.Product
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), nil, input, &product)
	return product, err
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil, nil)
}

// Categories fetches all categories.
func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &categories)
	return categories, err
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, input domain.CategoryInput) (domain.Category, error) {
	var category domain.Category
	err := c.do(ctx, http.MethodPost, "/categories", nil, input, &category)
	return category, err
}

// UpdateCategory replaces a category's fields.
func (c *Client) UpdateCategory(ctx context.Context, id int64, input domain.CategoryInput) (domain.Category, error) {
	var category domain.Category
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/categories/%d", id), nil, input, &category)
	return category, err
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil, nil, nil)
}

// Suppliers fetches all suppliers.
func (c *Client) Suppliers(ctx context.Context) ([]domain.Supplier, error) {
	var suppliers []domain.Supplier
	err := c.do(ctx, http.MethodGet, "/suppliers", nil, nil, &suppliers)
	return suppliers, err
}

// CreateSupplier creates a supplier.
func (c *Client) CreateSupplier(ctx context.Context, input domain.SupplierInput) (domain.Supplier, error) {
	var supplier domain.Supplier
	err := c.do(ctx, http.MethodPost, "/suppliers", nil, input, &supplier)
	return supplier, err
}

// UpdateSupplier replaces a supplier's fields.
func (c *Client) UpdateSupplier(ctx context.Context, id int64, input domain.SupplierInput) (domain.Supplier, error) {
	var supplier domain.Supplier
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/suppliers/%d", id), nil, input, &supplier)
	return supplier, err
}

// DeleteSupplier removes a supplier.
func (c *Client) DeleteSupplier(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/suppliers/%d", id), nil, nil, nil)
}

// Issuances fetches all issuance records, newest first.
func (c *Client) Issuances(ctx context.Context) ([]domain.IssuanceRecord, error) {
	var records []domain.IssuanceRecord
	err := c.do(ctx, http.MethodGet, "/issuances", nil, nil, &records)
	return records, err
}

// IssuancesByDateRange fetches issuances within [startDate, endDate],
// both formatted YYYY-MM-DD.
func (c *Client) IssuancesByDateRange(ctx context.Context, startDate, endDate string) ([]domain.IssuanceRecord, error) {
	var records []domain.IssuanceRecord
	q := url.Values{"startDate": {startDate}, "endDate": {endDate}}
	err := c.do(ctx, http.MethodGet, "/issuances/date-range", q, nil, &records)
	return records, err
}

// CreateIssuance records a stock issuance. The server decrements the
// product's quantity and is the authority on stock sufficiency.
func (c *Client) CreateIssuance(ctx context.Context, input domain.IssuanceInput) (domain.IssuanceRecord, error) {
	var record domain.IssuanceRecord
	err := c.do(ctx, http.MethodPost, "/issuances", nil, input, &record)
	return record, err
}

// DeleteIssuance removes an issuance record; the server restores the
// issued quantity to the product.
func (c *Client) DeleteIssuance(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/issuances/%d", id), nil, nil, nil)
}

// DashboardStats fetches the aggregate dashboard snapshot.
func (c *Client) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	var stats domain.DashboardStats
	err := c.do(ctx, http.MethodGet, "/dashboard/stats", nil, nil, &stats)
	return stats, err
}
