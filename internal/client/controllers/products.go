package controllers

import (
	"context"
	"strings"
	"sync"

	"dimec-inventory/internal/client/api"
	"dimec-inventory/internal/core/domain"
)

// ProductsController drives the products screen. A load fans out to
// products, categories, and suppliers concurrently; the product list
// is required, the other two only enrich the edit forms, so their
// failure degrades the screen instead of failing it.
type ProductsController struct {
	api     *api.Client
	notify  Notifier
	confirm Confirmer

	mu         sync.Mutex
	state      State
	err        string
	epoch      uint64
	inFlight   bool
	products   []domain.Product
	categories []domain.Category
	suppliers  []domain.Supplier
}

// NewProductsController creates the controller in the Idle state.
func NewProductsController(client *api.Client, notify Notifier, confirm Confirmer) *ProductsController {
	return &ProductsController{api: client, notify: notify, confirm: confirm}
}

// Load fetches products, categories, and suppliers. A load already in
// flight makes this a no-op; a load superseded by a newer one discards
// its results.
func (c *ProductsController) Load(ctx context.Context) {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return
	}
	c.inFlight = true
	c.epoch++
	epoch := c.epoch
	c.state = Loading
	c.mu.Unlock()

	var (
		wg         sync.WaitGroup
		products   []domain.Product
		categories []domain.Category
		suppliers  []domain.Supplier
		prodErr    error
		catErr     error
		supErr     error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		products, prodErr = c.api.Products(ctx)
	}()
	go func() {
		defer wg.Done()
		categories, catErr = c.api.Categories(ctx)
	}()
	go func() {
		defer wg.Done()
		suppliers, supErr = c.api.Suppliers(ctx)
	}()
	wg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch != c.epoch {
		return
	}
	c.inFlight = false

	// Each fetch settles on its own: a failed one reports and leaves
	// its slice unset, a successful one lands even when another fails.
	if catErr != nil {
		c.notify.Error("Failed to load categories: " + domain.FailureMessage(catErr))
	} else {
		c.categories = categories
	}
	if supErr != nil {
		c.notify.Error("Failed to load suppliers: " + domain.FailureMessage(supErr))
	} else {
		c.suppliers = suppliers
	}

	if prodErr != nil {
		c.state = LoadFailed
		c.err = domain.FailureMessage(prodErr)
		c.notify.Error("Failed to load products: " + c.err)
		return
	}
	c.products = products
	c.state = Loaded
	c.err = ""
}

// State returns the current lifecycle state and error message.
func (c *ProductsController) State() (State, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.err
}

// Products returns the loaded product list.
func (c *ProductsController) Products() []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Product(nil), c.products...)
}

// Categories returns the loaded reference categories.
func (c *ProductsController) Categories() []domain.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Category(nil), c.categories...)
}

// Suppliers returns the loaded reference suppliers.
func (c *ProductsController) Suppliers() []domain.Supplier {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Supplier(nil), c.suppliers...)
}

// Filter returns products whose name, category name, or supplier name
// contains the query, case-insensitively. An empty query returns the
// full list in its loaded order.
func (c *ProductsController) Filter(query string) []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return append([]domain.Product(nil), c.products...)
	}

	var matched []domain.Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.CategoryName), query) ||
			strings.Contains(strings.ToLower(p.SupplierName), query) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Create sends a new product and re-fetches on success.
func (c *ProductsController) Create(ctx context.Context, input domain.ProductInput) {
	if _, err := c.api.CreateProduct(ctx, input); err != nil {
		c.notify.Error(domain.FailureMessage(err))
		return
	}
	c.notify.Success("Product created")
	c.refetch(ctx)
}

// Update sends changed fields and re-fetches on success.
func (c *ProductsController) Update(ctx context.Context, id int64, input domain.ProductInput) {
	if _, err := c.api.UpdateProduct(ctx, id, input); err != nil {
		c.notify.Error(domain.FailureMessage(err))
		return
	}
	c.notify.Success("Product updated")
	c.refetch(ctx)
}

// Delete removes a product after confirmation and re-fetches.
func (c *ProductsController) Delete(ctx context.Context, id int64, name string) {
	if !c.confirm.Confirm("Delete product \"" + name + "\"?") {
		return
	}
	if err := c.api.DeleteProduct(ctx, id); err != nil {
		c.notify.Error(domain.FailureMessage(err))
		return
	}
	c.notify.Success("Product deleted")
	c.refetch(ctx)
}

// refetch reloads after a successful mutation. The server is the
// source of truth, so the local list is never patched in place.
func (c *ProductsController) refetch(ctx context.Context) {
	c.mu.Lock()
	c.inFlight = false
	c.mu.Unlock()
	c.Load(ctx)
}
