package controllers

import (
	"context"
	"strings"
	"sync"

	"dimec-inventory/internal/client/api"
	"dimec-inventory/internal/core/domain"
)

// IssuanceController drives the stock issuance screen: the product
// picker, the submit guard, and the history of past issuances.
type IssuanceController struct {
	api     *api.Client
	notify  Notifier
	confirm Confirmer

	mu       sync.Mutex
	state    State
	err      string
	epoch    uint64
	inFlight bool
	products []domain.Product
	records  []domain.IssuanceRecord
}

// NewIssuanceController creates the controller in the Idle state.
func NewIssuanceController(client *api.Client, notify Notifier, confirm Confirmer) *IssuanceController {
	return &IssuanceController{api: client, notify: notify, confirm: confirm}
}

// Load fetches the products available for issuance and the issuance
// history concurrently. Both are required for the screen.
func (c *IssuanceController) Load(ctx context.Context) {
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
		wg       sync.WaitGroup
		products []domain.Product
		records  []domain.IssuanceRecord
		prodErr  error
		recErr   error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		products, prodErr = c.api.Products(ctx)
	}()
	go func() {
		defer wg.Done()
		records, recErr = c.api.Issuances(ctx)
	}()
	wg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch != c.epoch {
		return
	}
	c.inFlight = false

	if prodErr != nil || recErr != nil {
		err := prodErr
		if err == nil {
			err = recErr
		}
		c.state = LoadFailed
		c.err = domain.FailureMessage(err)
		c.notify.Error("Failed to load issuance data: " + c.err)
		return
	}
	c.products = products
	c.records = records
	c.state = Loaded
	c.err = ""
}

// State returns the current lifecycle state and error message.
func (c *IssuanceController) State() (State, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.err
}

// Products returns the loaded products.
func (c *IssuanceController) Products() []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Product(nil), c.products...)
}

// Records returns the loaded issuance history.
func (c *IssuanceController) Records() []domain.IssuanceRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.IssuanceRecord(nil), c.records...)
}

// FindProduct looks up a loaded product by id.
func (c *IssuanceController) FindProduct(id int64) (domain.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.products {
		if p.ProductID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// CanSubmit is the form guard: a product must be selected, the
// quantity must be at least 1 and no more than the product's current
// stock, and the recipient must be filled in. The server re-checks
// stock authoritatively on submit.
func (c *IssuanceController) CanSubmit(input domain.IssuanceInput) bool {
	product, ok := c.FindProduct(input.ProductID)
	if !ok {
		return false
	}
	if input.QuantityIssued < 1 || input.QuantityIssued > product.Quantity {
		return false
	}
	return strings.TrimSpace(input.IssuedTo) != ""
}

// Submit records an issuance. The guard runs again here so a caller
// bypassing CanSubmit still cannot send an invalid form. On success
// both lists reload, because the product's stock changed server-side.
func (c *IssuanceController) Submit(ctx context.Context, input domain.IssuanceInput) {
	if !c.CanSubmit(input) {
		c.notify.Error("Fill in product, a valid quantity, and the recipient")
		return
	}
	if _, err := c.api.CreateIssuance(ctx, input); err != nil {
		c.notify.Error(domain.FailureMessage(err))
		return
	}
	c.notify.Success("Stock issued")
	c.refetch(ctx)
}

// Delete removes an issuance record after confirmation; the server
// restores the issued quantity, so the screen reloads.
func (c *IssuanceController) Delete(ctx context.Context, id int64) {
	if !c.confirm.Confirm("Delete this issuance record and restore its stock?") {
		return
	}
	if err := c.api.DeleteIssuance(ctx, id); err != nil {
		c.notify.Error(domain.FailureMessage(err))
		return
	}
	c.notify.Success("Issuance deleted")
	c.refetch(ctx)
}

func (c *IssuanceController) refetch(ctx context.Context) {
	c.mu.Lock()
	c.inFlight = false
	c.mu.Unlock()
	c.Load(ctx)
}
