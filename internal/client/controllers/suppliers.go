package controllers

import (
	"context"
	"sync"

	"dimec-inventory/internal/client/api"
	"dimec-inventory/internal/core/domain"
)

// SuppliersController drives the suppliers screen.
type SuppliersController struct {
	api     *api.Client
	notify  Notifier
	confirm Confirmer

	mu        sync.Mutex
	state     State
	err       string
	epoch     uint64
	inFlight  bool
	suppliers []domain.Supplier
}

// NewSuppliersController creates the controller in the Idle state.
func NewSuppliersController(client *api.Client, notify Notifier, confirm Confirmer) *SuppliersController {
	return &SuppliersController{api: client, notify: notify, confirm: confirm}
}

// Load fetches the supplier list.
func (c *SuppliersController) Load(ctx context.Context) {
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

	suppliers, err := c.api.Suppliers(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch != c.epoch {
		return
	}
	c.inFlight = false

	if err != nil {
		c.state = LoadFailed
		c.err = domain.FailureMessage(err)
		c.notify.Error("Failed to load suppliers: " + c.err)
		return
	}
	c.suppliers = suppliers
	c.state = Loaded
	c.err = ""
}

// State returns the current lifecycle state and error message.
func (c *SuppliersController) State() (State, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.err
}

// Suppliers returns the loaded list.
func (c *SuppliersController) Suppliers() []domain.Supplier {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Supplier(nil), c.suppliers...)
}

// Create sends a new supplier and re-fetches on success.
func (c *SuppliersController) Create(ctx context.Context, input domain.SupplierInput) {
	if _, err := c.api.CreateSupplier(ctx, input); err != nil {
		c.notify.Error(domain.FailureMessage(err))
		return
	}
	c.notify.Success("Supplier created")
	c.refetch(ctx)
}

// Update sends changed fields and re-fetches on success.
func (c *SuppliersController) Update(ctx context.Context, id int64, input domain.SupplierInput) {
	if _, err := c.api.UpdateSupplier(ctx, id, input); err != nil {
		c.notify.Error(domain.FailureMessage(err))
		return
	}
	c.notify.Success("Supplier updated")
	c.refetch(ctx)
}

// Delete removes a supplier after confirmation and re-fetches.
func (c *SuppliersController) Delete(ctx context.Context, id int64, name string) {
	if !c.confirm.Confirm("Delete supplier \"" + name + "\"?") {
		return
	}
	if err := c.api.DeleteSupplier(ctx, id); err != nil {
		c.notify.Error(domain.FailureMessage(err))
		return
	}
	c.notify.Success("Supplier deleted")
	c.refetch(ctx)
}

func (c *SuppliersController) refetch(ctx context.Context) {
	c.mu.Lock()
	c.inFlight = false
	c.mu.Unlock()
	c.Load(ctx)
}
