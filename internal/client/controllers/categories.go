package controllers

import (
	"context"
	"sync"

	"dimec-inventory/internal/client/api"
	"dimec-inventory/internal/core/domain"
)

// CategoriesController drives the categories screen.
type CategoriesController struct {
	api     *api.Client
	notify  Notifier
	confirm Confirmer

	mu         sync.Mutex
	state      State
	err        string
	epoch      uint64
	inFlight   bool
	categories []domain.Category
}

// NewCategoriesController creates the controller in the Idle state.
func NewCategoriesController(client *api.Client, notify Notifier, confirm Confirmer) *CategoriesController {
	return &CategoriesController{api: client, notify: notify, confirm: confirm}
}

// Load fetches the category list.
func (c *CategoriesController) Load(ctx context.Context) {
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

	categories, err := c.api.Categories(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch != c.epoch {
		return
	}
	c.inFlight = false

	if err != nil {
		c.state = LoadFailed
		c.err = domain.FailureMessage(err)
		c.notify.Error("Failed to load categories: " + c.err)
		return
	}
	c.categories = categories
	c.state = Loaded
	c.err = ""
}

// State returns the current lifecycle state and error message.
func (c *CategoriesController) State() (State, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.err
}

// Categories returns the loaded list.
func (c *CategoriesController) Categories() []domain.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Category(nil), c.categories...)
}

// Create sends a new category and re-fetches on success.
func (c *CategoriesController) Create(ctx context.Context, input domain.CategoryInput) {
	if _, err := c.api.CreateCategory(ctx, input); err != nil {
		c.notify.Error(domain.FailureMessage(err))
		return
	}
	c.notify.Success("Category created")
	c.refetch(ctx)
}

// Update sends changed fields and re-fetches on success.
func (c *CategoriesController) Update(ctx context.Context, id int64, input domain.CategoryInput) {
	if _, err := c.api.UpdateCategory(ctx, id, input); err != nil {
		c.notify.Error(domain.FailureMessage(err))
		return
	}
	c.notify.Success("Category updated")
	c.refetch(ctx)
}

// Delete removes a category after confirmation and re-fetches.
func (c *CategoriesController) Delete(ctx context.Context, id int64, name string) {
	if !c.confirm.Confirm("Delete category \"" + name + "\"?") {
		return
	}
	if err := c.api.DeleteCategory(ctx, id); err != nil {
		c.notify.Error(domain.FailureMessage(err))
		return
	}
	c.notify.Success("Category deleted")
	c.refetch(ctx)
}

func (c *CategoriesController) refetch(ctx context.Context) {
	c.mu.Lock()
	c.inFlight = false
	c.mu.Unlock()
	c.Load(ctx)
}
