package controllers

import (
	"context"
	"sync"

	"dimec-inventory/internal/client/api"
	"dimec-inventory/internal/core/domain"
)

// DashboardController drives the dashboard screen. The stats snapshot
// has no identity; each load replaces it wholesale.
type DashboardController struct {
	api    *api.Client
	notify Notifier

	mu       sync.Mutex
	state    State
	err      string
	epoch    uint64
	inFlight bool
	stats    domain.DashboardStats
}

// NewDashboardController creates the controller in the Idle state.
func NewDashboardController(client *api.Client, notify Notifier) *DashboardController {
	return &DashboardController{api: client, notify: notify}
}

// Load fetches the aggregate snapshot.
func (c *DashboardController) Load(ctx context.Context) {
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

	stats, err := c.api.DashboardStats(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch != c.epoch {
		return
	}
	c.inFlight = false

	if err != nil {
		c.state = LoadFailed
		c.err = domain.FailureMessage(err)
		c.notify.Error("Failed to load dashboard: " + c.err)
		return
	}
	c.stats = stats
	c.state = Loaded
	c.err = ""
}

// State returns the current lifecycle state and error message.
func (c *DashboardController) State() (State, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.err
}

// Stats returns the loaded snapshot.
func (c *DashboardController) Stats() domain.DashboardStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}
