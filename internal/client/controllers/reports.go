package controllers

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"sync"
	"time"

	"dimec-inventory/internal/client/api"
	"dimec-inventory/internal/core/domain"
)

// DateLayout is the wire format for report date bounds.
const DateLayout = "2006-01-02"

// ReportsController drives the reports screen. A load fans in three
// collections (date-ranged issuances, the full product list, the
// dashboard snapshot) all-or-nothing: if any fetch fails, nothing is
// shown and the user gets a single notification.
type ReportsController struct {
	api    *api.Client
	notify Notifier

	mu        sync.Mutex
	state     State
	err       string
	epoch     uint64
	inFlight  bool
	startDate string
	endDate   string
	issuances []domain.IssuanceRecord
	products  []domain.Product
	stats     domain.DashboardStats
}

// NewReportsController creates the controller in the Idle state.
func NewReportsController(client *api.Client, notify Notifier) *ReportsController {
	return &ReportsController{api: client, notify: notify}
}

// LoadRange fetches the report data for [startDate, endDate], both in
// YYYY-MM-DD form. Malformed bounds are rejected locally.
func (c *ReportsController) LoadRange(ctx context.Context, startDate, endDate string) {
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		c.notify.Error("Start date must use the YYYY-MM-DD format")
		return
	}
	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		c.notify.Error("End date must use the YYYY-MM-DD format")
		return
	}
	if end.Before(start) {
		c.notify.Error("End date must not be before the start date")
		return
	}

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
		wg        sync.WaitGroup
		issuances []domain.IssuanceRecord
		products  []domain.Product
		stats     domain.DashboardStats
		issErr    error
		prodErr   error
		statsErr  error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		issuances, issErr = c.api.IssuancesByDateRange(ctx, startDate, endDate)
	}()
	go func() {
		defer wg.Done()
		products, prodErr = c.api.Products(ctx)
	}()
	go func() {
		defer wg.Done()
		stats, statsErr = c.api.DashboardStats(ctx)
	}()
	wg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch != c.epoch {
		return
	}
	c.inFlight = false

	if err := firstError(issErr, prodErr, statsErr); err != nil {
		c.state = LoadFailed
		c.err = domain.FailureMessage(err)
		c.issuances = nil
		c.products = nil
		c.stats = domain.DashboardStats{}
		c.notify.Error("Failed to load report: " + c.err)
		return
	}

	c.startDate = startDate
	c.endDate = endDate
	c.issuances = issuances
	c.products = products
	c.stats = stats
	c.state = Loaded
	c.err = ""
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// State returns the current lifecycle state and error message.
func (c *ReportsController) State() (State, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.err
}

// Issuances returns the loaded date-ranged issuances.
func (c *ReportsController) Issuances() []domain.IssuanceRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.IssuanceRecord(nil), c.issuances...)
}

// Products returns the loaded full product list.
func (c *ReportsController) Products() []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Product(nil), c.products...)
}

// LowStock returns the loaded products flagged low-stock, derived from
// the full list using the server-computed flag.
func (c *ReportsController) LowStock() []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	var low []domain.Product
	for _, p := range c.products {
		if p.LowStock {
			low = append(low, p)
		}
	}
	return low
}

// Stats returns the loaded dashboard snapshot.
func (c *ReportsController) Stats() domain.DashboardStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// ExportIssuancesCSV writes the loaded issuance report as CSV.
func (c *ReportsController) ExportIssuancesCSV(w io.Writer) error {
	records := c.Issuances()
	if len(records) == 0 {
		return ErrNothingToExport
	}

	cw := csv.NewWriter(w)
	cw.Write([]string{"Date", "Product", "Quantity", "Issued To", "Purpose", "Issued By"})
	for _, r := range records {
		cw.Write([]string{
			r.IssueDate,
			r.ProductName,
			strconv.Itoa(r.QuantityIssued),
			r.IssuedTo,
			r.Purpose,
			r.UserName,
		})
	}
	cw.Flush()
	return cw.Error()
}

// ExportInventoryCSV writes the loaded product list as CSV.
func (c *ReportsController) ExportInventoryCSV(w io.Writer) error {
	return writeProductsCSV(w, c.Products())
}

// ExportLowStockCSV writes the loaded low-stock products as CSV.
func (c *ReportsController) ExportLowStockCSV(w io.Writer) error {
	return writeProductsCSV(w, c.LowStock())
}

func writeProductsCSV(w io.Writer, products []domain.Product) error {
	if len(products) == 0 {
		return ErrNothingToExport
	}

	cw := csv.NewWriter(w)
	cw.Write([]string{"Product", "Category", "Supplier", "Quantity", "Reorder Level", "Unit Price", "Total Value"})
	for _, p := range products {
		cw.Write([]string{
			p.Name,
			p.CategoryName,
			p.SupplierName,
			strconv.Itoa(p.Quantity),
			strconv.Itoa(p.ReorderLevel),
			p.UnitPrice.StringFixed(2),
			p.TotalValue().StringFixed(2),
		})
	}
	cw.Flush()
	return cw.Error()
}
