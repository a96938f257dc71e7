package services

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"dimec-inventory/internal/adapters/persistence/repositories"
)

// LowStockWatch logs a daily summary of products at or below their
// reorder level, so operators see replenishment needs without opening
// the dashboard.
type LowStockWatch struct {
	productRepo repositories.ProductRepository
	logger      *slog.Logger
	cron        *cron.Cron
}

// NewLowStockWatch creates the watch job (not yet started)
func NewLowStockWatch(productRepo repositories.ProductRepository, logger *slog.Logger) *LowStockWatch {
	return &LowStockWatch{
		productRepo: productRepo,
		logger:      logger,
		cron:        cron.New(),
	}
}

// Start schedules the daily summary at 08:30
func (w *LowStockWatch) Start() {
	w.cron.AddFunc("30 8 * * *", w.report)
	w.cron.Start()
	w.logger.Info("low-stock watch scheduled", "at", "08:30 daily")
}

// Stop halts the scheduler
func (w *LowStockWatch) Stop() {
	w.cron.Stop()
}

func (w *LowStockWatch) report() {
	ctx := context.Background()
	products, err := w.productRepo.ListLowStock(ctx)
	if err != nil {
		w.logger.Error("low-stock report failed", "error", err)
		return
	}
	if len(products) == 0 {
		w.logger.Info("low-stock report: all products above reorder level")
		return
	}
	for _, p := range products {
		w.logger.Warn("low stock",
			"product", p.Name,
			"quantity", p.Quantity,
			"reorder_level", p.ReorderLevel,
		)
	}
}
