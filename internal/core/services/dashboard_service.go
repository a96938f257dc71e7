package services

import (
	"context"

	"github.com/shopspring/decimal"

	"dimec-inventory/internal/adapters/persistence/repositories"
	"dimec-inventory/internal/core/domain"
)

// DashboardService computes the aggregate stats snapshot
type DashboardService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	supplierRepo repositories.SupplierRepository
	issuanceRepo repositories.IssuanceRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
	supplierRepo repositories.SupplierRepository,
	issuanceRepo repositories.IssuanceRepository,
) *DashboardService {
	return &DashboardService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
		issuanceRepo: issuanceRepo,
	}
}

// GetStats recomputes the snapshot wholesale on each call; it carries
// no identity and is never cached server-side.
func (s *DashboardService) GetStats(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{TotalInventoryValue: decimal.Zero}

	var err error
	if stats.TotalProducts, err = s.productRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalCategories, err = s.categoryRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalSuppliers, err = s.supplierRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.LowStockProducts, err = s.productRepo.CountLowStock(ctx); err != nil {
		return nil, err
	}
	if stats.TotalIssuances, err = s.issuanceRepo.Count(ctx); err != nil {
		return nil, err
	}

	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		value := p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
		stats.TotalInventoryValue = stats.TotalInventoryValue.Add(value)
	}

	return stats, nil
}
