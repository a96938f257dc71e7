package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"dimec-inventory/internal/adapters/persistence/models"
)

func TestDashboardStats(t *testing.T) {
	products := newFakeProductRepo(
		&models.Product{Name: "Laptop", Quantity: 15, ReorderLevel: 5,
			UnitPrice: decimal.RequireFromString("850.00")},
		&models.Product{Name: "Camera", Quantity: 2, ReorderLevel: 5,
			UnitPrice: decimal.RequireFromString("320.00")},
	)
	categories := &fakeCategoryRepo{categories: map[int64]*models.Category{
		1: {ID: 1, Name: "ICT Equipment"},
	}}
	suppliers := &fakeSupplierRepo{suppliers: map[int64]*models.Supplier{
		1: {ID: 1, Name: "Tech Solutions Ltd"},
		2: {ID: 2, Name: "Secure Systems Co"},
	}}
	issuances := newFakeIssuanceRepo(
		&models.IssuanceRecord{ProductID: 1, UserID: 1, QuantityIssued: 1, IssuedTo: "A"},
	)

	svc := NewDashboardService(products, categories, suppliers, issuances)
	stats, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if stats.TotalProducts != 2 {
		t.Errorf("TotalProducts = %d, want 2", stats.TotalProducts)
	}
	if stats.TotalCategories != 1 {
		t.Errorf("TotalCategories = %d, want 1", stats.TotalCategories)
	}
	if stats.TotalSuppliers != 2 {
		t.Errorf("TotalSuppliers = %d, want 2", stats.TotalSuppliers)
	}
	if stats.LowStockProducts != 1 {
		t.Errorf("LowStockProducts = %d, want 1", stats.LowStockProducts)
	}
	if stats.TotalIssuances != 1 {
		t.Errorf("TotalIssuances = %d, want 1", stats.TotalIssuances)
	}

	// 15*850.00 + 2*320.00 = 13390.00, computed exactly in decimal.
	want := decimal.RequireFromString("13390.00")
	if !stats.TotalInventoryValue.Equal(want) {
		t.Errorf("TotalInventoryValue = %s, want %s", stats.TotalInventoryValue, want)
	}
}
