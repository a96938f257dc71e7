package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"dimec-inventory/internal/adapters/persistence/models"
	"dimec-inventory/internal/core/domain"
)

func issuanceFixture() (*IssuanceService, *fakeProductRepo, *fakeIssuanceRepo) {
	products := newFakeProductRepo(&models.Product{
		Name:         "Laptop",
		CategoryID:   1,
		SupplierID:   1,
		Quantity:     5,
		UnitPrice:    decimal.RequireFromString("850.00"),
		ReorderLevel: 2,
	})
	users := newFakeUserRepo(&models.User{Name: "Admin", Email: "admin@dimec.com", Role: "ADMIN"})
	issuances := newFakeIssuanceRepo()
	return NewIssuanceService(issuances, products, users), products, issuances
}

func TestIssuanceCreateDecrementsStock(t *testing.T) {
	svc, products, _ := issuanceFixture()
	ctx := context.Background()

	record, err := svc.Create(ctx, domain.IssuanceInput{
		ProductID: 1, QuantityIssued: 3, IssuedTo: "Finance",
	}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if record.QuantityIssued != 3 || record.IssuedTo != "Finance" {
		t.Errorf("record = %+v", record)
	}

	p, _ := products.GetByID(ctx, 1)
	if p.Quantity != 2 {
		t.Errorf("stock = %d, want 2", p.Quantity)
	}
}

func TestIssuanceCreateInsufficientStock(t *testing.T) {
	svc, products, issuances := issuanceFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.IssuanceInput{
		ProductID: 1, QuantityIssued: 6, IssuedTo: "Finance",
	}, 1)
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("err = %v, want ErrInsufficientStock", err)
	}

	p, _ := products.GetByID(ctx, 1)
	if p.Quantity != 5 {
		t.Errorf("stock = %d, want untouched 5", p.Quantity)
	}
	if n, _ := issuances.Count(ctx); n != 0 {
		t.Errorf("recorded %d issuances, want 0", n)
	}
}

func TestIssuanceCreateValidation(t *testing.T) {
	svc, _, _ := issuanceFixture()
	ctx := context.Background()

	if _, err := svc.Create(ctx, domain.IssuanceInput{ProductID: 1, QuantityIssued: 0, IssuedTo: "x"}, 1); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("zero quantity: err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Create(ctx, domain.IssuanceInput{ProductID: 99, QuantityIssued: 1, IssuedTo: "x"}, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown product: err = %v, want ErrNotFound", err)
	}
	if _, err := svc.Create(ctx, domain.IssuanceInput{ProductID: 1, QuantityIssued: 1, IssuedTo: "x"}, 99); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("unknown issuer: err = %v, want ErrUnauthorized", err)
	}
}

func TestIssuanceCreateCompensatesOnRecordFailure(t *testing.T) {
	svc, products, issuances := issuanceFixture()
	issuances.createErr = errors.New("disk full")
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.IssuanceInput{
		ProductID: 1, QuantityIssued: 3, IssuedTo: "Finance",
	}, 1)
	if err == nil {
		t.Fatal("expected an error")
	}

	p, _ := products.GetByID(ctx, 1)
	if p.Quantity != 5 {
		t.Errorf("stock = %d, want restored 5", p.Quantity)
	}
}

func TestIssuanceDeleteRestoresStock(t *testing.T) {
	svc, products, _ := issuanceFixture()
	ctx := context.Background()

	record, err := svc.Create(ctx, domain.IssuanceInput{
		ProductID: 1, QuantityIssued: 3, IssuedTo: "Finance",
	}, 1)
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(ctx, record.IssuanceID); err != nil {
		t.Fatal(err)
	}
	p, _ := products.GetByID(ctx, 1)
	if p.Quantity != 5 {
		t.Errorf("stock = %d, want restored 5", p.Quantity)
	}

	if err := svc.Delete(ctx, record.IssuanceID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
}

func TestIssuanceListByDateRange(t *testing.T) {
	products := newFakeProductRepo(&models.Product{Name: "Laptop", Quantity: 5, UnitPrice: decimal.New(1, 0)})
	users := newFakeUserRepo(&models.User{Name: "Admin"})
	day := func(s string) time.Time {
		d, _ := time.Parse(models.IssueDateLayout, s)
		return d
	}
	issuances := newFakeIssuanceRepo(
		&models.IssuanceRecord{ProductID: 1, UserID: 1, QuantityIssued: 1, IssuedTo: "A", IssueDate: day("2026-08-01")},
		&models.IssuanceRecord{ProductID: 1, UserID: 1, QuantityIssued: 1, IssuedTo: "B", IssueDate: day("2026-08-15")},
		&models.IssuanceRecord{ProductID: 1, UserID: 1, QuantityIssued: 1, IssuedTo: "C", IssueDate: day("2026-09-01")},
	)
	svc := NewIssuanceService(issuances, products, users)
	ctx := context.Background()

	got, err := svc.ListByDateRange(ctx, "2026-08-01", "2026-08-31")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("got %d records, want 2 inside the range", len(got))
	}

	if _, err := svc.ListByDateRange(ctx, "not-a-date", "2026-08-31"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("bad start date: err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.ListByDateRange(ctx, "2026-08-01", "31/08/2026"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("bad end date: err = %v, want ErrInvalidInput", err)
	}
}
