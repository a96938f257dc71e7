package controllers

import (
	"context"
	"net/http"
	"testing"

	"dimec-inventory/internal/core/domain"
)

func issuanceMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/products", jsonHandler(`[
		{"productId":1,"name":"Laptop","categoryId":1,"categoryName":"ICT","supplierId":1,"supplierName":"Tech","quantity":5,"unitPrice":"850.00","reorderLevel":2,"description":"","lowStock":false}
	]`))
	mux.HandleFunc("/issuances", jsonHandler(`[
		{"issuanceId":10,"productId":1,"productName":"Laptop","userId":1,"userName":"Admin","quantityIssued":2,"issuedTo":"Finance","issueDate":"2026-08-20","purpose":""}
	]`))
	return mux
}

func loadedIssuanceController(t *testing.T) *IssuanceController {
	t.Helper()
	c := NewIssuanceController(newAPIClient(t, issuanceMux()), &recordingNotifier{}, alwaysConfirm{})
	c.Load(context.Background())
	if state, errMsg := c.State(); state != Loaded {
		t.Fatalf("state = %v (%s), want Loaded", state, errMsg)
	}
	return c
}

func TestIssuanceLoad(t *testing.T) {
	c := loadedIssuanceController(t)
	if got := len(c.Products()); got != 1 {
		t.Errorf("loaded %d products, want 1", got)
	}
	if got := len(c.Records()); got != 1 {
		t.Errorf("loaded %d records, want 1", got)
	}
}

func TestIssuanceLoadFailsWhenEitherFetchFails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/products", jsonHandler(`[]`))
	mux.HandleFunc("/issuances", failingHandler())

	notify := &recordingNotifier{}
	c := NewIssuanceController(newAPIClient(t, mux), notify, alwaysConfirm{})
	c.Load(context.Background())

	if state, _ := c.State(); state != LoadFailed {
		t.Fatalf("state = %v, want LoadFailed", state)
	}
	if notify.errorCount() != 1 {
		t.Errorf("got %d error notifications, want exactly 1", notify.errorCount())
	}
}

func TestCanSubmit(t *testing.T) {
	c := loadedIssuanceController(t)

	// Loaded product id 1 has 5 in stock.
	tests := []struct {
		name  string
		input domain.IssuanceInput
		want  bool
	}{
		{"quantity within stock", domain.IssuanceInput{ProductID: 1, QuantityIssued: 3, IssuedTo: "Finance"}, true},
		{"quantity equals stock", domain.IssuanceInput{ProductID: 1, QuantityIssued: 5, IssuedTo: "Finance"}, true},
		{"quantity exceeds stock", domain.IssuanceInput{ProductID: 1, QuantityIssued: 6, IssuedTo: "Finance"}, false},
		{"zero quantity", domain.IssuanceInput{ProductID: 1, QuantityIssued: 0, IssuedTo: "Finance"}, false},
		{"negative quantity", domain.IssuanceInput{ProductID: 1, QuantityIssued: -2, IssuedTo: "Finance"}, false},
		{"missing recipient", domain.IssuanceInput{ProductID: 1, QuantityIssued: 3}, false},
		{"blank recipient", domain.IssuanceInput{ProductID: 1, QuantityIssued: 3, IssuedTo: "   "}, false},
		{"no product selected", domain.IssuanceInput{QuantityIssued: 3, IssuedTo: "Finance"}, false},
		{"unknown product", domain.IssuanceInput{ProductID: 99, QuantityIssued: 3, IssuedTo: "Finance"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.CanSubmit(tt.input); got != tt.want {
				t.Errorf("CanSubmit(%+v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSubmitRejectsInvalidFormLocally(t *testing.T) {
	var creates int
	mux := issuanceMux()
	// Overriding /issuances would clash with the list handler, so
	// count POSTs inside a wrapper.
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			creates++
		}
		mux.ServeHTTP(w, r)
	})

	notify := &recordingNotifier{}
	c := NewIssuanceController(newAPIClient(t, handler), notify, alwaysConfirm{})
	c.Load(context.Background())

	c.Submit(context.Background(), domain.IssuanceInput{ProductID: 1, QuantityIssued: 99, IssuedTo: "Finance"})

	if creates != 0 {
		t.Error("invalid form must not reach the server")
	}
	if notify.errorCount() != 1 {
		t.Errorf("got %d error notifications, want 1", notify.errorCount())
	}
}
