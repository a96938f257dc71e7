package controllers

import (
	"context"
	"net/http"
	"testing"
)

const productsBody = `[
	{"productId":1,"name":"Pen","categoryId":3,"categoryName":"Office Supplies","supplierId":2,"supplierName":"Office Depot Rwanda","quantity":100,"unitPrice":"0.50","reorderLevel":20,"description":"","lowStock":false},
	{"productId":2,"name":"Laptop Dell Latitude 5420","categoryId":1,"categoryName":"ICT Equipment","supplierId":1,"supplierName":"Tech Solutions Ltd","quantity":15,"unitPrice":"850.00","reorderLevel":5,"description":"","lowStock":false},
	{"productId":3,"name":"Security Camera","categoryId":2,"categoryName":"Security Systems","supplierId":3,"supplierName":"Secure Systems Co","quantity":2,"unitPrice":"320.00","reorderLevel":5,"description":"","lowStock":true}
]`

func productsMux(productsFail, categoriesFail bool) *http.ServeMux {
	mux := http.NewServeMux()
	if productsFail {
		mux.HandleFunc("/products", failingHandler())
	} else {
		mux.HandleFunc("/products", jsonHandler(productsBody))
	}
	if categoriesFail {
		mux.HandleFunc("/categories", failingHandler())
	} else {
		mux.HandleFunc("/categories", jsonHandler(`[{"categoryId":1,"name":"ICT Equipment","description":""}]`))
	}
	mux.HandleFunc("/suppliers", jsonHandler(`[{"supplierId":1,"name":"Tech Solutions Ltd","contact":"","email":"","address":""}]`))
	return mux
}

func TestProductsLoad(t *testing.T) {
	notify := &recordingNotifier{}
	c := NewProductsController(newAPIClient(t, productsMux(false, false)), notify, alwaysConfirm{})

	c.Load(context.Background())

	state, errMsg := c.State()
	if state != Loaded {
		t.Fatalf("state = %v (%s), want Loaded", state, errMsg)
	}
	if got := len(c.Products()); got != 3 {
		t.Errorf("loaded %d products, want 3", got)
	}
	if got := len(c.Categories()); got != 1 {
		t.Errorf("loaded %d categories, want 1", got)
	}
	if notify.errorCount() != 0 {
		t.Errorf("unexpected error notifications: %v", notify.errors)
	}
}

func TestProductsLoadFailure(t *testing.T) {
	notify := &recordingNotifier{}
	c := NewProductsController(newAPIClient(t, productsMux(true, false)), notify, alwaysConfirm{})

	c.Load(context.Background())

	state, errMsg := c.State()
	if state != LoadFailed {
		t.Fatalf("state = %v, want LoadFailed", state)
	}
	if errMsg == "" {
		t.Error("error message missing after failed load")
	}
	if notify.errorCount() != 1 {
		t.Errorf("got %d error notifications, want exactly 1", notify.errorCount())
	}
}

func TestProductsLoadToleratesReferenceFailure(t *testing.T) {
	notify := &recordingNotifier{}
	c := NewProductsController(newAPIClient(t, productsMux(false, true)), notify, alwaysConfirm{})

	c.Load(context.Background())

	state, _ := c.State()
	if state != Loaded {
		t.Fatalf("state = %v, want Loaded despite category failure", state)
	}
	if got := len(c.Products()); got != 3 {
		t.Errorf("loaded %d products, want 3", got)
	}
	if got := len(c.Categories()); got != 0 {
		t.Errorf("loaded %d categories, want 0 after reference failure", got)
	}
	if got := len(c.Suppliers()); got != 1 {
		t.Errorf("loaded %d suppliers, want 1", got)
	}
	if notify.errorCount() != 1 {
		t.Errorf("got %d error notifications, want 1 for the failed categories fetch", notify.errorCount())
	}
}

func TestProductsLoadFailureKeepsReferenceData(t *testing.T) {
	notify := &recordingNotifier{}
	c := NewProductsController(newAPIClient(t, productsMux(true, false)), notify, alwaysConfirm{})

	c.Load(context.Background())

	state, _ := c.State()
	if state != LoadFailed {
		t.Fatalf("state = %v, want LoadFailed", state)
	}
	if got := len(c.Categories()); got != 1 {
		t.Errorf("kept %d categories, want 1", got)
	}
	if got := len(c.Suppliers()); got != 1 {
		t.Errorf("kept %d suppliers, want 1", got)
	}
}

func TestProductsFilter(t *testing.T) {
	c := NewProductsController(newAPIClient(t, productsMux(false, false)), &recordingNotifier{}, alwaysConfirm{})
	c.Load(context.Background())

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query returns all in order", "", []string{"Pen", "Laptop Dell Latitude 5420", "Security Camera"}},
		{"matches product name", "pen", []string{"Pen"}},
		{"case insensitive", "LAPTOP", []string{"Laptop Dell Latitude 5420"}},
		{"matches category name", "security sys", []string{"Security Camera"}},
		{"matches supplier name", "tech solutions", []string{"Laptop Dell Latitude 5420"}},
		{"surrounding whitespace trimmed", "  pen  ", []string{"Pen"}},
		{"no match", "printer", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Filter(tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("Filter(%q) returned %d products, want %d", tt.query, len(got), len(tt.want))
			}
			for i, p := range got {
				if p.Name != tt.want[i] {
					t.Errorf("Filter(%q)[%d] = %s, want %s", tt.query, i, p.Name, tt.want[i])
				}
			}
		})
	}
}

func TestProductsDeleteDeclined(t *testing.T) {
	var deletes int
	mux := productsMux(false, false)
	mux.HandleFunc("/products/1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			deletes++
		}
		w.Write([]byte(`{"message":"Product deleted"}`))
	})

	c := NewProductsController(newAPIClient(t, mux), &recordingNotifier{}, neverConfirm{})
	c.Load(context.Background())

	c.Delete(context.Background(), 1, "Pen")
	if deletes != 0 {
		t.Error("declined confirmation must not delete")
	}
}
