package domain

import "github.com/shopspring/decimal"

// Role represents user role in the system
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleClerk  Role = "INVENTORY_CLERK"
	RoleViewer Role = "VIEWER"
)

// Known reports whether the role is one of the closed set.
// A server may hand back something else; an unknown role is kept
// as-is but never matches a required-role set.
func (r Role) Known() bool {
	switch r {
	case RoleAdmin, RoleClerk, RoleViewer:
		return true
	}
	return false
}

// In reports membership of r in the given role set.
func (r Role) In(roles []Role) bool {
	for _, allowed := range roles {
		if r == allowed {
			return true
		}
	}
	return false
}

// Session is the authenticated identity held by a running client.
// Invariant: a non-nil Session always carries a non-empty Token.
type Session struct {
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Token  string `json:"-"`
}

// Product is the client-side projection of a product resource.
// LowStock is computed server-side (quantity <= reorderLevel) and
// trusted as-is.
type Product struct {
	ProductID    int64           `json:"productId"`
	Name         string          `json:"name"`
	CategoryID   int64           `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	SupplierID   int64           `json:"supplierId"`
	SupplierName string          `json:"supplierName"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	ReorderLevel int             `json:"reorderLevel"`
	Description  string          `json:"description"`
	LowStock     bool            `json:"lowStock"`
}

// TotalValue returns quantity * unit price.
func (p Product) TotalValue() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// Category represents a product category
type Category struct {
	CategoryID  int64  `json:"categoryId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Supplier represents a supplier
type Supplier struct {
	SupplierID int64  `json:"supplierId"`
	Name       string `json:"name"`
	Contact    string `json:"contact"`
	Email      string `json:"email"`
	Address    string `json:"address"`
}

// IssuanceRecord represents a stock issuance. Creating one decrements
// the referenced product's stock on the server; deleting one restores it.
type IssuanceRecord struct {
	IssuanceID     int64  `json:"issuanceId"`
	ProductID      int64  `json:"productId"`
	ProductName    string `json:"productName"`
	UserID         int64  `json:"userId"`
	UserName       string `json:"userName"`
	QuantityIssued int    `json:"quantityIssued"`
	IssuedTo       string `json:"issuedTo"`
	IssueDate      string `json:"issueDate"`
	Purpose        string `json:"purpose"`
}

// DashboardStats is a read-only aggregate snapshot with no identity;
// it is recomputed wholesale on each fetch.
type DashboardStats struct {
	TotalProducts       int64           `json:"totalProducts"`
	TotalCategories     int64           `json:"totalCategories"`
	TotalSuppliers      int64           `json:"totalSuppliers"`
	LowStockProducts    int64           `json:"lowStockProducts"`
	TotalInventoryValue decimal.Decimal `json:"totalInventoryValue"`
	TotalIssuances      int64           `json:"totalIssuances"`
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput is the registration request body.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginResult is the wire shape of a successful login.
type LoginResult struct {
	Token  string `json:"token"`
	Type   string `json:"type"`
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// ProductInput is the create/update request body for products.
type ProductInput struct {
	Name         string          `json:"name"`
	CategoryID   int64           `json:"categoryId"`
	SupplierID   int64           `json:"supplierId"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	ReorderLevel int             `json:"reorderLevel"`
	Description  string          `json:"description"`
}

// CategoryInput is the create/update request body for categories.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SupplierInput is the create/update request body for suppliers.
type SupplierInput struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// IssuanceInput is the create request body for issuances.
type IssuanceInput struct {
	ProductID      int64  `json:"productId"`
	QuantityIssued int    `json:"quantityIssued"`
	IssuedTo       string `json:"issuedTo"`
	Purpose        string `json:"purpose,omitempty"`
}
