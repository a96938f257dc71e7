package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"dimec-inventory/internal/core/domain"
)

// User represents users table
type User struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      string    `gorm:"size:30;default:'VIEWER'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Category represents categories table
type Category struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

func (c *Category) ToDTO() domain.Category {
	return domain.Category{
		CategoryID:  c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

// Supplier represents suppliers table
type Supplier struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Contact   string    `gorm:"size:50" json:"contact"`
	Email     string    `gorm:"size:100" json:"email"`
	Address   string    `gorm:"type:text" json:"address"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Supplier) TableName() string {
	return "suppliers"
}

func (s *Supplier) ToDTO() domain.Supplier {
	return domain.Supplier{
		SupplierID: s.ID,
		Name:       s.Name,
		Contact:    s.Contact,
		Email:      s.Email,
		Address:    s.Address,
	}
}

// Product represents products table
type Product struct {
	ID           int64           `gorm:"primaryKey" json:"id"`
	Name         string          `gorm:"size:100;not null" json:"name"`
	CategoryID   int64           `gorm:"index;not null" json:"category_id"`
	SupplierID   int64           `gorm:"index;not null" json:"supplier_id"`
	Quantity     int             `gorm:"not null;default:0" json:"quantity"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	ReorderLevel int             `gorm:"not null;default:10" json:"reorder_level"`
	Description  string          `gorm:"type:text" json:"description"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	Category     Category        `gorm:"foreignKey:CategoryID" json:"-"`
	Supplier     Supplier        `gorm:"foreignKey:SupplierID" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// IsLowStock reports the server-computed low-stock flag.
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.ReorderLevel
}

// ToDTO converts to the wire shape with denormalized names. The
// Category and Supplier associations must be preloaded.
func (p *Product) ToDTO() domain.Product {
	return domain.Product{
		ProductID:    p.ID,
		Name:         p.Name,
		CategoryID:   p.CategoryID,
		CategoryName: p.Category.Name,
		SupplierID:   p.SupplierID,
		SupplierName: p.Supplier.Name,
		Quantity:     p.Quantity,
		UnitPrice:    p.UnitPrice,
		ReorderLevel: p.ReorderLevel,
		Description:  p.Description,
		LowStock:     p.IsLowStock(),
	}
}

// IssuanceRecord represents issuance_records table
type IssuanceRecord struct {
	ID             int64     `gorm:"primaryKey" json:"id"`
	ProductID      int64     `gorm:"index;not null" json:"product_id"`
	UserID         int64     `gorm:"index;not null" json:"user_id"`
	QuantityIssued int       `gorm:"not null" json:"quantity_issued"`
	IssuedTo       string    `gorm:"size:100;not null" json:"issued_to"`
	IssueDate      time.Time `gorm:"type:date;not null;index" json:"issue_date"`
	Purpose        string    `gorm:"type:text" json:"purpose"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	Product        Product   `gorm:"foreignKey:ProductID" json:"-"`
	User           User      `gorm:"foreignKey:UserID" json:"-"`
}

func (IssuanceRecord) TableName() string {
	return "issuance_records"
}

// IssueDateLayout is the wire format for issue dates.
const IssueDateLayout = "2006-01-02"

// ToDTO converts to the wire shape. Product and User associations
// must be preloaded.
func (r *IssuanceRecord) ToDTO() domain.IssuanceRecord {
	return domain.IssuanceRecord{
		IssuanceID:     r.ID,
		ProductID:      r.ProductID,
		ProductName:    r.Product.Name,
		UserID:         r.UserID,
		UserName:       r.User.Name,
		QuantityIssued: r.QuantityIssued,
		IssuedTo:       r.IssuedTo,
		IssueDate:      r.IssueDate.Format(IssueDateLayout),
		Purpose:        r.Purpose,
	}
}

// AutoMigrate creates or updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Category{},
		&Supplier{},
		&Product{},
		&IssuanceRecord{},
	)
}
