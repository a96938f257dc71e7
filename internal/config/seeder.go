package config

import (
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"dimec-inventory/internal/adapters/persistence/models"
	"dimec-inventory/internal/pkg/password"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run seeds default users and sample inventory data. Each step skips
// itself when data already exists, so restarts are safe.
func (s *Seeder) Run() error {
	log.Println("running database seeders...")

	if err := s.seedUsers(); err != nil {
		return err
	}
	if err := s.seedInventory(); err != nil {
		return err
	}

	log.Println("database seeding completed")
	return nil
}

// seedUsers creates one account per role. Development defaults only;
// rotate the passwords before any shared deployment.
func (s *Seeder) seedUsers() error {
	var count int64
	s.db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return nil
	}

	accounts := []struct {
		name     string
		email    string
		password string
		role     string
	}{
		{"Admin User", "admin@dimec.com", "admin123", "ADMIN"},
		{"Inventory Clerk", "clerk@dimec.com", "clerk123", "INVENTORY_CLERK"},
		{"Viewer User", "viewer@dimec.com", "viewer123", "VIEWER"},
	}

	for _, a := range accounts {
		hashed, err := password.Hash(a.password)
		if err != nil {
			return err
		}
		user := &models.User{Name: a.name, Email: a.email, Password: hashed, Role: a.role}
		if err := s.db.Create(user).Error; err != nil {
			return err
		}
	}

	log.Println("seeded default users (admin@dimec.com / admin123)")
	return nil
}

func (s *Seeder) seedInventory() error {
	var count int64
	s.db.Model(&models.Category{}).Count(&count)
	if count > 0 {
		return nil
	}

	categories := []*models.Category{
		{Name: "ICT Equipment", Description: "Computers, laptops, and networking equipment"},
		{Name: "Security Systems", Description: "Cameras, alarms, and security equipment"},
		{Name: "Office Supplies", Description: "Stationery and office equipment"},
	}
	for _, c := range categories {
		if err := s.db.Create(c).Error; err != nil {
			return err
		}
	}

	suppliers := []*models.Supplier{
		{Name: "Tech Solutions Ltd", Contact: "John Tech", Email: "info@techsolutions.rw", Address: "Kigali, Rwanda - KN 4 Ave"},
		{Name: "Secure Systems Co", Contact: "Jane Security", Email: "sales@securesystems.rw", Address: "Kigali, Rwanda - Nyabugogo"},
		{Name: "Office Depot Rwanda", Contact: "Mike Office", Email: "orders@officedepot.rw", Address: "Kigali, Rwanda - Kicukiro"},
	}
	for _, sp := range suppliers {
		if err := s.db.Create(sp).Error; err != nil {
			return err
		}
	}

	price := func(v string) decimal.Decimal {
		d, _ := decimal.NewFromString(v)
		return d
	}

	products := []*models.Product{
		{Name: "Laptop Dell Latitude 5420", CategoryID: categories[0].ID, SupplierID: suppliers[0].ID,
			Quantity: 15, UnitPrice: price("850.00"), ReorderLevel: 5,
			Description: "Business laptop with Intel i5, 8GB RAM, 256GB SSD"},
		{Name: "Desktop PC HP Pro", CategoryID: categories[0].ID, SupplierID: suppliers[0].ID,
			Quantity: 8, UnitPrice: price("650.00"), ReorderLevel: 3,
			Description: "Desktop computer for office use with monitor"},
		{Name: "HP LaserJet Pro M404n", CategoryID: categories[0].ID, SupplierID: suppliers[0].ID,
			Quantity: 4, UnitPrice: price("320.00"), ReorderLevel: 2,
			Description: "Network laser printer for office use"},
		{Name: "Security Camera 4K Dome", CategoryID: categories[1].ID, SupplierID: suppliers[1].ID,
			Quantity: 2, UnitPrice: price("320.00"), ReorderLevel: 5,
			Description: "4K security camera with night vision and motion detection"},
		{Name: "DVR 8-Channel Security System", CategoryID: categories[1].ID, SupplierID: suppliers[1].ID,
			Quantity: 3, UnitPrice: price("450.00"), ReorderLevel: 2,
			Description: "8-channel DVR system for security cameras"},
		{Name: "Office Chair Ergonomic", CategoryID: categories[2].ID, SupplierID: suppliers[2].ID,
			Quantity: 20, UnitPrice: price("180.00"), ReorderLevel: 5,
			Description: "Ergonomic office chair with lumbar support"},
		{Name: "Office Desk 120x60cm", CategoryID: categories[2].ID, SupplierID: suppliers[2].ID,
			Quantity: 12, UnitPrice: price("220.00"), ReorderLevel: 4,
			Description: "Modern office desk with cable management"},
	}
	for _, p := range products {
		if err := s.db.Create(p).Error; err != nil {
			return err
		}
	}

	// A couple of sample issuances against the admin user
	var admin models.User
	if err := s.db.Where("role = ?", "ADMIN").First(&admin).Error; err == nil {
		issuances := []*models.IssuanceRecord{
			{ProductID: products[0].ID, UserID: admin.ID, QuantityIssued: 2,
				IssuedTo: "Finance Department", IssueDate: time.Now().AddDate(0, 0, -7), Purpose: "New staff onboarding"},
			{ProductID: products[5].ID, UserID: admin.ID, QuantityIssued: 4,
				IssuedTo: "Reception", IssueDate: time.Now().AddDate(0, 0, -2), Purpose: "Lobby refurbishment"},
		}
		for _, rec := range issuances {
			if err := s.db.Create(rec).Error; err != nil {
				return err
			}
		}
	}

	log.Println("seeded sample inventory data")
	return nil
}
