package repositories

import (
	"context"
	"time"

	"dimec-inventory/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CountByRole(ctx context.Context, role string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// CategoryRepository defines category repository interface
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	List(ctx context.Context) ([]*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// SupplierRepository defines supplier repository interface
type SupplierRepository interface {
	Create(ctx context.Context, supplier *models.Supplier) error
	GetByID(ctx context.Context, id int64) (*models.Supplier, error)
	List(ctx context.Context) ([]*models.Supplier, error)
	Update(ctx context.Context, supplier *models.Supplier) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// ProductRepository defines product repository interface. List and
// Get results carry preloaded Category and Supplier associations so
// DTO conversion can denormalize names.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	List(ctx context.Context) ([]*models.Product, error)
	ListLowStock(ctx context.Context) ([]*models.Product, error)
	Search(ctx context.Context, term string) ([]*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id int64) error
	AdjustStock(ctx context.Context, id int64, delta int) error
	Count(ctx context.Context) (int64, error)
	CountLowStock(ctx context.Context) (int64, error)
}

// IssuanceRepository defines issuance repository interface
type IssuanceRepository interface {
	Create(ctx context.Context, record *models.IssuanceRecord) error
	GetByID(ctx context.Context, id int64) (*models.IssuanceRecord, error)
	List(ctx context.Context) ([]*models.IssuanceRecord, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]*models.IssuanceRecord, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
