package repositories

import (
	"context"

	"gorm.io/gorm"

	"dimec-inventory/internal/adapters/persistence/models"
	"dimec-inventory/internal/core/domain"
)

// productRepository implements ProductRepository interface
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) withAssociations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Category").Preload("Supplier")
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	err := r.withAssociations(ctx).Where("products.id = ?", id).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context) ([]*models.Product, error) {
	var products []*models.Product
	err := r.withAssociations(ctx).Order("products.name ASC").Find(&products).Error
	return products, err
}

// ListLowStock returns products with quantity at or below reorder level
func (r *productRepository) ListLowStock(ctx context.Context) ([]*models.Product, error) {
	var products []*models.Product
	err := r.withAssociations(ctx).
		Where("quantity <= reorder_level").
		Order("products.name ASC").
		Find(&products).Error
	return products, err
}

// Search matches the term case-insensitively against product name and
// the denormalized category and supplier names.
func (r *productRepository) Search(ctx context.Context, term string) ([]*models.Product, error) {
	var products []*models.Product
	pattern := "%" + term + "%"
	err := r.withAssociations(ctx).
		Joins("JOIN categories ON categories.id = products.category_id").
		Joins("JOIN suppliers ON suppliers.id = products.supplier_id").
		Where("LOWER(products.name) LIKE LOWER(?) OR LOWER(categories.name) LIKE LOWER(?) OR LOWER(suppliers.name) LIKE LOWER(?)",
			pattern, pattern, pattern).
		Order("products.name ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Product{}, id).Error
}

// AdjustStock applies a quantity delta atomically. The guard keeps
// quantity from going negative under concurrent issuances; a failed
// guard surfaces as domain.ErrInsufficientStock.
func (r *productRepository) AdjustStock(ctx context.Context, id int64, delta int) error {
	result := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ? AND quantity + ? >= 0", id, delta).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error
	return count, err
}

func (r *productRepository) CountLowStock(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("quantity <= reorder_level").Count(&count).Error
	return count, err
}
