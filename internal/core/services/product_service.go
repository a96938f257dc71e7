package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"dimec-inventory/internal/adapters/persistence/models"
	"dimec-inventory/internal/adapters/persistence/repositories"
	"dimec-inventory/internal/core/domain"
)

// ProductService handles product business logic
type ProductService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	supplierRepo repositories.SupplierRepository
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
	supplierRepo repositories.SupplierRepository,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
	}
}

// List returns all products with denormalized names and low-stock flags
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductDTOs(products), nil
}

// GetByID returns a single product
func (s *ProductService) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	dto := product.ToDTO()
	return &dto, nil
}

// ListLowStock returns products at or below their reorder level
func (s *ProductService) ListLowStock(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	return toProductDTOs(products), nil
}

// Search matches the term against product, category and supplier names
func (s *ProductService) Search(ctx context.Context, term string) ([]domain.Product, error) {
	products, err := s.productRepo.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	return toProductDTOs(products), nil
}

// Create creates a product after checking its references exist
func (s *ProductService) Create(ctx context.Context, input domain.ProductInput) (*domain.Product, error) {
	if err := s.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:         input.Name,
		CategoryID:   input.CategoryID,
		SupplierID:   input.SupplierID,
		Quantity:     input.Quantity,
		UnitPrice:    input.UnitPrice,
		ReorderLevel: input.ReorderLevel,
		Description:  input.Description,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, product.ID)
}

// Update replaces a product's fields
func (s *ProductService) Update(ctx context.Context, id int64, input domain.ProductInput) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := s.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.CategoryID = input.CategoryID
	product.SupplierID = input.SupplierID
	product.Quantity = input.Quantity
	product.UnitPrice = input.UnitPrice
	product.ReorderLevel = input.ReorderLevel
	product.Description = input.Description

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete removes a product
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if _, err := s.productRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

func (s *ProductService) checkReferences(ctx context.Context, input domain.ProductInput) error {
	if _, err := s.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("category %d: %w", input.CategoryID, domain.ErrNotFound)
		}
		return err
	}
	if _, err := s.supplierRepo.GetByID(ctx, input.SupplierID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("supplier %d: %w", input.SupplierID, domain.ErrNotFound)
		}
		return err
	}
	return nil
}

func toProductDTOs(products []*models.Product) []domain.Product {
	dtos := make([]domain.Product, len(products))
	for i, p := range products {
		dtos[i] = p.ToDTO()
	}
	return dtos
}
