package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dimec-inventory/internal/adapters/persistence/models"
	"dimec-inventory/internal/adapters/persistence/repositories"
	"dimec-inventory/internal/core/domain"
)

// SupplierService handles supplier business logic
type SupplierService struct {
	supplierRepo repositories.SupplierRepository
}

// NewSupplierService creates a new supplier service
func NewSupplierService(supplierRepo repositories.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

func (s *SupplierService) List(ctx context.Context) ([]domain.Supplier, error) {
	suppliers, err := s.supplierRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]domain.Supplier, len(suppliers))
	for i, sp := range suppliers {
		dtos[i] = sp.ToDTO()
	}
	return dtos, nil
}

func (s *SupplierService) GetByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	dto := supplier.ToDTO()
	return &dto, nil
}

func (s *SupplierService) Create(ctx context.Context, input domain.SupplierInput) (*domain.Supplier, error) {
	supplier := &models.Supplier{
		Name:    input.Name,
		Contact: input.Contact,
		Email:   input.Email,
		Address: input.Address,
	}
	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	dto := supplier.ToDTO()
	return &dto, nil
}

func (s *SupplierService) Update(ctx context.Context, id int64, input domain.SupplierInput) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	supplier.Name = input.Name
	supplier.Contact = input.Contact
	supplier.Email = input.Email
	supplier.Address = input.Address
	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	dto := supplier.ToDTO()
	return &dto, nil
}

func (s *SupplierService) Delete(ctx context.Context, id int64) error {
	if _, err := s.supplierRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return s.supplierRepo.Delete(ctx, id)
}
