package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dimec-inventory/internal/adapters/persistence/models"
	"dimec-inventory/internal/adapters/persistence/repositories"
	"dimec-inventory/internal/core/domain"
)

// CategoryService handles category business logic
type CategoryService struct {
	categoryRepo repositories.CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]domain.Category, len(categories))
	for i, c := range categories {
		dtos[i] = c.ToDTO()
	}
	return dtos, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	dto := category.ToDTO()
	return &dto, nil
}

func (s *CategoryService) Create(ctx context.Context, input domain.CategoryInput) (*domain.Category, error) {
	category := &models.Category{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	dto := category.ToDTO()
	return &dto, nil
}

func (s *CategoryService) Update(ctx context.Context, id int64, input domain.CategoryInput) (*domain.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	category.Name = input.Name
	category.Description = input.Description
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	dto := category.ToDTO()
	return &dto, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return s.categoryRepo.Delete(ctx, id)
}
