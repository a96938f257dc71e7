package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"dimec-inventory/internal/adapters/persistence/models"
	"dimec-inventory/internal/adapters/persistence/repositories"
	"dimec-inventory/internal/core/domain"
)

// IssuanceService handles stock issuance business logic. Creating an
// issuance decrements the product's stock; deleting one restores it.
type IssuanceService struct {
	issuanceRepo repositories.IssuanceRepository
	productRepo  repositories.ProductRepository
	userRepo     repositories.UserRepository
}

// NewIssuanceService creates a new issuance service
func NewIssuanceService(
	issuanceRepo repositories.IssuanceRepository,
	productRepo repositories.ProductRepository,
	userRepo repositories.UserRepository,
) *IssuanceService {
	return &IssuanceService{
		issuanceRepo: issuanceRepo,
		productRepo:  productRepo,
		userRepo:     userRepo,
	}
}

// List returns all issuances, newest first
func (s *IssuanceService) List(ctx context.Context) ([]domain.IssuanceRecord, error) {
	records, err := s.issuanceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toIssuanceDTOs(records), nil
}

// GetByID returns a single issuance record
func (s *IssuanceService) GetByID(ctx context.Context, id int64) (*domain.IssuanceRecord, error) {
	record, err := s.issuanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	dto := record.ToDTO()
	return &dto, nil
}

// ListByDateRange returns issuances with issue dates in [start, end].
// Dates use the YYYY-MM-DD wire format.
func (s *IssuanceService) ListByDateRange(ctx context.Context, startDate, endDate string) ([]domain.IssuanceRecord, error) {
	start, err := time.Parse(models.IssueDateLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("startDate: %w", domain.ErrInvalidInput)
	}
	end, err := time.Parse(models.IssueDateLayout, endDate)
	if err != nil {
		return nil, fmt.Errorf("endDate: %w", domain.ErrInvalidInput)
	}
	records, err := s.issuanceRepo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return toIssuanceDTOs(records), nil
}

// Create records an issuance and decrements the product's stock. The
// stock guard is authoritative here: a client-side check may have
// passed on stale data and must not be trusted.
func (s *IssuanceService) Create(ctx context.Context, input domain.IssuanceInput, issuerID int64) (*domain.IssuanceRecord, error) {
	if _, err := s.productRepo.GetByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", input.ProductID, domain.ErrNotFound)
		}
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, issuerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if input.QuantityIssued < 1 {
		return nil, domain.ErrInvalidInput
	}

	// Guarded decrement first; it fails atomically when stock is short.
	if err := s.productRepo.AdjustStock(ctx, input.ProductID, -input.QuantityIssued); err != nil {
		return nil, err
	}

	record := &models.IssuanceRecord{
		ProductID:      input.ProductID,
		UserID:         issuerID,
		QuantityIssued: input.QuantityIssued,
		IssuedTo:       input.IssuedTo,
		IssueDate:      time.Now().Truncate(24 * time.Hour),
		Purpose:        input.Purpose,
	}
	if err := s.issuanceRepo.Create(ctx, record); err != nil {
		// Compensate the decrement so stock is not lost.
		if restoreErr := s.productRepo.AdjustStock(ctx, input.ProductID, input.QuantityIssued); restoreErr != nil {
			log.Printf("failed to restore stock for product %d after issuance error: %v", input.ProductID, restoreErr)
		}
		return nil, err
	}

	log.Printf("issuance created: product=%d qty=%d by user=%d", input.ProductID, input.QuantityIssued, issuerID)
	return s.GetByID(ctx, record.ID)
}

// Delete removes an issuance record and restores the product's stock
func (s *IssuanceService) Delete(ctx context.Context, id int64) error {
	record, err := s.issuanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}

	if err := s.productRepo.AdjustStock(ctx, record.ProductID, record.QuantityIssued); err != nil {
		return err
	}
	if err := s.issuanceRepo.Delete(ctx, id); err != nil {
		if restoreErr := s.productRepo.AdjustStock(ctx, record.ProductID, -record.QuantityIssued); restoreErr != nil {
			log.Printf("failed to re-apply stock for product %d after delete error: %v", record.ProductID, restoreErr)
		}
		return err
	}
	return nil
}

func toIssuanceDTOs(records []*models.IssuanceRecord) []domain.IssuanceRecord {
	dtos := make([]domain.IssuanceRecord, len(records))
	for i, r := range records {
		dtos[i] = r.ToDTO()
	}
	return dtos
}
