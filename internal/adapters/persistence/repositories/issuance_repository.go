package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"dimec-inventory/internal/adapters/persistence/models"
)

// issuanceRepository implements IssuanceRepository interface
type issuanceRepository struct {
	db *gorm.DB
}

// NewIssuanceRepository creates a new issuance repository
func NewIssuanceRepository(db *gorm.DB) IssuanceRepository {
	return &issuanceRepository{db: db}
}

func (r *issuanceRepository) withAssociations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Product").Preload("User")
}

func (r *issuanceRepository) Create(ctx context.Context, record *models.IssuanceRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *issuanceRepository) GetByID(ctx context.Context, id int64) (*models.IssuanceRecord, error) {
	var record models.IssuanceRecord
	err := r.withAssociations(ctx).Where("issuance_records.id = ?", id).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// List returns all issuances, newest first
func (r *issuanceRepository) List(ctx context.Context) ([]*models.IssuanceRecord, error) {
	var records []*models.IssuanceRecord
	err := r.withAssociations(ctx).
		Order("issue_date DESC, id DESC").
		Find(&records).Error
	return records, err
}

// ListByDateRange returns issuances with issue_date in [start, end]
func (r *issuanceRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]*models.IssuanceRecord, error) {
	var records []*models.IssuanceRecord
	err := r.withAssociations(ctx).
		Where("issue_date >= ? AND issue_date <= ?", start, end).
		Order("issue_date DESC, id DESC").
		Find(&records).Error
	return records, err
}

func (r *issuanceRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.IssuanceRecord{}, id).Error
}

func (r *issuanceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.IssuanceRecord{}).Count(&count).Error
	return count, err
}
