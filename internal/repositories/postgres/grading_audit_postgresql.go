package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/edufi/quiz-grading-service/internal/models"
	"github.com/edufi/quiz-grading-service/internal/repositories"
	"gorm.io/gorm"
)

type GradingAuditPostgreSQL struct {
	db *gorm.DB
}

func NewGradingAuditPostgreSQL(db *gorm.DB) repositories.GradingAuditRepository {
	return &GradingAuditPostgreSQL{db: db}
}

// Create persists one grading outcome
func (r *GradingAuditPostgreSQL) Create(ctx context.Context, record *models.GradingAuditRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create grading audit record: %w", err)
	}
	return nil
}

// GetByID retrieves one audit record by ID
func (r *GradingAuditPostgreSQL) GetByID(ctx context.Context, id uint) (*models.GradingAuditRecord, error) {
	var record models.GradingAuditRecord
	err := r.db.WithContext(ctx).First(&record, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get grading audit record: %w", err)
	}
	return &record, nil
}

// List retrieves audit records matching the filters, newest first, with the
// total count before pagination.
func (r *GradingAuditPostgreSQL) List(ctx context.Context, filters repositories.GradingAuditFilters) ([]*models.GradingAuditRecord, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.GradingAuditRecord{})

	if filters.SpecDigest != "" {
		query = query.Where("spec_digest = ?", filters.SpecDigest)
	}
	if filters.From != nil {
		query = query.Where("created_at >= ?", *filters.From)
	}
	if filters.To != nil {
		query = query.Where("created_at <= ?", *filters.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count grading audit records: %w", err)
	}

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var records []*models.GradingAuditRecord
	if err := query.Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list grading audit records: %w", err)
	}

	return records, total, nil
}
