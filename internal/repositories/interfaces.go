package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/edufi/quiz-grading-service/internal/models"
)

// ErrRecordNotFound is returned by repositories when a lookup matches
// nothing.
var ErrRecordNotFound = errors.New("record not found")

// IsNotFoundError checks if error represents a "not found" condition
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrRecordNotFound)
}

// GradingAuditFilters narrows audit listings.
type GradingAuditFilters struct {
	SpecDigest string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// GradingAuditRepository persists grading outcomes for audit replay.
type GradingAuditRepository interface {
	Create(ctx context.Context, record *models.GradingAuditRecord) error
	GetByID(ctx context.Context, id uint) (*models.GradingAuditRecord, error)
	List(ctx context.Context, filters GradingAuditFilters) ([]*models.GradingAuditRecord, int64, error)
}
