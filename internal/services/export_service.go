package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/edufi/quiz-grading-service/internal/models"
	"github.com/edufi/quiz-grading-service/internal/repositories"
	"github.com/edufi/quiz-grading-service/internal/utils"
	"github.com/xuri/excelize/v2"
)

// ExportService exposes the grading audit trail to operators: paged listings
// and spreadsheet export.
type ExportService interface {
	ListGradings(ctx context.Context, filters repositories.GradingAuditFilters) ([]*models.GradingAuditRecord, int64, error)
	ExportGradingsToExcel(ctx context.Context, filters repositories.GradingAuditFilters) ([]byte, error)
}

type exportService struct {
	auditRepo repositories.GradingAuditRepository
	logger    utils.Logger
}

func NewExportService(auditRepo repositories.GradingAuditRepository, logger utils.Logger) ExportService {
	return &exportService{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

func (s *exportService) ListGradings(ctx context.Context, filters repositories.GradingAuditFilters) ([]*models.GradingAuditRecord, int64, error) {
	if s.auditRepo == nil {
		return nil, 0, ErrAuditStoreDisabled
	}
	return s.auditRepo.List(ctx, filters)
}

func (s *exportService) ExportGradingsToExcel(ctx context.Context, filters repositories.GradingAuditFilters) ([]byte, error) {
	if s.auditRepo == nil {
		return nil, ErrAuditStoreDisabled
	}

	records, total, err := s.auditRepo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list grading audit records: %w", err)
	}

	s.logger.Info("Exporting grading audit records", "exported", len(records), "total", total)

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Gradings"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Spec Digest", "Score Given", "Score Maximum", "Item Count", "Spec Migrated", "Answer Migrated", "Graded At"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, record := range records {
		values := []interface{}{
			record.ID,
			record.SpecDigest,
			record.ScoreGiven,
			record.ScoreMaximum,
			record.ItemCount,
			record.SpecMigrated,
			record.AnswerMigrated,
			record.CreatedAt.Format(time.RFC3339),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
