package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/edufi/quiz-grading-service/internal/models"
	"github.com/edufi/quiz-grading-service/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportService_ListGradings(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled audit store", func(t *testing.T) {
		service := NewExportService(nil, testLogger())
		_, _, err := service.ListGradings(ctx, repositories.GradingAuditFilters{})
		assert.ErrorIs(t, err, ErrAuditStoreDisabled)
	})

	t.Run("passes filters through", func(t *testing.T) {
		filters := repositories.GradingAuditFilters{SpecDigest: "abc", Limit: 10}
		auditRepo := &MockGradingAuditRepository{}
		auditRepo.On("List", mock.Anything, filters).
			Return([]*models.GradingAuditRecord{{ID: 1}}, int64(1), nil)

		service := NewExportService(auditRepo, testLogger())
		records, total, err := service.ListGradings(ctx, filters)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, records, 1)
		auditRepo.AssertExpectations(t)
	})
}

func TestExportService_ExportGradingsToExcel(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled audit store", func(t *testing.T) {
		service := NewExportService(nil, testLogger())
		_, err := service.ExportGradingsToExcel(ctx, repositories.GradingAuditFilters{})
		assert.ErrorIs(t, err, ErrAuditStoreDisabled)
	})

	t.Run("writes one row per record", func(t *testing.T) {
		records := []*models.GradingAuditRecord{
			{
				ID:           1,
				SpecDigest:   "digest-1",
				ScoreGiven:   1.5,
				ScoreMaximum: 3,
				ItemCount:    3,
				SpecMigrated: true,
				CreatedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			},
			{
				ID:           2,
				SpecDigest:   "digest-2",
				ScoreGiven:   3,
				ScoreMaximum: 3,
				ItemCount:    3,
				CreatedAt:    time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC),
			},
		}

		auditRepo := &MockGradingAuditRepository{}
		auditRepo.On("List", mock.Anything, mock.Anything).
			Return(records, int64(2), nil)

		service := NewExportService(auditRepo, testLogger())
		workbook, err := service.ExportGradingsToExcel(ctx, repositories.GradingAuditFilters{})
		require.NoError(t, err)
		require.NotEmpty(t, workbook)

		f, err := excelize.OpenReader(bytes.NewReader(workbook))
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Gradings")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "Spec Digest", rows[0][1])
		assert.Equal(t, "digest-1", rows[1][1])
		assert.Equal(t, "digest-2", rows[2][1])
	})
}
