package services

import (
	"errors"

	apperrors "github.com/edufi/quiz-grading-service/internal/errors"
	"github.com/edufi/quiz-grading-service/internal/grading"
	"github.com/edufi/quiz-grading-service/internal/migration"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// ErrAuditStoreDisabled is returned by audit operations when no
	// DATABASE_URL was configured at startup.
	ErrAuditStoreDisabled = errors.New("grading audit store is not configured")
)

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	var ve apperrors.ValidationErrors
	return errors.As(err, &ve)
}

// IsGradingInputError checks if error represents a structural problem in the
// grading inputs (bad pairing, malformed payloads, unsupported versions).
// These are caller errors, not service faults.
func IsGradingInputError(err error) bool {
	var itemNotInSpec *grading.ItemNotInSpecError
	if errors.As(err, &itemNotInSpec) {
		return true
	}
	var unknownType *grading.UnknownItemTypeError
	if errors.As(err, &unknownType) {
		return true
	}
	var answerItemNotFound *migration.AnswerItemNotFoundError
	if errors.As(err, &answerItemNotFound) {
		return true
	}
	return errors.Is(err, migration.ErrUnsupportedVersion) ||
		errors.Is(err, grading.ErrNoSelection) ||
		errors.Is(err, grading.ErrMultipleNotAllowed) ||
		errors.Is(err, grading.ErrMissingText) ||
		errors.Is(err, grading.ErrMissingAnswerGrid) ||
		errors.Is(err, grading.ErrMissingSpecGrid) ||
		errors.Is(err, grading.ErrNoTimelineItems) ||
		errors.Is(err, grading.ErrAnswerTypeMismatch) ||
		errors.Is(err, grading.ErrInvalidValidityRegex)
}
