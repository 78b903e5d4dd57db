package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("quizItemId", "is required", "")

	assert.Equal(t, "quizItemId", err.Field)
	assert.Equal(t, "is required", err.Message)
	assert.Equal(t, "", err.Value)
	assert.Equal(t, "validation error on field 'quizItemId': is required", err.Error())
}

func TestNewValidationErrorWithRule(t *testing.T) {
	err := NewValidationErrorWithRule(
		"multipleChoiceMultipleOptionsGradingPolicy",
		"must be a valid multiple-choice grading policy (default, points-off-incorrect-options, points-off-unselected-options, some-correct-none-incorrect)",
		"grading_policy",
		"points-off-everything",
	)

	assert.Equal(t, "grading_policy", err.Rule)
	assert.Equal(t, "multipleChoiceMultipleOptionsGradingPolicy", err.Field)
	assert.Equal(t, "points-off-everything", err.Value)
}

func TestValidationErrorsMessage(t *testing.T) {
	tests := []struct {
		name string
		errs ValidationErrors
		want string
	}{
		{
			name: "empty collection",
			errs: nil,
			want: "validation failed",
		},
		{
			name: "single error names the field",
			errs: ValidationErrors{
				*NewValidationError("version", "is required", nil),
			},
			want: "validation failed: version is required",
		},
		{
			name: "multiple errors are counted",
			errs: ValidationErrors{
				*NewValidationError("version", "is required", nil),
				*NewValidationError("type", "must be a valid quiz item type (multiple-choice, multiple-choice-dropdown, choose-n, closed-ended-question, essay, matrix, timeline, checkbox, scale)", "hologram"),
			},
			want: "validation failed: 2 field errors",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.errs.Error())
		})
	}
}
