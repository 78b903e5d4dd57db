package migration

import (
	"encoding/json"
	"testing"

	"github.com/edufi/quiz-grading-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLegacy(t *testing.T) {
	legacy, err := IsLegacy(json.RawMessage(`{"items": []}`))
	require.NoError(t, err)
	assert.True(t, legacy)

	legacy, err = IsLegacy(json.RawMessage(`{"version": "2", "items": []}`))
	require.NoError(t, err)
	assert.False(t, legacy)

	_, err = IsLegacy(json.RawMessage(`not json`))
	assert.Error(t, err)
}

func TestParseSpecification(t *testing.T) {
	t.Run("current schema parses without migration", func(t *testing.T) {
		raw := json.RawMessage(`{
			"version": "2",
			"items": [{"id": "q1", "type": "essay", "order": 0}]
		}`)

		spec, migrated, err := ParseSpecification(raw, testLogger())
		require.NoError(t, err)
		assert.False(t, migrated)
		require.Len(t, spec.Items, 1)
		assert.Equal(t, models.ItemEssay, spec.Items[0].Type)
	})

	t.Run("legacy schema is migrated", func(t *testing.T) {
		raw := json.RawMessage(`{
			"items": [{"id": "q1", "type": "open", "validityRegex": "^a$"}]
		}`)

		spec, migrated, err := ParseSpecification(raw, testLogger())
		require.NoError(t, err)
		assert.True(t, migrated)
		assert.Equal(t, models.SpecVersionCurrent, spec.Version)
		require.Len(t, spec.Items, 1)
		assert.Equal(t, models.ItemClosedEndedQuestion, spec.Items[0].Type)
	})

	t.Run("re-parsing migration output is a no-op", func(t *testing.T) {
		raw := json.RawMessage(`{
			"items": [
				{"id": "q1", "type": "open"},
				{"id": "q2", "type": "clickable-multiple-choice"}
			]
		}`)

		first, migrated, err := ParseSpecification(raw, testLogger())
		require.NoError(t, err)
		require.True(t, migrated)

		roundTripped, err := json.Marshal(first)
		require.NoError(t, err)

		second, migrated, err := ParseSpecification(roundTripped, testLogger())
		require.NoError(t, err)
		assert.False(t, migrated)
		assert.Equal(t, first, second)
	})

	t.Run("unsupported version is rejected", func(t *testing.T) {
		raw := json.RawMessage(`{"version": "99", "items": []}`)
		_, _, err := ParseSpecification(raw, testLogger())
		assert.ErrorIs(t, err, ErrUnsupportedVersion)
	})

	t.Run("malformed JSON is rejected", func(t *testing.T) {
		_, _, err := ParseSpecification(json.RawMessage(`{`), testLogger())
		assert.Error(t, err)
	})
}

func TestParseAnswer(t *testing.T) {
	spec := &models.QuizSpecification{
		Version: models.SpecVersionCurrent,
		Items: []models.QuizItem{
			{ID: "q1", Type: models.ItemMultipleChoice},
		},
	}

	t.Run("current schema parses without migration", func(t *testing.T) {
		raw := json.RawMessage(`{
			"version": "2",
			"itemAnswers": [{"quizItemId": "q1", "type": "multiple-choice", "selectedOptionIds": ["o1"]}]
		}`)

		answer, migrated, err := ParseAnswer(raw, spec)
		require.NoError(t, err)
		assert.False(t, migrated)
		require.Len(t, answer.ItemAnswers, 1)
		assert.Equal(t, []string{"o1"}, answer.ItemAnswers[0].SelectedOptionIDs)
	})

	t.Run("legacy schema is migrated against the spec", func(t *testing.T) {
		raw := json.RawMessage(`{
			"itemAnswers": [{"quizItemId": "q1", "optionAnswers": ["o1"]}]
		}`)

		answer, migrated, err := ParseAnswer(raw, spec)
		require.NoError(t, err)
		assert.True(t, migrated)
		require.Len(t, answer.ItemAnswers, 1)
		assert.Equal(t, models.ItemMultipleChoice, answer.ItemAnswers[0].Type)
		assert.Equal(t, []string{"o1"}, answer.ItemAnswers[0].SelectedOptionIDs)
	})

	t.Run("unsupported version is rejected", func(t *testing.T) {
		raw := json.RawMessage(`{"version": "1", "itemAnswers": []}`)
		_, _, err := ParseAnswer(raw, spec)
		assert.ErrorIs(t, err, ErrUnsupportedVersion)
	})
}
