package migration

import (
	"testing"

	"github.com/edufi/quiz-grading-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateAnswer(t *testing.T) {
	spec := &models.QuizSpecification{
		Version: models.SpecVersionCurrent,
		Items: []models.QuizItem{
			{ID: "mc", Type: models.ItemMultipleChoice},
			{ID: "text", Type: models.ItemClosedEndedQuestion},
			{ID: "check", Type: models.ItemCheckbox},
			{ID: "scale", Type: models.ItemScale},
			{ID: "grid", Type: models.ItemMatrix},
			{ID: "time", Type: models.ItemTimeline},
		},
	}

	t.Run("choice answers become selected option ids", func(t *testing.T) {
		legacy := &models.LegacyQuizAnswer{
			ItemAnswers: []models.LegacyItemAnswer{
				{QuizItemID: "mc", OptionAnswers: []string{"o1", "o2"}},
			},
		}

		answer, err := MigrateAnswer(legacy, spec)
		require.NoError(t, err)
		assert.Equal(t, models.SpecVersionCurrent, answer.Version)
		require.Len(t, answer.ItemAnswers, 1)
		assert.Equal(t, models.ItemMultipleChoice, answer.ItemAnswers[0].Type)
		assert.Equal(t, []string{"o1", "o2"}, answer.ItemAnswers[0].SelectedOptionIDs)
	})

	t.Run("text answers carry textData", func(t *testing.T) {
		legacy := &models.LegacyQuizAnswer{
			ItemAnswers: []models.LegacyItemAnswer{
				{QuizItemID: "text", TextData: strPtr("an answer")},
			},
		}

		answer, err := MigrateAnswer(legacy, spec)
		require.NoError(t, err)
		require.NotNil(t, answer.ItemAnswers[0].TextData)
		assert.Equal(t, "an answer", *answer.ItemAnswers[0].TextData)
	})

	t.Run("checkbox intData becomes checked boolean", func(t *testing.T) {
		tests := []struct {
			name     string
			intData  *int
			expected bool
		}{
			{"nonzero is checked", intPtr(1), true},
			{"zero is unchecked", intPtr(0), false},
			{"absent is unchecked", nil, false},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				legacy := &models.LegacyQuizAnswer{
					ItemAnswers: []models.LegacyItemAnswer{
						{QuizItemID: "check", IntData: tt.intData},
					},
				}

				answer, err := MigrateAnswer(legacy, spec)
				require.NoError(t, err)
				require.NotNil(t, answer.ItemAnswers[0].Checked)
				assert.Equal(t, tt.expected, *answer.ItemAnswers[0].Checked)
			})
		}
	})

	t.Run("scale backfills intData from optionAnswers", func(t *testing.T) {
		legacy := &models.LegacyQuizAnswer{
			ItemAnswers: []models.LegacyItemAnswer{
				{QuizItemID: "scale", OptionAnswers: []string{"4"}},
			},
		}

		answer, err := MigrateAnswer(legacy, spec)
		require.NoError(t, err)
		require.NotNil(t, answer.ItemAnswers[0].IntData)
		assert.Equal(t, 4, *answer.ItemAnswers[0].IntData)
	})

	t.Run("scale keeps existing intData", func(t *testing.T) {
		legacy := &models.LegacyQuizAnswer{
			ItemAnswers: []models.LegacyItemAnswer{
				{QuizItemID: "scale", IntData: intPtr(2), OptionAnswers: []string{"4"}},
			},
		}

		answer, err := MigrateAnswer(legacy, spec)
		require.NoError(t, err)
		require.NotNil(t, answer.ItemAnswers[0].IntData)
		assert.Equal(t, 2, *answer.ItemAnswers[0].IntData)
	})

	t.Run("matrix and timeline payloads copy through", func(t *testing.T) {
		cells := [][]string{{"a", "b"}}
		choices := []models.TimelineChoice{{TimelineItemID: "t1", ChosenEventID: "e1"}}
		legacy := &models.LegacyQuizAnswer{
			ItemAnswers: []models.LegacyItemAnswer{
				{QuizItemID: "grid", OptionCells: cells},
				{QuizItemID: "time", TimelineChoices: choices},
			},
		}

		answer, err := MigrateAnswer(legacy, spec)
		require.NoError(t, err)
		assert.Equal(t, cells, answer.ItemAnswers[0].OptionCells)
		assert.Equal(t, choices, answer.ItemAnswers[1].TimelineChoices)
	})

	t.Run("answer referencing an unknown item fails", func(t *testing.T) {
		legacy := &models.LegacyQuizAnswer{
			ItemAnswers: []models.LegacyItemAnswer{
				{QuizItemID: "ghost"},
			},
		}

		_, err := MigrateAnswer(legacy, spec)
		var notFound *AnswerItemNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "ghost", notFound.QuizItemID)
		assert.Contains(t, err.Error(), "ghost")
	})
}
