package grading

import (
	"testing"

	"github.com/edufi/quiz-grading-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessAnswers(t *testing.T) {
	grader := testGrader()

	spec := &models.QuizSpecification{
		Version: models.SpecVersionCurrent,
		Items: []models.QuizItem{
			{
				ID:   "q1",
				Type: models.ItemMultipleChoice,
				Options: []models.QuizItemOption{
					option("o1", true),
					option("o2", false),
				},
			},
			{ID: "q2", Type: models.ItemCheckbox},
			{ID: "q3", Type: models.ItemScale, MinValue: intPtr(1), MaxValue: intPtr(5)},
		},
	}

	t.Run("gradings come back in submission order", func(t *testing.T) {
		checked := true
		three := 3
		answer := &models.UserAnswer{
			Version: models.SpecVersionCurrent,
			ItemAnswers: []models.ItemAnswer{
				{QuizItemID: "q3", Type: models.ItemScale, IntData: &three},
				{QuizItemID: "q1", Type: models.ItemMultipleChoice, SelectedOptionIDs: []string{"o1"}},
				{QuizItemID: "q2", Type: models.ItemCheckbox, Checked: &checked},
			},
		}

		gradings, err := grader.AssessAnswers(answer, spec)
		require.NoError(t, err)
		require.Len(t, gradings, 3)
		assert.Equal(t, "q3", gradings[0].QuizItemID)
		assert.Equal(t, "q1", gradings[1].QuizItemID)
		assert.Equal(t, "q2", gradings[2].QuizItemID)
	})

	t.Run("checkbox and scale always score 1", func(t *testing.T) {
		answer := &models.UserAnswer{
			Version: models.SpecVersionCurrent,
			ItemAnswers: []models.ItemAnswer{
				{QuizItemID: "q2", Type: models.ItemCheckbox},
				{QuizItemID: "q3", Type: models.ItemScale},
			},
		}

		gradings, err := grader.AssessAnswers(answer, spec)
		require.NoError(t, err)
		require.Len(t, gradings, 2)
		assert.Equal(t, 1.0, gradings[0].CorrectnessCoefficient)
		assert.Equal(t, 1.0, gradings[1].CorrectnessCoefficient)
	})

	t.Run("answered id missing from spec aborts with a diagnostic", func(t *testing.T) {
		answer := &models.UserAnswer{
			Version: models.SpecVersionCurrent,
			ItemAnswers: []models.ItemAnswer{
				{QuizItemID: "q1", Type: models.ItemMultipleChoice, SelectedOptionIDs: []string{"o1"}},
				{QuizItemID: "ghost", Type: models.ItemCheckbox},
			},
		}

		_, err := grader.AssessAnswers(answer, spec)
		var notInSpec *ItemNotInSpecError
		require.ErrorAs(t, err, &notInSpec)
		assert.Equal(t, "ghost", notInSpec.MissingID)
		assert.Equal(t, []string{"q1", "ghost"}, notInSpec.AnsweredIDs)
		assert.Equal(t, []string{"q1", "q2", "q3"}, notInSpec.SpecIDs)
		assert.Contains(t, err.Error(), "ghost")
		assert.Contains(t, err.Error(), "q2")
	})

	t.Run("answer type must match the spec item type", func(t *testing.T) {
		answer := &models.UserAnswer{
			Version: models.SpecVersionCurrent,
			ItemAnswers: []models.ItemAnswer{
				{QuizItemID: "q1", Type: models.ItemEssay, TextData: strPtr("essay text")},
			},
		}

		_, err := grader.AssessAnswers(answer, spec)
		assert.ErrorIs(t, err, ErrAnswerTypeMismatch)
	})

	t.Run("unknown item type is an error", func(t *testing.T) {
		weird := &models.QuizSpecification{
			Version: models.SpecVersionCurrent,
			Items:   []models.QuizItem{{ID: "q1", Type: "hologram"}},
		}
		answer := &models.UserAnswer{
			Version:     models.SpecVersionCurrent,
			ItemAnswers: []models.ItemAnswer{{QuizItemID: "q1", Type: "hologram"}},
		}

		_, err := grader.AssessAnswers(answer, weird)
		var unknown *UnknownItemTypeError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, models.QuizItemType("hologram"), unknown.Type)
	})

	t.Run("empty submission grades to nothing", func(t *testing.T) {
		answer := &models.UserAnswer{Version: models.SpecVersionCurrent}
		gradings, err := grader.AssessAnswers(answer, spec)
		require.NoError(t, err)
		assert.Empty(t, gradings)
	})
}
