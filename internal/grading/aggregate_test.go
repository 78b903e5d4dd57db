package grading

import (
	"math"
	"testing"

	"github.com/edufi/quiz-grading-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestTotalScore(t *testing.T) {
	grader := testGrader()

	spec := &models.QuizSpecification{
		Version: models.SpecVersionCurrent,
		Items: []models.QuizItem{
			{ID: "q1", Type: models.ItemCheckbox},
			{ID: "q2", Type: models.ItemCheckbox},
			{ID: "q3", Type: models.ItemCheckbox},
		},
	}

	t.Run("coefficients sum per item", func(t *testing.T) {
		gradings := []models.QuizItemAnswerGrading{
			{QuizItemID: "q1", CorrectnessCoefficient: 1},
			{QuizItemID: "q2", CorrectnessCoefficient: 0.5},
			{QuizItemID: "q3", CorrectnessCoefficient: 0},
		}
		assert.Equal(t, 1.5, grader.TotalScore(gradings, spec))
	})

	t.Run("unanswered items contribute 0", func(t *testing.T) {
		gradings := []models.QuizItemAnswerGrading{
			{QuizItemID: "q1", CorrectnessCoefficient: 1},
		}
		assert.Equal(t, 1.0, grader.TotalScore(gradings, spec))
	})

	t.Run("coefficients above 1 are clamped", func(t *testing.T) {
		gradings := []models.QuizItemAnswerGrading{
			{QuizItemID: "q1", CorrectnessCoefficient: 7},
		}
		assert.Equal(t, 1.0, grader.TotalScore(gradings, spec))
	})

	t.Run("invalid coefficients are skipped", func(t *testing.T) {
		gradings := []models.QuizItemAnswerGrading{
			{QuizItemID: "q1", CorrectnessCoefficient: math.NaN()},
			{QuizItemID: "q2", CorrectnessCoefficient: 1},
		}
		assert.Equal(t, 1.0, grader.TotalScore(gradings, spec))
	})

	t.Run("awardPointsEvenIfWrong grants full marks", func(t *testing.T) {
		generous := &models.QuizSpecification{
			Version:                models.SpecVersionCurrent,
			AwardPointsEvenIfWrong: true,
			Items: []models.QuizItem{
				{ID: "q1"}, {ID: "q2"}, {ID: "q3"}, {ID: "q4"},
			},
		}
		gradings := []models.QuizItemAnswerGrading{
			{QuizItemID: "q1", CorrectnessCoefficient: 0},
		}
		assert.Equal(t, 4.0, grader.TotalScore(gradings, generous))
	})

	t.Run("empty spec scores 0", func(t *testing.T) {
		empty := &models.QuizSpecification{Version: models.SpecVersionCurrent}
		assert.Equal(t, 0.0, grader.TotalScore(nil, empty))
	})
}

func TestMaxScore(t *testing.T) {
	spec := &models.QuizSpecification{
		Version: models.SpecVersionCurrent,
		Items:   []models.QuizItem{{ID: "q1"}, {ID: "q2"}},
	}
	assert.Equal(t, 2.0, MaxScore(spec))

	assert.Equal(t, 0.0, MaxScore(&models.QuizSpecification{}))
}
