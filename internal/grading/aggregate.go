package grading

import (
	"github.com/edufi/quiz-grading-service/internal/models"
)

// TotalScore combines per-item coefficients into the submission's score.
// Each specification item is worth one point; unanswered items contribute 0.
// When awardPointsEvenIfWrong is set the quiz grants full marks regardless
// of the assessed coefficients.
//
// Accumulation follows specification item order so repeated gradings of the
// same inputs sum in the same order and stay byte-identical.
func (g *Grader) TotalScore(gradings []models.QuizItemAnswerGrading, spec *models.QuizSpecification) float64 {
	if spec.AwardPointsEvenIfWrong {
		return float64(len(spec.Items))
	}

	byItemID := make(map[string]float64, len(gradings))
	for _, grading := range gradings {
		byItemID[grading.QuizItemID] = grading.CorrectnessCoefficient
	}

	score := 0.0
	for i := range spec.Items {
		coefficient, ok := byItemID[spec.Items[i].ID]
		if !ok || !IsValidNumber(coefficient) {
			continue
		}
		score += Clamp01(coefficient)
	}

	if !IsValidNumber(score) || score < 0 {
		g.logger.Error("aggregated score is not a valid non-negative number, returning 0",
			"score", score,
			"item_count", len(spec.Items))
		if g.onRecovered != nil {
			g.onRecovered("", score)
		}
		return 0
	}
	return score
}

// MaxScore is the maximum attainable score: one point per specification
// item.
func MaxScore(spec *models.QuizSpecification) float64 {
	return float64(len(spec.Items))
}
