package grading

import (
	"github.com/edufi/quiz-grading-service/internal/models"
)

// assessMultipleChoice grades a multiple-choice item. Single-select items
// are all-or-nothing; multi-select items are scored by the item's grading
// policy, normalized by the number of correct options and clamped to [0,1].
func (g *Grader) assessMultipleChoice(answer *models.ItemAnswer, item *models.QuizItem) (float64, error) {
	if len(answer.SelectedOptionIDs) == 0 {
		return 0, ErrNoSelection
	}

	if !item.AllowSelectingMultipleOptions {
		if len(answer.SelectedOptionIDs) > 1 {
			return 0, ErrMultipleNotAllowed
		}
		option := item.OptionByID(answer.SelectedOptionIDs[0])
		if option != nil && option.Correct {
			return 1, nil
		}
		return 0, nil
	}

	correctSelected, incorrectSelected := countSelections(answer.SelectedOptionIDs, item)
	totalCorrect := item.CorrectOptionCount()

	var raw float64
	switch item.MultipleChoiceGradingPolicy {
	case models.PolicyPointsOffIncorrect:
		raw = max0(float64(correctSelected - incorrectSelected))
	case models.PolicyPointsOffUnselected:
		raw = max0(float64(correctSelected*2 - totalCorrect - incorrectSelected))
	case models.PolicySomeCorrectNoneIncorrect:
		if correctSelected > 0 && incorrectSelected == 0 {
			raw = float64(totalCorrect)
		}
	default:
		// Unrecognized policies fall back to strict all-or-nothing.
		if correctSelected == totalCorrect && incorrectSelected == 0 {
			raw = float64(totalCorrect)
		}
	}

	coefficient := Clamp01(SafeDivide(raw, float64(totalCorrect), 0))
	return g.guardCoefficient(coefficient, item.ID), nil
}

// assessMultipleChoiceDropdown grades the single-select-from-list variant.
// An empty or unknown selection is a wrong answer here, not an error: the
// widget allows submitting without touching the dropdown.
func (g *Grader) assessMultipleChoiceDropdown(answer *models.ItemAnswer, item *models.QuizItem) (float64, error) {
	if len(answer.SelectedOptionIDs) == 0 {
		return 0, nil
	}
	option := item.OptionByID(answer.SelectedOptionIDs[0])
	if option == nil {
		return 0, nil
	}
	if option.Correct {
		return 1, nil
	}
	return 0, nil
}

// assessChooseN grades a pick-n item: credit is the share of correct picks
// out of min(n, number of correct options).
func (g *Grader) assessChooseN(answer *models.ItemAnswer, item *models.QuizItem) (float64, error) {
	if len(answer.SelectedOptionIDs) == 0 {
		return 0, ErrNoSelection
	}

	correctSelected, _ := countSelections(answer.SelectedOptionIDs, item)
	totalCorrect := item.CorrectOptionCount()

	denominator := item.N
	if totalCorrect < denominator {
		denominator = totalCorrect
	}

	coefficient := Clamp01(SafeDivide(float64(correctSelected), float64(denominator), 0))
	return g.guardCoefficient(coefficient, item.ID), nil
}

// countSelections splits the selected option ids into correct and incorrect
// picks. Ids that match no option at all count as incorrect picks.
func countSelections(selectedIDs []string, item *models.QuizItem) (correct, incorrect int) {
	for _, id := range selectedIDs {
		option := item.OptionByID(id)
		if option != nil && option.Correct {
			correct++
		} else {
			incorrect++
		}
	}
	return correct, incorrect
}

func max0(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}
