package grading

import (
	"fmt"

	"github.com/edufi/quiz-grading-service/internal/models"
	"github.com/edufi/quiz-grading-service/internal/utils"
)

// Grader evaluates submissions against specifications. It holds no mutable
// state; a single Grader is safe for concurrent use.
type Grader struct {
	logger utils.Logger

	// onRecovered, when set, is invoked every time a numeric guard replaced
	// an invalid value with 0. itemID is empty for aggregate-level
	// recoveries.
	onRecovered func(itemID string, raw float64)
}

func NewGrader(logger utils.Logger) *Grader {
	return &Grader{logger: logger}
}

// NewGraderWithRecovery returns a Grader that reports numeric recoveries
// through the given hook in addition to logging them.
func NewGraderWithRecovery(logger utils.Logger, onRecovered func(itemID string, raw float64)) *Grader {
	return &Grader{logger: logger, onRecovered: onRecovered}
}

// AssessAnswers assesses every answered item against its specification item
// and returns one grading per answer, in submission order.
//
// An answered id missing from the specification is a caller/data-integrity
// error, not a grading outcome, and aborts the whole assessment.
func (g *Grader) AssessAnswers(answer *models.UserAnswer, spec *models.QuizSpecification) ([]models.QuizItemAnswerGrading, error) {
	gradings := make([]models.QuizItemAnswerGrading, 0, len(answer.ItemAnswers))

	for i := range answer.ItemAnswers {
		itemAnswer := &answer.ItemAnswers[i]

		item := spec.ItemByID(itemAnswer.QuizItemID)
		if item == nil {
			return nil, &ItemNotInSpecError{
				MissingID:   itemAnswer.QuizItemID,
				AnsweredIDs: answer.AnsweredItemIDs(),
				SpecIDs:     spec.ItemIDs(),
			}
		}

		if itemAnswer.Type != item.Type {
			return nil, fmt.Errorf("%w: quiz item %q is %q but the answer is tagged %q",
				ErrAnswerTypeMismatch, item.ID, item.Type, itemAnswer.Type)
		}

		coefficient, err := g.assessItem(itemAnswer, item)
		if err != nil {
			return nil, err
		}

		gradings = append(gradings, models.QuizItemAnswerGrading{
			QuizItemID:             item.ID,
			CorrectnessCoefficient: coefficient,
		})
	}

	return gradings, nil
}

// assessItem routes one answered item to its type-specific assessor. The
// switch is exhaustive over the closed item-type set; an unknown tag is an
// error rather than a zero score.
func (g *Grader) assessItem(answer *models.ItemAnswer, item *models.QuizItem) (float64, error) {
	switch answer.Type {
	case models.ItemMultipleChoice:
		return g.assessMultipleChoice(answer, item)
	case models.ItemMultipleChoiceDropdown:
		return g.assessMultipleChoiceDropdown(answer, item)
	case models.ItemChooseN:
		return g.assessChooseN(answer, item)
	case models.ItemClosedEndedQuestion:
		return g.assessClosedEnded(answer, item)
	case models.ItemEssay:
		return g.assessEssay(answer, item)
	case models.ItemMatrix:
		return g.assessMatrix(answer, item)
	case models.ItemTimeline:
		return g.assessTimeline(answer, item)
	case models.ItemCheckbox, models.ItemScale:
		// Deliberately ungraded types: always fully correct.
		return 1, nil
	default:
		return 0, &UnknownItemTypeError{Type: answer.Type}
	}
}

// guardCoefficient is the last check before a coefficient leaves an
// assessor. Invalid numbers are logged and replaced with 0 so the request
// still succeeds with a conservative score.
func (g *Grader) guardCoefficient(coefficient float64, itemID string) float64 {
	if !IsValidNumber(coefficient) {
		g.logger.Error("computed correctness coefficient is not a valid number, returning 0",
			"quiz_item_id", itemID,
			"coefficient", coefficient)
		if g.onRecovered != nil {
			g.onRecovered(itemID, coefficient)
		}
		return 0
	}
	return coefficient
}
