package migration

import (
	"fmt"
	"strconv"

	"github.com/edufi/quiz-grading-service/internal/models"
)

// AnswerItemNotFoundError is raised when a legacy answer references a quiz
// item id absent from the migrated specification. The pairing is broken
// upstream; migration cannot invent a type for the payload.
type AnswerItemNotFoundError struct {
	QuizItemID string
	SpecIDs    []string
}

func (e *AnswerItemNotFoundError) Error() string {
	return fmt.Sprintf("legacy answer references quiz item %q which does not exist in the specification (spec ids: %v)",
		e.QuizItemID, e.SpecIDs)
}

// MigrateAnswer converts a legacy submission into the current schema. The
// legacy format does not record item types on answers, so each payload is
// reshaped according to the matching item in the (already migrated)
// specification.
func MigrateAnswer(legacy *models.LegacyQuizAnswer, spec *models.QuizSpecification) (*models.UserAnswer, error) {
	answer := &models.UserAnswer{
		Version:     models.SpecVersionCurrent,
		ItemAnswers: make([]models.ItemAnswer, 0, len(legacy.ItemAnswers)),
	}

	for i := range legacy.ItemAnswers {
		old := &legacy.ItemAnswers[i]

		item := spec.ItemByID(old.QuizItemID)
		if item == nil {
			return nil, &AnswerItemNotFoundError{
				QuizItemID: old.QuizItemID,
				SpecIDs:    spec.ItemIDs(),
			}
		}

		answer.ItemAnswers = append(answer.ItemAnswers, migrateItemAnswer(old, item))
	}

	return answer, nil
}

func migrateItemAnswer(old *models.LegacyItemAnswer, item *models.QuizItem) models.ItemAnswer {
	migrated := models.ItemAnswer{
		QuizItemID: old.QuizItemID,
		Type:       item.Type,
	}

	switch item.Type {
	case models.ItemMultipleChoice, models.ItemMultipleChoiceDropdown, models.ItemChooseN:
		migrated.SelectedOptionIDs = old.OptionAnswers

	case models.ItemClosedEndedQuestion, models.ItemEssay:
		migrated.TextData = old.TextData

	case models.ItemCheckbox:
		checked := old.IntData != nil && *old.IntData != 0
		migrated.Checked = &checked

	case models.ItemScale:
		migrated.IntData = old.IntData
		if migrated.IntData == nil && len(old.OptionAnswers) > 0 {
			if value, err := strconv.Atoi(old.OptionAnswers[0]); err == nil {
				migrated.IntData = &value
			}
		}

	case models.ItemMatrix:
		migrated.OptionCells = old.OptionCells

	case models.ItemTimeline:
		migrated.TimelineChoices = old.TimelineChoices
	}

	return migrated
}
