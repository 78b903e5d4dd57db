package migration

import (
	"github.com/edufi/quiz-grading-service/internal/models"
	"github.com/edufi/quiz-grading-service/internal/utils"
)

// DefaultChooseN is the pick count assigned to migrated clickable
// multiple-choice items; the legacy schema had no such field.
const DefaultChooseN = 2

// Legacy item type tags.
const (
	legacyTypeOpen              = "open"
	legacyTypeEssay             = "essay"
	legacyTypeMultipleChoice    = "multiple-choice"
	legacyTypeClickableMultiple = "clickable-multiple-choice"
	legacyTypeDropdown          = "multiple-choice-dropdown"
	legacyTypeCheckbox          = "checkbox"
	legacyTypeScale             = "scale"
	legacyTypeMatrix            = "matrix"
	legacyTypeTimeline          = "timeline"
)

// MigrateSpecification converts a legacy specification into the current
// schema. Unrecognized legacy item types degrade to placeholder essay items
// with a logged diagnostic: a gradable (if degraded) spec beats rejecting
// the whole request.
func MigrateSpecification(legacy *models.LegacyQuizSpecification, logger utils.Logger) *models.QuizSpecification {
	spec := &models.QuizSpecification{
		Version:                  models.SpecVersionCurrent,
		Title:                    legacy.Title,
		Body:                     legacy.Body,
		AwardPointsEvenIfWrong:   legacy.AwardPointsEvenIfWrong,
		GrantPointsPolicy:        models.GrantPointsPolicy(legacy.GrantPointsPolicy),
		QuizItemDisplayDirection: migrateDirection(legacy.Direction),
		SubmitMessage:            legacy.SubmitMessage,
		Items:                    make([]models.QuizItem, 0, len(legacy.Items)),
	}

	for i := range legacy.Items {
		spec.Items = append(spec.Items, migrateItem(&legacy.Items[i], logger))
	}

	return spec
}

func migrateItem(legacy *models.LegacyQuizItem, logger utils.Logger) models.QuizItem {
	item := models.QuizItem{
		ID:             legacy.ID,
		Order:          legacy.Order,
		Title:          legacy.Title,
		Body:           legacy.Body,
		SuccessMessage: legacy.SuccessMessage,
		FailureMessage: legacy.FailureMessage,
	}

	switch legacy.Type {
	case legacyTypeOpen:
		item.Type = models.ItemClosedEndedQuestion
		item.ValidityRegex = legacy.ValidityRegex
		item.FormatRegex = legacy.FormatRegex

	case legacyTypeEssay:
		item.Type = models.ItemEssay
		item.MinWords = legacy.MinWords
		item.MaxWords = legacy.MaxWords

	case legacyTypeMultipleChoice:
		item.Type = models.ItemMultipleChoice
		item.AllowSelectingMultipleOptions = legacy.Multi
		item.MultipleChoiceGradingPolicy = models.MultipleChoiceGradingPolicy(legacy.MultipleChoiceGradingPolicy)
		item.OptionDisplayDirection = migrateDirection(legacy.Direction)
		item.Options = migrateOptions(legacy.Options)

	case legacyTypeClickableMultiple:
		item.Type = models.ItemChooseN
		item.N = DefaultChooseN
		item.Options = migrateOptions(legacy.Options)

	case legacyTypeDropdown:
		item.Type = models.ItemMultipleChoiceDropdown
		item.Options = migrateOptions(legacy.Options)

	case legacyTypeCheckbox:
		item.Type = models.ItemCheckbox

	case legacyTypeScale:
		item.Type = models.ItemScale
		item.MinValue = legacy.MinValue
		item.MaxValue = legacy.MaxValue

	case legacyTypeMatrix:
		item.Type = models.ItemMatrix
		item.OptionCells = legacy.OptionCells

	case legacyTypeTimeline:
		item.Type = models.ItemTimeline
		item.TimelineItems = migrateTimelineItems(legacy.TimelineItems)

	default:
		logger.Error("unrecognized legacy quiz item type, degrading to placeholder essay item",
			"quiz_item_id", legacy.ID,
			"legacy_type", legacy.Type)
		item.Type = models.ItemEssay
	}

	return item
}

// migrateOptions copies options, merging the legacy per-option success and
// failure messages into messageAfterSubmissionWhenSelected: an already
// populated new-style field wins, otherwise the success message is used for
// correct options and the failure message for incorrect ones.
func migrateOptions(legacy []models.LegacyQuizOption) []models.QuizItemOption {
	if len(legacy) == 0 {
		return nil
	}

	options := make([]models.QuizItemOption, 0, len(legacy))
	for _, old := range legacy {
		message := old.MessageAfterSubmissionWhenSelected
		if message == nil {
			if old.Correct {
				message = old.SuccessMessage
			} else {
				message = old.FailureMessage
			}
		}

		options = append(options, models.QuizItemOption{
			ID:                                 old.ID,
			Order:                              old.Order,
			Correct:                            old.Correct,
			Title:                              old.Title,
			Body:                               old.Body,
			MessageAfterSubmissionWhenSelected: message,
		})
	}
	return options
}

func migrateTimelineItems(legacy []models.LegacyTimelineItem) []models.TimelineItem {
	if len(legacy) == 0 {
		return nil
	}

	items := make([]models.TimelineItem, 0, len(legacy))
	for _, old := range legacy {
		items = append(items, models.TimelineItem{
			ID:               old.ID,
			Year:             old.Year,
			CorrectEventID:   old.CorrectEventID,
			CorrectEventName: old.CorrectEventName,
		})
	}
	return items
}

func migrateDirection(legacy string) models.DisplayDirection {
	switch legacy {
	case "row":
		return models.DirectionHorizontal
	case "column":
		return models.DirectionVertical
	default:
		return models.DirectionVertical
	}
}
