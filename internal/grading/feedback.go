package grading

import (
	"github.com/edufi/quiz-grading-service/internal/models"
)

// ComposeFeedback builds one ItemAnswerFeedback per specification item from
// the raw submission and the assessed gradings. Unanswered items get an
// empty record with coefficient 0 so the caller always sees the full quiz.
func ComposeFeedback(answer *models.UserAnswer, spec *models.QuizSpecification, gradings []models.QuizItemAnswerGrading) []models.ItemAnswerFeedback {
	coefficientByID := make(map[string]float64, len(gradings))
	for _, grading := range gradings {
		coefficientByID[grading.QuizItemID] = grading.CorrectnessCoefficient
	}

	answerByID := make(map[string]*models.ItemAnswer, len(answer.ItemAnswers))
	for i := range answer.ItemAnswers {
		answerByID[answer.ItemAnswers[i].QuizItemID] = &answer.ItemAnswers[i]
	}

	feedbacks := make([]models.ItemAnswerFeedback, 0, len(spec.Items))
	for i := range spec.Items {
		item := &spec.Items[i]

		feedback := models.ItemAnswerFeedback{
			QuizItemID: item.ID,
		}

		itemAnswer, answered := answerByID[item.ID]
		coefficient, graded := coefficientByID[item.ID]

		if answered && graded {
			feedback.CorrectnessCoefficient = coefficient
			feedback.Correct = coefficient == 1
			feedback.FeedbackMessage = itemFeedbackMessage(item, feedback.Correct)
			feedback.OptionFeedbacks = optionFeedbacks(itemAnswer, item)
			feedback.TimelineItemFeedbacks = timelineFeedbacks(itemAnswer, item)
		}

		feedbacks = append(feedbacks, feedback)
	}

	return feedbacks
}

func itemFeedbackMessage(item *models.QuizItem, correct bool) *string {
	if correct {
		return item.SuccessMessage
	}
	return item.FailureMessage
}

// optionFeedbacks produces one record per selected option, carrying the
// option's configured post-submission message (falling back to the item's
// shared message) and whether that particular option was correct.
func optionFeedbacks(answer *models.ItemAnswer, item *models.QuizItem) []models.QuizItemOptionFeedback {
	if len(answer.SelectedOptionIDs) == 0 || len(item.Options) == 0 {
		return nil
	}

	feedbacks := make([]models.QuizItemOptionFeedback, 0, len(answer.SelectedOptionIDs))
	for _, selectedID := range answer.SelectedOptionIDs {
		option := item.OptionByID(selectedID)
		if option == nil {
			continue
		}

		message := option.MessageAfterSubmissionWhenSelected
		if message == nil {
			message = item.SharedOptionFeedbackMessage
		}

		feedbacks = append(feedbacks, models.QuizItemOptionFeedback{
			OptionID:             option.ID,
			OptionFeedback:       message,
			ThisOptionWasCorrect: option.Correct,
		})
	}
	return feedbacks
}

func timelineFeedbacks(answer *models.ItemAnswer, item *models.QuizItem) []models.TimelineItemFeedback {
	if len(answer.TimelineChoices) == 0 {
		return nil
	}

	correctBySlot := make(map[string]string, len(item.TimelineItems))
	for _, slot := range item.TimelineItems {
		correctBySlot[slot.ID] = slot.CorrectEventID
	}

	feedbacks := make([]models.TimelineItemFeedback, 0, len(answer.TimelineChoices))
	for _, choice := range answer.TimelineChoices {
		wanted, known := correctBySlot[choice.TimelineItemID]
		feedbacks = append(feedbacks, models.TimelineItemFeedback{
			TimelineItemID:          choice.TimelineItemID,
			WhatWasChosenWasCorrect: known && wanted == choice.ChosenEventID,
		})
	}
	return feedbacks
}
