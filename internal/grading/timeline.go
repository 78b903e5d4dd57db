package grading

import (
	"github.com/edufi/quiz-grading-service/internal/models"
)

// assessTimeline grades a timeline item as the share of timeline slots whose
// chosen event matches the slot's correct event. Choices referencing slots
// the specification does not know about earn nothing.
func (g *Grader) assessTimeline(answer *models.ItemAnswer, item *models.QuizItem) (float64, error) {
	if len(item.TimelineItems) == 0 {
		return 0, ErrNoTimelineItems
	}

	correctBySlot := make(map[string]string, len(item.TimelineItems))
	for _, slot := range item.TimelineItems {
		correctBySlot[slot.ID] = slot.CorrectEventID
	}

	correctCount := 0
	for _, choice := range answer.TimelineChoices {
		if wanted, ok := correctBySlot[choice.TimelineItemID]; ok && wanted == choice.ChosenEventID {
			correctCount++
		}
	}

	coefficient := Clamp01(SafeDivide(float64(correctCount), float64(len(item.TimelineItems)), 0))
	return g.guardCoefficient(coefficient, item.ID), nil
}
