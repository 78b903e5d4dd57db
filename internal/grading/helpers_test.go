package grading

import (
	"io"
	"log/slog"

	"github.com/edufi/quiz-grading-service/internal/models"
	"github.com/edufi/quiz-grading-service/internal/utils"
)

func testGrader() *Grader {
	logger := utils.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewGrader(logger)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func option(id string, correct bool) models.QuizItemOption {
	return models.QuizItemOption{ID: id, Correct: correct}
}

func choiceAnswer(itemID string, itemType models.QuizItemType, selected ...string) *models.ItemAnswer {
	return &models.ItemAnswer{
		QuizItemID:        itemID,
		Type:              itemType,
		SelectedOptionIDs: selected,
	}
}
