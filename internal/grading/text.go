package grading

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/edufi/quiz-grading-service/internal/models"
)

// assessClosedEnded grades a closed-ended question by matching the sanitized
// text answer against the item's validity regex. An item without a validity
// regex accepts any submitted answer.
func (g *Grader) assessClosedEnded(answer *models.ItemAnswer, item *models.QuizItem) (float64, error) {
	if answer.TextData == nil {
		return 0, ErrMissingText
	}

	text := SanitizeAnswerText(*answer.TextData)

	if item.ValidityRegex == nil {
		return 1, nil
	}

	pattern, err := regexp.Compile(strings.TrimSpace(*item.ValidityRegex))
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidValidityRegex, *item.ValidityRegex, err)
	}

	if pattern.MatchString(text) {
		return 1, nil
	}
	return 0, nil
}

// assessEssay grades an essay by word count against the optional min/max
// bounds. Essays inside bounds (or with no bounds) are fully correct.
func (g *Grader) assessEssay(answer *models.ItemAnswer, item *models.QuizItem) (float64, error) {
	if answer.TextData == nil {
		return 0, ErrMissingText
	}

	words := CountWords(*answer.TextData)

	if item.MinWords != nil && words < *item.MinWords {
		return 0, nil
	}
	if item.MaxWords != nil && words > *item.MaxWords {
		return 0, nil
	}
	return 1, nil
}

// SanitizeAnswerText removes NUL bytes and other non-printable characters
// from a submitted text answer and trims surrounding whitespace. Whitespace
// inside the text survives.
func SanitizeAnswerText(text string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r == 0 {
			return -1
		}
		if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
	return strings.TrimSpace(cleaned)
}

// CountWords counts whitespace-separated words in a submission.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
