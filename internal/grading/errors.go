package grading

import (
	"errors"
	"fmt"

	"github.com/edufi/quiz-grading-service/internal/models"
)

// Structural errors. These indicate a mismatched or malformed spec/answer
// pairing and propagate to the HTTP boundary as failures; they are never
// converted into a zero score.
var (
	ErrNoSelection          = errors.New("answer contains no selected options")
	ErrMultipleNotAllowed   = errors.New("multiple options selected but item allows only one")
	ErrMissingText          = errors.New("answer contains no text data")
	ErrMissingAnswerGrid    = errors.New("answer contains no matrix cells")
	ErrMissingSpecGrid      = errors.New("specification item has no matrix cells")
	ErrNoTimelineItems      = errors.New("specification item has no timeline items")
	ErrInvalidValidityRegex = errors.New("specification validity regex does not compile")
	ErrAnswerTypeMismatch   = errors.New("answer type does not match specification item type")
)

// ItemNotInSpecError is raised when a submission references a quiz item id
// absent from the paired specification. The diagnostic carries both id sets
// because the usual cause is a stale spec/answer pairing upstream, and the
// full listing is what makes that visible in logs.
type ItemNotInSpecError struct {
	MissingID   string
	AnsweredIDs []string
	SpecIDs     []string
}

func (e *ItemNotInSpecError) Error() string {
	return fmt.Sprintf(
		"answered quiz item %q does not exist in the specification (answered ids: %v, spec ids: %v)",
		e.MissingID, e.AnsweredIDs, e.SpecIDs,
	)
}

// UnknownItemTypeError is raised when a tagged union carries a type tag
// outside the closed set. Migration degrades these; the grading dispatcher
// does not.
type UnknownItemTypeError struct {
	Type models.QuizItemType
}

func (e *UnknownItemTypeError) Error() string {
	return fmt.Sprintf("unknown quiz item type %q", e.Type)
}
