package models

// SpecVersionCurrent is the schema version emitted by migration and required
// of any incoming versioned document.
const SpecVersionCurrent = "2"

// QuizItemType tags the variant of a QuizItem or ItemAnswer.
type QuizItemType string

const (
	ItemMultipleChoice         QuizItemType = "multiple-choice"
	ItemMultipleChoiceDropdown QuizItemType = "multiple-choice-dropdown"
	ItemChooseN                QuizItemType = "choose-n"
	ItemClosedEndedQuestion    QuizItemType = "closed-ended-question"
	ItemEssay                  QuizItemType = "essay"
	ItemMatrix                 QuizItemType = "matrix"
	ItemTimeline               QuizItemType = "timeline"
	ItemCheckbox               QuizItemType = "checkbox"
	ItemScale                  QuizItemType = "scale"
)

// AllQuizItemTypes lists every recognized item type tag, for validation.
var AllQuizItemTypes = []QuizItemType{
	ItemMultipleChoice,
	ItemMultipleChoiceDropdown,
	ItemChooseN,
	ItemClosedEndedQuestion,
	ItemEssay,
	ItemMatrix,
	ItemTimeline,
	ItemCheckbox,
	ItemScale,
}

// MultipleChoiceGradingPolicy selects how a multi-select multiple-choice item
// scores partial answers.
type MultipleChoiceGradingPolicy string

const (
	// PolicyDefault grants full credit only for selecting exactly the
	// correct set, otherwise nothing.
	PolicyDefault MultipleChoiceGradingPolicy = "default"
	// PolicyPointsOffIncorrect subtracts one per incorrect selection.
	PolicyPointsOffIncorrect MultipleChoiceGradingPolicy = "points-off-incorrect-options"
	// PolicyPointsOffUnselected subtracts one per incorrect selection and one
	// per missed correct option.
	PolicyPointsOffUnselected MultipleChoiceGradingPolicy = "points-off-unselected-options"
	// PolicySomeCorrectNoneIncorrect grants full credit when at least one
	// correct option and no incorrect option is selected, otherwise nothing.
	PolicySomeCorrectNoneIncorrect MultipleChoiceGradingPolicy = "some-correct-none-incorrect"
)

// GrantPointsPolicy controls point aggregation across items. Kept verbatim
// from the stored document; the aggregator only inspects
// AwardPointsEvenIfWrong.
type GrantPointsPolicy string

// DisplayDirection is a layout hint for rendering items or options.
type DisplayDirection string

const (
	DirectionHorizontal DisplayDirection = "horizontal"
	DirectionVertical   DisplayDirection = "vertical"
)

// MatrixSize is the fixed edge length of the matrix answer grid.
const MatrixSize = 6

// QuizSpecification is the current-schema private quiz document: items with
// their correct answers and feedback messages included.
type QuizSpecification struct {
	Version                  string            `json:"version" validate:"required"`
	Title                    *string           `json:"title"`
	Body                     *string           `json:"body"`
	AwardPointsEvenIfWrong   bool              `json:"awardPointsEvenIfWrong"`
	GrantPointsPolicy        GrantPointsPolicy `json:"grantPointsPolicy"`
	QuizItemDisplayDirection DisplayDirection  `json:"quizItemDisplayDirection" validate:"omitempty,display_direction"`
	SubmitMessage            *string           `json:"submitMessage"`
	Items                    []QuizItem        `json:"items" validate:"dive"`
}

// ItemByID returns the item with the given id, or nil when the specification
// has no such item.
func (s *QuizSpecification) ItemByID(id string) *QuizItem {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i]
		}
	}
	return nil
}

// ItemIDs returns the ids of all items in specification order.
func (s *QuizSpecification) ItemIDs() []string {
	ids := make([]string, 0, len(s.Items))
	for i := range s.Items {
		ids = append(ids, s.Items[i].ID)
	}
	return ids
}

// QuizItem is a tagged union over Type: each variant populates its own field
// group and leaves the rest at their zero values.
type QuizItem struct {
	ID    string       `json:"id" validate:"required"`
	Type  QuizItemType `json:"type" validate:"required,quiz_item_type"`
	Order int          `json:"order"`

	Title *string `json:"title"`
	Body  *string `json:"body"`

	// Shown after submission depending on whether the coefficient was 1.
	SuccessMessage *string `json:"successMessage"`
	FailureMessage *string `json:"failureMessage"`

	// Fallback option feedback when an option carries no message of its own.
	SharedOptionFeedbackMessage *string `json:"sharedOptionFeedbackMessage"`

	// multiple-choice, multiple-choice-dropdown, choose-n
	Options                       []QuizItemOption            `json:"options,omitempty"`
	AllowSelectingMultipleOptions bool                        `json:"allowSelectingMultipleOptions,omitempty"`
	MultipleChoiceGradingPolicy   MultipleChoiceGradingPolicy `json:"multipleChoiceMultipleOptionsGradingPolicy,omitempty" validate:"omitempty,grading_policy"`
	OptionDisplayDirection        DisplayDirection            `json:"optionDisplayDirection,omitempty" validate:"omitempty,display_direction"`

	// choose-n
	N int `json:"n,omitempty"`

	// closed-ended-question
	ValidityRegex *string `json:"validityRegexp,omitempty"`
	FormatRegex   *string `json:"formatRegexp,omitempty"`

	// essay
	MinWords *int `json:"minWords,omitempty"`
	MaxWords *int `json:"maxWords,omitempty"`

	// scale
	MinValue *int `json:"minValue,omitempty"`
	MaxValue *int `json:"maxValue,omitempty"`

	// matrix: the correct grid, row-major, up to MatrixSize by MatrixSize
	OptionCells [][]string `json:"optionCells,omitempty"`

	// timeline
	TimelineItems []TimelineItem `json:"timelineItems,omitempty"`
}

// CorrectOptionCount returns how many of the item's options are marked
// correct.
func (i *QuizItem) CorrectOptionCount() int {
	count := 0
	for idx := range i.Options {
		if i.Options[idx].Correct {
			count++
		}
	}
	return count
}

// OptionByID returns the option with the given id, or nil.
func (i *QuizItem) OptionByID(id string) *QuizItemOption {
	for idx := range i.Options {
		if i.Options[idx].ID == id {
			return &i.Options[idx]
		}
	}
	return nil
}

type QuizItemOption struct {
	ID      string  `json:"id" validate:"required"`
	Order   int     `json:"order"`
	Correct bool    `json:"correct"`
	Title   *string `json:"title"`
	Body    *string `json:"body"`

	MessageAfterSubmissionWhenSelected *string `json:"messageAfterSubmissionWhenSelected"`
}

// TimelineItem is one slot on a timeline item: a year paired with the event
// that belongs to it.
type TimelineItem struct {
	ID               string `json:"id" validate:"required"`
	Year             string `json:"year"`
	CorrectEventID   string `json:"correctEventId"`
	CorrectEventName string `json:"correctEventName"`
}
