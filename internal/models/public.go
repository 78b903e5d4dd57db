package models

// PublicSpecQuiz is the student-facing view of a QuizSpecification with every
// answer-revealing field stripped: no correct flags, no correct event ids, no
// validity regex body, no post-submission messages. Item ordering and display
// metadata survive unchanged.
type PublicSpecQuiz struct {
	Version                  string           `json:"version"`
	Title                    *string          `json:"title"`
	Body                     *string          `json:"body"`
	QuizItemDisplayDirection DisplayDirection `json:"quizItemDisplayDirection"`
	Items                    []PublicQuizItem `json:"items"`
}

type PublicQuizItem struct {
	ID    string       `json:"id"`
	Type  QuizItemType `json:"type"`
	Order int          `json:"order"`

	Title *string `json:"title,omitempty"`
	Body  *string `json:"body,omitempty"`

	Options                       []PublicQuizItemOption `json:"options,omitempty"`
	AllowSelectingMultipleOptions bool                   `json:"allowSelectingMultipleOptions,omitempty"`
	OptionDisplayDirection        DisplayDirection       `json:"optionDisplayDirection,omitempty"`

	N int `json:"n,omitempty"`

	// Display-safe pattern hint only; the grading regex never leaves the
	// private spec.
	FormatRegex *string `json:"formatRegexp,omitempty"`

	MinWords *int `json:"minWords,omitempty"`
	MaxWords *int `json:"maxWords,omitempty"`
	MinValue *int `json:"minValue,omitempty"`
	MaxValue *int `json:"maxValue,omitempty"`

	TimelineItems  []PublicTimelineItem `json:"timelineItems,omitempty"`
	TimelineEvents []TimelineEvent      `json:"timelineEvents,omitempty"`
}

type PublicQuizItemOption struct {
	ID    string  `json:"id"`
	Order int     `json:"order"`
	Title *string `json:"title,omitempty"`
	Body  *string `json:"body,omitempty"`
}

// PublicTimelineItem keeps the slot and its year but not which event belongs
// to it.
type PublicTimelineItem struct {
	ID   string `json:"id"`
	Year string `json:"year"`
}

// TimelineEvent is one of the events the student drags onto timeline slots.
// The public spec lists the events detached from their slots.
type TimelineEvent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ModelSolutionQuiz is the teacher-facing solution view: the full private
// spec plus the per-option correctness explanations, serialized as-is. A
// distinct type keeps the two outbound surfaces from drifting into each
// other.
type ModelSolutionQuiz struct {
	QuizSpecification
}
