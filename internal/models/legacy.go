package models

// Legacy (pre-versioning) schema. A record without a "version" field is in
// this format and must be migrated before grading.

type LegacyQuizSpecification struct {
	ID                     string           `json:"id"`
	Title                  *string          `json:"title"`
	Body                   *string          `json:"body"`
	AwardPointsEvenIfWrong bool             `json:"awardPointsEvenIfWrong"`
	GrantPointsPolicy      string           `json:"grantPointsPolicy"`
	SubmitMessage          *string          `json:"submitMessage"`
	Direction              string           `json:"direction"`
	Items                  []LegacyQuizItem `json:"items"`
}

type LegacyQuizItem struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Order int    `json:"order"`

	Title *string `json:"title"`
	Body  *string `json:"body"`

	SuccessMessage *string `json:"successMessage"`
	FailureMessage *string `json:"failureMessage"`

	Options []LegacyQuizOption `json:"options"`

	// "row" or "column"
	Direction string `json:"direction"`

	Multi bool `json:"multi"`

	MultipleChoiceGradingPolicy string `json:"multipleChoiceMultipleOptionsGradingPolicy"`

	ValidityRegex *string `json:"validityRegex"`
	FormatRegex   *string `json:"formatRegex"`

	MinWords *int `json:"minWords"`
	MaxWords *int `json:"maxWords"`
	MinValue *int `json:"minValue"`
	MaxValue *int `json:"maxValue"`

	OptionCells [][]string `json:"optionCells"`

	TimelineItems []LegacyTimelineItem `json:"timelineItems"`
}

type LegacyQuizOption struct {
	ID      string  `json:"id"`
	Order   int     `json:"order"`
	Correct bool    `json:"correct"`
	Title   *string `json:"title"`
	Body    *string `json:"body"`

	SuccessMessage *string `json:"successMessage"`
	FailureMessage *string `json:"failureMessage"`

	// Already-new-style field; migration keeps it when populated.
	MessageAfterSubmissionWhenSelected *string `json:"messageAfterSubmissionWhenSelected"`
}

type LegacyTimelineItem struct {
	ID               string `json:"id"`
	Year             string `json:"year"`
	CorrectEventID   string `json:"correctEventId"`
	CorrectEventName string `json:"correctEventName"`
}

// LegacyQuizAnswer is the pre-versioning submission shape. The item type is
// not recorded on the answer; migration recovers it from the paired
// (already migrated) specification.
type LegacyQuizAnswer struct {
	ID          string             `json:"id"`
	ItemAnswers []LegacyItemAnswer `json:"itemAnswers"`
}

type LegacyItemAnswer struct {
	QuizItemID      string           `json:"quizItemId"`
	TextData        *string          `json:"textData"`
	IntData         *int             `json:"intData"`
	OptionAnswers   []string         `json:"optionAnswers"`
	OptionCells     [][]string       `json:"optionCells"`
	TimelineChoices []TimelineChoice `json:"timelineChoices"`
}
