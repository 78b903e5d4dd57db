package models

// UserAnswer is a versioned student submission paired with one
// QuizSpecification for grading.
type UserAnswer struct {
	Version     string       `json:"version"`
	ItemAnswers []ItemAnswer `json:"itemAnswers"`
}

// ItemAnswer carries the student's response for one quiz item. Like
// QuizItem it is a tagged union over Type: exactly one payload field group
// is populated per variant.
type ItemAnswer struct {
	QuizItemID string       `json:"quizItemId"`
	Type       QuizItemType `json:"type"`

	// multiple-choice, multiple-choice-dropdown, choose-n
	SelectedOptionIDs []string `json:"selectedOptionIds,omitempty"`

	// closed-ended-question, essay
	TextData *string `json:"textData,omitempty"`

	// scale
	IntData *int `json:"intData,omitempty"`

	// checkbox
	Checked *bool `json:"checked,omitempty"`

	// matrix
	OptionCells [][]string `json:"optionCells,omitempty"`

	// timeline
	TimelineChoices []TimelineChoice `json:"timelineChoices,omitempty"`
}

// TimelineChoice matches one timeline slot to the event the student picked.
type TimelineChoice struct {
	TimelineItemID string `json:"timelineItemId"`
	ChosenEventID  string `json:"chosenEventId"`
}

// AnsweredItemIDs returns the quiz item ids referenced by the submission, in
// submission order.
func (a *UserAnswer) AnsweredItemIDs() []string {
	ids := make([]string, 0, len(a.ItemAnswers))
	for i := range a.ItemAnswers {
		ids = append(ids, a.ItemAnswers[i].QuizItemID)
	}
	return ids
}
