package models

type GradingProgress string

const (
	GradingFullyGraded   GradingProgress = "FullyGraded"
	GradingPending       GradingProgress = "Pending"
	GradingPendingManual GradingProgress = "PendingManual"
	GradingFailed        GradingProgress = "Failed"
)

// QuizItemAnswerGrading is the output of assessing one answered item.
// CorrectnessCoefficient is always inside [0,1] in anything returned to a
// caller; 0 is wrong, 1 fully correct, in between partial credit.
type QuizItemAnswerGrading struct {
	QuizItemID             string  `json:"quizItemId"`
	CorrectnessCoefficient float64 `json:"correctnessCoefficient"`
}

// ItemAnswerFeedback is the per-item feedback record shown back to the
// student after grading.
type ItemAnswerFeedback struct {
	QuizItemID             string                   `json:"quiz_item_id"`
	Correct                bool                     `json:"quiz_item_correct"`
	CorrectnessCoefficient float64                  `json:"correctness_coefficient"`
	FeedbackMessage        *string                  `json:"quiz_item_feedback,omitempty"`
	OptionFeedbacks        []QuizItemOptionFeedback `json:"quiz_item_option_feedbacks,omitempty"`
	TimelineItemFeedbacks  []TimelineItemFeedback   `json:"timeline_item_feedbacks,omitempty"`
}

type QuizItemOptionFeedback struct {
	OptionID             string  `json:"option_id"`
	OptionFeedback       *string `json:"option_feedback,omitempty"`
	ThisOptionWasCorrect bool    `json:"this_option_was_correct"`
}

type TimelineItemFeedback struct {
	TimelineItemID          string `json:"timeline_item_id"`
	WhatWasChosenWasCorrect bool   `json:"what_was_chosen_was_correct"`
}

// ExerciseTaskGradingResult is the wire-level grading response returned to
// the embedding course-material service.
type ExerciseTaskGradingResult struct {
	FeedbackJSON    []ItemAnswerFeedback `json:"feedback_json"`
	FeedbackText    *string              `json:"feedback_text"`
	GradingProgress GradingProgress      `json:"grading_progress"`
	ScoreGiven      float64              `json:"score_given"`
	ScoreMaximum    float64              `json:"score_maximum"`
}
