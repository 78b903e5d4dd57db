package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents the grading pipeline events published downstream.
type EventType string

const (
	// EventGradingCompleted fires after every successfully graded
	// submission.
	EventGradingCompleted EventType = "grading.completed"

	// EventGradingRecovered fires when a numeric guard replaced
	// an invalid coefficient or aggregate with 0. Operators alert on these.
	EventGradingRecovered EventType = "grading.recovered"
)

// GradingEvent is the envelope for all published grading events.
type GradingEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// GradingCompletedEvent is the payload for EventGradingCompleted.
type GradingCompletedEvent struct {
	SpecDigest     string    `json:"spec_digest"`
	ScoreGiven     float64   `json:"score_given"`
	ScoreMaximum   float64   `json:"score_maximum"`
	ItemCount      int       `json:"item_count"`
	SpecMigrated   bool      `json:"spec_migrated"`
	AnswerMigrated bool      `json:"answer_migrated"`
	GradedAt       time.Time `json:"graded_at"`
}

// GradingRecoveredEvent is the payload for EventGradingRecovered.
type GradingRecoveredEvent struct {
	SpecDigest  string    `json:"spec_digest"`
	QuizItemID  string    `json:"quiz_item_id,omitempty"`
	RawValue    float64   `json:"raw_value"`
	RecoveredAt time.Time `json:"recovered_at"`
}

func NewGradingCompletedEvent(digest string, scoreGiven, scoreMaximum float64, itemCount int, specMigrated, answerMigrated bool) *GradingEvent {
	return &GradingEvent{
		ID:        uuid.NewString(),
		Type:      EventGradingCompleted,
		Timestamp: time.Now(),
		Source:    "quiz-grading-service",
		Version:   "1.0",
		Data: GradingCompletedEvent{
			SpecDigest:     digest,
			ScoreGiven:     scoreGiven,
			ScoreMaximum:   scoreMaximum,
			ItemCount:      itemCount,
			SpecMigrated:   specMigrated,
			AnswerMigrated: answerMigrated,
			GradedAt:       time.Now(),
		},
	}
}

func NewGradingRecoveredEvent(digest, quizItemID string, rawValue float64) *GradingEvent {
	return &GradingEvent{
		ID:        uuid.NewString(),
		Type:      EventGradingRecovered,
		Timestamp: time.Now(),
		Source:    "quiz-grading-service",
		Version:   "1.0",
		Data: GradingRecoveredEvent{
			SpecDigest:  digest,
			QuizItemID:  quizItemID,
			RawValue:    rawValue,
			RecoveredAt: time.Now(),
		},
	}
}
