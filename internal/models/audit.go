package models

import (
	"time"

	"gorm.io/datatypes"
)

// GradingAuditRecord is one persisted grading outcome. The grading core
// itself is stateless; the service layer writes one of these after each
// successful evaluation so that audits can replay and compare results.
type GradingAuditRecord struct {
	ID uint `json:"id" gorm:"primaryKey"`

	// SHA-256 of the canonical private-spec JSON, used to group gradings of
	// the same exercise revision.
	SpecDigest string `json:"spec_digest" gorm:"not null;size:64;index"`

	ScoreGiven   float64 `json:"score_given" gorm:"not null"`
	ScoreMaximum float64 `json:"score_maximum" gorm:"not null"`
	ItemCount    int     `json:"item_count" gorm:"not null"`

	// Whether the spec/answer pair arrived in the legacy schema and was
	// migrated before grading.
	SpecMigrated   bool `json:"spec_migrated"`
	AnswerMigrated bool `json:"answer_migrated"`

	FeedbackJSON datatypes.JSON `json:"feedback_json" gorm:"type:jsonb"` // []ItemAnswerFeedback

	CreatedAt time.Time `json:"created_at"`
}
