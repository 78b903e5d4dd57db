package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/edufi/quiz-grading-service/internal/events"
	"github.com/edufi/quiz-grading-service/internal/grading"
	"github.com/edufi/quiz-grading-service/internal/migration"
	"github.com/edufi/quiz-grading-service/internal/models"
	"github.com/edufi/quiz-grading-service/internal/repositories"
	"github.com/edufi/quiz-grading-service/internal/utils"
	"github.com/edufi/quiz-grading-service/internal/validator"
	"gorm.io/datatypes"
)

// GradingRequest is the inbound grading payload. Spec and submission arrive
// as raw JSON because either may still be in the legacy schema; the service
// parses and migrates them before grading.
type GradingRequest struct {
	ExerciseSpec     json.RawMessage `json:"exercise_spec" validate:"required"`
	SubmissionData   json.RawMessage `json:"submission_data" validate:"required"`
	GradingUpdateURL string          `json:"grading_update_url"`
	SubmitMessage    *string         `json:"submitMessage"`
}

// GradingService evaluates one submission against one specification. The
// computation itself is pure and deterministic; persistence and event
// publishing happen after the result exists and never affect it.
type GradingService interface {
	Grade(ctx context.Context, req *GradingRequest) (*models.ExerciseTaskGradingResult, error)
}

type gradingService struct {
	auditRepo repositories.GradingAuditRepository // nil disables the audit store
	publisher events.EventPublisher
	logger    utils.Logger
	validator *validator.Validator
}

func NewGradingService(
	auditRepo repositories.GradingAuditRepository,
	publisher events.EventPublisher,
	logger utils.Logger,
	validator *validator.Validator,
) GradingService {
	return &gradingService{
		auditRepo: auditRepo,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

func (s *gradingService) Grade(ctx context.Context, req *GradingRequest) (*models.ExerciseTaskGradingResult, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	spec, specMigrated, err := migration.ParseSpecification(req.ExerciseSpec, s.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to parse exercise specification: %w", err)
	}

	answer, answerMigrated, err := migration.ParseAnswer(req.SubmissionData, spec)
	if err != nil {
		return nil, fmt.Errorf("failed to parse submission: %w", err)
	}

	digest := SpecDigest(spec)

	// Numeric recoveries inside grading surface as events so operators can
	// alert on them.
	grader := grading.NewGraderWithRecovery(s.logger, func(itemID string, raw float64) {
		s.publishRecovered(ctx, digest, itemID, raw)
	})

	gradings, err := grader.AssessAnswers(answer, spec)
	if err != nil {
		return nil, err
	}

	result := &models.ExerciseTaskGradingResult{
		FeedbackJSON:    grading.ComposeFeedback(answer, spec, gradings),
		FeedbackText:    nil,
		GradingProgress: models.GradingFullyGraded,
		ScoreGiven:      grader.TotalScore(gradings, spec),
		ScoreMaximum:    grading.MaxScore(spec),
	}

	s.logger.Info("Graded submission",
		"spec_digest", digest,
		"score_given", result.ScoreGiven,
		"score_maximum", result.ScoreMaximum,
		"spec_migrated", specMigrated,
		"answer_migrated", answerMigrated)

	s.publishCompleted(ctx, digest, result, len(spec.Items), specMigrated, answerMigrated)
	s.recordAudit(ctx, digest, result, len(spec.Items), specMigrated, answerMigrated)

	return result, nil
}

// publishCompleted emits the grading.completed event. Publishing is
// best-effort: a broker outage must not fail a grading request.
func (s *gradingService) publishCompleted(ctx context.Context, digest string, result *models.ExerciseTaskGradingResult, itemCount int, specMigrated, answerMigrated bool) {
	event := events.NewGradingCompletedEvent(digest, result.ScoreGiven, result.ScoreMaximum, itemCount, specMigrated, answerMigrated)
	if err := s.publisher.PublishGradingEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish grading completed event",
			"spec_digest", digest,
			"error", err)
	}
}

// publishRecovered emits the grading.recovered event, best-effort like all
// publishing.
func (s *gradingService) publishRecovered(ctx context.Context, digest, itemID string, raw float64) {
	event := events.NewGradingRecoveredEvent(digest, itemID, raw)
	if err := s.publisher.PublishGradingEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish grading recovered event",
			"spec_digest", digest,
			"error", err)
	}
}

// recordAudit persists the outcome for audit replay, also best-effort.
func (s *gradingService) recordAudit(ctx context.Context, digest string, result *models.ExerciseTaskGradingResult, itemCount int, specMigrated, answerMigrated bool) {
	if s.auditRepo == nil {
		return
	}

	feedbackJSON, err := json.Marshal(result.FeedbackJSON)
	if err != nil {
		s.logger.Error("Failed to marshal feedback for audit record", "error", err)
		return
	}

	record := &models.GradingAuditRecord{
		SpecDigest:     digest,
		ScoreGiven:     result.ScoreGiven,
		ScoreMaximum:   result.ScoreMaximum,
		ItemCount:      itemCount,
		SpecMigrated:   specMigrated,
		AnswerMigrated: answerMigrated,
		FeedbackJSON:   datatypes.JSON(feedbackJSON),
	}

	if err := s.auditRepo.Create(ctx, record); err != nil {
		s.logger.Error("Failed to persist grading audit record",
			"spec_digest", digest,
			"error", err)
	}
}

// SpecDigest returns the SHA-256 hex digest of the canonical (migrated)
// specification JSON. Gradings of the same exercise revision share a digest.
func SpecDigest(spec *models.QuizSpecification) string {
	payload, err := json.Marshal(spec)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
