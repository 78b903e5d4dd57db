package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/edufi/quiz-grading-service/internal/cache"
	"github.com/edufi/quiz-grading-service/internal/migration"
	"github.com/edufi/quiz-grading-service/internal/models"
	"github.com/edufi/quiz-grading-service/internal/utils"
)

// publicSpecTTL bounds how long a converted public spec may be served from
// cache after the private spec changes upstream.
const publicSpecTTL = 15 * time.Minute

// PublicSpecService converts private specifications into their outbound
// views: the answer-stripped student spec and the teacher model solution.
type PublicSpecService interface {
	FromPrivateSpec(ctx context.Context, raw json.RawMessage) (*models.PublicSpecQuiz, error)
	ModelSolution(ctx context.Context, raw json.RawMessage) (*models.ModelSolutionQuiz, error)
}

type publicSpecService struct {
	cache  cache.CacheService
	logger utils.Logger
}

func NewPublicSpecService(cacheService cache.CacheService, logger utils.Logger) PublicSpecService {
	return &publicSpecService{
		cache:  cacheService,
		logger: logger,
	}
}

func (s *publicSpecService) FromPrivateSpec(ctx context.Context, raw json.RawMessage) (*models.PublicSpecQuiz, error) {
	key := "public-spec:" + rawDigest(raw)

	var cached models.PublicSpecQuiz
	err := s.cache.Get(ctx, key, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		// Cache trouble degrades to recomputation, never to a failure.
		s.logger.Warn("Public spec cache read failed", "error", err)
	}

	spec, _, err := migration.ParseSpecification(raw, s.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to parse specification: %w", err)
	}

	public := BuildPublicSpec(spec)

	if err := s.cache.Set(ctx, key, public, publicSpecTTL); err != nil {
		s.logger.Warn("Public spec cache write failed", "error", err)
	}

	return public, nil
}

func (s *publicSpecService) ModelSolution(ctx context.Context, raw json.RawMessage) (*models.ModelSolutionQuiz, error) {
	spec, _, err := migration.ParseSpecification(raw, s.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to parse specification: %w", err)
	}
	return &models.ModelSolutionQuiz{QuizSpecification: *spec}, nil
}

// BuildPublicSpec strips every answer-revealing field from a private
// specification: correct flags, validity regexes, post-submission messages
// and correct timeline events all stay behind. Item order and display
// metadata survive unchanged.
func BuildPublicSpec(spec *models.QuizSpecification) *models.PublicSpecQuiz {
	public := &models.PublicSpecQuiz{
		Version:                  spec.Version,
		Title:                    spec.Title,
		Body:                     spec.Body,
		QuizItemDisplayDirection: spec.QuizItemDisplayDirection,
		Items:                    make([]models.PublicQuizItem, 0, len(spec.Items)),
	}

	for i := range spec.Items {
		public.Items = append(public.Items, buildPublicItem(&spec.Items[i]))
	}

	return public
}

func buildPublicItem(item *models.QuizItem) models.PublicQuizItem {
	publicItem := models.PublicQuizItem{
		ID:                            item.ID,
		Type:                          item.Type,
		Order:                         item.Order,
		Title:                         item.Title,
		Body:                          item.Body,
		AllowSelectingMultipleOptions: item.AllowSelectingMultipleOptions,
		OptionDisplayDirection:        item.OptionDisplayDirection,
		N:                             item.N,
		FormatRegex:                   item.FormatRegex,
		MinWords:                      item.MinWords,
		MaxWords:                      item.MaxWords,
		MinValue:                      item.MinValue,
		MaxValue:                      item.MaxValue,
	}

	for _, option := range item.Options {
		publicItem.Options = append(publicItem.Options, models.PublicQuizItemOption{
			ID:    option.ID,
			Order: option.Order,
			Title: option.Title,
			Body:  option.Body,
		})
	}

	if len(item.TimelineItems) > 0 {
		publicItem.TimelineItems = make([]models.PublicTimelineItem, 0, len(item.TimelineItems))
		publicItem.TimelineEvents = make([]models.TimelineEvent, 0, len(item.TimelineItems))

		for _, slot := range item.TimelineItems {
			publicItem.TimelineItems = append(publicItem.TimelineItems, models.PublicTimelineItem{
				ID:   slot.ID,
				Year: slot.Year,
			})
			publicItem.TimelineEvents = append(publicItem.TimelineEvents, models.TimelineEvent{
				ID:   slot.CorrectEventID,
				Name: slot.CorrectEventName,
			})
		}

		// Event order must not leak slot order, and the output must stay
		// deterministic, so events are sorted by name.
		sort.Slice(publicItem.TimelineEvents, func(a, b int) bool {
			if publicItem.TimelineEvents[a].Name != publicItem.TimelineEvents[b].Name {
				return publicItem.TimelineEvents[a].Name < publicItem.TimelineEvents[b].Name
			}
			return publicItem.TimelineEvents[a].ID < publicItem.TimelineEvents[b].ID
		})
	}

	return publicItem
}

func rawDigest(raw json.RawMessage) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
