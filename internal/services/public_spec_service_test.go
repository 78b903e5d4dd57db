package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/edufi/quiz-grading-service/internal/cache"
	"github.com/edufi/quiz-grading-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryCache is a map-backed CacheService for tests.
type memoryCache struct {
	entries map[string][]byte
	sets    int
	hits    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = payload
	m.sets++
	return nil
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	payload, ok := m.entries[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	m.hits++
	return json.Unmarshal(payload, dest)
}

func (m *memoryCache) Delete(ctx context.Context, key string) error {
	delete(m.entries, key)
	return nil
}

var privateSpecJSON = json.RawMessage(`{
	"version": "2",
	"title": "History quiz",
	"items": [
		{
			"id": "q1",
			"type": "multiple-choice",
			"order": 1,
			"options": [
				{"id": "o1", "correct": true, "messageAfterSubmissionWhenSelected": "secret"},
				{"id": "o2", "correct": false}
			]
		},
		{
			"id": "q2",
			"type": "closed-ended-question",
			"order": 2,
			"validityRegexp": "^secret$",
			"formatRegexp": "^\\w+$"
		},
		{
			"id": "q3",
			"type": "timeline",
			"order": 3,
			"timelineItems": [
				{"id": "t1", "year": "1969", "correctEventId": "e1", "correctEventName": "Moon landing"},
				{"id": "t2", "year": "1989", "correctEventId": "e2", "correctEventName": "Berlin Wall falls"}
			]
		}
	]
}`)

func TestPublicSpecService_FromPrivateSpec(t *testing.T) {
	ctx := context.Background()

	t.Run("strips answer-revealing fields", func(t *testing.T) {
		service := NewPublicSpecService(cache.NoopCache{}, testLogger())

		public, err := service.FromPrivateSpec(ctx, privateSpecJSON)
		require.NoError(t, err)

		require.Len(t, public.Items, 3)
		assert.Equal(t, "History quiz", *public.Title)

		// Option correctness and post-submission messages must not appear in
		// the serialized output at all.
		payload, err := json.Marshal(public)
		require.NoError(t, err)
		assert.NotContains(t, string(payload), "correct")
		assert.NotContains(t, string(payload), "secret")
		assert.NotContains(t, string(payload), "validityRegexp")

		// The display-safe format regex survives.
		require.NotNil(t, public.Items[1].FormatRegex)
		assert.Equal(t, `^\w+$`, *public.Items[1].FormatRegex)
	})

	t.Run("timeline slots keep years, events detach from slots", func(t *testing.T) {
		service := NewPublicSpecService(cache.NoopCache{}, testLogger())

		public, err := service.FromPrivateSpec(ctx, privateSpecJSON)
		require.NoError(t, err)

		timeline := public.Items[2]
		require.Len(t, timeline.TimelineItems, 2)
		assert.Equal(t, "1969", timeline.TimelineItems[0].Year)

		require.Len(t, timeline.TimelineEvents, 2)
		// Events come back sorted by name, not in slot order.
		assert.Equal(t, "Berlin Wall falls", timeline.TimelineEvents[0].Name)
		assert.Equal(t, "Moon landing", timeline.TimelineEvents[1].Name)
	})

	t.Run("legacy spec is migrated before conversion", func(t *testing.T) {
		service := NewPublicSpecService(cache.NoopCache{}, testLogger())

		legacy := json.RawMessage(`{
			"items": [{"id": "q1", "type": "open", "validityRegex": "^a$"}]
		}`)

		public, err := service.FromPrivateSpec(ctx, legacy)
		require.NoError(t, err)
		require.Len(t, public.Items, 1)
		assert.Equal(t, models.ItemClosedEndedQuestion, public.Items[0].Type)
	})

	t.Run("repeated conversions hit the cache", func(t *testing.T) {
		memory := newMemoryCache()
		service := NewPublicSpecService(memory, testLogger())

		first, err := service.FromPrivateSpec(ctx, privateSpecJSON)
		require.NoError(t, err)
		assert.Equal(t, 1, memory.sets)
		assert.Equal(t, 0, memory.hits)

		second, err := service.FromPrivateSpec(ctx, privateSpecJSON)
		require.NoError(t, err)
		assert.Equal(t, 1, memory.sets)
		assert.Equal(t, 1, memory.hits)
		assert.Equal(t, first, second)
	})

	t.Run("malformed spec is an error", func(t *testing.T) {
		service := NewPublicSpecService(cache.NoopCache{}, testLogger())
		_, err := service.FromPrivateSpec(ctx, json.RawMessage(`{`))
		assert.Error(t, err)
	})
}

func TestPublicSpecService_ModelSolution(t *testing.T) {
	service := NewPublicSpecService(cache.NoopCache{}, testLogger())

	solution, err := service.ModelSolution(context.Background(), privateSpecJSON)
	require.NoError(t, err)

	// The model solution keeps the full private spec, correctness included.
	require.Len(t, solution.Items, 3)
	assert.True(t, solution.Items[0].Options[0].Correct)
	require.NotNil(t, solution.Items[1].ValidityRegex)
}
