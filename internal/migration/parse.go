// Package migration converts legacy (pre-versioning) quiz specifications and
// submissions into the current schema. Detection is an explicit two-stage
// parse: a version probe first, then either the current-schema or the
// legacy-schema decode, never a guess based on stray object properties.
package migration

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/edufi/quiz-grading-service/internal/models"
	"github.com/edufi/quiz-grading-service/internal/utils"
)

// ErrUnsupportedVersion is returned for a version tag that is neither absent
// (legacy) nor the current schema version.
var ErrUnsupportedVersion = errors.New("unsupported schema version")

type versionProbe struct {
	Version *string `json:"version"`
}

// IsLegacy reports whether the raw record lacks a version field. It applies
// uniformly to specifications and answers.
func IsLegacy(raw json.RawMessage) (bool, error) {
	var probe versionProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false, fmt.Errorf("failed to probe schema version: %w", err)
	}
	return probe.Version == nil, nil
}

// ParseSpecification decodes raw JSON into the current specification schema,
// migrating from the legacy schema when the version field is absent. The
// second return value reports whether migration happened.
func ParseSpecification(raw json.RawMessage, logger utils.Logger) (*models.QuizSpecification, bool, error) {
	legacy, err := IsLegacy(raw)
	if err != nil {
		return nil, false, err
	}

	if legacy {
		var legacySpec models.LegacyQuizSpecification
		if err := json.Unmarshal(raw, &legacySpec); err != nil {
			return nil, false, fmt.Errorf("failed to decode legacy specification: %w", err)
		}
		return MigrateSpecification(&legacySpec, logger), true, nil
	}

	var spec models.QuizSpecification
	if err := json.Unmarshal(raw, &spec); err != nil {
		return nil, false, fmt.Errorf("failed to decode specification: %w", err)
	}
	if spec.Version != models.SpecVersionCurrent {
		return nil, false, fmt.Errorf("%w: %q", ErrUnsupportedVersion, spec.Version)
	}
	return &spec, false, nil
}

// ParseAnswer decodes raw JSON into the current submission schema, migrating
// a legacy submission against the already-migrated specification. The second
// return value reports whether migration happened.
func ParseAnswer(raw json.RawMessage, spec *models.QuizSpecification) (*models.UserAnswer, bool, error) {
	legacy, err := IsLegacy(raw)
	if err != nil {
		return nil, false, err
	}

	if legacy {
		var legacyAnswer models.LegacyQuizAnswer
		if err := json.Unmarshal(raw, &legacyAnswer); err != nil {
			return nil, false, fmt.Errorf("failed to decode legacy answer: %w", err)
		}
		answer, err := MigrateAnswer(&legacyAnswer, spec)
		if err != nil {
			return nil, false, err
		}
		return answer, true, nil
	}

	var answer models.UserAnswer
	if err := json.Unmarshal(raw, &answer); err != nil {
		return nil, false, fmt.Errorf("failed to decode answer: %w", err)
	}
	if answer.Version != models.SpecVersionCurrent {
		return nil, false, fmt.Errorf("%w: %q", ErrUnsupportedVersion, answer.Version)
	}
	return &answer, false, nil
}
