// Package ner defines the external recognition capabilities the analysis
// core consumes: labeled entity extraction and role classification.
//
// The core never reaches for a shared global model. Implementations are
// passed in explicitly, and every consumer tolerates a nil recognizer by
// degrading to lexicon-only extraction.
package ner

import (
	"context"

	"github.com/hirelens/hirelens/internal/types"
)

// EntityRecognizer extracts labeled entities (skills, experience mentions,
// designations) from free text.
type EntityRecognizer interface {
	RecognizeEntities(ctx context.Context, text string) (*types.LabeledEntities, error)
}

// RoleClassifier predicts a role label with a confidence in [0, 1].
type RoleClassifier interface {
	ClassifyRole(ctx context.Context, text string) (types.RoleLabel, error)
}
