// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/sichterhq/sichter/internal/model"
)

// RuleStore defines the contract for the rule persistence layer. The rule
// set is read as a full snapshot and written back as a full replacement;
// mutation operations live on the snapshot itself.
type RuleStore interface {
	// Load reads the persisted rule set, seeding and merging the built-in
	// defaults as needed.
	Load(ctx context.Context) (*model.RuleSet, error)

	// ReplaceRuleSet writes the full rule set as a complete replacement of
	// the persisted state.
	ReplaceRuleSet(ctx context.Context, rules *model.RuleSet) error

	// Migrate brings the storage schema up to date.
	Migrate(ctx context.Context) error

	Close() error
}

// Classifier assigns exactly one category label per feedback text. The
// output is positionally aligned with the input; unmatched or empty items
// get model.CategoryOther, never an empty label.
type Classifier interface {
	// Name identifies the classification engine ("rules", "llm").
	Name() string

	// ClassifyBatch labels each text independently. A single bad item must
	// degrade to model.CategoryOther instead of failing the batch.
	ClassifyBatch(ctx context.Context, texts []string, rules *model.RuleSet) ([]string, error)
}

// AuditLog records human-accepted rule additions. Append failures must
// never fail the caller's primary operation.
type AuditLog interface {
	Append(ctx context.Context, change model.RuleChange) error
}

// ProgressFunc reports batch progress: items completed so far.
type ProgressFunc func(done int)

// CompletionStats shows the results of a classification run.
type CompletionStats struct {
	Total    int
	Matched  int
	Other    int
	Duration time.Duration
}

// LearnStats shows the results of a learning run.
type LearnStats struct {
	Scanned      int
	Unclassified int
	Suggestions  int
	Accepted     int
}
