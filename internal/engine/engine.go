// Package engine orchestrates the rule store, matcher compilation,
// classification, and the learning loop.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sichterhq/sichter/internal/common"
	"github.com/sichterhq/sichter/internal/mine"
	"github.com/sichterhq/sichter/internal/model"
	"github.com/sichterhq/sichter/internal/service"
)

// Engine owns the live rule set snapshot and coordinates every operation
// on it. The discipline is copy-on-read, replace-on-write: mutations go
// through the engine, which persists the full snapshot after each one.
type Engine struct {
	store      service.RuleStore
	classifier service.Classifier
	audit      service.AuditLog
	miner      *mine.Miner
	logger     *slog.Logger
	rules      *model.RuleSet
	inMemory   bool
}

// New creates an engine. The classifier decides the classification
// strategy (rule matchers or an LLM provider); the audit log may be nil
// when no log is configured.
func New(store service.RuleStore, classifier service.Classifier, audit service.AuditLog, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		store:      store,
		classifier: classifier,
		audit:      audit,
		miner:      mine.NewMiner(),
		logger:     logger,
	}
}

// Miner exposes the suggestion miner for configuration.
func (e *Engine) Miner() *mine.Miner {
	return e.miner
}

// Rules returns the live rule set snapshot.
func (e *Engine) Rules() *model.RuleSet {
	return e.rules
}

// InMemory reports whether the engine fell back to a session-only default
// rule set because storage was unavailable.
func (e *Engine) InMemory() bool {
	return e.inMemory
}

// LoadRules fetches the persisted rule set. When storage is unavailable
// the engine degrades to the built-in defaults for the session and keeps
// going; the condition is logged once, not per item.
func (e *Engine) LoadRules(ctx context.Context) error {
	rules, err := e.store.Load(ctx)
	if err != nil {
		if errors.Is(err, common.ErrStorageUnavailable) {
			e.logger.Warn("rule storage unavailable, using in-memory defaults for this session", "error", err)
			e.rules = model.DefaultRuleSet()
			e.inMemory = true
			return nil
		}
		return fmt.Errorf("failed to load rules: %w", err)
	}

	e.rules = rules
	e.inMemory = false
	return nil
}

// ClassifyFeedback labels a batch of feedback texts against the current
// rule set. Exactly one label per input text, positionally aligned.
func (e *Engine) ClassifyFeedback(ctx context.Context, texts []string) ([]model.Classification, service.CompletionStats, error) {
	stats := service.CompletionStats{Total: len(texts)}
	if e.rules == nil {
		return nil, stats, fmt.Errorf("rules not loaded")
	}

	start := time.Now()
	labels, err := e.classifier.ClassifyBatch(ctx, texts, e.rules)
	if err != nil {
		return nil, stats, fmt.Errorf("%w: %v", common.ErrClassificationFailed, err)
	}

	results := make([]model.Classification, len(texts))
	for i, text := range texts {
		results[i] = model.Classification{Text: text, Category: labels[i]}
		if labels[i] == model.CategoryOther {
			stats.Other++
		} else {
			stats.Matched++
		}
	}
	stats.Duration = time.Since(start)

	e.logger.Info("classified feedback batch",
		"engine", e.classifier.Name(),
		"total", stats.Total,
		"matched", stats.Matched,
		"other", stats.Other,
		"duration", stats.Duration)

	return results, stats, nil
}

// Learn classifies the batch, keeps the texts that resolved to Other, and
// mines them for candidate keywords.
func (e *Engine) Learn(ctx context.Context, texts []string) ([]model.Suggestion, service.LearnStats, error) {
	stats := service.LearnStats{Scanned: len(texts)}
	if len(texts) == 0 {
		return nil, stats, common.ErrNoFeedback
	}

	results, _, err := e.ClassifyFeedback(ctx, texts)
	if err != nil {
		return nil, stats, err
	}

	var unclassified []string
	for _, result := range results {
		if result.Category == model.CategoryOther {
			unclassified = append(unclassified, result.Text)
		}
	}
	stats.Unclassified = len(unclassified)

	suggestions := e.miner.Mine(unclassified, e.rules)
	stats.Suggestions = len(suggestions)

	e.logger.Info("mined suggestions from unclassified feedback",
		"scanned", stats.Scanned,
		"unclassified", stats.Unclassified,
		"suggestions", stats.Suggestions)

	return suggestions, stats, nil
}

// AcceptSuggestion adds a mined term to a category, persists the rule
// set, and appends an audit record. The audit append is informational:
// its failure is reported as a warning and never rolls back or fails the
// rule mutation.
func (e *Engine) AcceptSuggestion(ctx context.Context, term, category string) error {
	if err := e.mutate(ctx, func(rules *model.RuleSet) error {
		return rules.AddKeyword(category, term)
	}); err != nil {
		return err
	}

	if e.audit != nil {
		change := model.RuleChange{
			Time:     time.Now(),
			Term:     model.NormalizeKeyword(term),
			Category: category,
		}
		if err := e.audit.Append(ctx, change); err != nil {
			e.logger.Warn("failed to append audit log entry",
				"term", change.Term,
				"category", change.Category,
				"error", err)
		}
	}

	return nil
}

// AddCategory creates a new empty category and persists the rule set.
func (e *Engine) AddCategory(ctx context.Context, name string) error {
	return e.mutate(ctx, func(rules *model.RuleSet) error {
		return rules.AddCategory(name)
	})
}

// RemoveCategory deletes a category with all its keywords and persists
// the rule set. Feedback already labeled under the category is not
// reclassified until the next batch run.
func (e *Engine) RemoveCategory(ctx context.Context, name string) error {
	return e.mutate(ctx, func(rules *model.RuleSet) error {
		return rules.RemoveCategory(name)
	})
}

// AddKeyword inserts a normalized keyword into a category and persists.
func (e *Engine) AddKeyword(ctx context.Context, category, term string) error {
	return e.mutate(ctx, func(rules *model.RuleSet) error {
		return rules.AddKeyword(category, term)
	})
}

// RemoveKeyword removes a keyword from a category and persists.
func (e *Engine) RemoveKeyword(ctx context.Context, category, term string) error {
	return e.mutate(ctx, func(rules *model.RuleSet) error {
		return rules.RemoveKeyword(category, term)
	})
}

// RenameKeyword replaces a keyword within a category and persists.
func (e *Engine) RenameKeyword(ctx context.Context, category, oldTerm, newTerm string) error {
	return e.mutate(ctx, func(rules *model.RuleSet) error {
		return rules.RenameKeyword(category, oldTerm, newTerm)
	})
}

// ImportRules replaces the whole rule set with the given snapshot.
func (e *Engine) ImportRules(ctx context.Context, categories []model.Category) error {
	rules, err := model.NewRuleSetFromCategories(categories)
	if err != nil {
		return fmt.Errorf("invalid rule snapshot: %w", err)
	}

	e.rules = rules
	return e.persist(ctx)
}

// mutate applies one rule set mutation and persists the full snapshot.
// The mutation is applied to a clone first so a persist failure leaves
// the live snapshot untouched.
func (e *Engine) mutate(ctx context.Context, apply func(*model.RuleSet) error) error {
	if e.rules == nil {
		return fmt.Errorf("rules not loaded")
	}

	clone := e.rules.Clone()
	if err := apply(clone); err != nil {
		return err
	}

	previous := e.rules
	e.rules = clone
	if err := e.persist(ctx); err != nil {
		e.rules = previous
		return err
	}
	return nil
}

// persist writes the full in-memory rule set as a complete replacement.
// In the storage-unavailable fallback the edit stays session-local.
func (e *Engine) persist(ctx context.Context) error {
	if e.inMemory {
		e.logger.Warn("rule storage unavailable, change kept for this session only")
		return nil
	}
	if err := e.store.ReplaceRuleSet(ctx, e.rules); err != nil {
		return fmt.Errorf("failed to persist rules: %w", err)
	}
	return nil
}
