package match

import (
	"context"
	"log/slog"
	"sync"

	"github.com/sichterhq/sichter/internal/model"
	"github.com/sichterhq/sichter/internal/service"
)

// Ensure RuleClassifier implements the Classifier interface.
var _ service.Classifier = (*RuleClassifier)(nil)

// defaultWorkers bounds the batch worker pool. Items are independent, so
// the only constraint is not spawning a goroutine per row of a large file.
const defaultWorkers = 4

// RuleClassifier implements service.Classifier with compiled keyword
// matchers. It caches the compiled matcher keyed by rule set version and
// recompiles transparently after any mutation.
type RuleClassifier struct {
	logger   *slog.Logger
	matcher  *Matcher
	progress service.ProgressFunc
	workers  int
	mu       sync.Mutex
}

// NewRuleClassifier creates a rule-based classifier.
func NewRuleClassifier(logger *slog.Logger) *RuleClassifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &RuleClassifier{
		logger:  logger,
		workers: defaultWorkers,
	}
}

// SetWorkers overrides the batch worker pool size.
func (c *RuleClassifier) SetWorkers(n int) {
	if n > 0 {
		c.workers = n
	}
}

// SetProgress installs a callback invoked once per classified item.
func (c *RuleClassifier) SetProgress(fn service.ProgressFunc) {
	c.progress = fn
}

// Name identifies the classification engine.
func (c *RuleClassifier) Name() string {
	return "rules"
}

// Classify labels a single feedback text.
func (c *RuleClassifier) Classify(ctx context.Context, text string, rules *model.RuleSet) (string, error) {
	labels, err := c.ClassifyBatch(ctx, []string{text}, rules)
	if err != nil || len(labels) == 0 {
		return model.CategoryOther, err
	}
	return labels[0], nil
}

// ClassifyBatch labels each text independently, preserving positional
// correspondence with the input. Items never fail each other: an empty or
// unmatched text simply gets model.CategoryOther.
func (c *RuleClassifier) ClassifyBatch(ctx context.Context, texts []string, rules *model.RuleSet) ([]string, error) {
	matcher := c.ensureMatcher(rules)
	labels := make([]string, len(texts))

	workers := c.workers
	if workers > len(texts) {
		workers = len(texts)
	}
	if workers < 1 {
		workers = 1
	}

	var (
		wg   sync.WaitGroup
		next = make(chan int)
		done int
		dmu  sync.Mutex
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				labels[i] = matcher.Classify(texts[i])
				if c.progress != nil {
					dmu.Lock()
					done++
					c.progress(done)
					dmu.Unlock()
				}
			}
		}()
	}

feed:
	for i := range texts {
		select {
		case next <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(next)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return labels, nil
}

// ensureMatcher recompiles when the rule set version moved. Compile
// warnings are reported once per compile, not once per item.
func (c *RuleClassifier) ensureMatcher(rules *model.RuleSet) *Matcher {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.matcher != nil && c.matcher.Version() == rules.Version() {
		return c.matcher
	}

	matcher, warnings := Compile(rules)
	for _, warning := range warnings {
		c.logger.Warn("category degraded to substring matching",
			"category", warning.Category,
			"error", warning.Err)
	}

	c.matcher = matcher
	return matcher
}
