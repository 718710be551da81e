package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/sichterhq/sichter/internal/common"
	"github.com/sichterhq/sichter/internal/model"
	"github.com/sichterhq/sichter/internal/service"
)

// Ensure Classifier implements the service interface.
var _ service.Classifier = (*Classifier)(nil)

// maxWorkers bounds concurrent API requests per batch.
const maxWorkers = 5

// Classifier implements service.Classifier using LLM APIs. Each feedback
// text is classified independently; a failed or unparseable item degrades
// to model.CategoryOther instead of failing the batch.
type Classifier struct {
	client    Client
	logger    *slog.Logger
	retryOpts common.RetryOptions
}

// Config holds configuration for the LLM classifier.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	MaxRetries  int
	RetryDelay  time.Duration
	Temperature float64
	MaxTokens   int
}

// NewClassifier creates a new LLM-based classifier.
func NewClassifier(cfg Config, logger *slog.Logger) (*Classifier, error) {
	var client Client
	var err error

	switch strings.ToLower(cfg.Provider) {
	case "openai":
		client, err = newOpenAIClient(cfg)
	case "anthropic":
		client, err = newAnthropicClient(cfg)
	default:
		return nil, fmt.Errorf("%w: unsupported LLM provider %q", common.ErrInvalidConfig, cfg.Provider)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	retryOpts := common.RetryOptions{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: cfg.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}

	if retryOpts.MaxAttempts == 0 {
		retryOpts.MaxAttempts = 3
	}
	if retryOpts.InitialDelay == 0 {
		retryOpts.InitialDelay = time.Second
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Classifier{
		client:    client,
		logger:    logger,
		retryOpts: retryOpts,
	}, nil
}

// Name identifies the classification engine.
func (c *Classifier) Name() string {
	return "llm"
}

// ClassifyBatch labels each text via the provider API, bounded by a small
// worker pool. Output is positionally aligned with the input.
func (c *Classifier) ClassifyBatch(ctx context.Context, texts []string, rules *model.RuleSet) ([]string, error) {
	labels := make([]string, len(texts))
	categories := rules.CategoryNames()

	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, text := range texts {
		wg.Add(1)
		go func(idx int, text string) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				labels[idx] = model.CategoryOther
				return
			}

			labels[idx] = c.classifyOne(ctx, text, categories)
		}(i, text)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return labels, nil
}

// classifyOne prompts the provider for a single text and validates the
// answer against the live category list.
func (c *Classifier) classifyOne(ctx context.Context, text string, categories []string) string {
	if strings.TrimSpace(text) == "" {
		return model.CategoryOther
	}

	prompt := buildPrompt(text, categories)

	var response ClassificationResponse
	err := common.WithRetry(ctx, func() error {
		resp, err := c.client.Classify(ctx, prompt)
		if err != nil {
			c.logger.Warn("classification attempt failed", "error", err)
			return &common.RetryableError{Err: err, Retryable: true}
		}
		response = resp
		return nil
	}, c.retryOpts)

	if err != nil {
		c.logger.Warn("LLM classification failed, falling back to Other", "error", err)
		return model.CategoryOther
	}

	return resolveCategory(response.Category, categories)
}

// resolveCategory maps a raw provider answer onto an existing category
// name, case-insensitively. Anything else, including an explicit "Other",
// resolves to the sentinel.
func resolveCategory(answer string, categories []string) string {
	answer = strings.TrimSpace(strings.Trim(strings.TrimSpace(answer), `"`))
	for _, name := range categories {
		if strings.EqualFold(answer, name) {
			return name
		}
	}
	return model.CategoryOther
}

// buildPrompt creates the prompt for one feedback text.
func buildPrompt(text string, categories []string) string {
	var b strings.Builder
	b.WriteString("Classify this customer feedback into exactly one of the listed categories.\n\n")
	b.WriteString("Categories:\n")
	for _, name := range categories {
		fmt.Fprintf(&b, "- %s\n", name)
	}
	fmt.Fprintf(&b, "- %s\n", model.CategoryOther)
	fmt.Fprintf(&b, "\nFeedback:\n%s\n", text)
	b.WriteString("\nAnswer with the category name only. Use \"" + model.CategoryOther + "\" if none fits.")
	return b.String()
}
