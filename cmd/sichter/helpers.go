package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/viper"

	"github.com/sichterhq/sichter/internal/changelog"
	"github.com/sichterhq/sichter/internal/common"
	"github.com/sichterhq/sichter/internal/config"
	"github.com/sichterhq/sichter/internal/engine"
	"github.com/sichterhq/sichter/internal/llm"
	"github.com/sichterhq/sichter/internal/match"
	"github.com/sichterhq/sichter/internal/service"
	"github.com/sichterhq/sichter/internal/storage"
)

// initStorage opens the rule database and runs pending migrations.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := config.DataPath(viper.GetString("database.path"), "sichter.db")

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// newClassifier builds the classifier selected by classifier.engine.
func newClassifier(logger *slog.Logger) (service.Classifier, error) {
	engineName := viper.GetString("classifier.engine")
	if engineName == "" {
		engineName = "rules"
	}

	switch engineName {
	case "rules":
		classifier := match.NewRuleClassifier(logger)
		if workers := viper.GetInt("classify.workers"); workers > 0 {
			classifier.SetWorkers(workers)
		}
		return classifier, nil

	case "llm":
		cfg := llm.Config{
			Provider:    viper.GetString("llm.provider"),
			APIKey:      viper.GetString("llm.api_key"),
			Model:       viper.GetString("llm.model"),
			Temperature: viper.GetFloat64("llm.temperature"),
			MaxTokens:   viper.GetInt("llm.max_tokens"),
			MaxRetries:  3,
			RetryDelay:  time.Second,
		}
		return llm.NewClassifier(cfg, logger)

	default:
		return nil, fmt.Errorf("%w: unknown classifier engine %q", common.ErrInvalidConfig, engineName)
	}
}

// newAuditLog creates the rule change log at the configured path.
func newAuditLog() *changelog.FileLog {
	logPath := config.DataPath(viper.GetString("audit.path"), "rule_changes.txt")
	return changelog.NewFileLog(logPath)
}

// newEngine wires storage, classifier and audit log into an engine
// with rules loaded and ready. The returned cleanup closes storage.
func newEngine(ctx context.Context) (*engine.Engine, service.Classifier, func(), error) {
	logger := slog.Default()

	store, err := initStorage(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	cleanup := func() {
		if closeErr := store.Close(); closeErr != nil {
			common.LogWarn("failed to close storage", common.Fields{"error": closeErr})
		}
	}

	classifier, err := newClassifier(logger)
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}

	eng := engine.New(store, classifier, newAuditLog(), logger)
	if err := eng.LoadRules(ctx); err != nil {
		cleanup()
		return nil, nil, nil, fmt.Errorf("failed to load rules: %w", err)
	}

	return eng, classifier, cleanup, nil
}
