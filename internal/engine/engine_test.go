package engine

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sichterhq/sichter/internal/changelog"
	"github.com/sichterhq/sichter/internal/common"
	"github.com/sichterhq/sichter/internal/match"
	"github.com/sichterhq/sichter/internal/model"
	"github.com/sichterhq/sichter/internal/storage"
)

// failingStore simulates unavailable storage.
type failingStore struct{}

func (failingStore) Load(_ context.Context) (*model.RuleSet, error) {
	return nil, common.ErrStorageUnavailable
}

func (failingStore) ReplaceRuleSet(_ context.Context, _ *model.RuleSet) error {
	return common.ErrStorageUnavailable
}

func (failingStore) Migrate(_ context.Context) error { return nil }
func (failingStore) Close() error                    { return nil }

func newTestEngine(t *testing.T) (*Engine, string) {
	t.Helper()
	tmpDir := t.TempDir()

	store, err := storage.NewSQLiteStorage(filepath.Join(tmpDir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx))

	auditPath := filepath.Join(tmpDir, "rule_changes.txt")
	eng := New(store, match.NewRuleClassifier(nil), changelog.NewFileLog(auditPath), nil)
	require.NoError(t, eng.LoadRules(ctx))

	return eng, auditPath
}

func TestEngineClassifyFeedback(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	texts := []string{
		"Kann mich nicht einloggen, Passwort falsch",
		"Die App stürzt ständig ab",
		"Tolles Update, gefällt mir",
	}

	results, stats, err := eng.ClassifyFeedback(ctx, texts)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "Login", results[0].Category)
	assert.Equal(t, "App abstürze", results[1].Category)
	assert.Equal(t, model.CategoryOther, results[2].Category)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Matched)
	assert.Equal(t, 1, stats.Other)
}

func TestEngineClassifyWithoutRules(t *testing.T) {
	eng := New(failingStore{}, match.NewRuleClassifier(nil), nil, nil)

	_, _, err := eng.ClassifyFeedback(context.Background(), []string{"test"})
	assert.Error(t, err)
}

func TestEngineLearn(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	texts := []string{
		"Kann mich nicht einloggen",
		"Dunkelmodus wäre super",
		"Dunkelmodus wäre super",
		"Dunkelmodus wäre super",
	}

	suggestions, stats, err := eng.Learn(ctx, texts)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Scanned)
	assert.Equal(t, 3, stats.Unclassified)
	assert.Equal(t, len(suggestions), stats.Suggestions)

	terms := make([]string, len(suggestions))
	for i, s := range suggestions {
		terms[i] = s.Term
	}
	assert.Contains(t, terms, "dunkelmodus")
	assert.NotContains(t, terms, "einloggen")
}

func TestEngineLearnEmptyInput(t *testing.T) {
	eng, _ := newTestEngine(t)

	_, _, err := eng.Learn(context.Background(), nil)
	assert.ErrorIs(t, err, common.ErrNoFeedback)
}

func TestEngineAcceptSuggestion(t *testing.T) {
	eng, auditPath := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, eng.AcceptSuggestion(ctx, "Warteschleife", "Kundenservice"))

	// The keyword is live immediately.
	keywords, ok := eng.Rules().Keywords("Kundenservice")
	require.True(t, ok)
	assert.Contains(t, keywords, "warteschleife")

	results, _, err := eng.ClassifyFeedback(ctx, []string{"ewig in der Warteschleife"})
	require.NoError(t, err)
	assert.Equal(t, "Kundenservice", results[0].Category)

	// The change is persisted.
	require.NoError(t, eng.LoadRules(ctx))
	keywords, _ = eng.Rules().Keywords("Kundenservice")
	assert.Contains(t, keywords, "warteschleife")

	// And audited.
	data, err := os.ReadFile(auditPath)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))
	assert.True(t, strings.HasSuffix(line, ";warteschleife;Kundenservice"), "unexpected audit line %q", line)
}

func TestEngineAcceptSuggestionUnknownCategory(t *testing.T) {
	eng, auditPath := newTestEngine(t)

	err := eng.AcceptSuggestion(context.Background(), "warteschleife", "Gibt Es Nicht")
	assert.ErrorIs(t, err, common.ErrUnknownCategory)

	// A failed mutation is never audited.
	_, statErr := os.Stat(auditPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestEngineCategoryLifecycle(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, eng.AddCategory(ctx, "Neuer Bereich"))
	require.NoError(t, eng.AddKeyword(ctx, "Neuer Bereich", "Spezialfall"))
	require.NoError(t, eng.RenameKeyword(ctx, "Neuer Bereich", "spezialfall", "sonderfall"))

	keywords, _ := eng.Rules().Keywords("Neuer Bereich")
	assert.Equal(t, []string{"sonderfall"}, keywords)

	require.NoError(t, eng.RemoveKeyword(ctx, "Neuer Bereich", "sonderfall"))
	require.NoError(t, eng.RemoveCategory(ctx, "Neuer Bereich"))
	assert.False(t, eng.Rules().HasCategory("Neuer Bereich"))

	// All of it survives a reload.
	require.NoError(t, eng.LoadRules(ctx))
	assert.False(t, eng.Rules().HasCategory("Neuer Bereich"))
}

func TestEngineStorageUnavailableFallback(t *testing.T) {
	eng := New(failingStore{}, match.NewRuleClassifier(nil), nil, nil)
	ctx := context.Background()

	require.NoError(t, eng.LoadRules(ctx))
	assert.True(t, eng.InMemory())

	// Classification still works on the defaults.
	results, _, err := eng.ClassifyFeedback(ctx, []string{"login geht nicht"})
	require.NoError(t, err)
	assert.Equal(t, "Login", results[0].Category)

	// Mutations stay session-local instead of failing.
	require.NoError(t, eng.AddKeyword(ctx, "Login", "fingerabdruck"))
	keywords, _ := eng.Rules().Keywords("Login")
	assert.Contains(t, keywords, "fingerabdruck")
}

func TestEngineMutateRollsBackOnPersistFailure(t *testing.T) {
	eng := New(failingStore{}, match.NewRuleClassifier(nil), nil, nil)
	ctx := context.Background()

	require.NoError(t, eng.LoadRules(ctx))

	// Force the persist path despite the failing store.
	eng.inMemory = false

	err := eng.AddKeyword(ctx, "Login", "fingerabdruck")
	assert.Error(t, err)

	keywords, _ := eng.Rules().Keywords("Login")
	assert.NotContains(t, keywords, "fingerabdruck")
}

func TestEngineImportRules(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	categories := []model.Category{
		{Name: "Nur Eine", Keywords: []string{"einzig"}},
	}
	require.NoError(t, eng.ImportRules(ctx, categories))

	assert.Equal(t, []string{"Nur Eine"}, eng.Rules().CategoryNames())

	// Reload merges the missing defaults back in but keeps the import.
	require.NoError(t, eng.LoadRules(ctx))
	assert.True(t, eng.Rules().HasCategory("Nur Eine"))
	assert.True(t, eng.Rules().HasCategory("Login"))
	assert.Equal(t, "Nur Eine", eng.Rules().CategoryNames()[0])
}

func TestEngineImportRulesInvalid(t *testing.T) {
	eng, _ := newTestEngine(t)

	err := eng.ImportRules(context.Background(), []model.Category{
		{Name: "Doppelt"}, {Name: "Doppelt"},
	})
	assert.Error(t, err)
}
