package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sichterhq/sichter/internal/model"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

func TestLoadSeedsDefaults(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	rules, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, rules)

	defaults := model.DefaultRuleSet()
	assert.Equal(t, defaults.CategoryNames(), rules.CategoryNames())

	// The seed must be persisted, not just returned.
	reloaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, rules.Snapshot(), reloaded.Snapshot())
}

func TestReplaceRuleSetRoundTrip(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	rules := model.DefaultRuleSet()
	require.NoError(t, rules.AddCategory("Neuer Bereich"))
	require.NoError(t, rules.AddKeyword("Neuer Bereich", "spezialfall"))
	require.NoError(t, rules.AddKeyword("Login", "gesichtserkennung"))

	require.NoError(t, store.ReplaceRuleSet(ctx, rules))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, rules.CategoryNames(), loaded.CategoryNames())

	keywords, ok := loaded.Keywords("Neuer Bereich")
	require.True(t, ok)
	assert.Equal(t, []string{"spezialfall"}, keywords)

	keywords, _ = loaded.Keywords("Login")
	assert.Contains(t, keywords, "gesichtserkennung")
}

func TestLoadPreservesCategoryOrder(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	// Order determines match priority, so it must survive persistence
	// exactly. Build an order the defaults merge cannot disturb.
	rules := model.DefaultRuleSet()
	require.NoError(t, rules.RemoveCategory("Login"))
	require.NoError(t, rules.AddCategory("Zuletzt"))
	require.NoError(t, rules.AddKeyword("Zuletzt", "zuletzt"))
	require.NoError(t, rules.AddCategory("Login"))
	require.NoError(t, rules.AddKeyword("Login", "login"))

	require.NoError(t, store.ReplaceRuleSet(ctx, rules))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, rules.CategoryNames(), loaded.CategoryNames())
}

func TestLoadMergesMissingDefaults(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	// Persist a rule set missing a default category but with an edited
	// version of another.
	rules := model.DefaultRuleSet()
	require.NoError(t, rules.RemoveCategory("Werbung"))
	require.NoError(t, rules.RemoveKeyword("Login", "login"))
	require.NoError(t, rules.AddKeyword("Login", "anmeldemaske"))
	require.NoError(t, store.ReplaceRuleSet(ctx, rules))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)

	// The missing default category comes back with its default keywords.
	assert.True(t, loaded.HasCategory("Werbung"))
	werbung, _ := loaded.Keywords("Werbung")
	defWerbung, _ := model.DefaultRuleSet().Keywords("Werbung")
	assert.Equal(t, defWerbung, werbung)

	// The operator edits to an existing category are untouched.
	login, _ := loaded.Keywords("Login")
	assert.NotContains(t, login, "login")
	assert.Contains(t, login, "anmeldemaske")

	// The merge is persisted.
	reloaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, loaded.Snapshot(), reloaded.Snapshot())
}

func TestReplaceRuleSetValidation(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	err := store.ReplaceRuleSet(ctx, nil)
	assert.Error(t, err)

	//nolint:staticcheck // testing nil context handling
	err = store.ReplaceRuleSet(nil, model.DefaultRuleSet())
	assert.ErrorIs(t, err, ErrNilContext)
}

func TestMergeDefaultsCountsOnlyAdded(t *testing.T) {
	rules := model.DefaultRuleSet()
	assert.Equal(t, 0, mergeDefaults(rules))

	require.NoError(t, rules.RemoveCategory("Werbung"))
	require.NoError(t, rules.RemoveCategory("Gebühren"))
	assert.Equal(t, 2, mergeDefaults(rules))
	assert.True(t, rules.HasCategory("Werbung"))
	assert.True(t, rules.HasCategory("Gebühren"))
}
