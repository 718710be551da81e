package changelog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sichterhq/sichter/internal/common"
	"github.com/sichterhq/sichter/internal/model"
)

func TestAppendWritesOneLinePerChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rule_changes.txt")
	log := NewFileLog(path)
	ctx := context.Background()

	when := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	require.NoError(t, log.Append(ctx, model.RuleChange{
		Time:     when,
		Term:     "gesichtserkennung",
		Category: "Login",
	}))
	require.NoError(t, log.Append(ctx, model.RuleChange{
		Time:     when.Add(time.Minute),
		Term:     "zu teuer",
		Category: "Gebühren",
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "2025-03-14T09:26:53Z;gesichtserkennung;Login", lines[0])
	assert.Equal(t, "2025-03-14T09:27:53Z;zu teuer;Gebühren", lines[1])
}

func TestAppendCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "rule_changes.txt")
	log := NewFileLog(path)

	require.NoError(t, log.Append(context.Background(), model.RuleChange{
		Term:     "test",
		Category: "Login",
	}))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestAppendFillsZeroTimestamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rule_changes.txt")
	log := NewFileLog(path)

	before := time.Now().Add(-time.Second)
	require.NoError(t, log.Append(context.Background(), model.RuleChange{
		Term:     "test",
		Category: "Login",
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	fields := strings.SplitN(strings.TrimSpace(string(data)), ";", 3)
	require.Len(t, fields, 3)

	stamp, err := time.Parse(time.RFC3339, fields[0])
	require.NoError(t, err)
	assert.True(t, stamp.After(before))
}

func TestAppendWrapsWriteErrors(t *testing.T) {
	// A directory at the log path makes the open fail.
	dir := t.TempDir()
	log := NewFileLog(dir)

	err := log.Append(context.Background(), model.RuleChange{
		Term:     "test",
		Category: "Login",
	})
	assert.ErrorIs(t, err, common.ErrLogWriteFailed)
}

func TestAppendCanceledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rule_changes.txt")
	log := NewFileLog(path)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := log.Append(ctx, model.RuleChange{Term: "test", Category: "Login"})
	assert.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
