// Package changelog appends accepted rule additions to a durable,
// append-only audit file.
package changelog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sichterhq/sichter/internal/common"
	"github.com/sichterhq/sichter/internal/model"
	"github.com/sichterhq/sichter/internal/service"
)

// Ensure FileLog implements the AuditLog interface.
var _ service.AuditLog = (*FileLog)(nil)

// fieldSeparator is the fixed delimiter between the timestamp, term, and
// category fields of one log line.
const fieldSeparator = ";"

// FileLog writes one line per accepted suggestion to an append-only text
// file: timestamp;term;category. The log is informational only and is
// never consulted by the classifier.
type FileLog struct {
	path string
}

// NewFileLog creates an audit log writing to the given path. The file and
// its directory are created on first append.
func NewFileLog(path string) *FileLog {
	return &FileLog{path: path}
}

// Path returns the audit file location.
func (l *FileLog) Path() string {
	return l.path
}

// Append writes one rule change record. Errors are wrapped with
// common.ErrLogWriteFailed; by contract the caller reports them as a
// warning and must not fail the rule mutation that triggered the append.
func (l *FileLog) Append(ctx context.Context, change model.RuleChange) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0750); err != nil {
		return fmt.Errorf("%w: %v", common.ErrLogWriteFailed, err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrLogWriteFailed, err)
	}
	defer f.Close()

	when := change.Time
	if when.IsZero() {
		when = time.Now()
	}

	line := when.Format(time.RFC3339) + fieldSeparator + change.Term + fieldSeparator + change.Category + "\n"
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("%w: %v", common.ErrLogWriteFailed, err)
	}

	return nil
}
