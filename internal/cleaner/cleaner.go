// Package cleaner deletes confirmed scan entries. Confirmation and deletion
// are two separate phases so either can be tested with scripted callbacks:
// first the confirmed subset is collected, then it is removed sequentially
// with each failure isolated to its own file.
package cleaner

import (
	"os"

	"github.com/storclean/storclean/internal/scanner"
)

// ConfirmFunc answers a single per-file deletion prompt.
type ConfirmFunc func(f scanner.FileInfo) bool

// ProgressFunc receives deletion progress after each successful removal.
type ProgressFunc func(done, total int, freed int64)

// Result summarizes a deletion batch.
type Result struct {
	Deleted     []string
	DeletedSize int64
	Errors      []*DeletionError
}

// Confirm collects the entries approved one at a time. Used by the
// large-file flow, which prompts per file.
func Confirm(files []scanner.FileInfo, confirm ConfirmFunc) []scanner.FileInfo {
	var approved []scanner.FileInfo
	for _, f := range files {
		if confirm(f) {
			approved = append(approved, f)
		}
	}
	return approved
}

// ConfirmBatch asks once for the whole batch. Used by the screenshot flow:
// either every entry is approved or none is.
func ConfirmBatch(files []scanner.FileInfo, confirm func() bool) []scanner.FileInfo {
	if len(files) == 0 || !confirm() {
		return nil
	}
	return files
}

// Cleaner removes confirmed entries sequentially.
type Cleaner struct {
	// RemoveTree deletes directories recursively; used for artifact
	// directories such as node_modules.
	RemoveTree bool
	Progress   ProgressFunc
}

// Delete removes each file in order. A failed attempt is categorized and
// recorded, never aborting the remaining batch; there is no rollback.
func (c *Cleaner) Delete(files []scanner.FileInfo) *Result {
	result := &Result{}

	for _, f := range files {
		var err error
		if c.RemoveTree {
			err = os.RemoveAll(f.Path)
		} else {
			err = os.Remove(f.Path)
		}
		if err != nil {
			result.Errors = append(result.Errors, CategorizeError(f.Path, err))
			continue
		}

		result.Deleted = append(result.Deleted, f.Path)
		result.DeletedSize += f.Size
		if c.Progress != nil {
			c.Progress(len(result.Deleted), len(files), result.DeletedSize)
		}
	}

	return result
}
