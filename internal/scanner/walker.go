package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// IgnoreSet is a fixed set of substrings used to prune subtrees: any
// directory whose full path contains one of the patterns is skipped
// entirely, files and nested directories included.
type IgnoreSet []string

// DefaultIgnores covers dependency caches, version control and virtual
// environments.
func DefaultIgnores() IgnoreSet {
	return IgnoreSet{
		"node_modules",
		".git",
		".venv",
		"venv",
		"env",
		"__pycache__",
	}
}

// Without returns a copy of the set with the given patterns removed. The
// artifact scan uses it so its own target directory is not pruned away.
func (s IgnoreSet) Without(patterns ...string) IgnoreSet {
	out := make(IgnoreSet, 0, len(s))
	for _, p := range s {
		keep := true
		for _, drop := range patterns {
			if p == drop {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, p)
		}
	}
	return out
}

// Match reports whether path contains any ignore pattern.
func (s IgnoreSet) Match(path string) bool {
	for _, pattern := range s {
		if pattern != "" && strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}

// WalkFunc receives each regular file that survives pruning.
type WalkFunc func(path string, info os.FileInfo)

// Walk traverses the tree rooted at root, pruning ignored subtrees and
// yielding regular files to fn. Per-entry failures (permission denied, a
// file vanishing between listing and stat) are skipped so that a single
// inaccessible entry never aborts the scan. The sequence is single-pass:
// walking again means calling Walk again.
func Walk(root string, ignore IgnoreSet, fn WalkFunc) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			zap.L().Debug("skipping unreadable entry", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if ignore.Match(path) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			zap.L().Debug("skipping unstatable file", zap.String("path", path), zap.Error(err))
			return nil
		}

		fn(path, info)
		return nil
	})
}
