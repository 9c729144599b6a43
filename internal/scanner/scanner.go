// Package scanner implements the scan pipelines: walk a directory tree,
// classify each file, filter it against a threshold and accumulate
// per-category totals.
package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/storclean/storclean/internal/classify"
	"github.com/storclean/storclean/internal/progress"
)

// FileInfo represents one matched file. Immutable once appended to a result.
type FileInfo struct {
	Path     string
	Size     int64
	ModTime  time.Time
	Category string
}

// ScanResult is the terminal output of a pipeline run. Files are sorted
// descending by size once the scan completes.
type ScanResult struct {
	Files          []FileInfo
	CategoryTotals map[string]int64
	TotalSize      int64
	TotalCount     int
}

func newScanResult() *ScanResult {
	return &ScanResult{
		Files:          []FileInfo{},
		CategoryTotals: make(map[string]int64),
	}
}

// add records a matched file and keeps the category totals monotonic.
func (r *ScanResult) add(f FileInfo) {
	r.Files = append(r.Files, f)
	r.CategoryTotals[f.Category] += f.Size
	r.TotalSize += f.Size
	r.TotalCount++
}

// sortBySize orders the result for presentation, largest first.
func (r *ScanResult) sortBySize() {
	sort.SliceStable(r.Files, func(i, j int) bool {
		return r.Files[i].Size > r.Files[j].Size
	})
}

// snapshot copies the current totals for a progress update. The copy keeps
// renderers on other goroutines away from the live map.
func (r *ScanResult) snapshot() progress.Snapshot {
	totals := make(map[string]int64, len(r.CategoryTotals))
	for k, v := range r.CategoryTotals {
		totals[k] = v
	}
	return progress.Snapshot{
		Matched:   r.TotalCount,
		TotalSize: r.TotalSize,
		Totals:    totals,
	}
}

// FilterCategory returns a new result restricted to entries whose category
// equals cat, compared case-insensitively. Totals are recomputed.
func (r *ScanResult) FilterCategory(cat string) *ScanResult {
	filtered := newScanResult()
	for _, f := range r.Files {
		if strings.EqualFold(f.Category, cat) {
			filtered.add(f)
		}
	}
	return filtered
}

// LargeFileScan finds files of at least MinBytes under Root, classified by
// content type.
type LargeFileScan struct {
	Root     string
	MinBytes int64
	Ignore   IgnoreSet
	Progress progress.Func
}

// Run walks the tree once and returns the aggregated result.
func (s *LargeFileScan) Run() (*ScanResult, error) {
	result := newScanResult()

	err := Walk(s.Root, s.Ignore, func(path string, info os.FileInfo) {
		if info.Size() < s.MinBytes {
			return
		}
		result.add(FileInfo{
			Path:     path,
			Size:     info.Size(),
			ModTime:  info.ModTime(),
			Category: classify.ByExtension(path),
		})
		if s.Progress != nil {
			s.Progress(result.snapshot())
		}
	})
	if err != nil {
		return nil, err
	}

	result.sortBySize()
	return result, nil
}

// ScreenshotScan finds screenshots under Root whose age in whole days is
// strictly greater than MinAgeDays.
type ScreenshotScan struct {
	Root       string
	MinAgeDays int
	Now        time.Time
	Progress   progress.Func
}

// ScreenshotCategory labels screenshot entries; the screenshot pipeline has
// no content-type buckets.
const ScreenshotCategory = "N/A"

// Run walks the tree once and returns the aggregated result.
func (s *ScreenshotScan) Run() (*ScanResult, error) {
	now := s.Now
	if now.IsZero() {
		now = time.Now()
	}

	result := newScanResult()

	err := Walk(s.Root, nil, func(path string, info os.FileInfo) {
		if !classify.IsScreenshot(filepath.Base(path)) {
			return
		}
		ageDays := int(now.Sub(info.ModTime()).Hours() / 24)
		if ageDays <= s.MinAgeDays {
			return
		}
		result.add(FileInfo{
			Path:     path,
			Size:     info.Size(),
			ModTime:  info.ModTime(),
			Category: ScreenshotCategory,
		})
		if s.Progress != nil {
			s.Progress(result.snapshot())
		}
	})
	if err != nil {
		return nil, err
	}

	result.sortBySize()
	return result, nil
}

// ArtifactScan finds directories named DirName under Root (node_modules and
// the like), records each with its recursive size, and never descends into a
// match. The category is the name of the project directory containing the
// artifact, which keys the size-distribution chart.
type ArtifactScan struct {
	Root     string
	DirName  string
	Ignore   IgnoreSet
	Progress progress.Func
}

// Run walks the tree once and returns the aggregated result.
func (s *ArtifactScan) Run() (*ScanResult, error) {
	result := newScanResult()

	err := filepath.WalkDir(s.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			zap.L().Debug("skipping unreadable entry", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != s.Root && s.Ignore.Match(path) && d.Name() != s.DirName {
			return filepath.SkipDir
		}
		if d.Name() != s.DirName {
			return nil
		}

		info, statErr := d.Info()
		modTime := time.Time{}
		if statErr == nil {
			modTime = info.ModTime()
		}
		result.add(FileInfo{
			Path:     path,
			Size:     dirSize(path),
			ModTime:  modTime,
			Category: filepath.Base(filepath.Dir(path)),
		})
		if s.Progress != nil {
			s.Progress(result.snapshot())
		}
		return filepath.SkipDir
	})
	if err != nil {
		return nil, err
	}

	result.sortBySize()
	return result, nil
}

// dirSize sums the sizes of all regular files beneath dir, skipping entries
// it cannot stat.
func dirSize(dir string) int64 {
	var size int64
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if info, err := d.Info(); err == nil {
			size += info.Size()
		}
		return nil
	})
	return size
}
