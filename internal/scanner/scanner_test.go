package scanner

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/storclean/storclean/internal/classify"
	"github.com/storclean/storclean/internal/progress"
	"github.com/storclean/storclean/internal/testutil"
)

func TestLargeFileScanThreshold(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFileOfSize("exactly.bin", 1024)
	f.CreateFileOfSize("above.bin", 2048)
	f.CreateFileOfSize("below.bin", 1023)

	scan := &LargeFileScan{Root: f.Root, MinBytes: 1024}
	result, err := scan.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.TotalCount != 2 {
		t.Fatalf("TotalCount = %d, want 2 (threshold is inclusive)", result.TotalCount)
	}
	if result.TotalSize != 3072 {
		t.Errorf("TotalSize = %d, want 3072", result.TotalSize)
	}
}

func TestLargeFileScanSortsDescending(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFileOfSize("small.mp4", 100)
	f.CreateFileOfSize("large.mp4", 300)
	f.CreateFileOfSize("medium.mp4", 200)

	scan := &LargeFileScan{Root: f.Root, MinBytes: 1}
	result, err := scan.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for i := 1; i < len(result.Files); i++ {
		if result.Files[i-1].Size < result.Files[i].Size {
			t.Fatalf("Files not sorted descending by size: %v", result.Files)
		}
	}
	if filepath.Base(result.Files[0].Path) != "large.mp4" {
		t.Errorf("largest first, got %s", result.Files[0].Path)
	}
}

func TestLargeFileScanCategoryTotals(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFileOfSize("a.mp4", 500)
	f.CreateFileOfSize("b.mov", 300)
	f.CreateFileOfSize("c.png", 200)
	f.CreateFileOfSize("d.xyz", 100)

	scan := &LargeFileScan{Root: f.Root, MinBytes: 1}
	result, err := scan.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if got := result.CategoryTotals[classify.Video]; got != 800 {
		t.Errorf("Video total = %d, want 800", got)
	}
	if got := result.CategoryTotals[classify.Image]; got != 200 {
		t.Errorf("Image total = %d, want 200", got)
	}
	if got := result.CategoryTotals[classify.Unknown]; got != 100 {
		t.Errorf("Unknown total = %d, want 100", got)
	}

	var sum int64
	for _, v := range result.CategoryTotals {
		sum += v
	}
	if sum != result.TotalSize {
		t.Errorf("category totals sum %d, TotalSize %d", sum, result.TotalSize)
	}
}

func TestLargeFileScanIgnoresSubtrees(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFileOfSize("keep.bin", 4096)
	f.CreateFileOfSize("node_modules/skip.bin", 4096)

	scan := &LargeFileScan{Root: f.Root, MinBytes: 1, Ignore: DefaultIgnores()}
	result, err := scan.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.TotalCount != 1 {
		t.Errorf("TotalCount = %d, want 1 (ignored subtree pruned)", result.TotalCount)
	}
}

func TestLargeFileScanProgress(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFileOfSize("a.bin", 100)
	f.CreateFileOfSize("b.bin", 200)

	var snaps []progress.Snapshot
	scan := &LargeFileScan{
		Root:     f.Root,
		MinBytes: 1,
		Progress: func(s progress.Snapshot) { snaps = append(snaps, s) },
	}
	result, err := scan.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(snaps) != 2 {
		t.Fatalf("got %d progress snapshots, want 2", len(snaps))
	}
	last := snaps[len(snaps)-1]
	if last.Matched != result.TotalCount || last.TotalSize != result.TotalSize {
		t.Errorf("final snapshot %+v does not match result (%d files, %d bytes)",
			last, result.TotalCount, result.TotalSize)
	}

	// Snapshots are copies; mutating one must not touch the result.
	last.Totals[classify.Other] = 0
	if result.CategoryTotals[classify.Other] == 0 {
		t.Error("snapshot shares the live totals map")
	}
}

func TestFilterCategory(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFileOfSize("a.mp4", 500)
	f.CreateFileOfSize("b.mov", 300)
	f.CreateFileOfSize("c.png", 200)

	scan := &LargeFileScan{Root: f.Root, MinBytes: 1}
	result, err := scan.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	filtered := result.FilterCategory("video")
	if filtered.TotalCount != 2 {
		t.Fatalf("filtered count = %d, want 2 (case-insensitive)", filtered.TotalCount)
	}
	if filtered.TotalSize != 800 {
		t.Errorf("filtered size = %d, want 800", filtered.TotalSize)
	}
	if len(filtered.CategoryTotals) != 1 {
		t.Errorf("filtered totals should only hold the requested category: %v", filtered.CategoryTotals)
	}

	empty := result.FilterCategory("Audio")
	if empty.TotalCount != 0 {
		t.Errorf("filtering an absent category should be empty, got %d", empty.TotalCount)
	}
}

func TestScreenshotScanAge(t *testing.T) {
	f := testutil.NewFixture(t)
	now := time.Now()
	f.CreateFileWithAge("Screenshot 2024-01-01 at 10.00.00.png", []byte("old"), 40)
	f.CreateFileWithAge("Screenshot 2024-06-01 at 10.00.00.png", []byte("boundary"), 30)
	f.CreateFileWithAge("Screenshot 2024-08-01 at 10.00.00.png", []byte("fresh"), 5)
	f.CreateFileWithAge("vacation.png", []byte("not a screenshot"), 90)

	scan := &ScreenshotScan{Root: f.Root, MinAgeDays: 30, Now: now}
	result, err := scan.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.TotalCount != 1 {
		t.Fatalf("TotalCount = %d, want 1 (age must exceed the threshold)", result.TotalCount)
	}
	if base := filepath.Base(result.Files[0].Path); base != "Screenshot 2024-01-01 at 10.00.00.png" {
		t.Errorf("matched %s, want the 40-day-old screenshot", base)
	}
	if result.Files[0].Category != ScreenshotCategory {
		t.Errorf("Category = %q, want %q", result.Files[0].Category, ScreenshotCategory)
	}
}

func TestScreenshotScanRecursive(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFileWithAge("archive/Screenshot 2023-01-01 at 10.00.00.png", []byte("nested"), 100)

	scan := &ScreenshotScan{Root: f.Root, MinAgeDays: 30, Now: time.Now()}
	result, err := scan.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.TotalCount != 1 {
		t.Errorf("nested screenshots should be found, got %d", result.TotalCount)
	}
}

func TestArtifactScan(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFileOfSize("web/node_modules/react/index.js", 1000)
	f.CreateFileOfSize("web/node_modules/lodash/index.js", 500)
	f.CreateFileOfSize("api/node_modules/express/index.js", 700)
	f.CreateFileOfSize("api/src/server.js", 9999)

	ignore := DefaultIgnores().Without("node_modules")
	scan := &ArtifactScan{Root: f.Root, DirName: "node_modules", Ignore: ignore}
	result, err := scan.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.TotalCount != 2 {
		t.Fatalf("TotalCount = %d, want 2", result.TotalCount)
	}
	if result.Files[0].Size != 1500 {
		t.Errorf("largest artifact size = %d, want 1500", result.Files[0].Size)
	}
	if result.Files[0].Category != "web" {
		t.Errorf("Category = %q, want containing project %q", result.Files[0].Category, "web")
	}
	if result.TotalSize != 2200 {
		t.Errorf("TotalSize = %d, want 2200", result.TotalSize)
	}
}

func TestArtifactScanDoesNotDescendIntoMatches(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFileOfSize("app/node_modules/pkg/node_modules/dep/index.js", 100)

	scan := &ArtifactScan{Root: f.Root, DirName: "node_modules"}
	result, err := scan.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.TotalCount != 1 {
		t.Errorf("nested artifact dirs belong to the outer match, got %d entries", result.TotalCount)
	}
}
