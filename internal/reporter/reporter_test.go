package reporter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/storclean/storclean/internal/scanner"
)

func TestNothingFound(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).NothingFound("No large files found.")
	if !strings.Contains(buf.String(), "No large files found.") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestLargeFileTable(t *testing.T) {
	result := &scanner.ScanResult{
		Files: []scanner.FileInfo{
			{
				Path:     "/home/user/videos/movie.mp4",
				Size:     200 * 1024 * 1024,
				ModTime:  time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC),
				Category: "Video",
			},
			{
				Path:     "/home/user/backup.zip",
				Size:     150 * 1024 * 1024,
				ModTime:  time.Date(2023, 12, 1, 18, 0, 0, 0, time.UTC),
				Category: "Archive",
			},
		},
	}

	var buf bytes.Buffer
	New(&buf).LargeFileTable(result, "/home/user")
	out := buf.String()

	for _, want := range []string{
		"File", "Size", "Type", "Modified",
		"videos/movie.mp4", "200.00 MB", "Video", "2024-03-15 09:30",
		"backup.zip", "150.00 MB", "Archive",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestScreenshotTableAges(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	result := &scanner.ScanResult{
		Files: []scanner.FileInfo{
			{
				Path:    "/desk/Screenshot 2024-04-17 at 10.00.00.png",
				Size:    1024,
				ModTime: now.AddDate(0, 0, -45),
			},
		},
	}

	var buf bytes.Buffer
	New(&buf).ScreenshotTable(result, now)
	out := buf.String()

	if !strings.Contains(out, "Screenshot 2024-04-17 at 10.00.00.png") {
		t.Errorf("table missing filename:\n%s", out)
	}
	if !strings.Contains(out, "45") {
		t.Errorf("table missing age in days:\n%s", out)
	}
}

func TestTotal(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Total("Total", 3*1024*1024*1024)
	if !strings.Contains(buf.String(), "Total: 3.00 GB") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestDeletionSummary(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).DeletionSummary(3, 512*1024*1024, []string{
		"✗ Permission denied: /protected/file.bin",
	})
	out := buf.String()

	if !strings.Contains(out, "Cleanup completed! Deleted 3 items (512.00 MB freed)") {
		t.Errorf("missing completion line:\n%s", out)
	}
	if !strings.Contains(out, "Permission denied: /protected/file.bin") {
		t.Errorf("missing failure line:\n%s", out)
	}

	idx := strings.Index(out, "Permission denied")
	done := strings.Index(out, "Cleanup completed")
	if idx > done {
		t.Error("failures should print before the completion line")
	}
}

func TestDisplayPathTruncation(t *testing.T) {
	long := "/very" + strings.Repeat("/deep", 30) + "/file.bin"
	got := displayPath(long, "")
	if len(got) != 60 {
		t.Errorf("len = %d, want 60", len(got))
	}
	if !strings.HasPrefix(got, "...") {
		t.Errorf("truncated path should keep the tail: %q", got)
	}
	if !strings.HasSuffix(got, "file.bin") {
		t.Errorf("truncated path should end with the filename: %q", got)
	}
}
