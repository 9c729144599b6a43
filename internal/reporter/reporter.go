// Package reporter renders scan results: the live category bar chart and
// the final sorted tables. It writes to an injected io.Writer so tests can
// capture output.
package reporter

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/storclean/storclean/internal/scanner"
	"github.com/storclean/storclean/pkg/sizefmt"
)

// Reporter formats scan results onto a writer.
type Reporter struct {
	w io.Writer
}

// New creates a Reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Title prints a scan headline.
func (r *Reporter) Title(format string, args ...any) {
	fmt.Fprintf(r.w, "\n%s\n\n", titleStyle.Render(fmt.Sprintf(format, args...)))
}

// NothingFound prints the empty-result message. No table follows.
func (r *Reporter) NothingFound(msg string) {
	fmt.Fprintf(r.w, "%s\n", warnStyle.Render(msg))
}

// Chart prints the final category bar chart.
func (r *Reporter) Chart(totals map[string]int64, width int) {
	fmt.Fprintf(r.w, "%s\n", BuildChart(totals, width))
}

// LargeFileTable prints one row per matched file, sorted as the result is
// (descending by size): display path, human size, category, modified date.
func (r *Reporter) LargeFileTable(result *scanner.ScanResult, root string) {
	header := fmt.Sprintf("%-60s  %12s  %-10s  %s", "File", "Size", "Type", "Modified")
	fmt.Fprintf(r.w, "%s\n%s\n", headerStyle.Render(header), dimStyle.Render(rule(len(header))))

	for _, f := range result.Files {
		fmt.Fprintf(r.w, "%-60s  %12s  %-10s  %s\n",
			displayPath(f.Path, root),
			sizefmt.Format(f.Size),
			f.Category,
			f.ModTime.Format("2006-01-02 15:04"))
	}
}

// ScreenshotTable prints one row per screenshot: name, age in days, size,
// modified date.
func (r *Reporter) ScreenshotTable(result *scanner.ScanResult, now time.Time) {
	header := fmt.Sprintf("%-50s  %10s  %12s  %s", "Screenshot", "Age (days)", "Size", "Modified")
	fmt.Fprintf(r.w, "%s\n%s\n", headerStyle.Render(header), dimStyle.Render(rule(len(header))))

	for _, f := range result.Files {
		age := int(now.Sub(f.ModTime).Hours() / 24)
		fmt.Fprintf(r.w, "%-50s  %10d  %12s  %s\n",
			truncate(filepath.Base(f.Path), 50),
			age,
			sizefmt.Format(f.Size),
			f.ModTime.Format("2006-01-02 15:04"))
	}
}

// ArtifactTable prints one row per artifact directory: display path, size,
// containing project.
func (r *Reporter) ArtifactTable(result *scanner.ScanResult, root string) {
	header := fmt.Sprintf("%-60s  %12s  %s", "Directory", "Size", "Project")
	fmt.Fprintf(r.w, "%s\n%s\n", headerStyle.Render(header), dimStyle.Render(rule(len(header))))

	for _, f := range result.Files {
		fmt.Fprintf(r.w, "%-60s  %12s  %s\n",
			displayPath(f.Path, root),
			sizefmt.Format(f.Size),
			f.Category)
	}
}

// Total prints the grand-total line after a table.
func (r *Reporter) Total(label string, size int64) {
	fmt.Fprintf(r.w, "\n%s\n",
		totalStyle.Render(fmt.Sprintf("%s: %s", label, sizefmt.Format(size))))
}

// DeletionSummary prints per-file failure messages followed by the
// completion line.
func (r *Reporter) DeletionSummary(deleted int, freed int64, failures []string) {
	for _, msg := range failures {
		fmt.Fprintf(r.w, "%s\n", warnStyle.Render(msg))
	}
	fmt.Fprintf(r.w, "\n%s\n",
		totalStyle.Render(fmt.Sprintf("Cleanup completed! Deleted %d items (%s freed)",
			deleted, sizefmt.Format(freed))))
}

// displayPath shows the path relative to the scan root when possible.
func displayPath(path, root string) string {
	if root != "" {
		if rel, err := filepath.Rel(root, path); err == nil {
			return truncate(rel, 60)
		}
	}
	return truncate(path, 60)
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return "..." + s[len(s)-(width-3):]
}

func rule(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = '─'
	}
	return string(b)
}
