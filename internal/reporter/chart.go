package reporter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/storclean/storclean/pkg/sizefmt"
)

// DefaultChartWidth is the bar length, in cells, of the widest bar.
const DefaultChartWidth = 40

// BuildChart renders a horizontal bar chart of per-category byte totals.
// Each bar is proportional to the category's share of the largest total,
// scaled to width cells; the unfilled remainder uses a filler rune.
// Categories are ordered by descending total, ties broken by label so the
// output is deterministic.
func BuildChart(totals map[string]int64, width int) string {
	if width <= 0 {
		width = DefaultChartWidth
	}
	if len(totals) == 0 {
		return dimStyle.Render("Processing...")
	}

	type entry struct {
		label string
		size  int64
	}
	entries := make([]entry, 0, len(totals))
	maxSize := int64(1)
	maxLabel := 0
	for label, size := range totals {
		entries = append(entries, entry{label, size})
		if size > maxSize {
			maxSize = size
		}
		if len(label) > maxLabel {
			maxLabel = len(label)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].size != entries[j].size {
			return entries[i].size > entries[j].size
		}
		return entries[i].label < entries[j].label
	})

	var b strings.Builder
	for _, e := range entries {
		filled := int(float64(e.size) / float64(maxSize) * float64(width))
		bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
		fmt.Fprintf(&b, "%-*s │ %s %s\n",
			maxLabel, e.label, barStyle.Render(bar), sizefmt.Format(e.size))
	}
	return b.String()
}
