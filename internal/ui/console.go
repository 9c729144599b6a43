package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var promptStyle = lipgloss.NewStyle().Bold(true)

// Console reads confirmation answers and renders deletion progress. In and
// Out are injected so tests can script answers and capture output.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsole creates a Console reading from in and writing to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Confirm asks a yes/no question and returns the answer. Anything other
// than y/Y (including EOF) is a no.
func (c *Console) Confirm(format string, args ...any) bool {
	fmt.Fprintf(c.out, "%s (y/N): ", promptStyle.Render(fmt.Sprintf(format, args...)))
	if !c.in.Scan() {
		return false
	}
	answer := strings.TrimSpace(c.in.Text())
	return answer == "y" || answer == "Y"
}

// Progress renders a one-line deletion progress bar, redrawn in place.
func (c *Console) Progress(done, total int) {
	const width = 30
	filled := 0
	if total > 0 {
		filled = done * width / total
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	fmt.Fprintf(c.out, "\rDeleting... %s %d/%d", bar, done, total)
	if done == total {
		fmt.Fprintln(c.out)
	}
}
