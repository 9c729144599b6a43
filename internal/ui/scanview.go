// Package ui owns the interactive terminal surface: the live scan view and
// the confirmation prompts. Everything degrades to plain output when stdout
// is not a terminal.
package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/storclean/storclean/internal/progress"
	"github.com/storclean/storclean/internal/reporter"
	"github.com/storclean/storclean/internal/scanner"
	"github.com/storclean/storclean/pkg/sizefmt"
)

const refreshInterval = 100 * time.Millisecond

type progressMsg struct {
	snap progress.Snapshot
}

type scanDoneMsg struct {
	result *scanner.ScanResult
	err    error
}

// scanModel is the live view shown while a scan runs: a spinner, running
// match counts and, for the category pipelines, the bar chart.
type scanModel struct {
	title      string
	spin       spinner.Model
	snap       progress.Snapshot
	chartWidth int
	showChart  bool
	msgs       chan tea.Msg

	result *scanner.ScanResult
	err    error
}

func newScanModel(title string, chartWidth int, showChart bool, msgs chan tea.Msg) scanModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED"))

	return scanModel{
		title:      title,
		spin:       s,
		chartWidth: chartWidth,
		showChart:  showChart,
		msgs:       msgs,
	}
}

func waitForMsg(msgs chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-msgs
	}
}

func (m scanModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, waitForMsg(m.msgs))
}

func (m scanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case progressMsg:
		m.snap = msg.snap
		return m, waitForMsg(m.msgs)

	case scanDoneMsg:
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = fmt.Errorf("scan interrupted")
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m scanModel) View() string {
	if m.result != nil || m.err != nil {
		return ""
	}

	view := fmt.Sprintf("%s\n\n%s %d files matched (%s)\n",
		m.title, m.spin.View(), m.snap.Matched, sizefmt.Format(m.snap.TotalSize))
	if m.showChart {
		view += "\n" + reporter.BuildChart(m.snap.Totals, m.chartWidth)
	}
	return view
}

// RunScan executes run with a live terminal view. The scan itself happens on
// its own goroutine; progress snapshots stream to the view through a message
// channel at a bounded refresh rate, so aggregation stays single-writer and
// the displayed totals match the sequential result. When stdout is not a
// terminal the scan runs without a view.
func RunScan(out io.Writer, title string, chartWidth int, showChart bool,
	run func(progress.Func) (*scanner.ScanResult, error)) (*scanner.ScanResult, error) {

	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		fmt.Fprintln(out, title)
		return run(nil)
	}

	chartWidth = fitChartWidth(chartWidth)

	msgs := make(chan tea.Msg, 16)
	go func() {
		notify := progress.Throttle(refreshInterval, func(s progress.Snapshot) {
			select {
			case msgs <- progressMsg{snap: s}:
			default:
				// Drop the snapshot if the view is behind.
			}
		})
		result, err := run(notify)
		msgs <- scanDoneMsg{result: result, err: err}
	}()

	p := tea.NewProgram(newScanModel(title, chartWidth, showChart, msgs), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("scan view failed: %w", err)
	}

	m := final.(scanModel)
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

// fitChartWidth keeps the chart inside the terminal.
func fitChartWidth(width int) int {
	if width <= 0 {
		width = reporter.DefaultChartWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && width > w-35 {
		width = w - 35
		if width < 10 {
			width = 10
		}
	}
	return width
}
