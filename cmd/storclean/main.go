package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/storclean/storclean/internal/cleaner"
	"github.com/storclean/storclean/internal/config"
	"github.com/storclean/storclean/internal/logging"
	"github.com/storclean/storclean/internal/platform"
	"github.com/storclean/storclean/internal/progress"
	"github.com/storclean/storclean/internal/reporter"
	"github.com/storclean/storclean/internal/scanner"
	"github.com/storclean/storclean/internal/ui"
	"github.com/storclean/storclean/pkg/sizefmt"
)

var (
	Version   = "0.2.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

var (
	configPath string
	verbose    bool
	minSizeMB  int
	fileType   string
	doDelete   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "storclean",
	Short: "Find and clean large files, old screenshots, and build artifacts",
	Long: `Storclean scans local directories for space hogs: large files grouped by
content type, stale screenshots on the Desktop, and node_modules build
artifacts. Every scan reports first; deletion is opt-in and confirmed.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Setup(verbose)
	},
}

var findLargeCmd = &cobra.Command{
	Use:   "find-large [DIRECTORY]",
	Short: "Find large files grouped by content type",
	Long: `Walks DIRECTORY (default: your home directory) and reports every file at or
above the size threshold, grouped by content type with a live bar chart.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("min-size") {
			minSizeMB = cfg.MinSizeMB
		}

		root, err := platform.HomeDir()
		if err != nil {
			return err
		}
		if len(args) > 0 {
			root = args[0]
		}
		if err := platform.ValidateDir(root); err != nil {
			return err
		}

		scan := &scanner.LargeFileScan{
			Root:     root,
			MinBytes: int64(minSizeMB) * 1024 * 1024,
			Ignore:   scanner.IgnoreSet(cfg.IgnorePatterns),
		}
		title := fmt.Sprintf("Scanning %s for files larger than %d MB...", root, minSizeMB)
		result, err := ui.RunScan(os.Stdout, title, cfg.ChartWidth, true,
			func(notify progress.Func) (*scanner.ScanResult, error) {
				scan.Progress = notify
				return scan.Run()
			})
		if err != nil {
			return err
		}

		rptr := reporter.New(os.Stdout)

		if fileType != "" {
			filtered := result.FilterCategory(fileType)
			if filtered.TotalCount == 0 {
				rptr.NothingFound(fmt.Sprintf("No %s files found.", fileType))
				return nil
			}
			result = filtered
		} else if result.TotalCount == 0 {
			rptr.NothingFound("No large files found.")
			return nil
		}

		rptr.Title("Found %d files (%s)", result.TotalCount, sizefmt.Format(result.TotalSize))
		rptr.Chart(result.CategoryTotals, cfg.ChartWidth)
		fmt.Println()
		rptr.LargeFileTable(result, root)
		rptr.Total("Total", result.TotalSize)

		if !doDelete {
			return nil
		}
		return deleteLargeFiles(result)
	},
}

var cleanScreenshotsCmd = &cobra.Command{
	Use:   "clean-screenshots [DAYS]",
	Short: "Find screenshots on the Desktop older than DAYS days",
	Long: `Scans the Desktop for screenshot and screen recording files older than DAYS
days (default: 30) and reports them. With --delete, asks once and removes
the whole batch.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		days := cfg.ScreenshotAgeDays
		if len(args) > 0 {
			days, err = strconv.Atoi(args[0])
			if err != nil || days < 0 {
				return fmt.Errorf("invalid DAYS value: %s", args[0])
			}
		}

		desktop, err := platform.DesktopDir()
		if err != nil {
			return err
		}
		if err := platform.ValidateDir(desktop); err != nil {
			return err
		}

		now := time.Now()
		scan := &scanner.ScreenshotScan{
			Root:       desktop,
			MinAgeDays: days,
			Now:        now,
		}
		title := fmt.Sprintf("Scanning %s for screenshots older than %d days...", desktop, days)
		result, err := ui.RunScan(os.Stdout, title, cfg.ChartWidth, false,
			func(notify progress.Func) (*scanner.ScanResult, error) {
				scan.Progress = notify
				return scan.Run()
			})
		if err != nil {
			return err
		}

		rptr := reporter.New(os.Stdout)

		if result.TotalCount == 0 {
			rptr.NothingFound(fmt.Sprintf("No screenshots older than %d days found.", days))
			return nil
		}

		rptr.Title("Found %d screenshots (%s)", result.TotalCount, sizefmt.Format(result.TotalSize))
		rptr.ScreenshotTable(result, now)
		rptr.Total("Total", result.TotalSize)

		if !doDelete {
			return nil
		}

		fmt.Println()
		console := ui.NewConsole(os.Stdin, os.Stdout)
		selected := cleaner.ConfirmBatch(result.Files, func() bool {
			return console.Confirm("Do you want to delete these %d screenshots?", result.TotalCount)
		})
		if selected == nil {
			fmt.Println("Deletion cancelled.")
			return nil
		}
		return deleteFiles(selected, false, console)
	},
}

var cleanNodeModulesCmd = &cobra.Command{
	Use:   "clean-node-modules [DIRECTORY]",
	Short: "Find node_modules directories and their sizes",
	Long: `Walks DIRECTORY (default: your home directory) and reports every
node_modules directory with its total size and containing project. With
--delete, confirms each directory before removing it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		root, err := platform.HomeDir()
		if err != nil {
			return err
		}
		if len(args) > 0 {
			root = args[0]
		}
		if err := platform.ValidateDir(root); err != nil {
			return err
		}

		ignore := scanner.IgnoreSet(cfg.IgnorePatterns)
		scan := &scanner.ArtifactScan{
			Root:    root,
			DirName: "node_modules",
			Ignore:  ignore.Without("node_modules"),
		}
		title := fmt.Sprintf("Scanning %s for node_modules directories...", root)
		result, err := ui.RunScan(os.Stdout, title, cfg.ChartWidth, true,
			func(notify progress.Func) (*scanner.ScanResult, error) {
				scan.Progress = notify
				return scan.Run()
			})
		if err != nil {
			return err
		}

		rptr := reporter.New(os.Stdout)

		if result.TotalCount == 0 {
			rptr.NothingFound("No node_modules directories found.")
			return nil
		}

		rptr.Title("Found %d node_modules directories (%s)", result.TotalCount, sizefmt.Format(result.TotalSize))
		rptr.Chart(result.CategoryTotals, cfg.ChartWidth)
		fmt.Println()
		rptr.ArtifactTable(result, root)
		rptr.Total("Total", result.TotalSize)

		if !doDelete {
			return nil
		}

		console := ui.NewConsole(os.Stdin, os.Stdout)
		selected := cleaner.Confirm(result.Files, func(f scanner.FileInfo) bool {
			return console.Confirm("Delete %s (%s)?", f.Path, sizefmt.Format(f.Size))
		})
		if len(selected) == 0 {
			fmt.Println("Nothing selected for deletion.")
			return nil
		}
		return deleteFiles(selected, true, console)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the configuration file location and contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			var err error
			path, err = config.Path()
			if err != nil {
				return err
			}
		}

		cfg, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			fmt.Printf("Config file: %s (not present, using defaults)\n\n", path)
		} else {
			fmt.Printf("Config file: %s\n\n", path)
		}
		fmt.Printf("min_size_mb: %d\n", cfg.MinSizeMB)
		fmt.Printf("screenshot_age_days: %d\n", cfg.ScreenshotAgeDays)
		fmt.Printf("chart_width: %d\n", cfg.ChartWidth)
		fmt.Printf("ignore_patterns: %v\n", cfg.IgnorePatterns)
		return nil
	},
}

func deleteLargeFiles(result *scanner.ScanResult) error {
	console := ui.NewConsole(os.Stdin, os.Stdout)
	selected := cleaner.Confirm(result.Files, func(f scanner.FileInfo) bool {
		return console.Confirm("Delete %s (%s)?", f.Path, sizefmt.Format(f.Size))
	})
	if len(selected) == 0 {
		fmt.Println("Nothing selected for deletion.")
		return nil
	}
	return deleteFiles(selected, false, console)
}

// deleteFiles removes the selected entries, reporting per-file failures and
// the final summary. Failures never abort the batch.
func deleteFiles(files []scanner.FileInfo, removeTree bool, console *ui.Console) error {
	total := len(files)
	cl := &cleaner.Cleaner{
		RemoveTree: removeTree,
		Progress: func(done, _ int, _ int64) {
			console.Progress(done, total)
		},
	}
	res := cl.Delete(files)

	failures := make([]string, 0, len(res.Errors))
	for _, derr := range res.Errors {
		zap.L().Debug("deletion failed", zap.String("path", derr.Path), zap.Error(derr))
		failures = append(failures, derr.UserMessage())
	}

	reporter.New(os.Stdout).DeletionSummary(len(res.Deleted), res.DeletedSize, failures)
	return nil
}

func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.Path()
		if err != nil {
			return nil, err
		}
	}
	return config.Load(path)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	findLargeCmd.Flags().IntVarP(&minSizeMB, "min-size", "s", 100, "minimum file size in MB")
	findLargeCmd.Flags().StringVarP(&fileType, "type", "t", "", "only report files of this content type")
	findLargeCmd.Flags().BoolVar(&doDelete, "delete", false, "interactively delete the reported files")

	cleanScreenshotsCmd.Flags().BoolVar(&doDelete, "delete", false, "delete the reported screenshots after one confirmation")

	cleanNodeModulesCmd.Flags().BoolVar(&doDelete, "delete", false, "interactively delete the reported directories")

	rootCmd.AddCommand(findLargeCmd)
	rootCmd.AddCommand(cleanScreenshotsCmd)
	rootCmd.AddCommand(cleanNodeModulesCmd)
	rootCmd.AddCommand(configCmd)
}
