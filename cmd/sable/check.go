package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"sable/internal/diagfmt"
	"sable/internal/driver"
	"sable/internal/project"
	"sable/internal/source"
	"sable/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.sb|dir]",
	Short: "Type-check sable sources",
	Long: `Check runs the full front end (lexer, parser, semantic analysis)
over one file or every source file under a directory. With no argument
it checks the enclosing project, located through sable.toml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("ui", "auto", "interactive progress (auto|on|off)")
	checkCmd.Flags().Bool("symbols", false, "dump the symbol tables")
	checkCmd.Flags().Bool("json", false, "emit diagnostics as JSON")
	checkCmd.Flags().Bool("no-cache", false, "bypass the result cache")
	checkCmd.Flags().Int("jobs", 0, "parallel workers (0 = all CPUs)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	target, err := checkTarget(args)
	if err != nil {
		return err
	}

	info, err := os.Stat(target)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return checkDir(cmd, target)
	}
	return checkFile(cmd, target)
}

// checkTarget resolves the positional argument, falling back to the
// enclosing project root.
func checkTarget(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	root, ok, err := project.FindProjectRoot(".")
	if err != nil {
		return "", err
	}
	if !ok {
		return ".", nil
	}
	return root, nil
}

func checkFile(cmd *cobra.Command, path string) error {
	result, err := driver.Check(path, driver.Options{MaxDiagnostics: maxDiagnostics(cmd)})
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}
	reportResults(cmd, []*driver.Result{result})
	printTimings(cmd, result)

	if symbols, _ := cmd.Flags().GetBool("symbols"); symbols && result.Symbols != nil {
		diagfmt.DumpSymbols(os.Stdout, result.Symbols)
	}
	if result.Bag.HasErrors() {
		os.Exit(1)
	}
	return nil
}

func checkDir(cmd *cobra.Command, dir string) error {
	opts := driver.Options{
		MaxDiagnostics: maxDiagnostics(cmd),
	}
	opts.Jobs, _ = cmd.Flags().GetInt("jobs")

	if noCache, _ := cmd.Flags().GetBool("no-cache"); !noCache {
		if cache, err := driver.OpenDiskCache("sable"); err == nil {
			opts.Cache = cache
		}
	}

	uiFlag, _ := cmd.Flags().GetString("ui")
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	var results []*driver.Result
	if shouldUseTUI(mode) {
		results, err = checkDirWithUI(cmd.Context(), dir, opts)
	} else {
		_, results, err = driver.CheckDir(cmd.Context(), dir, opts)
	}
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	failed := reportResults(cmd, results)
	if failed {
		os.Exit(1)
	}
	return nil
}

// checkDirWithUI runs the directory check behind a progress TUI fed by
// driver events. The check is always joined before its results are
// read, even when the viewer quits before the run finishes.
func checkDirWithUI(ctx context.Context, dir string, opts driver.Options) ([]*driver.Result, error) {
	files, err := driver.ListFiles(dir)
	if err != nil {
		return nil, err
	}

	events, wait := startCheckDir(ctx, dir, opts)
	model := ui.NewProgressModel("checking "+dir, files, events)
	_, uiErr := tea.NewProgram(model).Run()
	results, runErr := wait()
	if uiErr != nil {
		return nil, uiErr
	}
	return results, runErr
}

// startCheckDir launches the directory check in the background and
// returns its event feed plus a wait function. The wait function drains
// whatever events the viewer left unread, so an early quit cannot stall
// the checker, and joins the run before handing back its results.
func startCheckDir(ctx context.Context, dir string, opts driver.Options) (<-chan driver.Event, func() ([]*driver.Result, error)) {
	events := make(chan driver.Event, 64)
	opts.Progress = func(ev driver.Event) { events <- ev }

	var results []*driver.Result
	var runErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer close(events)
		_, results, runErr = driver.CheckDir(ctx, dir, opts)
	}()

	wait := func() ([]*driver.Result, error) {
		for range events {
		}
		<-done
		return results, runErr
	}
	return events, wait
}

// reportResults prints every bag and reports whether any file failed.
func reportResults(cmd *cobra.Command, results []*driver.Result) bool {
	fs := source.NewFileSet()
	for _, r := range results {
		if r != nil && r.File != nil {
			fs.Add(r.File)
		}
	}

	jsonOut, _ := cmd.Flags().GetBool("json")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	prettyOpts := diagfmt.DefaultPrettyOpts()
	prettyOpts.Color = useColor(cmd, os.Stderr)

	failed := false
	for _, r := range results {
		if r == nil || r.Bag == nil {
			continue
		}
		if r.Bag.HasErrors() {
			failed = true
		}
		if r.Bag.Len() == 0 {
			continue
		}
		r.Bag.Sort()
		if jsonOut {
			_ = diagfmt.JSON(os.Stdout, r.Bag, diagfmt.JSONOpts{IncludeNotes: true, IncludeFixes: true})
			continue
		}
		diagfmt.Pretty(os.Stderr, r.Bag, fs, prettyOpts)
		fmt.Fprintln(os.Stderr)
	}
	if !quiet && !jsonOut {
		summarize(results)
	}
	return failed
}

func summarize(results []*driver.Result) {
	var clean, dirty, cached int
	for _, r := range results {
		if r == nil || r.Bag == nil {
			continue
		}
		if r.Cached {
			cached++
		}
		if r.Bag.HasErrors() {
			dirty++
		} else {
			clean++
		}
	}
	if clean+dirty <= 1 {
		return
	}
	fmt.Fprintf(os.Stderr, "checked %d file(s): %d ok, %d with errors", clean+dirty, clean, dirty)
	if cached > 0 {
		fmt.Fprintf(os.Stderr, " (%d from cache)", cached)
	}
	fmt.Fprintln(os.Stderr)
}
