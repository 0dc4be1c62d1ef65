package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"quill/internal/config"
	"quill/internal/diag"
	"quill/internal/diagfmt"
	"quill/internal/driver"
	"quill/internal/source"
)

var lintCmd = &cobra.Command{
	Use:   "lint [flags] [path...]",
	Short: "Lint PHP sources",
	Long: `Lint parses every source, reflects declared symbols into one codebase model and runs the enabled rules.
Without paths the [source] section of quill.toml (or the working directory) is used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalysis(cmd, args, false)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [flags] [path...]",
	Short: "Report parse errors and semantic issues without running rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalysis(cmd, args, true)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{lintCmd, checkCmd} {
		cmd.Flags().String("format", "pretty", "output format (pretty|short|json)")
		cmd.Flags().String("path-mode", "auto", "how paths are printed (auto|relative|absolute|basename)")
		cmd.Flags().Int("jobs", 0, "max parallel workers per stage (0=auto)")
		cmd.Flags().String("ui", "auto", "show progress UI (auto|on|off)")
		cmd.Flags().Bool("with-notes", false, "include notes and secondary spans in output")
		cmd.Flags().Int("max-issues", 0, "maximum number of issues to print (0=all)")
		cmd.Flags().String("minimum-level", "", "hide issues below this level (help|note|warning|error)")
	}
	lintCmd.Flags().Bool("fixable-only", false, "only report issues with a suggested fix")
	lintCmd.Flags().Bool("suggest", false, "include fix suggestions in output")
	lintCmd.Flags().Bool("preview", false, "show before/after lines for suggestions")
	lintCmd.Flags().Bool("no-cache", false, "do not read or write the reflection cache")
	lintCmd.Flags().String("target-version", "", "PHP version the code must run on, overrides quill.toml")
	lintCmd.Flags().Bool("semantics-only", false, "same as the check command")
}

type lintFlags struct {
	format        diagfmt.Format
	pathMode      diagfmt.PathMode
	jobs          int
	ui            uiMode
	withNotes     bool
	maxIssues     int
	minimum       *diag.Level
	fixableOnly   bool
	suggest       bool
	preview       bool
	noCache       bool
	targetVersion string
	semantics     bool
}

func readLintFlags(cmd *cobra.Command) (lintFlags, error) {
	var f lintFlags
	flags := cmd.Flags()

	formatStr, err := flags.GetString("format")
	if err != nil {
		return f, fmt.Errorf("failed to get format flag: %w", err)
	}
	if f.format, err = diagfmt.ParseFormat(formatStr); err != nil {
		return f, err
	}
	pathMode, err := flags.GetString("path-mode")
	if err != nil {
		return f, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	if f.pathMode, err = diagfmt.ParsePathMode(pathMode); err != nil {
		return f, err
	}
	if f.jobs, err = flags.GetInt("jobs"); err != nil {
		return f, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiStr, err := flags.GetString("ui")
	if err != nil {
		return f, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if f.ui, err = readUIMode(uiStr); err != nil {
		return f, err
	}
	if f.withNotes, err = flags.GetBool("with-notes"); err != nil {
		return f, fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	if f.maxIssues, err = flags.GetInt("max-issues"); err != nil {
		return f, fmt.Errorf("failed to get max-issues flag: %w", err)
	}
	minimum, err := flags.GetString("minimum-level")
	if err != nil {
		return f, fmt.Errorf("failed to get minimum-level flag: %w", err)
	}
	if minimum != "" {
		lvl, err := diag.ParseLevel(minimum)
		if err != nil {
			return f, fmt.Errorf("invalid --minimum-level: %w", err)
		}
		f.minimum = &lvl
	}

	// флаги ниже есть только у lint
	if flags.Lookup("fixable-only") == nil {
		f.semantics = true
		return f, nil
	}
	if f.fixableOnly, err = flags.GetBool("fixable-only"); err != nil {
		return f, fmt.Errorf("failed to get fixable-only flag: %w", err)
	}
	if f.suggest, err = flags.GetBool("suggest"); err != nil {
		return f, fmt.Errorf("failed to get suggest flag: %w", err)
	}
	if f.preview, err = flags.GetBool("preview"); err != nil {
		return f, fmt.Errorf("failed to get preview flag: %w", err)
	}
	if f.noCache, err = flags.GetBool("no-cache"); err != nil {
		return f, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	if f.targetVersion, err = flags.GetString("target-version"); err != nil {
		return f, fmt.Errorf("failed to get target-version flag: %w", err)
	}
	if f.semantics, err = flags.GetBool("semantics-only"); err != nil {
		return f, fmt.Errorf("failed to get semantics-only flag: %w", err)
	}
	return f, nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		return config.Load(path)
	}
	return config.Discover(".")
}

// buildManager registers includes as external sources, then the files to
// lint. Both lists come sorted from source.Discover, which fixes the
// enumeration order of the run.
func buildManager(cfg *config.Config, args []string) (*source.Manager, error) {
	roots := args
	if len(roots) == 0 {
		roots = cfg.Source.Paths
	}
	opts := cfg.DiscoverOptions()
	files, err := source.Discover(roots, opts)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no source files found in %v", roots)
	}
	var includes []string
	if len(cfg.Source.Includes) > 0 {
		if includes, err = source.Discover(cfg.Source.Includes, opts); err != nil {
			return nil, err
		}
	}

	baseDir := ""
	if cfg.Path != "" {
		baseDir = filepath.Dir(cfg.Path)
	}
	m := source.NewManager(baseDir)
	linted := make(map[string]struct{}, len(files))
	for _, f := range files {
		linted[filepath.Clean(f)] = struct{}{}
	}
	for _, f := range includes {
		if _, ok := linted[filepath.Clean(f)]; !ok {
			m.AddExternal(f)
		}
	}
	for _, f := range files {
		m.AddUserDefined(f)
	}
	return m, nil
}

func runAnalysis(cmd *cobra.Command, args []string, semanticsOnly bool) error {
	defer dumpTraceOnPanic()

	f, err := readLintFlags(cmd)
	if err != nil {
		return err
	}
	semanticsOnly = semanticsOnly || f.semantics

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	manager, err := buildManager(cfg, args)
	if err != nil {
		return err
	}
	settings, err := cfg.LintSettings()
	if err != nil {
		return err
	}
	if f.targetVersion != "" {
		v, err := semver.NewVersion(f.targetVersion)
		if err != nil {
			return fmt.Errorf("invalid --target-version: %w", err)
		}
		settings.TargetVersion = v
	}

	opts := driver.Options{
		Jobs:          f.jobs,
		SemanticsOnly: semanticsOnly,
		Settings:      settings,
		FixableOnly:   f.fixableOnly,
		MinimumLevel:  f.minimum,
	}
	if !f.noCache && !semanticsOnly {
		cache, err := driver.OpenFragmentCache("quill")
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: reflection cache disabled: %v\n", err)
		} else {
			opts.Cache = cache
		}
	}

	run := func(ctx context.Context, p driver.Progress) (*driver.Result, error) {
		o := opts
		o.Progress = p
		return driver.Lint(ctx, manager, o)
	}
	stages := []driver.Stage{driver.StageParse, driver.StageReflect, driver.StageLint}
	if semanticsOnly {
		stages = stages[:1]
	}

	var res *driver.Result
	if shouldUseTUI(f.ui) {
		res, err = runWithUI(cmd.Context(), "quill "+cmd.Name(), stages, run)
	} else {
		res, err = run(cmd.Context(), nil)
	}

	// решение принято в PersistentPreRunE по --color
	useColor := !color.NoColor
	out := cmd.OutOrStdout()
	if res != nil {
		if rerr := render(out, res, f, useColor); rerr != nil && err == nil {
			err = rerr
		}
		if showTimings, _ := cmd.Root().PersistentFlags().GetBool("timings"); showTimings {
			printTimings(cmd.ErrOrStderr(), res)
		}
	}
	if err != nil {
		return err
	}
	if code := driver.ExitCode(res, nil); code != driver.ExitOK {
		return exitError{code: code}
	}
	return nil
}

func render(w io.Writer, res *driver.Result, f lintFlags, useColor bool) error {
	switch f.format {
	case diagfmt.FormatJSON:
		return diagfmt.JSON(w, res.Issues, res.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         f.pathMode,
			Max:              f.maxIssues,
			IncludeFixes:     f.suggest,
			IncludePreviews:  f.preview,
		})
	case diagfmt.FormatShort:
		shown, _ := limit(res.Issues, f.maxIssues)
		return diagfmt.Short(w, shown, res.FileSet, f.pathMode)
	}
	shown, hidden := limit(res.Issues, f.maxIssues)
	err := diagfmt.Pretty(w, shown, res.FileSet, diagfmt.PrettyOpts{
		Color:       useColor,
		Context:     1,
		PathMode:    f.pathMode,
		ShowNotes:   f.withNotes,
		ShowFixes:   f.suggest,
		ShowPreview: f.preview,
	})
	if err != nil {
		return err
	}
	if hidden > 0 {
		fmt.Fprintf(w, "... %d more issues not shown (raise --max-issues)\n", hidden)
	}
	return diagfmt.Summary(w, res.Issues, res.Files, useColor)
}

func limit(issues diag.Collection, maxIssues int) (diag.Collection, int) {
	if maxIssues <= 0 || issues.Len() <= maxIssues {
		return issues, 0
	}
	return diag.NewCollection(issues.Items()[:maxIssues]...), issues.Len() - maxIssues
}
