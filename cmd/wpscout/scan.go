package wpscout

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wpscout/wpscout/internal/audit"
	"github.com/wpscout/wpscout/internal/config"
	"github.com/wpscout/wpscout/internal/engine"
	"github.com/wpscout/wpscout/internal/marker"
	"github.com/wpscout/wpscout/internal/report"
	"github.com/wpscout/wpscout/internal/trace"
	"github.com/wpscout/wpscout/internal/tui"
	"github.com/wpscout/wpscout/internal/types"
	"github.com/wpscout/wpscout/internal/update"
)

var (
	flagPath            string
	flagMaxDepth        int
	flagSkipIgnorePaths bool
	flagExclude         string
	flagMinVersion      string
	flagNoCache         bool
	flagNoGit           bool
	flagNoAudit         bool
	flagCopy            bool
	flagInteractive     bool
	flagFailEmpty       bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a directory tree for WordPress installations",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "root path to scan")
	cmd.Flags().IntVar(&flagMaxDepth, "max-depth", -1, "maximum descent depth (-1 = unlimited)")
	cmd.Flags().BoolVar(&flagSkipIgnorePaths, "skip-ignore-paths", false, "do not prune built-in ignore paths (cache, node_modules, ...)")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().StringVar(&flagMinVersion, "min-version", "", "only report installs at or above this version")
	cmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "disable the marker-content cache")
	cmd.Flags().BoolVar(&flagNoGit, "no-git", false, "skip git work-tree detection for found installs")
	cmd.Flags().BoolVar(&flagNoAudit, "no-audit", false, "do not append this scan to the audit history")
	cmd.Flags().BoolVar(&flagCopy, "copy", false, "copy JSON results to the clipboard")
	cmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "browse results interactively")
	cmd.Flags().BoolVar(&flagFailEmpty, "fail-empty", false, "exit 1 when no installs are found")
}

func runScan(cmd *cobra.Command, _ []string) error {
	abs, _ := filepath.Abs(flagPath)
	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(abs); err == nil {
		lcfg = c
	}

	maxDepth := flagMaxDepth
	if !cmd.Flags().Changed("max-depth") {
		maxDepth = pickIntDefault(-1, lcfg.MaxDepth, gcfg.MaxDepth)
	}
	noColor := pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		noColor = true
	}

	cfg := engine.Config{
		Root:            abs,
		SkipIgnorePaths: pickBool(flagSkipIgnorePaths, lcfg.SkipIgnorePaths, gcfg.SkipIgnorePaths),
		MaxDepth:        maxDepth,
		ExcludeGlobs:    pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		NoCache:         pickBool(flagNoCache, lcfg.NoCache, gcfg.NoCache),
		DetectGit:       !pickBool(flagNoGit, lcfg.NoGit, gcfg.NoGit),
	}
	if pickBool(flagVerbose, lcfg.Verbose, gcfg.Verbose) {
		cfg.Log = trace.New(os.Stderr)
	}

	machineOutput := flagJSON || flagCSV || flagYAML || flagCount
	if !machineOutput && !flagNoUpdateCheck {
		if latest, newer, _ := update.Check(version, false); newer && latest != "" {
			_, _ = fmt.Fprintf(os.Stderr, "(new version available: v%s)  run 'wpscout update' to upgrade\n", latest)
		}
	}
	if flagSelfUpdate {
		if err := selfUpdate(); err == nil {
			_, _ = fmt.Fprintln(os.Stderr, "updated to latest; re-run command")
			return nil
		}
	}

	res, err := engine.ScanWithStats(cfg)
	if err != nil {
		return fmt.Errorf("scan error: %w", err)
	}

	installs := res.Installs
	if min := pickString(flagMinVersion, lcfg.MinVersion, gcfg.MinVersion); min != "" {
		installs, err = filterMinVersion(installs, min)
		if err != nil {
			return err
		}
	}

	if !flagNoAudit {
		rec := audit.NewScanRecord(cfg.Root, installs, res.DirsVisited, res.Duration)
		if err := audit.NewLog(cfg.Root).Append(rec); err != nil {
			_, _ = fmt.Fprintln(os.Stderr, "audit warning:", err)
		}
	}

	if flagCopy {
		var buf bytes.Buffer
		if err := report.WriteJSON(&buf, installs); err == nil {
			if err := clipboard.WriteAll(buf.String()); err != nil {
				_, _ = fmt.Fprintln(os.Stderr, "clipboard warning:", err)
			}
		}
	}

	if flagInteractive && !machineOutput {
		if err := tui.Run(installs); err != nil {
			return err
		}
	} else {
		opts := report.PrintOptions{NoColor: noColor, Duration: res.Duration, DirsVisited: res.DirsVisited}
		if err := render(os.Stdout, installs, opts); err != nil {
			return err
		}
	}

	if flagFailEmpty && len(installs) == 0 {
		os.Exit(1)
	}
	return nil
}

// filterMinVersion drops installs below min. Installs whose version does
// not parse never satisfy a minimum.
func filterMinVersion(installs []types.Install, min string) ([]types.Install, error) {
	minVer, err := marker.ParseVersion(min)
	if err != nil {
		return nil, fmt.Errorf("invalid --min-version %q: %w", min, err)
	}
	kept := make([]types.Install, 0, len(installs))
	for _, in := range installs {
		if marker.AtLeast(in.Version, minVer) {
			kept = append(kept, in)
		}
	}
	return kept, nil
}
