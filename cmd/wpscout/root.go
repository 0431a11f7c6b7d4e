package wpscout

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON          bool
	flagCSV           bool
	flagYAML          bool
	flagCount         bool
	flagText          bool
	flagNoColor       bool
	flagVerbose       bool
	flagNoUpdateCheck bool
	flagSelfUpdate    bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the wpscout CLI.
var rootCmd = &cobra.Command{
	Use:           "wpscout",
	Short:         "Find WordPress installations on a host",
	Long:          "wpscout walks a directory tree and reports every WordPress installation it finds, with the version read from each install's marker file.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the wpscout CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagCSV, "csv", false, "emit CSV")
	rootCmd.PersistentFlags().BoolVar(&flagYAML, "yaml", false, "emit YAML")
	rootCmd.PersistentFlags().BoolVar(&flagCount, "count", false, "print only the number of installs")
	rootCmd.PersistentFlags().BoolVar(&flagText, "text", false, "output in plain text columnar format")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log traversal events with elapsed timestamps")
	rootCmd.PersistentFlags().BoolVar(&flagNoUpdateCheck, "no-update-check", false, "disable update check")
	rootCmd.PersistentFlags().BoolVar(&flagSelfUpdate, "self-update", false, "update wpscout to the latest release")
}
