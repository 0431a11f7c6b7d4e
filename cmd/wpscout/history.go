package wpscout

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wpscout/wpscout/internal/audit"
)

var flagHistoryPath string

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past scans recorded for a root",
		RunE:  runHistory,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagHistoryPath, "path", "p", ".", "scanned root whose history to list")
}

func runHistory(_ *cobra.Command, _ []string) error {
	abs, _ := filepath.Abs(flagHistoryPath)
	records, err := audit.NewLog(abs).LoadHistory()
	if err != nil {
		return fmt.Errorf("no scan history for %s", abs)
	}
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}
	for _, r := range records {
		fmt.Printf("%s  %s  installs=%d  dirs=%d  took=%s\n",
			r.Timestamp.Format("2006-01-02 15:04:05"), r.ScanID, r.Installs, r.DirsVisited, r.Duration)
	}
	return nil
}
