package wpscout

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wpscout/wpscout/internal/update"
)

func init() {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update wpscout to the latest release",
		RunE: func(_ *cobra.Command, _ []string) error {
			latest, newer, err := update.Check(version, false)
			if err != nil {
				return err
			}
			if !newer {
				_, _ = fmt.Fprintln(os.Stderr, "wpscout is up to date")
				return nil
			}
			_, _ = fmt.Fprintf(os.Stderr, "updating to v%s...\n", latest)
			return selfUpdate()
		},
	}
	rootCmd.AddCommand(cmd)
}
