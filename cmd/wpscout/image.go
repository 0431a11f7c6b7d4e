package wpscout

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wpscout/wpscout/internal/artifacts"
	"github.com/wpscout/wpscout/internal/report"
	"github.com/wpscout/wpscout/internal/types"
)

var flagTarball bool

func init() {
	cmd := &cobra.Command{
		Use:   "image <reference|tarball>",
		Short: "Scan a container image for WordPress installations",
		Long:  "Scans the flattened filesystem of a container image (a remote reference, or a docker-save tarball with --tarball) for wp-includes/version.php markers.",
		Args:  cobra.ExactArgs(1),
		RunE:  runImage,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().BoolVar(&flagTarball, "tarball", false, "treat the argument as a docker-save tarball on disk")
}

func runImage(_ *cobra.Command, args []string) error {
	var installs []types.Install
	var err error
	if flagTarball {
		installs, err = artifacts.ScanTarball(args[0])
	} else {
		installs, err = artifacts.ScanRef(args[0])
	}
	if err != nil {
		return err
	}
	return render(os.Stdout, installs, report.PrintOptions{NoColor: flagNoColor})
}
