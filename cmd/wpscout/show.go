package wpscout

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wpscout/wpscout/internal/marker"
)

func init() {
	cmd := &cobra.Command{
		Use:   "show <install root|version.php>",
		Short: "Print an install's version marker file",
		Long:  "Prints the version.php marker of a found installation with PHP syntax highlighting. Accepts either the marker file itself or the installation root.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
	rootCmd.AddCommand(cmd)
}

func runShow(_ *cobra.Command, args []string) error {
	p := args[0]
	if st, err := os.Stat(p); err == nil && st.IsDir() {
		if filepath.Base(p) == marker.Dir {
			p = filepath.Join(p, marker.File)
		} else {
			p = filepath.Join(p, marker.Dir, marker.File)
		}
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return fmt.Errorf("cannot read marker file: %w", err)
	}
	if flagNoColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		_, err = os.Stdout.Write(b)
		return err
	}
	if err := quick.Highlight(os.Stdout, string(b), "php", "terminal256", "monokai"); err != nil {
		_, err = os.Stdout.Write(b)
		return err
	}
	return nil
}
