package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	yaml "gopkg.in/yaml.v3"

	"github.com/wpscout/wpscout/internal/types"
)

// PrintOptions carries presentation knobs and scan stats for the footer.
type PrintOptions struct {
	NoColor     bool
	Duration    time.Duration
	DirsVisited int
}

// PrintTable renders installs as a bordered table in discovery order.
func PrintTable(w io.Writer, installs []types.Install, opts PrintOptions) {
	if len(installs) == 0 {
		fmt.Fprintln(w, "No WordPress installations found")
		footer(w, installs, opts)
		return
	}
	tbl := tablewriter.NewTable(w)
	tbl.Header([]string{"VERSION", "PATH", "DEPTH", "MANAGED"})
	for _, in := range installs {
		v := in.Version
		if v == "" {
			v = "unknown"
		}
		managed := ""
		if in.Managed {
			managed = "git"
		}
		_ = tbl.Append([]string{v, in.VersionPath, strconv.Itoa(in.Depth), managed})
	}
	_ = tbl.Render()
	footer(w, installs, opts)
}

// PrintText renders installs as plain columns, one line per install.
func PrintText(w io.Writer, installs []types.Install, opts PrintOptions) {
	if len(installs) == 0 {
		fmt.Fprintln(w, "No WordPress installations found")
		footer(w, installs, opts)
		return
	}
	maxVer := 7
	for _, in := range installs {
		if l := len(in.Version); l > maxVer {
			maxVer = l
		}
	}
	for _, in := range installs {
		v := in.Version
		if v == "" {
			v = "unknown"
		} else if !opts.NoColor {
			v = "\x1b[32m" + v + "\x1b[0m"
		}
		fmt.Fprintf(w, "%-*s  depth=%d  %s\n", maxVer, v, in.Depth, in.VersionPath)
	}
	footer(w, installs, opts)
}

func footer(w io.Writer, installs []types.Install, opts PrintOptions) {
	if opts.Duration <= 0 && opts.DirsVisited <= 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Installs: %d\n", len(installs))
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}
	if opts.DirsVisited > 0 {
		fmt.Fprintf(w, "Directories visited: %d\n", opts.DirsVisited)
	}
}

// WriteJSON emits the result set as an indented JSON array.
func WriteJSON(w io.Writer, installs []types.Install) error {
	if installs == nil {
		installs = []types.Install{} // no `null` in JSON
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(installs)
}

// WriteCSV emits a header row followed by one record per install.
func WriteCSV(w io.Writer, installs []types.Install) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"version_path", "version", "depth"}); err != nil {
		return err
	}
	for _, in := range installs {
		if err := cw.Write([]string{in.VersionPath, in.Version, strconv.Itoa(in.Depth)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteYAML emits the result set as a YAML sequence.
func WriteYAML(w io.Writer, installs []types.Install) error {
	if installs == nil {
		installs = []types.Install{}
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(installs)
}

// WriteCount prints only the number of installs.
func WriteCount(w io.Writer, installs []types.Install) {
	fmt.Fprintln(w, len(installs))
}
