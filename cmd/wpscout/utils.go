package wpscout

import (
	"io"
	"runtime/debug"

	semver3 "github.com/blang/semver"
	semver "github.com/blang/semver/v4"
	"github.com/rhysd/go-github-selfupdate/selfupdate"

	"github.com/wpscout/wpscout/internal/report"
	"github.com/wpscout/wpscout/internal/types"
)

// render dispatches the result set to the formatter picked by the output
// flags. The engine hands over discovery order; formatters keep it.
func render(w io.Writer, installs []types.Install, opts report.PrintOptions) error {
	switch {
	case flagCount:
		report.WriteCount(w, installs)
	case flagJSON:
		return report.WriteJSON(w, installs)
	case flagCSV:
		return report.WriteCSV(w, installs)
	case flagYAML:
		return report.WriteYAML(w, installs)
	case flagText:
		report.PrintText(w, installs, opts)
	default:
		report.PrintTable(w, installs, opts)
	}
	return nil
}

func selfUpdate() error {
	v := version
	// Use build info if tag overridden at build-time
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(v) == 0 {
				v = s.Value
			}
		}
	}
	// parse semantic version (strip leading v)
	ver, err := semver.ParseTolerant(v)
	if err != nil {
		ver = semver.MustParse("0.0.0")
	}
	// Update from GitHub Releases: wpscout/wpscout
	latest, err := selfupdate.UpdateSelf(semver3.MustParse(ver.String()), "wpscout/wpscout")
	if err != nil {
		return err
	}
	_ = latest
	return nil
}

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}

// pickIntDefault returns the first set value, falling back to def.
func pickIntDefault(def int, local, global *int) int {
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return def
}
