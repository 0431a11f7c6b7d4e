package wpscout

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wpscout/wpscout/internal/report"
	"github.com/wpscout/wpscout/internal/types"
)

func TestFilterMinVersion(t *testing.T) {
	installs := []types.Install{
		{VersionPath: "/a", Version: "4.8-alpha"},
		{VersionPath: "/b", Version: "6.4.2"},
		{VersionPath: "/c", Version: ""},
	}
	kept, err := filterMinVersion(installs, "6.0")
	if err != nil {
		t.Fatal(err)
	}
	if len(kept) != 1 || kept[0].VersionPath != "/b" {
		t.Fatalf("unexpected filter result: %+v", kept)
	}

	if _, err := filterMinVersion(installs, "not a version"); err == nil {
		t.Fatal("expected error for junk min version")
	}
}

func TestRender_Dispatch(t *testing.T) {
	installs := []types.Install{{VersionPath: "/a/wp-includes/version.php", Version: "6.0", Depth: 1}}
	reset := func() { flagJSON, flagCSV, flagYAML, flagCount, flagText = false, false, false, false, false }
	t.Cleanup(reset)

	reset()
	flagCount = true
	var buf bytes.Buffer
	if err := render(&buf, installs, report.PrintOptions{}); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "1" {
		t.Fatalf("count mode: got %q", buf.String())
	}

	reset()
	flagCSV = true
	buf.Reset()
	if err := render(&buf, installs, report.PrintOptions{}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "version_path,version,depth") {
		t.Fatalf("csv mode: got %q", buf.String())
	}

	reset()
	buf.Reset()
	if err := render(&buf, installs, report.PrintOptions{NoColor: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "VERSION") {
		t.Fatalf("default mode should be a table: got %q", buf.String())
	}
}

func TestPickHelpers(t *testing.T) {
	s := "local"
	if got := pickString("", &s, nil); got != "local" {
		t.Fatalf("pickString: %q", got)
	}
	if got := pickString("cli", &s, nil); got != "cli" {
		t.Fatalf("pickString cli wins: %q", got)
	}
	b := true
	if !pickBool(false, &b, nil) {
		t.Fatal("pickBool should take local")
	}
	n := 4
	if got := pickIntDefault(-1, nil, &n); got != 4 {
		t.Fatalf("pickIntDefault: %d", got)
	}
	if got := pickIntDefault(-1, nil, nil); got != -1 {
		t.Fatalf("pickIntDefault fallback: %d", got)
	}
}
