package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScan_ThroughFacade(t *testing.T) {
	dir := t.TempDir()
	inc := filepath.Join(dir, "site", "wp-includes")
	if err := os.MkdirAll(inc, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(inc, "version.php"), []byte("$wp_version = '6.4';"), 0644); err != nil {
		t.Fatal(err)
	}

	installs, err := Scan(Config{Root: dir, MaxDepth: -1, NoCache: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(installs) != 1 || installs[0].Version != "6.4" {
		t.Fatalf("unexpected installs: %+v", installs)
	}
}

func TestExtractVersion_ThroughFacade(t *testing.T) {
	if got := ExtractVersion(`$wp_version = "5.9";`); got != "5.9" {
		t.Fatalf("got %q", got)
	}
}
