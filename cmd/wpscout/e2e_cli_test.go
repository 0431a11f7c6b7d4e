package wpscout

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func writeTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	inc := filepath.Join(dir, "a", "wp-includes")
	if err := os.MkdirAll(inc, 0755); err != nil {
		t.Fatal(err)
	}
	content := "<?php\n$wp_version = '4.8-alpha';\n"
	if err := os.WriteFile(filepath.Join(inc, "version.php"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	// run as subprocess to avoid os.Exit in-process
	cmd := exec.Command("go", append([]string{"run", "."}, args...)...)
	cmd.Dir = filepath.Clean(filepath.Join("..", ".."))
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	return out.String()
}

func TestCLI_ScanJSONShape(t *testing.T) {
	dir := writeTree(t)
	out := runCLI(t, "scan", "--json", "--no-audit", "--no-cache", "--no-git", "--no-update-check", "-p", dir)

	var arr []map[string]any
	if err := json.Unmarshal([]byte(out), &arr); err != nil {
		t.Fatalf("json unmarshal: %v\n%s", err, out)
	}
	if len(arr) != 1 {
		t.Fatalf("expected one install, got %d", len(arr))
	}
	if arr[0]["version"] != "4.8-alpha" {
		t.Fatalf("unexpected version: %v", arr[0])
	}
	if arr[0]["depth"] != float64(1) {
		t.Fatalf("unexpected depth: %v", arr[0])
	}
	vp, _ := arr[0]["version_path"].(string)
	if !strings.HasSuffix(vp, filepath.Join("a", "wp-includes", "version.php")) {
		t.Fatalf("unexpected version_path: %q", vp)
	}
}

func TestCLI_ScanCount(t *testing.T) {
	dir := writeTree(t)
	out := runCLI(t, "scan", "--count", "--no-audit", "--no-cache", "--no-git", "--no-update-check", "-p", dir)
	if strings.TrimSpace(out) != "1" {
		t.Fatalf("expected count 1, got %q", out)
	}
}

func TestCLI_IgnoredBranchYieldsEmptyJSON(t *testing.T) {
	dir := t.TempDir()
	inc := filepath.Join(dir, "node_modules", "site", "wp-includes")
	if err := os.MkdirAll(inc, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(inc, "version.php"), []byte("$wp_version = '5.0';"), 0644); err != nil {
		t.Fatal(err)
	}
	out := runCLI(t, "scan", "--json", "--no-audit", "--no-cache", "--no-git", "--no-update-check", "-p", dir)
	if strings.TrimSpace(out) != "[]" {
		t.Fatalf("expected empty array, got %q", out)
	}
}
