package audit

import (
	"testing"
	"time"

	"github.com/wpscout/wpscout/internal/types"
)

func TestAppendAndLoadHistory_NewestFirst(t *testing.T) {
	dir := t.TempDir()
	l := NewLog(dir)

	first := NewScanRecord(dir, []types.Install{
		{VersionPath: "/a/wp-includes/version.php", Version: "6.4", Depth: 1},
	}, 5, 2*time.Second)
	first.ScanID = "one"
	if err := l.Append(first); err != nil {
		t.Fatal(err)
	}
	second := NewScanRecord(dir, nil, 3, time.Second)
	second.ScanID = "two"
	if err := l.Append(second); err != nil {
		t.Fatal(err)
	}

	records, err := l.LoadHistory()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ScanID != "two" {
		t.Fatalf("expected newest first, got %q", records[0].ScanID)
	}
	if records[1].Installs != 1 || records[1].Versions["6.4"] != 1 {
		t.Fatalf("unexpected record: %+v", records[1])
	}
}

func TestNewScanRecord_UnknownVersionBucket(t *testing.T) {
	r := NewScanRecord("/srv", []types.Install{{VersionPath: "/p", Version: ""}}, 1, time.Second)
	if r.Versions["unknown"] != 1 {
		t.Fatalf("expected unknown bucket, got %v", r.Versions)
	}
	if len(r.TopInstalls) != 1 || r.TopInstalls[0].Path != "/p" {
		t.Fatalf("unexpected top installs: %+v", r.TopInstalls)
	}
}

func TestLoadHistory_MissingFile(t *testing.T) {
	if _, err := NewLog(t.TempDir()).LoadHistory(); err == nil {
		t.Fatal("expected error for missing log")
	}
}
