package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/wpscout/wpscout/internal/types"
)

// ScanRecord is one line of the JSONL scan history.
type ScanRecord struct {
	Timestamp   time.Time        `json:"timestamp"`
	ScanID      string           `json:"scan_id"`
	Root        string           `json:"root"`
	Installs    int              `json:"installs"`
	DirsVisited int              `json:"dirs_visited"`
	Duration    string           `json:"duration"`
	Versions    map[string]int   `json:"versions,omitempty"`
	TopInstalls []InstallSummary `json:"top_installs,omitempty"`
}

// InstallSummary is a trimmed install entry for the history log.
type InstallSummary struct {
	Path    string `json:"path"`
	Version string `json:"version"`
	Depth   int    `json:"depth"`
}

// Log appends scan records to a JSONL file next to the scanned root.
type Log struct {
	logPath string
}

// NewLog returns a Log writing under root.
func NewLog(root string) *Log {
	return &Log{logPath: filepath.Join(root, ".wpscout_audit.jsonl")}
}

// LoadHistory returns past records, newest first. Malformed lines are
// skipped.
func (l *Log) LoadHistory() ([]ScanRecord, error) {
	f, err := os.Open(l.logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var records []ScanRecord
	dec := json.NewDecoder(f)
	for dec.More() {
		var r ScanRecord
		if err := dec.Decode(&r); err != nil {
			continue
		}
		records = append(records, r)
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// Append writes one record to the history.
func (l *Log) Append(record ScanRecord) error {
	if record.ScanID == "" {
		record.ScanID = fmt.Sprintf("scan_%d", time.Now().Unix())
	}
	f, err := os.OpenFile(l.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(record); err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}
	return nil
}

// NewScanRecord summarizes one scan for the history. Only the first ten
// installs are kept per record.
func NewScanRecord(root string, installs []types.Install, dirsVisited int, duration time.Duration) ScanRecord {
	versions := make(map[string]int)
	for _, in := range installs {
		v := in.Version
		if v == "" {
			v = "unknown"
		}
		versions[v]++
	}
	top := make([]InstallSummary, 0, 10)
	for i, in := range installs {
		if i >= 10 {
			break
		}
		top = append(top, InstallSummary{Path: in.VersionPath, Version: in.Version, Depth: in.Depth})
	}
	return ScanRecord{
		Timestamp:   time.Now(),
		Root:        root,
		Installs:    len(installs),
		DirsVisited: dirsVisited,
		Duration:    duration.String(),
		Versions:    versions,
		TopInstalls: top,
	}
}
