package core

import (
	"github.com/wpscout/wpscout/internal/engine"
	"github.com/wpscout/wpscout/internal/marker"
	"github.com/wpscout/wpscout/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type Config = engine.Config
type Install = types.Install
type Result = engine.Result

// Scan is the stable entrypoint for other programs.
func Scan(cfg Config) ([]Install, error) {
	return engine.Scan(cfg)
}

// ScanWithStats runs a scan and returns installs plus walk statistics.
func ScanWithStats(cfg Config) (Result, error) {
	return engine.ScanWithStats(cfg)
}

// ExtractVersion exposes the marker-file version extractor.
func ExtractVersion(contents string) string { return marker.ExtractVersion(contents) }
