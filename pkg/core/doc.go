// Package core provides a small, stable facade over wpscout's internal
// engine for external integrations. It deliberately re-exports a narrow API
// surface so other tools can depend on a stable import path without
// touching internal packages.
//
// Example:
//
//	cfg := core.Config{Root: "/var/www", MaxDepth: -1}
//	installs, err := core.Scan(cfg)
//	if err != nil { /* handle */ }
package core
